package domain

import "strings"

// Language ids understood by the execution service.
const (
	LanguageIDJava       = 62
	LanguageIDJavaScript = 63
	LanguageIDPython     = 71
)

var languageIDs = map[string]int{
	"PYTHON":     LanguageIDPython,
	"JAVA":       LanguageIDJava,
	"JAVASCRIPT": LanguageIDJavaScript,
}

var languageNames = map[int]string{
	LanguageIDPython:     "PYTHON",
	LanguageIDJava:       "JAVA",
	LanguageIDJavaScript: "JAVASCRIPT",
}

// LanguageIDByName maps a language name to the execution service id,
// case-insensitively. The second return is false for unsupported languages.
func LanguageIDByName(name string) (int, bool) {
	id, ok := languageIDs[strings.ToUpper(name)]
	return id, ok
}

// LanguageNameByID maps an execution service language id back to its name.
func LanguageNameByID(id int) (string, bool) {
	name, ok := languageNames[id]
	return name, ok
}
