package domain

import "testing"

func TestLanguageIDByNameIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"python", "Python", "PYTHON"} {
		id, ok := LanguageIDByName(name)
		if !ok || id != LanguageIDPython {
			t.Errorf("LanguageIDByName(%q) = %d, %v", name, id, ok)
		}
	}
	if _, ok := LanguageIDByName("COBOL"); ok {
		t.Error("unsupported language must not resolve")
	}
}

func TestLanguageRoundTrip(t *testing.T) {
	t.Parallel()
	for _, id := range []int{LanguageIDPython, LanguageIDJava, LanguageIDJavaScript} {
		name, ok := LanguageNameByID(id)
		if !ok {
			t.Fatalf("no name for id %d", id)
		}
		back, ok := LanguageIDByName(name)
		if !ok || back != id {
			t.Errorf("round trip lost id %d via %q", id, name)
		}
	}
}
