// package judge0 contains the HTTP adapter for the Judge0-compatible
// execution service.
package judge0

import (
	"strconv"

	"github.com/Ayanroy004/Leet-lab/internal/domain"
)

// Wire representation of one batch entry. expected_output is only present on
// the reference-solution validation path.
type wireSubmission struct {
	SourceCode     string `json:"source_code"`
	LanguageID     int    `json:"language_id"`
	Stdin          string `json:"stdin"`
	ExpectedOutput string `json:"expected_output,omitempty"`
}

type batchRequest struct {
	Submissions []wireSubmission `json:"submissions"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type wireStatus struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// Judge0 reports time as a decimal string of seconds and memory as a number
// of kilobytes; output fields are null until the job produces them.
type wireResult struct {
	Token         string     `json:"token"`
	Status        wireStatus `json:"status"`
	Stdout        *string    `json:"stdout"`
	Stderr        *string    `json:"stderr"`
	CompileOutput *string    `json:"compile_output"`
	Time          *string    `json:"time"`
	Memory        *float64   `json:"memory"`
}

type batchStatusResponse struct {
	Submissions []wireResult `json:"submissions"`
}

// Non-terminal status ids on the wire.
const (
	statusIDInQueue    = 1
	statusIDProcessing = 2
	statusIDAccepted   = 3
)

func statusFromID(id int) domain.ExecutionStatus {
	switch {
	case id == statusIDInQueue:
		return domain.StatusQueued
	case id == statusIDProcessing:
		return domain.StatusRunning
	case id == statusIDAccepted:
		return domain.StatusAccepted
	case id == 4:
		return domain.StatusWrongAnswer
	case id == 5:
		return domain.StatusTimeLimitExceeded
	case id == 6:
		return domain.StatusCompileError
	case id >= 7 && id <= 12:
		return domain.StatusRuntimeError
	default:
		return domain.StatusUnknown
	}
}

func (w wireResult) toDomain() domain.ExecutionResult {
	result := domain.ExecutionResult{
		Token:  w.Token,
		Status: statusFromID(w.Status.ID),
	}
	if w.Stdout != nil {
		result.Stdout = *w.Stdout
	}
	if w.Stderr != nil {
		result.Stderr = *w.Stderr
	}
	if w.CompileOutput != nil {
		result.CompileOutput = *w.CompileOutput
	}
	if w.Time != nil {
		if seconds, err := strconv.ParseFloat(*w.Time, 64); err == nil {
			result.TimeMs = int64(seconds * 1000)
		}
	}
	if w.Memory != nil {
		result.MemoryKb = int64(*w.Memory)
	}
	return result
}
