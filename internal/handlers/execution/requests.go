package execution

import (
	"time"

	"github.com/Ayanroy004/Leet-lab/internal/domain"
)

// ExecuteRequest is the inbound execute operation: run source_code against
// every stdin entry and judge entry i against expected_output[i].
type ExecuteRequest struct {
	SourceCode     string   `json:"source_code"`
	LanguageID     int      `json:"language_id"`
	Stdin          []string `json:"stdin"`
	ExpectedOutput []string `json:"expected_output"`
	ProblemID      string   `json:"problem_id"`
}

// ExecuteResponse wraps the hydrated submission.
type ExecuteResponse struct {
	Message    string        `json:"message"`
	Submission SubmissionDTO `json:"submission"`
}

type TestCaseDTO struct {
	Index          int    `json:"index"`
	Passed         bool   `json:"passed"`
	Stdout         string `json:"stdout"`
	ExpectedOutput string `json:"expected_output"`
	Stderr         string `json:"stderr,omitempty"`
	CompileOutput  string `json:"compile_output,omitempty"`
	TimeMs         int64  `json:"time_ms"`
	MemoryKb       int64  `json:"memory_kb"`
}

type SubmissionDTO struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	ProblemID     string        `json:"problem_id"`
	Language      string        `json:"language"`
	Status        string        `json:"status"`
	TotalTimeMs   int64         `json:"total_time_ms"`
	TotalMemoryKb int64         `json:"total_memory_kb"`
	CreatedAt     time.Time     `json:"created_at"`
	TestCases     []TestCaseDTO `json:"test_cases"`
}

// PartialResultDTO is the last observed state of one case, returned with a
// poll timeout so the caller sees progress instead of an empty failure.
type PartialResultDTO struct {
	Index  int    `json:"index"`
	Status string `json:"status"`
	Stdout string `json:"stdout,omitempty"`
}

func ToSubmissionDTO(sub *domain.Submission) SubmissionDTO {
	dto := SubmissionDTO{
		ID:            sub.ID.String(),
		UserID:        sub.UserID,
		ProblemID:     sub.ProblemID,
		Language:      sub.Language,
		Status:        string(sub.Status),
		TotalTimeMs:   sub.TotalTimeMs,
		TotalMemoryKb: sub.TotalMemoryKb,
		CreatedAt:     sub.CreatedAt,
		TestCases:     make([]TestCaseDTO, 0, len(sub.TestCases)),
	}
	for _, testCase := range sub.TestCases {
		dto.TestCases = append(dto.TestCases, TestCaseDTO{
			Index:          testCase.Index,
			Passed:         testCase.Passed,
			Stdout:         testCase.Stdout,
			ExpectedOutput: testCase.ExpectedOutput,
			Stderr:         testCase.Stderr,
			CompileOutput:  testCase.CompileOutput,
			TimeMs:         testCase.TimeMs,
			MemoryKb:       testCase.MemoryKb,
		})
	}
	return dto
}

func ToPartialResultDTOs(results []domain.ExecutionResult) []PartialResultDTO {
	dtos := make([]PartialResultDTO, 0, len(results))
	for i, result := range results {
		dtos = append(dtos, PartialResultDTO{
			Index:  i,
			Status: string(result.Status),
			Stdout: result.Stdout,
		})
	}
	return dtos
}
