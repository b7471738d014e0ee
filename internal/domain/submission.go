package domain

import (
	"time"

	"github.com/google/uuid"
)

// AggregateStatus is the single verdict recorded for a whole submission.
type AggregateStatus string

const (
	AggregateAccepted    AggregateStatus = "ACCEPTED"
	AggregateWrongAnswer AggregateStatus = "WRONG_ANSWER"
	AggregateError       AggregateStatus = "ERROR"
)

// TestCaseVerdict is the judged outcome of one test case. Index is the
// position in the original request, preserved through submit, poll and
// evaluation regardless of service-side processing order.
type TestCaseVerdict struct {
	Index          int    `db:"case_index"`
	Passed         bool   `db:"passed"`
	Stdout         string `db:"stdout"`
	ExpectedOutput string `db:"expected_output"`
	Stderr         string `db:"stderr"`
	CompileOutput  string `db:"compile_output"`
	TimeMs         int64  `db:"time_ms"`
	MemoryKb       int64  `db:"memory_kb"`
}

// Submission is one durable verdict record. Immutable once recorded, except
// for the derived solved relation.
type Submission struct {
	ID            uuid.UUID         `db:"id"`
	UserID        string            `db:"user_id"`
	ProblemID     string            `db:"problem_id"`
	SourceCode    string            `db:"source_code"`
	Language      string            `db:"language"`
	Status        AggregateStatus   `db:"status"`
	TotalTimeMs   int64             `db:"total_time_ms"`
	TotalMemoryKb int64             `db:"total_memory_kb"`
	CreatedAt     time.Time         `db:"created_at"`
	TestCases     []TestCaseVerdict `db:"-"`
}

// NewSubmission creates an unrecorded submission header.
func NewSubmission(userID, problemID, sourceCode, language string) *Submission {
	return &Submission{
		ID:         uuid.New(),
		UserID:     userID,
		ProblemID:  problemID,
		SourceCode: sourceCode,
		Language:   language,
		CreatedAt:  time.Now(),
	}
}
