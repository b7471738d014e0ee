package problem

import (
	"context"

	"github.com/Ayanroy004/Leet-lab/internal/domain"
)

// ValidateCase is one (input, expected output) pair for reference-solution
// validation.
type ValidateCase struct {
	Input          string
	ExpectedOutput string
}

// ValidateCommand asks the execution service to run a reference solution
// against every case and compare outputs service-side.
type ValidateCommand struct {
	SourceCode string
	Language   string
	Cases      []ValidateCase
}

// CaseReport is the service-side verdict for one reference case.
type CaseReport struct {
	Index  int                    `json:"index"`
	Status domain.ExecutionStatus `json:"status"`
	Passed bool                   `json:"passed"`
}

// ValidationReport aggregates the service-side verdicts. FailedCase is the
// first failing index, or -1 when every case passed.
type ValidationReport struct {
	Passed     bool         `json:"passed"`
	FailedCase int          `json:"failedCase"`
	Cases      []CaseReport `json:"cases"`
}

// IValidationService validates reference solutions against their test cases.
type IValidationService interface {
	Validate(ctx context.Context, cmd ValidateCommand) (*ValidationReport, error)
}
