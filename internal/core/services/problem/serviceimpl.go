package problem

import (
	"context"
	"fmt"

	"github.com/Ayanroy004/Leet-lab/internal/core/ports/primary"
	"github.com/Ayanroy004/Leet-lab/internal/core/ports/secondary"
	"github.com/Ayanroy004/Leet-lab/internal/core/services/execution"
	"github.com/Ayanroy004/Leet-lab/internal/domain"
	"github.com/Ayanroy004/Leet-lab/internal/static/errs"
)

var _ IValidationService = (*ValidationService)(nil)

// ValidationService submits reference solutions with expected_output
// included, so the execution service performs the comparison itself. This is
// a different verdict source than the client-side textual comparison used
// for user submissions: here the sole pass signal is an accepted service
// status per case.
type ValidationService struct {
	executor secondary.CodeExecutor
	poller   *execution.Poller
	logger   primary.Logger
}

// NewValidationService creates a reference-solution validation service.
func NewValidationService(executor secondary.CodeExecutor, poller *execution.Poller, logger primary.Logger) *ValidationService {
	return &ValidationService{
		executor: executor,
		poller:   poller,
		logger:   logger,
	}
}

// Validate runs the reference solution against every case and reports which
// cases the service accepted.
func (s *ValidationService) Validate(ctx context.Context, cmd ValidateCommand) (*ValidationReport, error) {
	if len(cmd.Cases) == 0 {
		return nil, fmt.Errorf("%w: no test cases", errs.ErrInvalidRequest)
	}

	languageID, ok := domain.LanguageIDByName(cmd.Language)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported language %q", errs.ErrInvalidRequest, cmd.Language)
	}

	entries := make([]secondary.BatchEntry, 0, len(cmd.Cases))
	for _, testCase := range cmd.Cases {
		entries = append(entries, secondary.BatchEntry{
			SourceCode:     cmd.SourceCode,
			LanguageID:     languageID,
			Stdin:          testCase.Input,
			ExpectedOutput: testCase.ExpectedOutput,
		})
	}

	tokens, err := s.executor.SubmitBatch(ctx, entries)
	if err != nil {
		s.logger.Error("Failed to submit reference solution", "cases", len(entries), "error", err)
		return nil, err
	}

	results, err := s.poller.WaitForResults(ctx, tokens)
	if err != nil {
		return nil, err
	}

	report := &ValidationReport{
		Passed:     true,
		FailedCase: -1,
		Cases:      make([]CaseReport, 0, len(results)),
	}

	for i, result := range results {
		passed := result.Status == domain.StatusAccepted
		if !passed && report.Passed {
			report.Passed = false
			report.FailedCase = i
		}
		report.Cases = append(report.Cases, CaseReport{
			Index:  i,
			Status: result.Status,
			Passed: passed,
		})
	}

	return report, nil
}
