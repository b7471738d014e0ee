package problem

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Ayanroy004/Leet-lab/internal/config"
	"github.com/Ayanroy004/Leet-lab/internal/core/ports/secondary"
	"github.com/Ayanroy004/Leet-lab/internal/core/services/execution"
	"github.com/Ayanroy004/Leet-lab/internal/domain"
	"github.com/Ayanroy004/Leet-lab/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type fakeExecutor struct {
	submitted [][]secondary.BatchEntry
	submitErr error
	statuses  []domain.ExecutionStatus
}

func (f *fakeExecutor) SubmitBatch(ctx context.Context, entries []secondary.BatchEntry) ([]string, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.submitted = append(f.submitted, entries)
	tokens := make([]string, 0, len(entries))
	for i := range entries {
		tokens = append(tokens, fmt.Sprintf("token-%d", i))
	}
	return tokens, nil
}

func (f *fakeExecutor) FetchStatus(ctx context.Context, tokens []string) ([]domain.ExecutionResult, error) {
	results := make([]domain.ExecutionResult, 0, len(tokens))
	for i, token := range tokens {
		results = append(results, domain.ExecutionResult{Token: token, Status: f.statuses[i]})
	}
	return results, nil
}

func newTestValidationService(executor *fakeExecutor) *ValidationService {
	cfg := &config.ExecutionCfg{
		PollInterval: time.Millisecond,
		PollDeadline: time.Second,
		MaxBatchSize: 20,
	}
	poller := execution.NewPoller(executor, cfg, nopLogger{})
	return NewValidationService(executor, poller, nopLogger{})
}

func validateCommand() ValidateCommand {
	return ValidateCommand{
		SourceCode: "print(sum(map(int, input().split())))",
		Language:   "python",
		Cases: []ValidateCase{
			{Input: "1 2", ExpectedOutput: "3"},
			{Input: "3 4", ExpectedOutput: "7"},
		},
	}
}

func TestValidateIncludesExpectedOutputInEntries(t *testing.T) {
	t.Parallel()
	executor := &fakeExecutor{statuses: []domain.ExecutionStatus{domain.StatusAccepted, domain.StatusAccepted}}
	svc := newTestValidationService(executor)

	if _, err := svc.Validate(context.Background(), validateCommand()); err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	entries := executor.submitted[0]
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for i, entry := range entries {
		if entry.ExpectedOutput == "" {
			t.Fatalf("entry %d missing expected_output", i)
		}
		if entry.LanguageID != domain.LanguageIDPython {
			t.Fatalf("entry %d has language id %d", i, entry.LanguageID)
		}
	}
	if entries[0].Stdin != "1 2" || entries[1].Stdin != "3 4" {
		t.Fatalf("case order lost: %+v", entries)
	}
}

func TestValidateAllAcceptedPasses(t *testing.T) {
	t.Parallel()
	executor := &fakeExecutor{statuses: []domain.ExecutionStatus{domain.StatusAccepted, domain.StatusAccepted}}
	svc := newTestValidationService(executor)

	report, err := svc.Validate(context.Background(), validateCommand())
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !report.Passed || report.FailedCase != -1 {
		t.Fatalf("expected passing report, got %+v", report)
	}
	if len(report.Cases) != 2 {
		t.Fatalf("expected 2 case reports, got %d", len(report.Cases))
	}
}

func TestValidateReportsFirstFailingCase(t *testing.T) {
	t.Parallel()
	executor := &fakeExecutor{statuses: []domain.ExecutionStatus{domain.StatusAccepted, domain.StatusWrongAnswer}}
	svc := newTestValidationService(executor)

	report, err := svc.Validate(context.Background(), validateCommand())
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if report.Passed {
		t.Fatalf("report must fail when any case fails")
	}
	if report.FailedCase != 1 {
		t.Fatalf("expected failed case 1, got %d", report.FailedCase)
	}
	if report.Cases[0].Passed != true || report.Cases[1].Passed != false {
		t.Fatalf("per-case verdicts wrong: %+v", report.Cases)
	}
}

func TestValidateRejectsUnsupportedLanguage(t *testing.T) {
	t.Parallel()
	svc := newTestValidationService(&fakeExecutor{})

	cmd := validateCommand()
	cmd.Language = "COBOL"

	_, err := svc.Validate(context.Background(), cmd)
	if !errors.Is(err, errs.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestValidateRejectsEmptyCases(t *testing.T) {
	t.Parallel()
	svc := newTestValidationService(&fakeExecutor{})

	cmd := validateCommand()
	cmd.Cases = nil

	_, err := svc.Validate(context.Background(), cmd)
	if !errors.Is(err, errs.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestValidateSurfacesSubmitError(t *testing.T) {
	t.Parallel()
	executor := &fakeExecutor{submitErr: fmt.Errorf("%w: connection refused", errs.ErrServiceUnavailable)}
	svc := newTestValidationService(executor)

	_, err := svc.Validate(context.Background(), validateCommand())
	if !errors.Is(err, errs.ErrServiceUnavailable) {
		t.Fatalf("expected service unavailable, got %v", err)
	}
}
