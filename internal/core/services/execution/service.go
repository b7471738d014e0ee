package execution

import (
	"context"
	"fmt"

	"github.com/Ayanroy004/Leet-lab/internal/domain"
	"github.com/Ayanroy004/Leet-lab/internal/static/errs"
)

// ExecuteCommand is one validated inbound execution request: run SourceCode
// against every stdin case and judge each against the expected output at the
// same index.
type ExecuteCommand struct {
	UserID          string
	ProblemID       string
	SourceCode      string
	LanguageID      int
	StdinCases      []string
	ExpectedOutputs []string
}

// IExecutionService runs the full submit, poll, evaluate, record pipeline for
// one submission.
type IExecutionService interface {
	// Execute judges the command and returns the recorded submission with all
	// test case verdicts hydrated.
	Execute(ctx context.Context, cmd ExecuteCommand) (*domain.Submission, error)
}

// PollTimeoutError reports that the overall polling deadline elapsed while
// tokens remained non-terminal. Partial carries whatever results were last
// observed, in request order, so the caller sees progress instead of an
// empty failure.
type PollTimeoutError struct {
	Partial []domain.ExecutionResult
}

func (e *PollTimeoutError) Error() string {
	settled := 0
	for _, result := range e.Partial {
		if result.Status.Terminal() {
			settled++
		}
	}
	return fmt.Sprintf("%v: %d of %d cases settled", errs.ErrPollTimeout, settled, len(e.Partial))
}

func (e *PollTimeoutError) Unwrap() error {
	return errs.ErrPollTimeout
}
