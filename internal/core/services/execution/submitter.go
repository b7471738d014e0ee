package execution

import (
	"context"
	"fmt"

	"github.com/Ayanroy004/Leet-lab/internal/core/ports/primary"
	"github.com/Ayanroy004/Leet-lab/internal/core/ports/secondary"
	"github.com/Ayanroy004/Leet-lab/internal/domain"
	"github.com/Ayanroy004/Leet-lab/internal/static/errs"
)

// Submitter turns an ExecutionRequest into one batch submission. Entry i
// carries StdinCases[i]; expected outputs are never sent on this path, the
// comparison happens client-side after polling. The returned tokens are in
// case order, which is the positional correspondence every later stage
// relies on.
type Submitter struct {
	executor secondary.CodeExecutor
	maxBatch int
	logger   primary.Logger
}

// NewSubmitter creates a batch submitter. maxBatch bounds the number of test
// cases accepted in one request.
func NewSubmitter(executor secondary.CodeExecutor, maxBatch int, logger primary.Logger) *Submitter {
	return &Submitter{
		executor: executor,
		maxBatch: maxBatch,
		logger:   logger,
	}
}

// Submit validates the request, sends the batch and returns the tokens.
// Submitting is not idempotent: a retry would create duplicate remote jobs,
// so no retry happens here or above (the transport layer owns retries).
func (s *Submitter) Submit(ctx context.Context, req *domain.ExecutionRequest) ([]string, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	entries := make([]secondary.BatchEntry, 0, len(req.StdinCases))
	for _, stdin := range req.StdinCases {
		entries = append(entries, secondary.BatchEntry{
			SourceCode: req.SourceCode,
			LanguageID: req.LanguageID,
			Stdin:      stdin,
		})
	}

	tokens, err := s.executor.SubmitBatch(ctx, entries)
	if err != nil {
		s.logger.Error("Failed to submit batch", "cases", len(entries), "error", err)
		return nil, err
	}

	s.logger.Info("Batch submitted", "cases", len(entries))
	return tokens, nil
}

func (s *Submitter) validate(req *domain.ExecutionRequest) error {
	if len(req.StdinCases) == 0 {
		return fmt.Errorf("%w: no test cases", errs.ErrInvalidRequest)
	}
	if len(req.StdinCases) != len(req.ExpectedOutputs) {
		return fmt.Errorf("%w: %d stdin cases but %d expected outputs",
			errs.ErrInvalidRequest, len(req.StdinCases), len(req.ExpectedOutputs))
	}
	if s.maxBatch > 0 && len(req.StdinCases) > s.maxBatch {
		return fmt.Errorf("%w: batch of %d exceeds limit %d",
			errs.ErrInvalidRequest, len(req.StdinCases), s.maxBatch)
	}
	return nil
}
