package execution

import (
	"context"
	"fmt"
	"time"

	"github.com/Ayanroy004/Leet-lab/internal/config"
	"github.com/Ayanroy004/Leet-lab/internal/core/ports/primary"
	"github.com/Ayanroy004/Leet-lab/internal/core/ports/secondary"
	"github.com/Ayanroy004/Leet-lab/internal/domain"
)

// Poller repeatedly fetches batch status until every token reaches a
// terminal state, the overall deadline elapses, or the context is cancelled.
// Results are always returned in input token order, so callers can zip them
// positionally against the original request.
type Poller struct {
	executor secondary.CodeExecutor
	interval time.Duration
	deadline time.Duration
	logger   primary.Logger
}

// NewPoller creates a result poller from the execution configuration.
func NewPoller(executor secondary.CodeExecutor, cfg *config.ExecutionCfg, logger primary.Logger) *Poller {
	return &Poller{
		executor: executor,
		interval: cfg.PollInterval,
		deadline: cfg.PollDeadline,
		logger:   logger,
	}
}

// WaitForResults blocks until all tokens settle. On deadline it returns a
// *PollTimeoutError carrying the last observed partial results rather than
// looping forever.
func (p *Poller) WaitForResults(ctx context.Context, tokens []string) ([]domain.ExecutionResult, error) {
	deadline := time.Now().Add(p.deadline)

	for {
		results, err := p.executor.FetchStatus(ctx, tokens)
		if err != nil {
			return nil, err
		}

		if allSettled(results) {
			return results, nil
		}

		if !time.Now().Before(deadline) {
			p.logger.Warn("Polling deadline exceeded", "tokens", len(tokens))
			return nil, &PollTimeoutError{Partial: results}
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("polling cancelled: %w", ctx.Err())
		case <-time.After(p.interval):
		}
	}
}

func allSettled(results []domain.ExecutionResult) bool {
	for _, result := range results {
		if !result.Status.Terminal() {
			return false
		}
	}
	return true
}
