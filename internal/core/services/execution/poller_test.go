package execution

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Ayanroy004/Leet-lab/internal/config"
	"github.com/Ayanroy004/Leet-lab/internal/domain"
	"github.com/Ayanroy004/Leet-lab/internal/static/errs"
)

func testPollerCfg(interval, deadline time.Duration) *config.ExecutionCfg {
	return &config.ExecutionCfg{
		PollInterval: interval,
		PollDeadline: deadline,
		MaxBatchSize: 20,
	}
}

func TestPollerReturnsOnceAllSettled(t *testing.T) {
	t.Parallel()
	executor := &fakeExecutor{
		rounds: [][]domain.ExecutionResult{
			{
				{Status: domain.StatusQueued},
				{Status: domain.StatusAccepted, Stdout: "7"},
			},
			{
				{Status: domain.StatusRunning},
				{Status: domain.StatusAccepted, Stdout: "7"},
			},
			{
				{Status: domain.StatusAccepted, Stdout: "3"},
				{Status: domain.StatusAccepted, Stdout: "7"},
			},
		},
	}
	poller := NewPoller(executor, testPollerCfg(time.Millisecond, time.Second), nopLogger{})

	results, err := poller.WaitForResults(context.Background(), []string{"token-0", "token-1"})
	if err != nil {
		t.Fatalf("wait failed: %v", err)
	}
	if executor.fetchCalls != 3 {
		t.Fatalf("expected 3 fetch rounds, got %d", executor.fetchCalls)
	}
	if results[0].Stdout != "3" || results[1].Stdout != "7" {
		t.Fatalf("results out of order: %+v", results)
	}
	if results[0].Token != "token-0" || results[1].Token != "token-1" {
		t.Fatalf("tokens out of order: %+v", results)
	}
}

func TestPollerTimesOutWhenNeverSettling(t *testing.T) {
	t.Parallel()
	executor := &fakeExecutor{
		rounds: [][]domain.ExecutionResult{
			{
				{Status: domain.StatusAccepted, Stdout: "3"},
				{Status: domain.StatusQueued},
			},
		},
	}
	poller := NewPoller(executor, testPollerCfg(time.Millisecond, 20*time.Millisecond), nopLogger{})

	start := time.Now()
	_, err := poller.WaitForResults(context.Background(), []string{"token-0", "token-1"})
	elapsed := time.Since(start)

	if !errors.Is(err, errs.ErrPollTimeout) {
		t.Fatalf("expected poll timeout, got %v", err)
	}
	if elapsed > 2*time.Second {
		t.Fatalf("poller did not return in bounded time: %s", elapsed)
	}

	var timeout *PollTimeoutError
	if !errors.As(err, &timeout) {
		t.Fatalf("expected *PollTimeoutError, got %T", err)
	}
	if len(timeout.Partial) != 2 {
		t.Fatalf("expected 2 partial results, got %d", len(timeout.Partial))
	}
	if timeout.Partial[0].Status != domain.StatusAccepted {
		t.Fatalf("partial results should carry the settled case")
	}
}

func TestPollerPropagatesFetchError(t *testing.T) {
	t.Parallel()
	fetchErr := errors.New("boom")
	executor := &fakeExecutor{fetchErr: fetchErr}
	poller := NewPoller(executor, testPollerCfg(time.Millisecond, time.Second), nopLogger{})

	_, err := poller.WaitForResults(context.Background(), []string{"token-0"})
	if !errors.Is(err, fetchErr) {
		t.Fatalf("expected fetch error, got %v", err)
	}
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	t.Parallel()
	executor := &fakeExecutor{
		rounds: [][]domain.ExecutionResult{
			{{Status: domain.StatusQueued}},
		},
	}
	poller := NewPoller(executor, testPollerCfg(50*time.Millisecond, time.Minute), nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := poller.WaitForResults(ctx, []string{"token-0"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}
