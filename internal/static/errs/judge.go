package errs

import "errors"

// Error classes surfaced by the execution pipeline. Handlers map each to a
// distinct HTTP status so upstream retries can tell "safe to resubmit" from
// "do not resubmit".
var (
	// ErrInvalidRequest marks malformed caller input: empty batch, mismatched
	// stdin/expected lengths, unknown language. Never retried.
	ErrInvalidRequest = errors.New("invalid execution request")

	// ErrServiceUnavailable marks a transport-level failure reaching the
	// execution service.
	ErrServiceUnavailable = errors.New("execution service unavailable")

	// ErrServiceError marks a non-success response from the execution service.
	ErrServiceError = errors.New("execution service returned an error")

	// ErrPollTimeout marks an overall polling deadline exceeded while tokens
	// remained non-terminal.
	ErrPollTimeout = errors.New("timed out waiting for execution results")

	// ErrPersistenceIncomplete marks a verdict that was computed but not fully
	// recorded. Safe to retry persistence, never re-execution.
	ErrPersistenceIncomplete = errors.New("submission persisted partially")

	// ErrInternal marks an unexpected shape from the execution service, such
	// as a mismatched token or result count.
	ErrInternal = errors.New("internal error")
)
