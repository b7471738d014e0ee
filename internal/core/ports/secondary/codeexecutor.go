package secondary

import (
	"context"

	"github.com/Ayanroy004/Leet-lab/internal/domain"
)

// BatchEntry is one unit of work sent to the execution service. ExpectedOutput
// is only populated on the reference-solution validation path, where the
// service performs the comparison itself; user submissions are compared
// client-side and never send it.
type BatchEntry struct {
	SourceCode     string
	LanguageID     int
	Stdin          string
	ExpectedOutput string
}

// CodeExecutor is the protocol adapter for the external execution service.
// Both operations preserve order: SubmitBatch returns one token per entry in
// entry order, FetchStatus returns one result per token in token order.
type CodeExecutor interface {
	// SubmitBatch submits a batch and returns the correlation tokens.
	SubmitBatch(ctx context.Context, entries []BatchEntry) ([]string, error)

	// FetchStatus fetches the current state of every token.
	FetchStatus(ctx context.Context, tokens []string) ([]domain.ExecutionResult, error)
}
