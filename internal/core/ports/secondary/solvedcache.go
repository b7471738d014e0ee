package secondary

import "context"

// SolvedCache is a best-effort cache of the solved relation. It is warmed
// after an accepted verdict is recorded; the relational store stays the
// source of truth, so cache failures are logged and ignored.
type SolvedCache interface {
	// AddSolved marks a problem solved for a user.
	AddSolved(ctx context.Context, userID, problemID string) error

	// IsSolved reports whether the cache knows the problem as solved. The
	// second return is false on a cache miss for the user.
	IsSolved(ctx context.Context, userID, problemID string) (bool, bool, error)
}
