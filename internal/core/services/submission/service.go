package submission

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ayanroy004/Leet-lab/internal/domain"
)

// ISubmissionService exposes read access to recorded submissions.
type ISubmissionService interface {
	// GetSubmission retrieves one submission with its verdicts, or nil.
	GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error)

	// ListForUser retrieves all submissions of a user, newest first.
	ListForUser(ctx context.Context, userID string) ([]*domain.Submission, error)

	// ListForProblem retrieves a user's submissions for one problem.
	ListForProblem(ctx context.Context, userID, problemID string) ([]*domain.Submission, error)

	// CountForProblem counts a user's submissions for one problem.
	CountForProblem(ctx context.Context, userID, problemID string) (int64, error)

	// IsSolved reports whether the user has ever passed the problem.
	IsSolved(ctx context.Context, userID, problemID string) (bool, error)
}
