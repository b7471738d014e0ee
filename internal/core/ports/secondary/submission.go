package secondary

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ayanroy004/Leet-lab/internal/domain"
)

// SubmissionRepository persists submissions, their per-case verdicts and the
// derived solved relation.
type SubmissionRepository interface {
	// CreateSubmission inserts the submission header.
	CreateSubmission(ctx context.Context, sub *domain.Submission) error

	// SaveTestCaseVerdicts inserts the per-case rows for a submission. Safe to
	// retry: rows that already exist for the same submission and index are
	// skipped.
	SaveTestCaseVerdicts(ctx context.Context, submissionID uuid.UUID, verdicts []domain.TestCaseVerdict) error

	// MarkSolved upserts the solved relation for (userID, problemID). A second
	// accepted submission is a no-op.
	MarkSolved(ctx context.Context, userID, problemID string) error

	// GetSubmission retrieves a submission with its verdicts, ordered by case
	// index. Returns nil when not found.
	GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error)

	// ListByUser retrieves all submissions of a user, newest first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Submission, error)

	// ListByUserAndProblem retrieves a user's submissions for one problem,
	// newest first.
	ListByUserAndProblem(ctx context.Context, userID, problemID string) ([]*domain.Submission, error)

	// CountByUserAndProblem counts a user's submissions for one problem.
	CountByUserAndProblem(ctx context.Context, userID, problemID string) (int64, error)

	// IsSolved reports whether a solved relation exists for (userID, problemID).
	IsSolved(ctx context.Context, userID, problemID string) (bool, error)
}
