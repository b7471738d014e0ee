package submission

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Ayanroy004/Leet-lab/internal/core/ports/primary"
	"github.com/Ayanroy004/Leet-lab/internal/core/ports/secondary"
	"github.com/Ayanroy004/Leet-lab/internal/domain"
)

var _ ISubmissionService = (*SubmissionService)(nil)

// SubmissionService implements submission listing over the repository, with
// the solved cache consulted first for solved lookups.
type SubmissionService struct {
	repo        secondary.SubmissionRepository
	solvedCache secondary.SolvedCache
	logger      primary.Logger
}

// NewSubmissionService creates a new submission listing service. solvedCache
// may be nil.
func NewSubmissionService(repo secondary.SubmissionRepository, solvedCache secondary.SolvedCache, logger primary.Logger) *SubmissionService {
	return &SubmissionService{
		repo:        repo,
		solvedCache: solvedCache,
		logger:      logger,
	}
}

// GetSubmission retrieves one submission with its verdicts, or nil.
func (s *SubmissionService) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	sub, err := s.repo.GetSubmission(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return sub, nil
}

// ListForUser retrieves all submissions of a user, newest first.
func (s *SubmissionService) ListForUser(ctx context.Context, userID string) ([]*domain.Submission, error) {
	subs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return subs, nil
}

// ListForProblem retrieves a user's submissions for one problem.
func (s *SubmissionService) ListForProblem(ctx context.Context, userID, problemID string) ([]*domain.Submission, error) {
	subs, err := s.repo.ListByUserAndProblem(ctx, userID, problemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions for problem: %w", err)
	}
	return subs, nil
}

// CountForProblem counts a user's submissions for one problem.
func (s *SubmissionService) CountForProblem(ctx context.Context, userID, problemID string) (int64, error) {
	count, err := s.repo.CountByUserAndProblem(ctx, userID, problemID)
	if err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	return count, nil
}

// IsSolved answers from the cache when the user's solved set is warm, and
// falls back to the database otherwise. Cache errors degrade to a database
// lookup.
func (s *SubmissionService) IsSolved(ctx context.Context, userID, problemID string) (bool, error) {
	if s.solvedCache != nil {
		solved, cached, err := s.solvedCache.IsSolved(ctx, userID, problemID)
		if err != nil {
			s.logger.Warn("Solved cache lookup failed", "userId", userID, "error", err)
		} else if cached && solved {
			return true, nil
		}
	}

	solved, err := s.repo.IsSolved(ctx, userID, problemID)
	if err != nil {
		return false, fmt.Errorf("failed to check solved relation: %w", err)
	}

	if solved && s.solvedCache != nil {
		if err := s.solvedCache.AddSolved(ctx, userID, problemID); err != nil {
			s.logger.Warn("Failed to warm solved cache", "userId", userID, "error", err)
		}
	}

	return solved, nil
}
