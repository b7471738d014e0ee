// package submissionrepository contains the PostgreSQL implementation of the
// submission repository.
package submissionrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Ayanroy004/Leet-lab/internal/core/ports/primary"
	"github.com/Ayanroy004/Leet-lab/internal/core/ports/secondary"
	"github.com/Ayanroy004/Leet-lab/internal/domain"
)

var _ secondary.SubmissionRepository = (*SubmissionRepository)(nil)

// SubmissionRepository implements the SubmissionRepository port with PostgreSQL.
type SubmissionRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewSubmissionRepository creates a new PostgreSQL submission repository.
func NewSubmissionRepository(db *sqlx.DB, logger primary.Logger) *SubmissionRepository {
	return &SubmissionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSubmission inserts the submission header.
func (r *SubmissionRepository) CreateSubmission(ctx context.Context, sub *domain.Submission) error {
	query := `
		INSERT INTO submissions (
			id, user_id, problem_id, source_code, language,
			status, total_time_ms, total_memory_kb, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		sub.ID,
		sub.UserID,
		sub.ProblemID,
		sub.SourceCode,
		sub.Language,
		sub.Status,
		sub.TotalTimeMs,
		sub.TotalMemoryKb,
		sub.CreatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to insert submission", "submissionId", sub.ID, "error", err)
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	return nil
}

// SaveTestCaseVerdicts inserts the per-case rows for a submission. Rows that
// already exist for the same (submission, index) are skipped, so a retry
// after a partial failure never duplicates.
func (r *SubmissionRepository) SaveTestCaseVerdicts(ctx context.Context, submissionID uuid.UUID, verdicts []domain.TestCaseVerdict) error {
	query := `
		INSERT INTO submission_test_cases (
			submission_id, case_index, passed, stdout, expected_output,
			stderr, compile_output, time_ms, memory_kb
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (submission_id, case_index) DO NOTHING
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, verdict := range verdicts {
		_, err := tx.ExecContext(
			ctx,
			query,
			submissionID,
			verdict.Index,
			verdict.Passed,
			verdict.Stdout,
			verdict.ExpectedOutput,
			verdict.Stderr,
			verdict.CompileOutput,
			verdict.TimeMs,
			verdict.MemoryKb,
		)
		if err != nil {
			r.logger.Error("Failed to insert test case verdict",
				"submissionId", submissionID,
				"caseIndex", verdict.Index,
				"error", err)
			return fmt.Errorf("failed to insert test case verdict %d: %w", verdict.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit test case verdicts", "submissionId", submissionID, "error", err)
		return fmt.Errorf("failed to commit test case verdicts: %w", err)
	}

	return nil
}

// MarkSolved upserts the solved relation. At most one row exists per
// (user, problem) regardless of how many accepted submissions occur.
func (r *SubmissionRepository) MarkSolved(ctx context.Context, userID, problemID string) error {
	query := `
		INSERT INTO problems_solved (user_id, problem_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, problem_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, userID, problemID)
	if err != nil {
		r.logger.Error("Failed to mark problem solved", "userId", userID, "problemId", problemID, "error", err)
		return fmt.Errorf("failed to mark problem solved: %w", err)
	}

	return nil
}

// GetSubmission retrieves a submission with its verdicts ordered by index.
func (r *SubmissionRepository) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	query := `
		SELECT id, user_id, problem_id, source_code, language,
			   status, total_time_ms, total_memory_kb, created_at
		FROM submissions
		WHERE id = $1
	`

	var sub domain.Submission
	err := r.db.GetContext(ctx, &sub, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get submission", "submissionId", id, "error", err)
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	casesQuery := `
		SELECT case_index, passed, stdout, expected_output,
			   stderr, compile_output, time_ms, memory_kb
		FROM submission_test_cases
		WHERE submission_id = $1
		ORDER BY case_index ASC
	`

	cases := make([]domain.TestCaseVerdict, 0)
	if err := r.db.SelectContext(ctx, &cases, casesQuery, id); err != nil {
		r.logger.Error("Failed to get test case verdicts", "submissionId", id, "error", err)
		return nil, fmt.Errorf("failed to get test case verdicts: %w", err)
	}
	sub.TestCases = cases

	return &sub, nil
}

// ListByUser retrieves all submissions of a user, newest first. Verdict rows
// are not hydrated for listings.
func (r *SubmissionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Submission, error) {
	query := `
		SELECT id, user_id, problem_id, source_code, language,
			   status, total_time_ms, total_memory_kb, created_at
		FROM submissions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	subs := make([]*domain.Submission, 0)
	if err := r.db.SelectContext(ctx, &subs, query, userID); err != nil {
		r.logger.Error("Failed to list submissions", "userId", userID, "error", err)
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	return subs, nil
}

// ListByUserAndProblem retrieves a user's submissions for one problem,
// newest first.
func (r *SubmissionRepository) ListByUserAndProblem(ctx context.Context, userID, problemID string) ([]*domain.Submission, error) {
	query := `
		SELECT id, user_id, problem_id, source_code, language,
			   status, total_time_ms, total_memory_kb, created_at
		FROM submissions
		WHERE user_id = $1 AND problem_id = $2
		ORDER BY created_at DESC
	`

	subs := make([]*domain.Submission, 0)
	if err := r.db.SelectContext(ctx, &subs, query, userID, problemID); err != nil {
		r.logger.Error("Failed to list submissions for problem",
			"userId", userID,
			"problemId", problemID,
			"error", err)
		return nil, fmt.Errorf("failed to list submissions for problem: %w", err)
	}

	return subs, nil
}

// CountByUserAndProblem counts a user's submissions for one problem.
func (r *SubmissionRepository) CountByUserAndProblem(ctx context.Context, userID, problemID string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM submissions
		WHERE user_id = $1 AND problem_id = $2
	`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, userID, problemID); err != nil {
		r.logger.Error("Failed to count submissions",
			"userId", userID,
			"problemId", problemID,
			"error", err)
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}

	return count, nil
}

// IsSolved reports whether the solved relation exists.
func (r *SubmissionRepository) IsSolved(ctx context.Context, userID, problemID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM problems_solved
			WHERE user_id = $1 AND problem_id = $2
		)
	`

	var solved bool
	if err := r.db.GetContext(ctx, &solved, query, userID, problemID); err != nil {
		r.logger.Error("Failed to check solved relation",
			"userId", userID,
			"problemId", problemID,
			"error", err)
		return false, fmt.Errorf("failed to check solved relation: %w", err)
	}

	return solved, nil
}
