package submission

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Ayanroy004/Leet-lab/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type fakeRepo struct {
	solved        bool
	solvedErr     error
	isSolvedCalls int
}

func (r *fakeRepo) CreateSubmission(ctx context.Context, sub *domain.Submission) error { return nil }

func (r *fakeRepo) SaveTestCaseVerdicts(ctx context.Context, id uuid.UUID, verdicts []domain.TestCaseVerdict) error {
	return nil
}

func (r *fakeRepo) MarkSolved(ctx context.Context, userID, problemID string) error { return nil }

func (r *fakeRepo) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	return nil, nil
}

func (r *fakeRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Submission, error) {
	return nil, nil
}

func (r *fakeRepo) ListByUserAndProblem(ctx context.Context, userID, problemID string) ([]*domain.Submission, error) {
	return nil, nil
}

func (r *fakeRepo) CountByUserAndProblem(ctx context.Context, userID, problemID string) (int64, error) {
	return 0, nil
}

func (r *fakeRepo) IsSolved(ctx context.Context, userID, problemID string) (bool, error) {
	r.isSolvedCalls++
	return r.solved, r.solvedErr
}

type fakeCache struct {
	solved   bool
	cached   bool
	err      error
	addCalls int
}

func (c *fakeCache) AddSolved(ctx context.Context, userID, problemID string) error {
	c.addCalls++
	return nil
}

func (c *fakeCache) IsSolved(ctx context.Context, userID, problemID string) (bool, bool, error) {
	return c.solved, c.cached, c.err
}

func TestIsSolvedAnswersFromWarmCache(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{solved: true}
	cache := &fakeCache{solved: true, cached: true}
	svc := NewSubmissionService(repo, cache, nopLogger{})

	solved, err := svc.IsSolved(context.Background(), "user-1", "problem-1")
	if err != nil || !solved {
		t.Fatalf("expected solved from cache, got %v %v", solved, err)
	}
	if repo.isSolvedCalls != 0 {
		t.Fatalf("warm cache hit must not touch the database")
	}
}

func TestIsSolvedFallsBackToDatabaseOnColdCache(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{solved: true}
	cache := &fakeCache{cached: false}
	svc := NewSubmissionService(repo, cache, nopLogger{})

	solved, err := svc.IsSolved(context.Background(), "user-1", "problem-1")
	if err != nil || !solved {
		t.Fatalf("expected solved from database, got %v %v", solved, err)
	}
	if repo.isSolvedCalls != 1 {
		t.Fatalf("cold cache must hit the database once, got %d", repo.isSolvedCalls)
	}
	if cache.addCalls != 1 {
		t.Fatalf("database hit must warm the cache, got %d warms", cache.addCalls)
	}
}

func TestIsSolvedDegradesOnCacheError(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{solved: false}
	cache := &fakeCache{err: errors.New("redis down")}
	svc := NewSubmissionService(repo, cache, nopLogger{})

	solved, err := svc.IsSolved(context.Background(), "user-1", "problem-1")
	if err != nil {
		t.Fatalf("cache errors must not surface: %v", err)
	}
	if solved {
		t.Fatalf("expected unsolved from database")
	}
	if cache.addCalls != 0 {
		t.Fatalf("unsolved result must not warm the cache")
	}
}

func TestIsSolvedSurfacesDatabaseError(t *testing.T) {
	t.Parallel()
	repoErr := errors.New("connection reset")
	repo := &fakeRepo{solvedErr: repoErr}
	svc := NewSubmissionService(repo, nil, nopLogger{})

	_, err := svc.IsSolved(context.Background(), "user-1", "problem-1")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}
