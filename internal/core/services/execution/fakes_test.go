package execution

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Ayanroy004/Leet-lab/internal/core/ports/secondary"
	"github.com/Ayanroy004/Leet-lab/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

// fakeExecutor scripts the execution service: SubmitBatch hands out tokens in
// entry order, FetchStatus replays one round per call and repeats the last
// round once the script runs out.
type fakeExecutor struct {
	mu         sync.Mutex
	submitted  [][]secondary.BatchEntry
	submitErr  error
	fetchErr   error
	rounds     [][]domain.ExecutionResult
	fetchCalls int
}

func (f *fakeExecutor) SubmitBatch(ctx context.Context, entries []secondary.BatchEntry) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.submitted = append(f.submitted, entries)
	tokens := make([]string, 0, len(entries))
	for i := range entries {
		tokens = append(tokens, fmt.Sprintf("token-%d", i))
	}
	return tokens, nil
}

func (f *fakeExecutor) FetchStatus(ctx context.Context, tokens []string) ([]domain.ExecutionResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	round := f.fetchCalls
	if round >= len(f.rounds) {
		round = len(f.rounds) - 1
	}
	f.fetchCalls++
	results := make([]domain.ExecutionResult, len(f.rounds[round]))
	copy(results, f.rounds[round])
	for i := range results {
		results[i].Token = tokens[i]
	}
	return results, nil
}

// fakeRepo is an in-memory submission repository with the same idempotency
// semantics as the real one: duplicate verdict rows are skipped and the
// solved relation is upserted.
type fakeRepo struct {
	mu          sync.Mutex
	subs        map[uuid.UUID]*domain.Submission
	cases       map[uuid.UUID]map[int]domain.TestCaseVerdict
	solved      map[string]int
	createErr   error
	verdictsErr error
	solvedErr   error
	getErr      error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		subs:   make(map[uuid.UUID]*domain.Submission),
		cases:  make(map[uuid.UUID]map[int]domain.TestCaseVerdict),
		solved: make(map[string]int),
	}
}

func solvedKey(userID, problemID string) string {
	return userID + "/" + problemID
}

func (r *fakeRepo) CreateSubmission(ctx context.Context, sub *domain.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	header := *sub
	header.TestCases = nil
	r.subs[sub.ID] = &header
	return nil
}

func (r *fakeRepo) SaveTestCaseVerdicts(ctx context.Context, submissionID uuid.UUID, verdicts []domain.TestCaseVerdict) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.verdictsErr != nil {
		return r.verdictsErr
	}
	rows, ok := r.cases[submissionID]
	if !ok {
		rows = make(map[int]domain.TestCaseVerdict)
		r.cases[submissionID] = rows
	}
	for _, verdict := range verdicts {
		if _, exists := rows[verdict.Index]; exists {
			continue
		}
		rows[verdict.Index] = verdict
	}
	return nil
}

func (r *fakeRepo) MarkSolved(ctx context.Context, userID, problemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.solvedErr != nil {
		return r.solvedErr
	}
	key := solvedKey(userID, problemID)
	if _, exists := r.solved[key]; !exists {
		r.solved[key] = 0
	}
	r.solved[key]++
	return nil
}

func (r *fakeRepo) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	sub, ok := r.subs[id]
	if !ok {
		return nil, nil
	}
	hydrated := *sub
	indices := make([]int, 0, len(r.cases[id]))
	for index := range r.cases[id] {
		indices = append(indices, index)
	}
	sort.Ints(indices)
	for _, index := range indices {
		hydrated.TestCases = append(hydrated.TestCases, r.cases[id][index])
	}
	return &hydrated, nil
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
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.solved[solvedKey(userID, problemID)]
	return ok, nil
}

func (r *fakeRepo) solvedRecords(userID, problemID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.solved[solvedKey(userID, problemID)]; !ok {
		return 0
	}
	return 1
}

type fakeCache struct {
	mu     sync.Mutex
	added  []string
	addErr error
}

func (c *fakeCache) AddSolved(ctx context.Context, userID, problemID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.addErr != nil {
		return c.addErr
	}
	c.added = append(c.added, solvedKey(userID, problemID))
	return nil
}

func (c *fakeCache) IsSolved(ctx context.Context, userID, problemID string) (bool, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range c.added {
		if key == solvedKey(userID, problemID) {
			return true, true, nil
		}
	}
	return false, false, nil
}
