package execution

import (
	"context"
	"fmt"

	"github.com/Ayanroy004/Leet-lab/internal/core/ports/primary"
	"github.com/Ayanroy004/Leet-lab/internal/core/ports/secondary"
	"github.com/Ayanroy004/Leet-lab/internal/domain"
	"github.com/Ayanroy004/Leet-lab/internal/static/errs"
)

var _ IExecutionService = (*ExecutionService)(nil)

// ExecutionService orchestrates one submission lifecycle: submit the batch,
// poll until every case settles, evaluate the outputs, record the verdict.
// Each call is independent; the service holds no per-request state, so any
// number of submissions can be judged concurrently.
type ExecutionService struct {
	submitter   *Submitter
	poller      *Poller
	repo        secondary.SubmissionRepository
	solvedCache secondary.SolvedCache
	logger      primary.Logger
}

// NewExecutionService creates a new execution service. solvedCache may be
// nil; the cache is best-effort.
func NewExecutionService(
	submitter *Submitter,
	poller *Poller,
	repo secondary.SubmissionRepository,
	solvedCache secondary.SolvedCache,
	logger primary.Logger,
) *ExecutionService {
	return &ExecutionService{
		submitter:   submitter,
		poller:      poller,
		repo:        repo,
		solvedCache: solvedCache,
		logger:      logger,
	}
}

// Execute judges the command end to end. There is no retry back to the
// submit stage: once polling begins, a failed request must start a fresh
// lifecycle so the remote jobs are never duplicated.
func (s *ExecutionService) Execute(ctx context.Context, cmd ExecuteCommand) (*domain.Submission, error) {
	language, ok := domain.LanguageNameByID(cmd.LanguageID)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported language id %d", errs.ErrInvalidRequest, cmd.LanguageID)
	}

	req := &domain.ExecutionRequest{
		SourceCode:      cmd.SourceCode,
		LanguageID:      cmd.LanguageID,
		StdinCases:      cmd.StdinCases,
		ExpectedOutputs: cmd.ExpectedOutputs,
	}

	tokens, err := s.submitter.Submit(ctx, req)
	if err != nil {
		return nil, err
	}

	results, err := s.poller.WaitForResults(ctx, tokens)
	if err != nil {
		return nil, err
	}

	if len(results) != len(req.ExpectedOutputs) {
		return nil, fmt.Errorf("%w: %d results for %d cases", errs.ErrInternal, len(results), len(req.ExpectedOutputs))
	}

	eval := evaluate(req, results)

	sub := domain.NewSubmission(cmd.UserID, cmd.ProblemID, cmd.SourceCode, language)
	sub.Status = eval.Status
	sub.TotalTimeMs = eval.TotalTimeMs
	sub.TotalMemoryKb = eval.TotalMemoryKb
	sub.TestCases = eval.Verdicts

	if err := s.record(ctx, sub, eval); err != nil {
		return nil, err
	}

	s.logger.Info("Submission recorded",
		"submissionId", sub.ID,
		"userId", sub.UserID,
		"problemId", sub.ProblemID,
		"status", sub.Status)

	hydrated, err := s.repo.GetSubmission(ctx, sub.ID)
	if err != nil || hydrated == nil {
		// The verdict is durable at this point; fall back to the in-memory copy.
		s.logger.Warn("Failed to re-read recorded submission", "submissionId", sub.ID, "error", err)
		return sub, nil
	}

	return hydrated, nil
}

// record persists the verdict as one logical unit: header, per-case rows,
// then the solved upsert. Any failure after the header insert surfaces as
// ErrPersistenceIncomplete so the caller retries persistence, never
// re-execution.
func (s *ExecutionService) record(ctx context.Context, sub *domain.Submission, eval evaluation) error {
	if err := s.repo.CreateSubmission(ctx, sub); err != nil {
		return fmt.Errorf("%w: submission header: %v", errs.ErrPersistenceIncomplete, err)
	}

	if err := s.repo.SaveTestCaseVerdicts(ctx, sub.ID, eval.Verdicts); err != nil {
		return fmt.Errorf("%w: test case verdicts for %s: %v", errs.ErrPersistenceIncomplete, sub.ID, err)
	}

	if eval.Status != domain.AggregateAccepted {
		return nil
	}

	if err := s.repo.MarkSolved(ctx, sub.UserID, sub.ProblemID); err != nil {
		return fmt.Errorf("%w: solved record for %s: %v", errs.ErrPersistenceIncomplete, sub.ID, err)
	}

	if s.solvedCache != nil {
		if err := s.solvedCache.AddSolved(ctx, sub.UserID, sub.ProblemID); err != nil {
			s.logger.Warn("Failed to warm solved cache",
				"userId", sub.UserID,
				"problemId", sub.ProblemID,
				"error", err)
		}
	}

	return nil
}
