package execution

import (
	"strings"

	"github.com/Ayanroy004/Leet-lab/internal/domain"
)

// evaluation is the outcome of comparing one batch of terminal results
// against the request's expected outputs.
type evaluation struct {
	Verdicts      []domain.TestCaseVerdict
	Status        domain.AggregateStatus
	TotalTimeMs   int64
	TotalMemoryKb int64
}

// evaluate derives one verdict per index. Both sides are trimmed of leading
// and trailing whitespace before comparison; internal whitespace stays
// significant. A case passes only on exact equality of the trimmed strings,
// so a service-reported failure with matching output would still pass here,
// matching the recorded policy of judging text, not status. The aggregate is
// accepted only when every case passed; time and memory are summed across
// cases, deliberately penalizing many slow cases over a single slow one.
func evaluate(req *domain.ExecutionRequest, results []domain.ExecutionResult) evaluation {
	eval := evaluation{
		Verdicts: make([]domain.TestCaseVerdict, 0, len(results)),
		Status:   domain.AggregateAccepted,
	}

	for i, result := range results {
		expected := req.ExpectedOutputs[i]
		passed := strings.TrimSpace(result.Stdout) == strings.TrimSpace(expected)
		if !passed {
			eval.Status = domain.AggregateWrongAnswer
		}

		eval.Verdicts = append(eval.Verdicts, domain.TestCaseVerdict{
			Index:          i,
			Passed:         passed,
			Stdout:         result.Stdout,
			ExpectedOutput: expected,
			Stderr:         result.Stderr,
			CompileOutput:  result.CompileOutput,
			TimeMs:         result.TimeMs,
			MemoryKb:       result.MemoryKb,
		})

		eval.TotalTimeMs += result.TimeMs
		eval.TotalMemoryKb += result.MemoryKb
	}

	return eval
}
