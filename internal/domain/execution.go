package domain

// ExecutionStatus classifies the state reported by the execution service for
// one remote job.
type ExecutionStatus string

const (
	StatusQueued            ExecutionStatus = "QUEUED"
	StatusRunning           ExecutionStatus = "RUNNING"
	StatusAccepted          ExecutionStatus = "ACCEPTED"
	StatusWrongAnswer       ExecutionStatus = "WRONG_ANSWER"
	StatusCompileError      ExecutionStatus = "COMPILE_ERROR"
	StatusRuntimeError      ExecutionStatus = "RUNTIME_ERROR"
	StatusTimeLimitExceeded ExecutionStatus = "TIME_LIMIT_EXCEEDED"
	StatusUnknown           ExecutionStatus = "UNKNOWN"
)

// Terminal reports whether the remote job will not change further.
func (s ExecutionStatus) Terminal() bool {
	return s != StatusQueued && s != StatusRunning
}

// ExecutionRequest is one validated batch of executions: entry i runs
// SourceCode against StdinCases[i] and is judged against ExpectedOutputs[i].
// Both lists are non-empty and of equal length.
type ExecutionRequest struct {
	SourceCode      string
	LanguageID      int
	StdinCases      []string
	ExpectedOutputs []string
}

// ExecutionResult is the terminal (or last observed) state of one remote job.
type ExecutionResult struct {
	Token         string
	Status        ExecutionStatus
	Stdout        string
	Stderr        string
	CompileOutput string
	TimeMs        int64
	MemoryKb      int64
}
