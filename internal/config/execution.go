package config

import (
	"os"
	"strconv"
	"time"
)

// ExecutionCfg bounds the orchestrator: how often to poll, how long to wait
// overall, and how many test cases one batch may carry.
type ExecutionCfg struct {
	PollInterval time.Duration
	PollDeadline time.Duration
	MaxBatchSize int
}

func NewExecutionCfg() *ExecutionCfg {
	intervalSec := os.Getenv("EXECUTION_POLL_INTERVAL_SEC")
	deadlineSec := os.Getenv("EXECUTION_POLL_DEADLINE_SEC")
	varInt, err := strconv.Atoi(intervalSec)
	if err != nil {
		varInt = 1
	}
	varInt2, err := strconv.Atoi(deadlineSec)
	if err != nil {
		varInt2 = 120
	}
	batch, err := strconv.Atoi(os.Getenv("EXECUTION_MAX_BATCH_SIZE"))
	if err != nil {
		batch = 20
	}
	return &ExecutionCfg{
		PollInterval: time.Duration(varInt) * time.Second,
		PollDeadline: time.Duration(varInt2) * time.Second,
		MaxBatchSize: batch,
	}
}
