package config

import (
	"os"
	"strconv"
	"time"
)

// Judge0Config is the explicit configuration of the execution service client.
// The client never reads process-wide state itself.
type Judge0Config struct {
	BaseURL      string
	APIKey       string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
}

func NewJudge0Config() *Judge0Config {
	baseURL := os.Getenv("JUDGE0_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:2358"
	}
	retries, err := strconv.Atoi(os.Getenv("JUDGE0_MAX_RETRIES"))
	if err != nil {
		retries = 3
	}
	return &Judge0Config{
		BaseURL:      baseURL,
		APIKey:       os.Getenv("JUDGE0_API_KEY"),
		Timeout:      15 * time.Second,
		MaxRetries:   retries,
		RetryBackoff: 500 * time.Millisecond,
	}
}
