package judge0

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Ayanroy004/Leet-lab/internal/config"
	"github.com/Ayanroy004/Leet-lab/internal/core/ports/primary"
	"github.com/Ayanroy004/Leet-lab/internal/core/ports/secondary"
	"github.com/Ayanroy004/Leet-lab/internal/domain"
	"github.com/Ayanroy004/Leet-lab/internal/static/errs"
)

var _ secondary.CodeExecutor = (*Client)(nil)

// Client implements the CodeExecutor port against a Judge0-compatible API.
// It is a pure protocol adapter: no verdict semantics live here. Transport
// failures are retried with a fixed backoff; everything above this layer
// must not retry, since a repeated submit creates duplicate remote jobs.
type Client struct {
	cfg        *config.Judge0Config
	httpClient *http.Client
	logger     primary.Logger
}

// NewClient creates a Judge0 client from explicit configuration.
func NewClient(cfg *config.Judge0Config, logger primary.Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// SubmitBatch submits one batch of entries and returns the correlation
// tokens in entry order.
func (c *Client) SubmitBatch(ctx context.Context, entries []secondary.BatchEntry) ([]string, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: empty batch", errs.ErrInvalidRequest)
	}

	payload := batchRequest{Submissions: make([]wireSubmission, 0, len(entries))}
	for _, entry := range entries {
		payload.Submissions = append(payload.Submissions, wireSubmission{
			SourceCode:     entry.SourceCode,
			LanguageID:     entry.LanguageID,
			Stdin:          entry.Stdin,
			ExpectedOutput: entry.ExpectedOutput,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal batch request: %w", err)
	}

	endpoint := c.cfg.BaseURL + "/submissions/batch?base64_encoded=false"
	respBody, err := c.do(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}

	var created []tokenResponse
	if err := json.Unmarshal(respBody, &created); err != nil {
		return nil, fmt.Errorf("%w: undecodable batch response: %v", errs.ErrInternal, err)
	}

	if len(created) != len(entries) {
		return nil, fmt.Errorf("%w: submitted %d entries, got %d tokens", errs.ErrInternal, len(entries), len(created))
	}

	tokens := make([]string, 0, len(created))
	for _, item := range created {
		if item.Token == "" {
			return nil, fmt.Errorf("%w: empty token in batch response", errs.ErrInternal)
		}
		tokens = append(tokens, item.Token)
	}

	return tokens, nil
}

// FetchStatus fetches the current state of every token, in token order.
func (c *Client) FetchStatus(ctx context.Context, tokens []string) ([]domain.ExecutionResult, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: no tokens to fetch", errs.ErrInvalidRequest)
	}

	query := url.Values{}
	query.Set("tokens", strings.Join(tokens, ","))
	query.Set("base64_encoded", "false")
	endpoint := c.cfg.BaseURL + "/submissions/batch?" + query.Encode()

	respBody, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var status batchStatusResponse
	if err := json.Unmarshal(respBody, &status); err != nil {
		return nil, fmt.Errorf("%w: undecodable status response: %v", errs.ErrInternal, err)
	}

	if len(status.Submissions) != len(tokens) {
		return nil, fmt.Errorf("%w: requested %d tokens, got %d results", errs.ErrInternal, len(tokens), len(status.Submissions))
	}

	results := make([]domain.ExecutionResult, 0, len(status.Submissions))
	for i, wire := range status.Submissions {
		result := wire.toDomain()
		if result.Token == "" {
			result.Token = tokens[i]
		}
		results = append(results, result)
	}

	return results, nil
}

// do runs one HTTP exchange, retrying transport failures up to MaxRetries
// with a fixed backoff. Non-2xx responses are not retried.
func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Warn("Retrying execution service call",
				"attempt", attempt,
				"endpoint", endpoint,
				"error", lastErr)
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", errs.ErrServiceUnavailable, ctx.Err())
			case <-time.After(c.cfg.RetryBackoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.cfg.APIKey != "" {
			req.Header.Set("X-Auth-Token", c.cfg.APIKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			c.logger.Error("Execution service returned non-success status",
				"status", resp.StatusCode,
				"endpoint", endpoint)
			return nil, fmt.Errorf("%w: status %d", errs.ErrServiceError, resp.StatusCode)
		}

		return respBody, nil
	}

	return nil, fmt.Errorf("%w: %v", errs.ErrServiceUnavailable, lastErr)
}
