// Package wikiapi implements the WikiClient port against an
// Outline-compatible HTTP API: every call is a POST to a named endpoint
// under /api with a JSON parameter object.
package wikiapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/application"
	"inkwell/internal/domain"
	"inkwell/internal/ports"
)

// UserAgent is set at build time.
var UserAgent = "inkwell/dev"

const (
	// maxErrorBody caps how much of a response body ends up in an error
	// message.
	maxErrorBody = 4096

	defaultMaxAttempts = 4
	defaultBackoffBase = 500 * time.Millisecond
	defaultBackoffCap  = 8 * time.Second
)

// Config configures a Client.
type Config struct {
	BaseURL     string
	Token       string
	Timeout     time.Duration
	MaxAttempts int
	BackoffBase time.Duration
	Logger      *slog.Logger
}

// Client issues authenticated calls with bounded retries for transient
// failures. It is safe for concurrent use.
type Client struct {
	baseURL     string
	token       string
	http        *http.Client
	maxAttempts int
	backoffBase time.Duration
	backoffCap  time.Duration
	logger      *slog.Logger
}

var _ ports.WikiClient = (*Client)(nil)

// New creates a Client. An empty base URL is accepted here; the first call
// fails with a configuration error instead of dialing anywhere.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Duration(domain.DefaultTimeoutSeconds) * time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = defaultBackoffBase
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		baseURL:     domain.NormalizeBaseURL(cfg.BaseURL),
		token:       cfg.Token,
		http:        &http.Client{Timeout: cfg.Timeout},
		maxAttempts: cfg.MaxAttempts,
		backoffBase: cfg.BackoffBase,
		backoffCap:  defaultBackoffCap,
		logger:      cfg.Logger,
	}
}

// envelope is the uniform response shape: {data: T, pagination?}.
type envelope struct {
	Data       json.RawMessage    `json:"data"`
	Pagination *domain.Pagination `json:"pagination"`
}

// post calls one logical endpoint and decodes the data field into out.
func (c *Client) post(ctx context.Context, endpoint string, params, out any) (*domain.Pagination, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("base URL is empty: %w", application.ErrNotConfigured)
	}

	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encode %s params: %w", endpoint, err)
	}
	path := "/api/" + endpoint

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			if err := c.sleep(ctx, attempt, lastErr); err != nil {
				return nil, err
			}
		}

		env, reqErr := c.once(ctx, path, body)
		if reqErr == nil {
			if out != nil && len(env.Data) > 0 {
				if err := json.Unmarshal(env.Data, out); err != nil {
					return nil, fmt.Errorf("decode %s response: %w", endpoint, err)
				}
			}
			return env.Pagination, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !retryable(reqErr) {
			return nil, reqErr
		}
		lastErr = reqErr
	}

	return nil, &application.RetryExhaustedError{Attempts: c.maxAttempts, Last: lastErr}
}

// once performs a single HTTP exchange.
func (c *Client) once(ctx context.Context, path string, body []byte) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("X-Request-Id", requestID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.String("error", err.Error()))
		return nil, &transportError{err: fmt.Errorf("request %s: %w", path, err)}
	}
	defer resp.Body.Close()

	c.logger.Debug("request done",
		slog.String("path", path),
		slog.String("request_id", requestID),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody+1))
		reqErr := &application.RequestError{
			Method:  http.MethodPost,
			Path:    path,
			Status:  resp.StatusCode,
			Reason:  http.StatusText(resp.StatusCode),
			Message: extractMessage(raw),
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, &rateLimitedError{RequestError: reqErr, retryAfter: parseRetryAfter(resp)}
		}
		return nil, reqErr
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode %s body: %w", path, err)
	}
	return &env, nil
}

// sleep blocks for the backoff delay before the given attempt, honoring a
// server-provided Retry-After and the context.
func (c *Client) sleep(ctx context.Context, attempt int, lastErr error) error {
	delay := c.backoff(attempt)
	var rl *rateLimitedError
	if errors.As(lastErr, &rl) && rl.retryAfter > delay {
		delay = rl.retryAfter
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff computes the exponential delay with full jitter for attempt n
// (n >= 2; the first attempt never waits).
func (c *Client) backoff(attempt int) time.Duration {
	d := c.backoffBase << (attempt - 2)
	if d > c.backoffCap || d <= 0 {
		d = c.backoffCap
	}
	return time.Duration(rand.Int64N(int64(d))) + d/2
}
