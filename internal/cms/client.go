// Package cms is the gateway to the content-management backend that owns
// all job-board data. It builds the backend's query strings, performs
// authenticated HTTP calls, and normalizes responses into the canonical
// domain shapes before anything else sees them.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/pkg/logging"
)

// TokenSource resolves the current bearer token at call time. Evict is
// invoked when the backend answers 401 so a dead token is never reused.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
	Evict(ctx context.Context)
}

// APIError is the typed failure for every non-success backend response.
// Message is drawn from the response body when the backend supplies one,
// else the per-operation fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("cms: %s (status %d)", e.Message, e.Status)
}

// IsNotFound reports whether err is a 404 backend response.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 backend response.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *logging.Logger
}

func NewClient(cfg config.CMSConfig, tokens TokenSource, logger *logging.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

// do performs one backend call. A JSON body is sent when body is non-nil;
// the response is decoded into out when out is non-nil. No retries: every
// failure is surfaced to the caller.
func (c *Client) do(ctx context.Context, method, path string, body any, out any, fallback string) error {
	if c == nil || c.http == nil {
		return errors.New("cms: nil client")
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cms: encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("cms: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(ctx, req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cms: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.failure(ctx, resp, path, fallback)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cms: decode response: %w", err)
	}
	return nil
}

// authorize attaches the bearer token when one is present. A missing token
// is not an error; the call proceeds unauthenticated.
func (c *Client) authorize(ctx context.Context, req *http.Request) {
	if c.tokens == nil {
		return
	}
	token, ok := c.tokens.Token(ctx)
	if !ok || token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

func (c *Client) failure(ctx context.Context, resp *http.Response, path, fallback string) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	// A 401 means the stored token is dead; evict it before propagating so
	// subsequent calls do not keep replaying it.
	if resp.StatusCode == http.StatusUnauthorized && c.tokens != nil {
		c.tokens.Evict(ctx)
	}

	msg := errorMessage(raw)
	if msg == "" {
		msg = fallback
	}
	c.logger.Warn("backend call failed", "path", path, "status", resp.StatusCode, "message", msg)
	return &APIError{Status: resp.StatusCode, Message: msg}
}

// errorMessage extracts the human-readable message from a structured error
// body, accepting both {error:{message}} and {message} shapes.
func errorMessage(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Error.Message != "" {
		return body.Error.Message
	}
	return body.Message
}
