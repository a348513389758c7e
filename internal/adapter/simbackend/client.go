// Package simbackend is a client for the remote impact-simulation backend.
// Replies are mapped into domain.ImpactAnalysis with domain.FromBackendResult
// so callers see the same shape as a local analysis.
package simbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/couchcryptid/impact-sim/internal/domain"
)

// Client calls the simulation backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a backend client. baseURL has no trailing slash.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Simulate validates p locally, posts it to /api/impact/simulate and maps
// the reply.
func (c *Client) Simulate(ctx context.Context, p domain.ImpactParameters) (domain.ImpactAnalysis, error) {
	p = p.WithDefaults()
	if err := p.Validate(); err != nil {
		return domain.ImpactAnalysis{}, err
	}

	body, err := json.Marshal(domain.NewBackendRequest(p))
	if err != nil {
		return domain.ImpactAnalysis{}, fmt.Errorf("encode simulate request: %w", err)
	}

	var result domain.BackendResult
	if err := c.do(ctx, http.MethodPost, "/api/impact/simulate", bytes.NewReader(body), &result); err != nil {
		return domain.ImpactAnalysis{}, err
	}
	return domain.FromBackendResult(result), nil
}

// CheckReadiness reports whether the backend answers its health check.
func (c *Client) CheckReadiness(ctx context.Context) error {
	var status struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/health", nil, &status); err != nil {
		return err
	}
	if status.Status != "" && !strings.EqualFold(status.Status, "ok") && !strings.EqualFold(status.Status, "healthy") {
		return fmt.Errorf("simulation backend status %q", status.Status)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, into any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("simulation backend %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(resp)
		c.logger.Warn("simulation backend error", "path", path, "status", resp.StatusCode, "message", msg)
		return &StatusError{Code: resp.StatusCode, Message: msg}
	}

	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// StatusError is a non-2xx reply from the backend.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("simulation backend: HTTP %d: %s", e.Code, e.Message)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

// errorMessage prefers the backend's {"error"} or {"message"} field and falls
// back to the status text.
func errorMessage(resp *http.Response) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if json.Unmarshal(data, &payload) == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return http.StatusText(resp.StatusCode)
}
