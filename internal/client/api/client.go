// Package api implements the HTTP client for the remote wellness backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	pkgapi "github.com/LucasAlmeida-cmd/vitalog/pkg/api"
)

// DefaultTimeout bounds every request; the backend has no streaming endpoints.
const DefaultTimeout = 30 * time.Second

// Client is the HTTP client for the backend. The bearer token is an explicit
// argument on every call rather than client state, so a sign-out can never
// race an in-flight request into carrying a stale credential.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a new API client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// net/http drops the Authorization header on redirect
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Get performs a GET request and decodes the response into out.
func (c *Client) Get(ctx context.Context, path, token string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, token, nil, out)
}

// Post performs a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path, token string, body, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, token, body, out)
}

// Put performs a PUT request with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path, token string, body, out any) error {
	return c.doRequest(ctx, http.MethodPut, path, token, body, out)
}

// Delete performs a DELETE request. The backend's delete endpoints return no body.
func (c *Client) Delete(ctx context.Context, path, token string) error {
	return c.doRequest(ctx, http.MethodDelete, path, token, nil, nil)
}

func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return &NetworkError{URL: url, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("request completed",
		"method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		httpErr := &HTTPError{Status: resp.StatusCode, Body: string(respBody)}
		var errResp pkgapi.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			httpErr.Message = errResp.Message
		}
		return httpErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
