// Package api provides the HTTP client for the shadow bidding backend.
//
// All endpoints are read-only GETs returning JSON. Requests carry cookies,
// an optional bearer token, and an X-Request-Id header for backend-side
// correlation.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bidscope-io/bidscope/internal/models"
)

// Handshake retry policy: one initial attempt plus up to 3 retries per poll
// cycle, with a short linear backoff between attempts.
const (
	handshakeRetries = 3
	retryBackoff     = 500 * time.Millisecond
)

// StatusError is returned when the backend responds with a non-2xx status.
type StatusError struct {
	Code     int
	Endpoint string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned HTTP %d for %s", e.Code, e.Endpoint)
}

// Client fetches telemetry from the bidding backend.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAuthToken attaches a bearer token to every request.
func WithAuthToken(token string) Option {
	return func(c *Client) { c.authToken = token }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a backend client. The default HTTP client carries a
// cookie jar so session cookies set by the backend ride along on every poll.
func NewClient(baseURL string, opts ...Option) *Client {
	jar, _ := cookiejar.New(nil)
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Handshake fetches the backend integrity attestation from /system/handshake,
// retrying failed attempts before surfacing the last error.
func (c *Client) Handshake(ctx context.Context) (*models.HandshakeStatus, error) {
	var lastErr error
	for attempt := 0; attempt <= handshakeRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * retryBackoff):
			}
		}

		var hs models.HandshakeStatus
		if err := c.getJSON(ctx, "/system/handshake", &hs); err != nil {
			lastErr = err
			continue
		}
		return &hs, nil
	}
	return nil, lastErr
}

// Keywords fetches up to limit keyword records. A single attempt: the poll
// loop is the retry mechanism for this endpoint.
func (c *Client) Keywords(ctx context.Context, limit int) ([]models.Keyword, error) {
	var resp models.KeywordList
	if err := c.getJSON(ctx, "/keywords?limit="+strconv.Itoa(limit), &resp); err != nil {
		return nil, err
	}
	return resp.Keywords, nil
}

// UnifiedLogs fetches the most recent unified log entries, bounded to limit.
func (c *Client) UnifiedLogs(ctx context.Context, limit int) (int, []models.UnifiedLogEntry, error) {
	var resp models.UnifiedLogResponse
	if err := c.getJSON(ctx, "/shadow/logs/unified?limit="+strconv.Itoa(limit), &resp); err != nil {
		return 0, nil, err
	}
	return resp.Count, resp.Logs, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.New().String())
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, Endpoint: endpoint}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", endpoint, err)
	}
	return nil
}
