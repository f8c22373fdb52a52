package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/errors"
)

// maxErrorBody bounds how much of a failed response is logged.
const maxErrorBody = 512

// Client sends rate-limited requests to one upstream and decodes JSON replies.
// Every failure is returned as *domainerrors.UpstreamError.
type Client struct {
	name      string
	http      *http.Client
	timeout   time.Duration
	limiter   *RateLimiter
	userAgent string
	logger    *slog.Logger
}

// Options configures a Client.
type Options struct {
	// Name identifies the upstream in errors and logs.
	Name      string
	Timeout   time.Duration
	UserAgent string
	// RatePerSecond of zero disables client-side throttling.
	RatePerSecond float64
	Burst         int
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// NewClient builds a Client for one upstream.
func NewClient(opts Options, logger *slog.Logger) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		name:      opts.Name,
		http:      httpClient,
		timeout:   httpClient.Timeout,
		limiter:   NewRateLimiter(opts.RatePerSecond, opts.Burst),
		userAgent: opts.UserAgent,
		logger:    logger.With(slog.String("upstream", opts.Name)),
	}
}

// Name returns the upstream name.
func (c *Client) Name() string {
	return c.name
}

// GetJSON issues GET endpoint?query and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, endpoint string, query url.Values, out any) error {
	reqURL := endpoint
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domainerrors.NewUpstreamError(c.name, 0, errors.Wrap(err, "failed to build request"))
	}

	return c.do(req, out)
}

// PostFormJSON issues a form-encoded POST and decodes the body into out.
func (c *Client) PostFormJSON(ctx context.Context, endpoint string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return domainerrors.NewUpstreamError(c.name, 0, errors.Wrap(err, "failed to build request"))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, out)
}

// PostJSON issues a JSON POST. A nil out discards the reply body.
func (c *Client) PostJSON(ctx context.Context, endpoint string, body any, header http.Header, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return domainerrors.NewUpstreamError(c.name, 0, errors.Wrap(err, "failed to encode request"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return domainerrors.NewUpstreamError(c.name, 0, errors.Wrap(err, "failed to build request"))
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if err := c.wait(req.Context()); err != nil {
		if errors.Is(err, ErrBackoff) {
			return domainerrors.NewUpstreamError(c.name, http.StatusTooManyRequests, err)
		}

		return domainerrors.NewUpstreamError(c.name, 0, errors.Wrap(err, "rate limiter wait aborted"))
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("upstream request failed", slog.String("url", redact(req.URL)), slog.Any("error", err))

		return domainerrors.NewUpstreamError(c.name, 0, errors.WithStack(err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.limiter.RecordRateLimited(resp.Header.Get("Retry-After"))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Error("upstream returned error status",
			slog.String("url", redact(req.URL)),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)

		return domainerrors.NewUpstreamError(c.name, resp.StatusCode, errors.Errorf("unexpected status %d", resp.StatusCode))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
	} else if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode upstream payload", slog.String("url", redact(req.URL)), slog.Any("error", err))

		return domainerrors.NewUpstreamError(c.name, resp.StatusCode, errors.Wrap(err, "malformed response"))
	}

	c.logger.Debug("upstream request completed",
		slog.String("url", redact(req.URL)),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	return nil
}

// wait holds the request for the token bucket no longer than the client timeout.
func (c *Client) wait(ctx context.Context) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	return c.limiter.Wait(ctx)
}

// redact drops credentials from logged URLs.
func redact(u *url.URL) string {
	clone := *u
	query := clone.Query()
	if query.Has("key") {
		query.Set("key", "REDACTED")
		clone.RawQuery = query.Encode()
	}

	return clone.String()
}
