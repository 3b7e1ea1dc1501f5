package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// Client talks to the connectivity-checker service. Requests carry no
// client-side timeout: the service's configured timeout governs its own
// checks, not our calls to it.
type Client struct {
	base string
	hc   *retryablehttp.Client
	log  zerolog.Logger
}

// New creates a client rooted at base (e.g. "http://localhost:5000/api").
func New(base string, logger zerolog.Logger) *Client {
	hc := retryablehttp.NewClient()
	hc.RetryMax = 2
	hc.Logger = nil
	hc.CheckRetry = retryPolicy
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   hc,
		log:  logger,
	}
}

// retryPolicy retries only when no response was received at all. Once the
// service answered, the response is forwarded as-is, including 4xx/5xx, so
// server-reported error payloads are never swallowed by a retry.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if resp != nil {
		return false, nil
	}
	return err != nil, nil
}

// ListSites returns every monitored site in the order the service stores
// them.
func (c *Client) ListSites(ctx context.Context) ([]Site, error) {
	var out struct {
		Sites []Site `json:"sites"`
	}
	if err := c.do(ctx, http.MethodGet, "/sites", nil, &out); err != nil {
		return nil, err
	}
	return out.Sites, nil
}

// AddSite registers a new URL and returns the URL as the server stored it
// (the server normalizes and validates it).
func (c *Client) AddSite(ctx context.Context, rawURL string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	in := map[string]string{"url": rawURL}
	if err := c.do(ctx, http.MethodPost, "/sites", in, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// RemoveSite deletes a monitored site by URL.
func (c *Client) RemoveSite(ctx context.Context, siteURL string) error {
	return c.do(ctx, http.MethodDelete, "/sites/"+url.PathEscape(siteURL), nil, nil)
}

// CheckAll asks the service to probe every site once, synchronously.
func (c *Client) CheckAll(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/check", nil, nil)
}

// StartMonitor starts the service's continuous monitoring loop.
func (c *Client) StartMonitor(ctx context.Context, interval, timeout int) error {
	in := map[string]int{"interval": interval, "timeout": timeout}
	return c.do(ctx, http.MethodPost, "/monitor/start", in, nil)
}

// StopMonitor stops the continuous monitoring loop.
func (c *Client) StopMonitor(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/monitor/stop", nil, nil)
}

// MonitorStatus reports whether the monitoring loop is currently running.
func (c *Client) MonitorStatus(ctx context.Context) (bool, error) {
	var out MonitorStatus
	if err := c.do(ctx, http.MethodGet, "/monitor/status", nil, &out); err != nil {
		return false, err
	}
	return out.Running, nil
}

// SiteHistory returns up to limit recent checks for a site, newest first.
func (c *Client) SiteHistory(ctx context.Context, siteURL string, limit int) ([]CheckRecord, error) {
	var out struct {
		History []CheckRecord `json:"history"`
	}
	path := fmt.Sprintf("/sites/%s/history?limit=%d", url.PathEscape(siteURL), limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.History, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body any
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = b
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.log.Warn().Err(closeErr).Str("path", path).Msg("failed to close response body")
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var payload struct {
			Error string `json:"error"`
		}
		// A missing or malformed payload just leaves Message empty; the
		// caller substitutes its per-action fallback.
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &Error{StatusCode: resp.StatusCode, Message: payload.Error}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
