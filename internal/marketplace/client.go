// Package marketplace carries the request plumbing shared by the seller API
// clients: auth header engines, JSON round-trips and rate limiting.
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"gomarketsync_api/metrics"
	"gomarketsync_api/pkg/logger"
)

const requestTimeout = 20 * time.Second

// HTTPError is a non-2xx answer from a marketplace. The body is kept so the
// operator can see what the platform rejected.
type HTTPError struct {
	Status int
	URL    string
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: unexpected status code %d: %s", e.URL, e.Status, e.Body)
}

type Client struct {
	http    *http.Client
	auth    AuthEngine
	limiter *rate.Limiter
	log     logger.Logger
}

// NewClient builds a client for one marketplace. limiter may be nil when the
// platform imposes no request rate.
func NewClient(auth AuthEngine, limiter *rate.Limiter, log logger.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: requestTimeout},
		auth:    auth,
		limiter: limiter,
		log:     log,
	}
}

// DoJSON runs one JSON request against the marketplace. payload may be nil
// for bodyless requests; out may be nil when the response does not matter.
// Non-2xx answers come back as *HTTPError. No retries.
func (c *Client) DoJSON(ctx context.Context, method, url string, payload, out interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	c.auth.SetAuth(req)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	metrics.RecordRequest(method, req.URL.Host, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &HTTPError{Status: resp.StatusCode, URL: url, Body: string(bytes.TrimSpace(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}
	return nil
}
