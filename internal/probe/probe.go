// Package probe issues plain HTTP GET requests against the deployed stack:
// a bounded readiness poll for the load balancer endpoint, and a single-shot
// reachability probe for raw instance addresses.
package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Default timing values. ALB target registration is eventually consistent,
// so the poll loop absorbs transient 503s and transport errors instead of
// failing fast.
const (
	DefaultRequestTimeout = 5 * time.Second
	DefaultInterval       = 5 * time.Second
)

// TimeoutError is returned when the poll budget is exhausted without any
// attempt returning HTTP 200. LastErr carries the most recent transport
// error, if one was observed.
type TimeoutError struct {
	URL     string
	Budget  time.Duration
	LastErr error
}

func (e *TimeoutError) Error() string {
	if e.LastErr != nil {
		return fmt.Sprintf("%s not reachable within %s, last error: %v", e.URL, e.Budget, e.LastErr)
	}
	return fmt.Sprintf("%s did not return HTTP 200 within %s", e.URL, e.Budget)
}

func (e *TimeoutError) Unwrap() error {
	return e.LastErr
}

// Prober polls HTTP endpoints with a per-request timeout and a fixed
// interval between attempts.
type Prober struct {
	RequestTimeout time.Duration
	Interval       time.Duration

	client *http.Client
}

// New creates a Prober. Zero durations fall back to the defaults.
func New(requestTimeout, interval time.Duration) *Prober {
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Prober{
		RequestTimeout: requestTimeout,
		Interval:       interval,
		client:         &http.Client{},
	}
}

// WaitForReady polls url until a request returns HTTP 200 or the budget
// elapses. A 200 returns immediately with the response body. Transport
// errors are remembered as the last error and retried; non-200 statuses
// (notably 503 while targets register) are likewise retried. There is no
// fast-fail path.
func (p *Prober) WaitForReady(ctx context.Context, url string, budget time.Duration) (int, string, error) {
	deadline := time.Now().Add(budget)
	var lastErr error

	for time.Now().Before(deadline) {
		status, body, err := p.get(ctx, url)
		if err != nil {
			lastErr = err
		} else if status == http.StatusOK {
			return status, body, nil
		}

		select {
		case <-ctx.Done():
			return 0, "", ctx.Err()
		case <-time.After(p.Interval):
		}
	}

	return 0, "", &TimeoutError{URL: url, Budget: budget, LastErr: lastErr}
}

// Reachable issues a single GET with the given timeout and reports whether
// the endpoint answered HTTP 200. Connection failures and timeouts count as
// not reachable.
func (p *Prober) Reachable(ctx context.Context, url string, timeout time.Duration) bool {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK
}

func (p *Prober) get(ctx context.Context, url string) (int, string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, p.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return 0, "", err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", err
	}

	return resp.StatusCode, string(body), nil
}
