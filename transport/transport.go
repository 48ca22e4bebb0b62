// Package transport provides a bounded-concurrency HTTP client for
// fetching and pushing the codec's encoded records between log
// participants, independent of the storage and codec layers.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/http2"
)

// Pool is a bounded HTTP transport shared across fetches to a set of
// origins. It reuses one *http.Client configured for HTTP/2, with a
// semaphore limiting in-flight requests.
type Pool struct {
	client  *http.Client
	tickets chan struct{}
}

// NewPool constructs a Pool allowing at most maxInFlight concurrent
// requests, each bounded by requestTimeout.
func NewPool(maxInFlight int, requestTimeout time.Duration) (*Pool, error) {
	if maxInFlight <= 0 {
		return nil, fmt.Errorf("transport: maxInFlight must be positive, got %d", maxInFlight)
	}

	base := &http.Transport{
		MaxIdleConnsPerHost: maxInFlight,
		IdleConnTimeout:     90 * time.Second,
	}
	if err := http2.ConfigureTransport(base); err != nil {
		return nil, fmt.Errorf("transport: configuring http2: %w", err)
	}

	return &Pool{
		client: &http.Client{
			Transport: base,
			Timeout:   requestTimeout,
		},
		tickets: make(chan struct{}, maxInFlight),
	}, nil
}

// Fetch issues req, bounded by the pool's concurrency limit, and returns
// the response body. The caller's context governs cancellation; the
// pool's own per-request timeout is layered on top via the client.
func (p *Pool) Fetch(ctx context.Context, req *http.Request) ([]byte, error) {
	select {
	case p.tickets <- struct{}{}:
		defer func() { <-p.tickets }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	resp, err := p.client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("transport: fetching %s: %w", req.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transport: %s returned status %d", req.URL, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Push issues a PUT of body to url, bounded by the pool's concurrency
// limit.
func (p *Pool) Push(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, nil)
	if err != nil {
		return fmt.Errorf("transport: building request for %s: %w", url, err)
	}
	req.ContentLength = int64(len(body))
	req.Body = io.NopCloser(bytes.NewReader(body))

	select {
	case p.tickets <- struct{}{}:
		defer func() { <-p.tickets }()
	case <-ctx.Done():
		return ctx.Err()
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("transport: pushing to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("transport: %s returned status %d", url, resp.StatusCode)
	}
	return nil
}
