package reviews

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetcher pulls the live review payload from the upstream endpoint.
type Fetcher interface {
	Fetch(ctx context.Context) (Snapshot, error)
}

// HTTPFetcher fetches reviews over HTTP with a bounded timeout. The upstream
// gave no timeout contract; an unbounded wait would stall page rendering, so
// every request carries a deadline.
type HTTPFetcher struct {
	url     string
	timeout time.Duration
	client  *http.Client
}

// NewHTTPFetcher builds a fetcher for the given endpoint.
func NewHTTPFetcher(url string, timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPFetcher{
		url:     url,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves and normalizes the upstream payload.
func (f *HTTPFetcher) Fetch(ctx context.Context) (Snapshot, error) {
	if f.url == "" {
		return Snapshot{}, fmt.Errorf("no review upstream configured")
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("building review request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetching reviews: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Snapshot{}, fmt.Errorf("review upstream returned %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading review payload: %w", err)
	}

	return DecodeSnapshot(raw)
}
