package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "shopcatalog/1.0"
	maxBodyBytes     = 16 << 20
)

// Fetcher retrieves the text body behind a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type FetcherConfig struct {
	Timeout    time.Duration
	UserAgent  string
	HTTPClient httpDoer
}

// HTTPFetcher issues uncached GET requests against the sheet endpoints.
type HTTPFetcher struct {
	userAgent  string
	httpClient httpDoer
	maxBody    int64
}

func NewHTTPFetcher(cfg FetcherConfig) *HTTPFetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	doer := cfg.HTTPClient
	if doer == nil {
		doer = &http.Client{Timeout: timeout}
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &HTTPFetcher{userAgent: userAgent, httpClient: doer, maxBody: maxBodyBytes}
}

// Fetch returns the response body. Request errors and non-2xx statuses are
// reported as ErrTransport.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %w", ErrTransport, err)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: HTTP %d", ErrTransport, resp.StatusCode)
	}
	// Bodies over the limit are rejected, never truncated.
	if int64(len(body)) > f.maxBody {
		return "", fmt.Errorf("%w: body exceeds %d bytes", ErrTransport, f.maxBody)
	}
	return string(body), nil
}
