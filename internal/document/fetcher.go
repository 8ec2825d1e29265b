package document

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

// fetchSleepFunc is the sleep used between retries, replaceable in tests
var fetchSleepFunc = time.Sleep

const maxFetchAttempts = 3

// Fetcher retrieves http(s) lint inputs with a bounded, redirect-limited
// client, honoring robots.txt.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64

	robotsMu sync.RWMutex
	robots   map[string]*robotstxt.RobotsData // per host
}

// NewFetcher creates a Fetcher with the given limits.
func NewFetcher(timeout time.Duration, userAgent string, maxBytes int64) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: userAgent,
		maxBytes:  maxBytes,
		robots:    make(map[string]*robotstxt.RobotsData),
	}
}

// Fetch retrieves the body of rawURL. The fetch is refused when robots.txt
// disallows the path for our user agent.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	allowed, err := f.canFetch(ctx, rawURL)
	if err == nil && !allowed {
		return "", fmt.Errorf("robots.txt disallows fetching %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,text/plain;q=0.8,*/*;q=0.5")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	return lossyDecode(body), nil
}

// FetchWithRetry retries transient failures (5xx, 429, connection errors)
// with exponential backoff. Permanent failures return immediately.
func (f *Fetcher) FetchWithRetry(ctx context.Context, rawURL string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < maxFetchAttempts; attempt++ {
		if attempt > 0 {
			fetchSleepFunc(time.Duration(1<<uint(attempt-1)) * time.Second)
		}

		body, err := f.Fetch(ctx, rawURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !isRetryableFetchError(err) {
			return "", err
		}
	}
	return "", lastErr
}

// isRetryableFetchError reports whether a fetch failure is worth retrying.
func isRetryableFetchError(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	for _, code := range []string{"429", "500", "502", "503", "504"} {
		if strings.Contains(msg, "unexpected status: "+code) {
			return true
		}
	}
	if strings.HasPrefix(msg, "fetch: ") {
		return true
	}
	return false
}

// canFetch checks robots.txt for rawURL. An unreachable robots.txt allows
// the fetch by default.
func (f *Fetcher) canFetch(ctx context.Context, rawURL string) (bool, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false, fmt.Errorf("parse URL: %w", err)
	}

	data, err := f.robotsData(ctx, parsed)
	if err != nil {
		return true, nil
	}
	return data.TestAgent(parsed.Path, f.userAgent), nil
}

// robotsData fetches and caches robots.txt per host.
func (f *Fetcher) robotsData(ctx context.Context, parsed *url.URL) (*robotstxt.RobotsData, error) {
	f.robotsMu.RLock()
	data, ok := f.robots[parsed.Host]
	f.robotsMu.RUnlock()
	if ok {
		return data, nil
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", parsed.Scheme, parsed.Host)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err = robotstxt.FromResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}

	f.robotsMu.Lock()
	f.robots[parsed.Host] = data
	f.robotsMu.Unlock()

	return data, nil
}
