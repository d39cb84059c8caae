package crawl

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Vikramardham/mcplibrary"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s.
// The retry cap is two, so a URL sees at most three attempts.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second}
}

// FetchWithRetryDelays fetches a URL, retrying transient failures with the
// given backoff delays. Permanent failures (4xx other than 429) are
// returned immediately; retrying them would only waste the budget's time.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if isPermanent(err) || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

// isPermanent reports whether retrying the fetch cannot help: any 4xx
// response except 429 Too Many Requests.
func isPermanent(err error) bool {
	var httpErr *mcplibrary.HTTPError
	if !errors.As(err, &httpErr) {
		return false
	}
	if httpErr.StatusCode == http.StatusTooManyRequests {
		return false
	}
	return httpErr.StatusCode >= 400 && httpErr.StatusCode < 500
}
