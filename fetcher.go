package mcplibrary

import (
	"context"
	"fmt"
)

// Fetcher retrieves raw HTML from URLs. One network round trip per call;
// retry policy belongs to the crawl engine, not here.
type Fetcher interface {
	// Fetch performs a GET and returns the response body.
	// The context controls timeout and cancellation. Non-2xx responses
	// are returned as *HTTPError, never swallowed.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// HTTPError reports a non-2xx HTTP response.
type HTTPError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// ImageDownloader retrieves image bytes. Invoked opportunistically once a
// page's image URLs are known; a failed download never fails the page.
type ImageDownloader interface {
	Download(ctx context.Context, url string) ([]byte, error)
}

// SitemapService discovers URLs from a site's sitemap, used to seed the
// crawl frontier. An empty result simply means the crawl starts from the
// root URL alone.
type SitemapService interface {
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// DomainLimiter provides per-domain politeness throttling.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
