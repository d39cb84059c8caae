package mcplibrary

import "context"

// CrawlStore persists crawl results keyed by root URL. It is an injected
// collaborator: the crawl engine itself holds no ambient cache, so two
// concurrent crawls of different roots never interfere.
type CrawlStore interface {
	// SaveResult persists a completed crawl, replacing any previous
	// result for the same root URL.
	SaveResult(ctx context.Context, result *CrawlResult) error

	// LoadResult retrieves a previously saved crawl.
	// Returns ENOTFOUND if no result exists for the root URL.
	LoadResult(ctx context.Context, rootURL string) (*CrawlResult, error)

	// ListRoots returns the root URLs with saved results.
	ListRoots(ctx context.Context) ([]string, error)

	// DeleteResult removes a saved crawl.
	// Returns ENOTFOUND if no result exists for the root URL.
	DeleteResult(ctx context.Context, rootURL string) error
}
