package mock

import (
	"context"

	"github.com/Vikramardham/mcplibrary"
)

var _ mcplibrary.CrawlStore = (*CrawlStore)(nil)

// CrawlStore is a mock implementation of mcplibrary.CrawlStore.
type CrawlStore struct {
	SaveResultFn   func(ctx context.Context, result *mcplibrary.CrawlResult) error
	LoadResultFn   func(ctx context.Context, rootURL string) (*mcplibrary.CrawlResult, error)
	ListRootsFn    func(ctx context.Context) ([]string, error)
	DeleteResultFn func(ctx context.Context, rootURL string) error
}

func (s *CrawlStore) SaveResult(ctx context.Context, result *mcplibrary.CrawlResult) error {
	return s.SaveResultFn(ctx, result)
}

func (s *CrawlStore) LoadResult(ctx context.Context, rootURL string) (*mcplibrary.CrawlResult, error) {
	return s.LoadResultFn(ctx, rootURL)
}

func (s *CrawlStore) ListRoots(ctx context.Context) ([]string, error) {
	return s.ListRootsFn(ctx)
}

func (s *CrawlStore) DeleteResult(ctx context.Context, rootURL string) error {
	return s.DeleteResultFn(ctx, rootURL)
}
