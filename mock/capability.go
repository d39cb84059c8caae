package mock

import (
	"context"

	"github.com/Vikramardham/mcplibrary"
)

var _ mcplibrary.Categorizer = (*Categorizer)(nil)

// Categorizer is a mock implementation of mcplibrary.Categorizer.
type Categorizer struct {
	CategorizeFn func(ctx context.Context, baseURL string, items []mcplibrary.LinkItem) ([]mcplibrary.CategoryGroup, error)
}

func (c *Categorizer) Categorize(ctx context.Context, baseURL string, items []mcplibrary.LinkItem) ([]mcplibrary.CategoryGroup, error) {
	return c.CategorizeFn(ctx, baseURL, items)
}

var _ mcplibrary.Ranker = (*Ranker)(nil)

// Ranker is a mock implementation of mcplibrary.Ranker.
type Ranker struct {
	RankFn func(ctx context.Context, query string, candidates []mcplibrary.LinkItem) ([]mcplibrary.ScoredLink, error)
}

func (r *Ranker) Rank(ctx context.Context, query string, candidates []mcplibrary.LinkItem) ([]mcplibrary.ScoredLink, error) {
	return r.RankFn(ctx, query, candidates)
}
