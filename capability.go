package mcplibrary

import "context"

// LinkItem is one page summary sent to the categorization capability.
type LinkItem struct {
	URL     string `json:"url"`
	Title   string `json:"title,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}

// CategoryGroup is one labeled group returned by the categorization
// capability. Subcategories nest at most one level below their parent in
// the built tree; anything deeper is flattened by the tree builder.
type CategoryGroup struct {
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	URLs          []string        `json:"urls,omitempty"`
	Subcategories []CategoryGroup `json:"subcategories,omitempty"`
}

// Categorizer groups pages into a semantic hierarchy. It is a best-effort,
// non-deterministic external call: callers must treat any error or
// malformed result as a signal to fall back, never as a hard failure.
type Categorizer interface {
	Categorize(ctx context.Context, baseURL string, items []LinkItem) ([]CategoryGroup, error)
}

// ScoredLink is one relevance-scored candidate from the ranking capability.
type ScoredLink struct {
	URL   string  `json:"url"`
	Score float64 `json:"score"`
}

// Ranker scores candidate pages against a free-text query. Scores are in
// [0, 1]. Like Categorizer, it fails closed: the retrieval layer falls back
// to a deterministic local heuristic when ranking is unavailable.
type Ranker interface {
	Rank(ctx context.Context, query string, candidates []LinkItem) ([]ScoredLink, error)
}
