package tree

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/Vikramardham/mcplibrary"
)

// DefaultMaxResults is the result cap used when RetrieveOptions.MaxResults
// is not set.
const DefaultMaxResults = 5

// Retriever ranks a built tree's pages against a free-text query.
type Retriever struct {
	// Ranker is the external scoring capability. Optional: when absent
	// or failing, a deterministic lexical-overlap heuristic is used so
	// retrieval never hard-fails.
	Ranker mcplibrary.Ranker
}

// RetrieveOptions configures one retrieval call.
type RetrieveOptions struct {
	MaxResults     int
	IncludeContent bool
}

// candidate pairs a page node with its rank tie-breakers.
type candidate struct {
	node  *mcplibrary.TreeNode
	depth int
	order int // discovery order from the page map
	score float64
}

// Retrieve scores all page-bearing nodes in root against the query and
// returns the top results, ordered by relevance. Ties break toward
// shallower tree depth, then earlier discovery.
func (r *Retriever) Retrieve(ctx context.Context, query string, root *mcplibrary.TreeNode, pages *mcplibrary.PageMap, opts RetrieveOptions) ([]mcplibrary.QueryResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, mcplibrary.Errorf(mcplibrary.EINVALID, "query required")
	}
	if root == nil {
		return nil, nil
	}

	candidates := collectCandidates(root, pages)
	if len(candidates) == 0 {
		return nil, nil
	}

	r.score(ctx, query, candidates, pages)

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		if candidates[i].depth != candidates[j].depth {
			return candidates[i].depth < candidates[j].depth
		}
		return candidates[i].order < candidates[j].order
	})

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	results := make([]mcplibrary.QueryResult, 0, len(candidates))
	for _, c := range candidates {
		res := mcplibrary.QueryResult{
			URL:       c.node.URL,
			Title:     c.node.Title,
			Relevance: c.score,
		}
		if opts.IncludeContent {
			res.Content = c.node.Content
			if res.Content == "" {
				if rec, ok := pages.Get(c.node.URL); ok {
					res.Content = rec.Content
				}
			}
		}
		results = append(results, res)
	}
	return results, nil
}

// score fills candidate scores from the ranking capability, falling back
// to lexical overlap when the capability is absent or fails.
func (r *Retriever) score(ctx context.Context, query string, candidates []*candidate, pages *mcplibrary.PageMap) {
	if r.Ranker != nil {
		items := make([]mcplibrary.LinkItem, 0, len(candidates))
		for _, c := range candidates {
			snippet := mcplibrary.Truncate(c.node.Content, snippetLen)
			items = append(items, mcplibrary.LinkItem{URL: c.node.URL, Title: c.node.Title, Snippet: snippet})
		}

		if scored, err := r.Ranker.Rank(ctx, query, items); err == nil {
			byURL := make(map[string]float64, len(scored))
			for _, s := range scored {
				byURL[s.URL] = clamp01(s.Score)
			}
			for _, c := range candidates {
				c.score = byURL[c.node.URL]
			}
			return
		}
	}

	terms := tokenize(query)
	for _, c := range candidates {
		content := c.node.Content
		if content == "" {
			if rec, ok := pages.Get(c.node.URL); ok {
				content = rec.Content
			}
		}
		c.score = lexicalScore(terms, c.node.Title, content)
	}
}

// collectCandidates walks the tree gathering page nodes with their depth
// and discovery order.
func collectCandidates(root *mcplibrary.TreeNode, pages *mcplibrary.PageMap) []*candidate {
	order := make(map[string]int)
	for i, u := range pages.URLs() {
		order[u] = i
	}

	var candidates []*candidate
	root.Walk(func(node *mcplibrary.TreeNode, depth int) bool {
		if node.Kind == mcplibrary.KindPage && node.URL != "" {
			pos, ok := order[node.URL]
			if !ok {
				pos = len(order) + len(candidates)
			}
			candidates = append(candidates, &candidate{node: node, depth: depth, order: pos})
		}
		return true
	})
	return candidates
}

// lexicalScore is the deterministic fallback: the fraction of query terms
// present in the page's title or content.
func lexicalScore(terms []string, title, content string) float64 {
	if len(terms) == 0 {
		return 0
	}
	haystack := strings.ToLower(title + " " + content)
	matched := 0
	for _, term := range terms {
		if strings.Contains(haystack, term) {
			matched++
		}
	}
	return float64(matched) / float64(len(terms))
}

func tokenize(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	var terms []string
	for _, f := range fields {
		if len(f) > 1 {
			terms = append(terms, f)
		}
	}
	return terms
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
