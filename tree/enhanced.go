package tree

import (
	"context"
	"net/url"
	"strings"

	"github.com/Vikramardham/mcplibrary"
)

// snippetLen bounds the content excerpt sent to the categorization
// capability per page.
const snippetLen = 200

// uncategorizedKey collects pages the capability did not place, so every
// crawled page stays reachable from the enhanced tree.
const uncategorizedKey = "uncategorized"

// BuildEnhanced asks the categorization capability to group the crawled
// pages into a labeled hierarchy, capped at mcplibrary.MaxTreeDepth.
//
// The capability is best effort: when it is absent, errors, or returns a
// structure no page can be placed from, the conventional tree is returned
// instead and fellBack is true. The enhanced tree is never absent.
func BuildEnhanced(ctx context.Context, pages *mcplibrary.PageMap, categorizer mcplibrary.Categorizer) (root *mcplibrary.TreeNode, fellBack bool) {
	items, baseURL := categorizeItems(pages)
	if categorizer == nil || len(items) == 0 {
		return BuildConventional(pages), true
	}

	groups, err := categorizer.Categorize(ctx, baseURL, items)
	if err != nil || len(groups) == 0 {
		return BuildConventional(pages), true
	}

	root = mcplibrary.NewCategoryNode("root", "Enhanced Structure")
	placed := make(map[string]bool)

	for _, group := range groups {
		addGroup(root, group, 1, pages, placed)
	}

	if len(placed) == 0 {
		// The response parsed but referenced none of our pages.
		return BuildConventional(pages), true
	}

	// Pages the capability skipped go into a trailing bucket, in
	// discovery order.
	var leftovers *mcplibrary.TreeNode
	for _, rec := range pages.Records() {
		if !rec.Status.OK() || placed[rec.URL] {
			continue
		}
		if leftovers == nil {
			leftovers = root.AddChild(mcplibrary.NewCategoryNode(uncategorizedKey, "Uncategorized"))
		}
		addPageNode(leftovers, rec)
	}

	return root, false
}

// addGroup adds one category group at the given depth. Categories deeper
// than MaxTreeDepth-1 are flattened: their pages attach to the deepest
// allowed ancestor instead.
func addGroup(parent *mcplibrary.TreeNode, group mcplibrary.CategoryGroup, depth int, pages *mcplibrary.PageMap, placed map[string]bool) {
	name := strings.TrimSpace(group.Name)
	if name == "" {
		return
	}

	node := parent
	if depth <= mcplibrary.MaxTreeDepth-1 {
		node = parent.AddChild(mcplibrary.NewCategoryNode(slugify(name), name))
	}

	for _, u := range group.URLs {
		rec, ok := pages.Get(u)
		if !ok || !rec.Status.OK() || placed[u] {
			continue
		}
		addPageNode(node, rec)
		placed[u] = true
	}

	for _, sub := range group.Subcategories {
		addGroup(node, sub, depth+1, pages, placed)
	}
}

// addPageNode attaches a page leaf keyed by its URL path, which is unique
// within a crawl host.
func addPageNode(parent *mcplibrary.TreeNode, rec *mcplibrary.PageRecord) {
	parent.AddChild(&mcplibrary.TreeNode{
		Kind:    mcplibrary.KindPage,
		Key:     pageKey(rec.URL),
		URL:     rec.URL,
		Title:   rec.Title,
		Content: rec.Content,
		Images:  rec.Images,
	})
}

// categorizeItems builds the (url, title, snippet) tuples sent to the
// capability, in discovery order. Failed fetches are excluded.
func categorizeItems(pages *mcplibrary.PageMap) ([]mcplibrary.LinkItem, string) {
	var items []mcplibrary.LinkItem
	baseURL := ""
	for _, rec := range pages.Records() {
		if !rec.Status.OK() {
			continue
		}
		if baseURL == "" {
			baseURL = rec.URL
		}
		snippet := mcplibrary.Truncate(rec.Content, snippetLen)
		items = append(items, mcplibrary.LinkItem{URL: rec.URL, Title: rec.Title, Snippet: snippet})
	}
	return items, baseURL
}

func pageKey(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	path := strings.Trim(u.Path, "/")
	if path == "" {
		return homeKey
	}
	return path
}

// slugify turns a category label into a stable node key.
func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.NewReplacer(" ", "-", "_", "-", "/", "-").Replace(s)
	return s
}
