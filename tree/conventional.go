// Package tree builds hierarchical representations of a crawled site from
// its flat page map: a conventional tree derived from URL path segments and
// an enhanced tree derived from LLM categorization, plus the retrieval
// layer that ranks tree pages against a query.
package tree

import (
	"net/url"
	"strings"

	"github.com/Vikramardham/mcplibrary"
)

// homeKey is the node key for pages whose URL path is empty (the site root).
const homeKey = "home"

// BuildConventional converts the page map into a path-segment hierarchy.
// It is a pure function of the map: sibling order follows first-discovery
// order, so the same map always produces an identical tree.
//
// Depth is capped at mcplibrary.MaxTreeDepth. Pages with deeper paths
// attach at depth 3 keyed by their remaining path, dropping the finer
// distinctions. Failed fetches carry no content and are left out.
func BuildConventional(pages *mcplibrary.PageMap) *mcplibrary.TreeNode {
	root := mcplibrary.NewCategoryNode("root", "Website Structure")

	for _, rec := range pages.Records() {
		if !rec.Status.OK() {
			continue
		}
		segments := pathSegments(rec.URL)

		// All but the last segment become categories, bounded so the
		// page itself lands at depth MaxTreeDepth or shallower.
		catCount := len(segments) - 1
		if catCount > mcplibrary.MaxTreeDepth-1 {
			catCount = mcplibrary.MaxTreeDepth - 1
		}

		parent := root
		for _, seg := range segments[:catCount] {
			parent = parent.AddChild(mcplibrary.NewCategoryNode(seg, humanize(seg)))
		}

		pageKey := strings.Join(segments[catCount:], "/")
		attachPage(parent, pageKey, rec)
	}

	return root
}

// attachPage adds rec as a page node under parent, or upgrades an existing
// category node in place when the URL is also a path prefix (e.g. /docs/
// above /docs/api).
func attachPage(parent *mcplibrary.TreeNode, key string, rec *mcplibrary.PageRecord) {
	node := parent.AddChild(&mcplibrary.TreeNode{Kind: mcplibrary.KindPage, Key: key})
	node.Kind = mcplibrary.KindPage
	if node.URL == "" {
		node.URL = rec.URL
		node.Title = rec.Title
		node.Content = rec.Content
		node.Images = rec.Images
	}
}

// pathSegments splits a URL path into its non-empty segments. An empty
// path maps to the home key.
func pathSegments(rawURL string) []string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return []string{homeKey}
	}

	var segments []string
	for _, seg := range strings.Split(strings.Trim(u.Path, "/"), "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) == 0 {
		return []string{homeKey}
	}
	return segments
}

// humanize turns a path segment into a display title.
func humanize(segment string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(segment)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
