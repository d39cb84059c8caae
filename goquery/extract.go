// Package goquery provides CSS-selector based HTML processing: outbound
// link and image discovery, and a full-body-text content extractor used as
// the fallback when boilerplate stripping comes up empty.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/Vikramardham/mcplibrary"
)

var _ mcplibrary.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor discovers anchor hrefs and image srcs in raw HTML.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks parses HTML and returns absolute outbound link and image
// URLs in document order, deduplicated, with fragments stripped. Scope
// filtering (same-origin, include/exclude) is the caller's concern.
//
// Malformed HTML is tolerated: the parser recovers what it can and partial
// extraction is a valid result.
func (e *LinkExtractor) ExtractLinks(html string, baseURL string) (*mcplibrary.PageLinks, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, mcplibrary.Errorf(mcplibrary.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, mcplibrary.Errorf(mcplibrary.EINVALID, "failed to parse HTML: %v", err)
	}

	links := &mcplibrary.PageLinks{}
	seenLinks := make(map[string]bool)
	seenImages := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" || isNonHTTPLink(href) {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" || seenLinks[resolved] {
			return
		}
		seenLinks[resolved] = true
		links.Links = append(links.Links, resolved)
	})

	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		src, exists := sel.Attr("src")
		if !exists || src == "" || isNonHTTPLink(src) {
			return
		}
		resolved := resolveURL(base, src)
		if resolved == "" || seenImages[resolved] {
			return
		}
		seenImages[resolved] = true
		links.Images = append(links.Images, resolved)
	})

	return links, nil
}

// resolveURL resolves a relative URL against a base URL, stripping the
// fragment. Returns empty string when the href cannot be parsed or is
// self-referential (anchor-only link back to the base page).
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
