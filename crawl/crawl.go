// Package crawl provides the documentation crawling engine. It coordinates
// fetching, link discovery, content extraction, and tree building over a
// breadth-first frontier with a hard page budget.
package crawl

import (
	"context"
	"errors"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Vikramardham/mcplibrary"
	"github.com/Vikramardham/mcplibrary/tree"
)

// Frontier sizing for a single crawl session.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
)

// DefaultMaxPages is the page budget used when Options.MaxPages is not set.
const DefaultMaxPages = 30

// DefaultMaxContentLen caps stored page content, preventing unbounded
// memory and storage growth per page.
const DefaultMaxContentLen = 4000

// Crawler orchestrates crawl sessions. All collaborators are injected;
// the Crawler itself holds no per-session state, so one Crawler may serve
// concurrent sessions for different root URLs.
type Crawler struct {
	Fetcher   mcplibrary.Fetcher
	Links     mcplibrary.LinkExtractor
	Extractor mcplibrary.Extractor

	// Fallbacks are tried in order when the primary extractor errors or
	// returns empty content, ending with the full-body-text pass. Optional.
	Fallbacks []mcplibrary.Extractor

	Converter   mcplibrary.Converter
	Categorizer mcplibrary.Categorizer     // optional; nil forces the enhanced-tree fallback
	Sitemaps    mcplibrary.SitemapService  // optional frontier seeding
	RateLimiter mcplibrary.DomainLimiter   // optional politeness throttle

	RetryDelays   []time.Duration
	MaxContentLen int
}

// Options configures a single crawl session.
type Options struct {
	MaxPages int
	Filter   *mcplibrary.URLFilter
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type  ProgressType
	URL   string
	Count int
	Error error
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressFetched
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawl runs one session: seed the frontier with the root URL, fetch
// breadth-first up to the page budget, then build both trees from the
// resulting page map.
//
// Per-page failures are recorded in the page map and never abort the
// session. The only hard failure is an invalid root URL.
func (c *Crawler) Crawl(ctx context.Context, rootURL string, opts Options, progress ProgressFunc) (*mcplibrary.CrawlResult, error) {
	base, canonical, err := prepareRoot(rootURL)
	if err != nil {
		return nil, err
	}

	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(canonical)
	c.seedFromSitemap(ctx, base, canonical, opts.Filter, frontier)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, URL: canonical})
	}

	pages := mcplibrary.NewPageMap()
	summary := mcplibrary.CrawlSummary{Failures: make(map[mcplibrary.FetchState]int)}

	for pages.Len() < maxPages {
		pageURL, ok := frontier.Pop()
		if !ok {
			break
		}
		if ctx.Err() != nil {
			break
		}

		if c.RateLimiter != nil {
			if err := c.RateLimiter.Wait(ctx, base.Host); err != nil {
				break // context canceled
			}
		}

		rec := c.processPage(ctx, pageURL)
		pages.Add(rec)

		if rec.Status.OK() {
			summary.Fetched++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFetched, URL: pageURL, Count: pages.Len()})
			}
		} else {
			summary.Failed++
			summary.Failures[rec.Status.State]++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, URL: pageURL, Count: pages.Len()})
			}
		}

		for _, link := range rec.Links {
			normalized, ok := mcplibrary.Normalize(base, link)
			if !ok || !opts.Filter.Match(normalized) {
				continue
			}
			frontier.Push(normalized)
		}
	}

	conventional := tree.BuildConventional(pages)
	enhanced, fellBack := tree.BuildEnhanced(ctx, pages, c.Categorizer)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Count: pages.Len()})
	}

	return &mcplibrary.CrawlResult{
		RootURL:          canonical,
		Pages:            pages,
		Conventional:     conventional,
		Enhanced:         enhanced,
		EnhancedFellBack: fellBack,
		Summary:          summary,
	}, nil
}

// processPage fetches one URL and assembles its page record. Failures are
// folded into the record's status, never returned.
func (c *Crawler) processPage(ctx context.Context, pageURL string) *mcplibrary.PageRecord {
	rec := &mcplibrary.PageRecord{URL: pageURL, Status: mcplibrary.FetchStatus{State: mcplibrary.FetchOK}}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	html, err := FetchWithRetryDelays(ctx, pageURL, c.Fetcher.Fetch, delays)
	if err != nil {
		rec.Status = classifyFetchError(err)
		return rec
	}

	if links, err := c.Links.ExtractLinks(html, pageURL); err == nil {
		rec.Links = links.Links
		rec.Images = links.Images
	}

	title, content, ok := c.extractContent(html)
	rec.Title = title
	if rec.Title == "" {
		rec.Title = titleFromPath(pageURL)
	}
	if !ok {
		rec.Status = mcplibrary.FetchStatus{State: mcplibrary.FetchParseErr}
		return rec
	}

	maxLen := c.MaxContentLen
	if maxLen <= 0 {
		maxLen = DefaultMaxContentLen
	}
	rec.Content = mcplibrary.Truncate(content, maxLen)
	return rec
}

// extractContent runs the boilerplate-stripping extractor and, when it
// errors or produces nothing, each fallback in order. An empty result is
// valid; ok is false only when every pass failed outright.
func (c *Crawler) extractContent(html string) (title, content string, ok bool) {
	res, err := c.Extractor.Extract(html)
	for _, fallback := range c.Fallbacks {
		if err == nil && res.ContentHTML != "" {
			break
		}
		fres, ferr := fallback.Extract(html)
		if ferr != nil {
			continue
		}
		if res != nil && fres.Title == "" {
			fres.Title = res.Title
		}
		res, err = fres, nil
	}
	if err != nil || res == nil {
		return "", "", false
	}

	markdown, err := c.Converter.Convert(res.ContentHTML)
	if err != nil {
		return res.Title, "", false
	}
	return res.Title, strings.TrimSpace(markdown), true
}

// seedFromSitemap pushes sitemap-discovered URLs onto the frontier.
// Seeding is best effort: discovery errors leave the root seed in place.
func (c *Crawler) seedFromSitemap(ctx context.Context, base *url.URL, rootURL string, filter *mcplibrary.URLFilter, frontier *Frontier) {
	if c.Sitemaps == nil {
		return
	}
	urls, err := c.Sitemaps.DiscoverURLs(ctx, rootURL, filter)
	if err != nil {
		return
	}
	for _, u := range urls {
		normalized, ok := mcplibrary.Normalize(base, u)
		if !ok || !filter.Match(normalized) {
			continue
		}
		frontier.Push(normalized)
	}
}

// prepareRoot validates the root URL and returns its parsed form plus the
// canonical string that seeds the frontier. A missing scheme defaults to
// https.
func prepareRoot(rawURL string) (*url.URL, string, error) {
	raw := strings.TrimSpace(rawURL)
	if raw != "" && !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	base, err := url.Parse(raw)
	if err != nil || base.Host == "" {
		return nil, "", mcplibrary.Errorf(mcplibrary.EINVALID, "invalid root URL %q", rawURL)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, "", mcplibrary.Errorf(mcplibrary.EINVALID, "unsupported scheme %q", base.Scheme)
	}

	base.Scheme = strings.ToLower(base.Scheme)
	base.Host = strings.ToLower(base.Host)
	base.Fragment = ""
	if base.Path == "" {
		// One canonical form for the root, matching Normalize, so the
		// seed and a discovered link to "/" dedup to the same URL.
		base.Path = "/"
	}
	return base, base.String(), nil
}

// classifyFetchError maps a fetch error to a page fetch status.
func classifyFetchError(err error) mcplibrary.FetchStatus {
	var httpErr *mcplibrary.HTTPError
	if errors.As(err, &httpErr) {
		return mcplibrary.FetchStatus{State: mcplibrary.FetchHTTPError, HTTPCode: httpErr.StatusCode}
	}
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return mcplibrary.FetchStatus{State: mcplibrary.FetchTimeout}
	}
	// Connection refused, DNS failure and friends land here; the crawl
	// treats them like timeouts for summary purposes.
	return mcplibrary.FetchStatus{State: mcplibrary.FetchTimeout}
}

// titleFromPath falls back to the last non-empty path segment when a page
// has no extractable title.
func titleFromPath(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return pageURL
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return u.Host
}
