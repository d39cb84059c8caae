package main

import (
	"fmt"

	"github.com/Vikramardham/mcplibrary"
	"github.com/Vikramardham/mcplibrary/crawl"
	"github.com/Vikramardham/mcplibrary/fs"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	filter, err := mcplibrary.CompileFilter(c.Include, c.Exclude)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mcplibrary.ErrorMessage(err))
		return err
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Crawling %s\n", event.URL)
		case crawl.ProgressFetched:
			fmt.Fprintf(deps.Stdout, "  [%d] %s\n", event.Count, crawl.TruncateURL(event.URL, 80))
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stdout, "  [%d] %s (failed)\n", event.Count, crawl.TruncateURL(event.URL, 80))
		}
	}

	result, err := deps.Crawler.Crawl(deps.Ctx, c.URL, crawl.Options{
		MaxPages: c.MaxPages,
		Filter:   filter,
	}, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mcplibrary.ErrorMessage(err))
		return err
	}

	if err := deps.Store.SaveResult(deps.Ctx, result); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mcplibrary.ErrorMessage(err))
		return err
	}

	if c.Images {
		if err := c.downloadImages(deps, result); err != nil {
			// Image downloads are an extra; the crawl result is already saved.
			fmt.Fprintf(deps.Stderr, "warning: image download failed: %s\n", mcplibrary.ErrorMessage(err))
		}
	}

	fmt.Fprintf(deps.Stdout, "Crawled %d pages (%d failed)\n", result.Summary.Fetched, result.Summary.Failed)
	for state, count := range result.Summary.Failures {
		fmt.Fprintf(deps.Stdout, "  %s: %d\n", state, count)
	}
	if result.EnhancedFellBack {
		fmt.Fprintln(deps.Stdout, "Enhanced tree fell back to URL-path structure")
	}

	return nil
}

// downloadImages fetches every image referenced by a successfully crawled
// page and saves them alongside the cached result.
func (c *CrawlCmd) downloadImages(deps *Dependencies, result *mcplibrary.CrawlResult) error {
	store, ok := deps.Store.(*fs.Store)
	if !ok {
		return nil
	}

	var urls []string
	seen := make(map[string]bool)
	for _, rec := range result.Pages.Records() {
		if !rec.Status.OK() {
			continue
		}
		for _, u := range rec.Images {
			if !seen[u] {
				seen[u] = true
				urls = append(urls, u)
			}
		}
	}
	if len(urls) == 0 {
		return nil
	}

	images := crawl.DownloadImages(deps.Ctx, deps.Images, urls, 4)
	if err := store.SaveImages(result.RootURL, images); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d of %d images\n", len(images), len(urls))
	return nil
}
