package crawl

import (
	"context"
	"sync"

	"github.com/Vikramardham/mcplibrary"
	"golang.org/x/sync/errgroup"
)

// DownloadImages fetches image bytes for the given URLs with a bounded
// worker pool. Individual download failures are skipped; the result maps
// successfully fetched URLs to their bytes.
func DownloadImages(ctx context.Context, dl mcplibrary.ImageDownloader, urls []string, concurrency int) map[string][]byte {
	if concurrency <= 0 {
		concurrency = 4
	}

	var mu sync.Mutex
	images := make(map[string][]byte)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, u := range urls {
		g.Go(func() error {
			data, err := dl.Download(gctx, u)
			if err != nil {
				return nil // one bad image never fails the batch
			}
			mu.Lock()
			images[u] = data
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return images
}
