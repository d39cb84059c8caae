// Package mock provides hand-written mocks for the domain interfaces.
// Each mock exposes function fields so tests can inject behavior per call.
package mock

import (
	"context"

	"github.com/Vikramardham/mcplibrary"
)

var _ mcplibrary.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of mcplibrary.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ mcplibrary.ImageDownloader = (*ImageDownloader)(nil)

// ImageDownloader is a mock implementation of mcplibrary.ImageDownloader.
type ImageDownloader struct {
	DownloadFn func(ctx context.Context, url string) ([]byte, error)
}

func (d *ImageDownloader) Download(ctx context.Context, url string) ([]byte, error) {
	return d.DownloadFn(ctx, url)
}

var _ mcplibrary.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of mcplibrary.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *mcplibrary.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *mcplibrary.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}

var _ mcplibrary.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of mcplibrary.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
