package http

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/Vikramardham/mcplibrary"
)

// maxImageBytes caps a single image download at 10 MiB.
const maxImageBytes = 10 << 20

var _ mcplibrary.ImageDownloader = (*ImageDownloader)(nil)

// ImageDownloader retrieves image bytes over HTTP.
type ImageDownloader struct {
	client *http.Client
}

// NewImageDownloader creates an ImageDownloader. If client is nil,
// a client with DefaultFetchTimeout is used.
func NewImageDownloader(client *http.Client) *ImageDownloader {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return &ImageDownloader{client: client}
}

// Download fetches the image at the given URL.
func (d *ImageDownloader) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &mcplibrary.HTTPError{URL: url, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading image body: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, mcplibrary.Errorf(mcplibrary.EINVALID, "image %s exceeds %d byte limit", url, maxImageBytes)
	}

	return data, nil
}
