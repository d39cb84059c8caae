// Package readability implements content extraction on top of
// go-readability. It sits between the trafilatura extractor and the
// full-body-text pass in the crawl fallback chain.
package readability

import (
	"strings"

	"github.com/Vikramardham/mcplibrary"
	"github.com/go-shiori/go-readability"
)

var _ mcplibrary.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*mcplibrary.ExtractResult, error) {
	if rawHTML == "" {
		return nil, mcplibrary.Errorf(mcplibrary.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &mcplibrary.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
