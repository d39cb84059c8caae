// Package trafilatura implements boilerplate-stripping content
// extraction on top of go-trafilatura. It is the primary extractor in
// the crawl pipeline; pages it cannot handle fall through to the
// full-body-text extractor.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/Vikramardham/mcplibrary"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ mcplibrary.Extractor = (*Extractor)(nil)

// Extractor extracts the main content of a page, discarding navigation,
// sidebars, and footers.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and the main
// content as HTML. It returns an error when trafilatura finds no
// extractable content at all.
func (e *Extractor) Extract(rawHTML string) (*mcplibrary.ExtractResult, error) {
	if rawHTML == "" {
		return nil, mcplibrary.Errorf(mcplibrary.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &mcplibrary.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
