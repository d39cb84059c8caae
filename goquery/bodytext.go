package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/Vikramardham/mcplibrary"
)

var _ mcplibrary.Extractor = (*BodyTextExtractor)(nil)

// BodyTextExtractor is the full-body fallback content extractor. It strips
// script, style, and obvious chrome elements and returns the remaining
// body text. It trades precision for resilience: it produces something
// useful even on pages the boilerplate-stripping extractor rejects.
type BodyTextExtractor struct{}

// NewBodyTextExtractor creates a new BodyTextExtractor.
func NewBodyTextExtractor() *BodyTextExtractor {
	return &BodyTextExtractor{}
}

// strippedSelectors are removed before collecting body text.
const strippedSelectors = "script, style, noscript, nav, header, footer, aside"

// Extract returns the page title and body text as minimal HTML paragraphs.
// An empty title or content is a valid, non-error result.
func (e *BodyTextExtractor) Extract(html string) (*mcplibrary.ExtractResult, error) {
	if html == "" {
		return nil, mcplibrary.Errorf(mcplibrary.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, mcplibrary.Errorf(mcplibrary.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	doc.Find(strippedSelectors).Remove()

	var b strings.Builder
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		for _, line := range strings.Split(sel.Text(), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			b.WriteString("<p>")
			b.WriteString(line)
			b.WriteString("</p>\n")
		}
	})

	return &mcplibrary.ExtractResult{
		Title:       title,
		ContentHTML: strings.TrimSpace(b.String()),
	}, nil
}
