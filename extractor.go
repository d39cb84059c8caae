package mcplibrary

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title from metadata or the first heading.
	Title string

	// ContentHTML is the main content as clean HTML with boilerplate
	// (nav, footer, sidebar, ads) removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
// Implementations must tolerate malformed HTML; an empty title or content
// is a valid, non-error result.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// PageLinks holds outbound references discovered on a page. URLs are
// absolute with fragments stripped but otherwise unfiltered; scope rules
// are applied by the crawl engine.
type PageLinks struct {
	Links  []string
	Images []string
}

// LinkExtractor discovers anchor and image references in raw HTML.
// The baseURL is used to resolve relative URLs.
type LinkExtractor interface {
	ExtractLinks(html string, baseURL string) (*PageLinks, error)
}

// Converter converts clean HTML to Markdown for storage.
type Converter interface {
	Convert(html string) (string, error)
}
