package mock

import "github.com/Vikramardham/mcplibrary"

var _ mcplibrary.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mcplibrary.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*mcplibrary.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*mcplibrary.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ mcplibrary.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of mcplibrary.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) (*mcplibrary.PageLinks, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) (*mcplibrary.PageLinks, error) {
	return e.ExtractLinksFn(html, baseURL)
}

var _ mcplibrary.Converter = (*Converter)(nil)

// Converter is a mock implementation of mcplibrary.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
