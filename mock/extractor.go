package mock

import "github.com/fwojciec/freshrag"

var _ freshrag.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of freshrag.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]*freshrag.Endpoint, error)
}

func (e *Extractor) Extract(html string) ([]*freshrag.Endpoint, error) {
	return e.ExtractFn(html)
}

var _ freshrag.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of freshrag.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*freshrag.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*freshrag.ExtractResult, error) {
	return e.ExtractFn(html)
}
