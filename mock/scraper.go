package mock

import (
	"context"

	"github.com/fwojciec/freshrag"
)

var _ freshrag.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of freshrag.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context) (*freshrag.Documentation, error)
}

func (s *Scraper) Scrape(ctx context.Context) (*freshrag.Documentation, error) {
	return s.ScrapeFn(ctx)
}
