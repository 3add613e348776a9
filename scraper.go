package freshrag

import (
	"context"
	"time"
)

// Fetcher retrieves raw HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content.
type Fetcher interface {
	// Fetch retrieves the page markup for the URL.
	// The context controls timeout and cancellation; this is the only
	// suspension point of the scrape phase.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	Close() error
}

// Extractor extracts endpoint records from raw documentation HTML.
// Extraction is best-effort: elements that cannot be parsed confidently are
// skipped, and an empty slice is a valid result.
type Extractor interface {
	Extract(html string) ([]*Endpoint, error)
}

// Scraper builds a Documentation snapshot.
type Scraper interface {
	Scrape(ctx context.Context) (*Documentation, error)
}

// Ensure DocScraper implements Scraper at compile time.
var _ Scraper = (*DocScraper)(nil)

// DocScraper fetches the source documentation page once and extracts
// endpoint records from it. When extraction yields nothing, the built-in
// fallback catalog is substituted, so a successful fetch always produces a
// non-empty snapshot. Fetch failures are fatal and propagated.
type DocScraper struct {
	Fetcher   Fetcher
	Extractor Extractor

	// SourceURL is the documentation page to fetch.
	SourceURL string

	// BaseURL is recorded on the resulting snapshot.
	BaseURL string
}

// Scrape fetches the source page and returns a Documentation snapshot.
func (s *DocScraper) Scrape(ctx context.Context) (*Documentation, error) {
	html, err := s.Fetcher.Fetch(ctx, s.SourceURL)
	if err != nil {
		return nil, err
	}

	endpoints, err := s.Extractor.Extract(html)
	if err != nil || len(endpoints) == 0 {
		// Extraction as a whole never fails; unrecognized markup falls
		// back to the fixed catalog.
		endpoints = FallbackEndpoints()
	}

	return &Documentation{
		BaseURL:   s.BaseURL,
		Endpoints: endpoints,
		ScrapedAt: time.Now().UTC(),
	}, nil
}
