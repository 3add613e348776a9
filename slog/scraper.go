// Package slog provides logging decorators for the scrape and retrieval
// paths using the standard structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/freshrag"
)

// Ensure LoggingScraper implements freshrag.Scraper.
var _ freshrag.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with timing and outcome logging.
type LoggingScraper struct {
	next   freshrag.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next freshrag.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the result.
func (s *LoggingScraper) Scrape(ctx context.Context) (*freshrag.Documentation, error) {
	begin := time.Now()

	docs, err := s.next.Scrape(ctx)
	if err != nil {
		s.logger.Error("scrape failed",
			"error", freshrag.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}

	s.logger.Info("scrape complete",
		"endpoints", len(docs.Endpoints),
		"duration", time.Since(begin),
	)
	return docs, nil
}
