package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/freshrag"
)

// Ensure LoggingRetriever implements freshrag.Retriever.
var _ freshrag.Retriever = (*LoggingRetriever)(nil)

// LoggingRetriever wraps a Retriever with debug logging of match counts
// and confidence per query.
type LoggingRetriever struct {
	next   freshrag.Retriever
	logger *slog.Logger
}

// NewLoggingRetriever creates a new LoggingRetriever.
func NewLoggingRetriever(next freshrag.Retriever, logger *slog.Logger) *LoggingRetriever {
	return &LoggingRetriever{next: next, logger: logger}
}

// Retrieve delegates to the wrapped retriever and logs the outcome.
func (r *LoggingRetriever) Retrieve(query string) freshrag.RetrievalResult {
	begin := time.Now()

	result := r.next.Retrieve(query)

	r.logger.Debug("retrieval",
		"query", query,
		"matches", len(result.Matches),
		"topScore", result.TopScore(),
		"confidence", result.Confidence,
		"duration", time.Since(begin),
	)
	return result
}
