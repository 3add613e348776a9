package rag

import (
	"sort"

	"github.com/fwojciec/freshrag"
)

// Default retrieval bounds.
const (
	// DefaultLimit caps the number of matches returned per query.
	DefaultLimit = 5

	// DefaultThreshold is the "not relevant" cutoff; scores at or below
	// it are dropped.
	DefaultThreshold = 0.1
)

// Ensure Retriever implements freshrag.Retriever at compile time.
var _ freshrag.Retriever = (*Retriever)(nil)

// Retriever ranks the endpoints of a documentation snapshot against
// free-text queries. The snapshot is treated as read-only; a Retriever
// holds no per-query state and is safe for concurrent use.
type Retriever struct {
	docs      *freshrag.Documentation
	weights   Weights
	limit     int
	threshold float32
}

// Option configures a Retriever.
type Option func(*Retriever)

// WithWeights overrides the default scoring weight table.
func WithWeights(w Weights) Option {
	return func(r *Retriever) {
		r.weights = w
	}
}

// WithLimit overrides the maximum number of matches per query.
func WithLimit(n int) Option {
	return func(r *Retriever) {
		r.limit = n
	}
}

// WithThreshold overrides the relevance cutoff.
func WithThreshold(v float32) Option {
	return func(r *Retriever) {
		r.threshold = v
	}
}

// NewRetriever creates a Retriever over the given snapshot.
func NewRetriever(docs *freshrag.Documentation, opts ...Option) *Retriever {
	r := &Retriever{
		docs:      docs,
		weights:   DefaultWeights(),
		limit:     DefaultLimit,
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Retrieve scores every endpoint against the query and returns the ranked
// matches, the formatted context, and a confidence estimate.
func (r *Retriever) Retrieve(query string) freshrag.RetrievalResult {
	matches := r.rank(query)
	context, _ := FormatContext(matches)
	return freshrag.RetrievalResult{
		Matches:    matches,
		Context:    context,
		Confidence: Confidence(query, matches),
	}
}

// rank computes scores for all endpoints, drops scores at or below the
// threshold, sorts descending, and truncates to the limit. Ties keep the
// original discovery order.
func (r *Retriever) rank(query string) []freshrag.Match {
	var matches []freshrag.Match
	for _, e := range r.docs.Endpoints {
		score := r.weights.Score(e, query)
		if score <= r.threshold {
			continue
		}
		matches = append(matches, freshrag.Match{Endpoint: e, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > r.limit {
		matches = matches[:r.limit]
	}
	return matches
}
