package freshrag

// Match pairs an endpoint with its relevance score for one query.
// Matches are produced per query and never persisted.
type Match struct {
	Endpoint *Endpoint `json:"endpoint"`
	Score    float32   `json:"score"`
}

// RetrievalResult is the per-query output of the retrieval engine: the
// ranked matches (at most five), the formatted grounding context, and a
// confidence estimate in [0.1, 1.0].
type RetrievalResult struct {
	Matches    []Match `json:"matches"`
	Context    string  `json:"context"`
	Confidence float32 `json:"confidence"`
}

// TopScore returns the score of the highest-ranked match, or 0 when there
// are no matches.
func (r *RetrievalResult) TopScore() float32 {
	if len(r.Matches) == 0 {
		return 0
	}
	return r.Matches[0].Score
}

// Retriever answers free-text queries against an immutable Documentation
// snapshot. Implementations are pure functions of the snapshot and the
// query string: deterministic, side-effect free, and safe for concurrent
// use.
type Retriever interface {
	Retrieve(query string) RetrievalResult
}
