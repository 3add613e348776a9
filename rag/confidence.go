package rag

import (
	"strings"

	"github.com/fwojciec/freshrag"
)

// Confidence bounds. Retrieval never claims certainty and never drops
// below the floor, even with no matches.
const (
	confidenceFloor   = 0.1
	confidenceCeiling = 1.0
)

// queryVocabulary is the fixed domain vocabulary used to assess how
// API-literate a query is.
var queryVocabulary = []string{
	"api", "endpoint", "method", "curl", "request", "response",
	"ticket", "create", "get", "list", "update", "delete", "view",
	"post", "put", "patch", "fetch", "retrieve",
}

// Confidence combines the best match score with query-quality heuristics
// into a single value in [0.1, 1.0]. An empty match set returns the floor.
func Confidence(query string, matches []freshrag.Match) float32 {
	if len(matches) == 0 {
		return confidenceFloor
	}

	var best float32
	for _, m := range matches {
		if m.Score > best {
			best = m.Score
		}
	}

	confidence := 0.7*best + 0.3*queryQuality(query)
	if confidence < confidenceFloor {
		return confidenceFloor
	}
	if confidence > confidenceCeiling {
		return confidenceCeiling
	}
	return confidence
}

// queryQuality blends a length/specificity bucket with the fraction of the
// domain vocabulary present in the query.
func queryQuality(query string) float32 {
	query = strings.ToLower(query)

	var specificity float32
	switch words := len(strings.Fields(query)); {
	case words >= 4:
		specificity = 0.9
	case words >= 2:
		specificity = 0.6
	default:
		specificity = 0.3
	}

	var hits float32
	for _, term := range queryVocabulary {
		if strings.Contains(query, term) {
			hits++
		}
	}
	vocabulary := hits / 3
	if vocabulary > 1 {
		vocabulary = 1
	}

	return 0.6*specificity + 0.4*vocabulary
}
