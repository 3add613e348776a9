// Package rag implements the lexical retrieval engine: relevance scoring,
// ranking, confidence estimation, and context formatting over an immutable
// documentation snapshot. Everything in this package is a pure function of
// the snapshot and the query string, safe for concurrent use.
package rag

import (
	"strings"

	"github.com/fwojciec/freshrag"
)

// Weights holds the scoring weight table. The values are empirical
// calibration, not learned parameters; Ceiling is a soft normalization
// bound and the final score is clamped to [0, 1] regardless.
type Weights struct {
	NameExact     float32 // full query is a substring of the name
	NameWord      float32 // per query word found in the name
	DescExact     float32 // full query is a substring of the description
	DescWord      float32 // per query word found in the description
	Path          float32 // full query is a substring of the path
	ParamName     float32 // any parameter name contains the query
	ParamDesc     float32 // any parameter description contains the query
	DomainKeyword float32 // query mentions "api" or "freshservice"
	CurlMention   float32 // query mentions "curl" and a curl example exists

	// Verbs rewards agreement between a CRUD verb in the query and the
	// same verb in the endpoint name.
	Verbs map[string]float32

	// Ceiling divides the raw sum before clamping.
	Ceiling float32
}

// DefaultWeights returns the calibrated weight table.
func DefaultWeights() Weights {
	return Weights{
		NameExact:     2.0,
		NameWord:      0.5,
		DescExact:     1.0,
		DescWord:      0.3,
		Path:          0.8,
		ParamName:     0.4,
		ParamDesc:     0.2,
		DomainKeyword: 0.5,
		CurlMention:   1.0,
		Verbs: map[string]float32{
			"create": 0.8,
			"get":    0.6,
			"list":   0.6,
			"update": 0.6,
			"delete": 0.6,
			"view":   0.6,
		},
		Ceiling: 7.0,
	}
}

// Score computes the relevance of an endpoint to a query. The result is
// normalized into [0, 1] and fully deterministic for identical inputs.
func (w Weights) Score(e *freshrag.Endpoint, query string) float32 {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return 0
	}
	words := strings.Fields(query)

	name := strings.ToLower(e.DisplayName())
	desc := strings.ToLower(e.Description)
	path := strings.ToLower(e.Path)

	var score float32

	if strings.Contains(name, query) {
		score += w.NameExact
	}
	for _, word := range words {
		if strings.Contains(name, word) {
			score += w.NameWord
		}
	}

	if strings.Contains(desc, query) {
		score += w.DescExact
	}
	for _, word := range words {
		if strings.Contains(desc, word) {
			score += w.DescWord
		}
	}

	if strings.Contains(path, query) {
		score += w.Path
	}

	var paramName, paramDesc bool
	for _, p := range e.Parameters {
		if strings.Contains(strings.ToLower(p.Name), query) {
			paramName = true
		}
		if strings.Contains(strings.ToLower(p.Description), query) {
			paramDesc = true
		}
	}
	if paramName {
		score += w.ParamName
	}
	if paramDesc {
		score += w.ParamDesc
	}

	if strings.Contains(query, "api") || strings.Contains(query, "freshservice") {
		score += w.DomainKeyword
	}
	if strings.Contains(query, "curl") && e.CurlExample != "" {
		score += w.CurlMention
	}

	for verb, weight := range w.Verbs {
		if strings.Contains(query, verb) && strings.Contains(name, verb) {
			score += weight
		}
	}

	normalized := score / w.Ceiling
	if normalized > 1 {
		return 1
	}
	if normalized < 0 {
		return 0
	}
	return normalized
}
