package rag

import (
	"fmt"
	"strings"

	"github.com/fwojciec/freshrag"
)

// NoMatchContext is returned in place of a context block when no endpoint
// is relevant to the query.
const NoMatchContext = "No relevant endpoints found."

// FormatContext renders ranked matches into the grounding context handed
// to the language model, along with the top match score. Empty input
// yields (NoMatchContext, 0).
func FormatContext(matches []freshrag.Match) (string, float32) {
	if len(matches) == 0 {
		return NoMatchContext, 0
	}
	if len(matches) > DefaultLimit {
		matches = matches[:DefaultLimit]
	}

	var b strings.Builder
	for _, m := range matches {
		e := m.Endpoint
		fmt.Fprintf(&b, "[Relevance: %.2f] ", m.Score)
		fmt.Fprintf(&b, "Endpoint: %s (%s)\n", e.DisplayName(), e.Method)
		fmt.Fprintf(&b, "Description: %s\n", e.Description)
		fmt.Fprintf(&b, "Path: %s\n", e.Path)

		if len(e.Parameters) > 0 {
			b.WriteString("Parameters:\n")
			for _, p := range e.Parameters {
				fmt.Fprintf(&b, "  - %s (%s)", p.Name, p.Type)
				if p.Required {
					b.WriteString(" [Required]")
				}
				fmt.Fprintf(&b, ": %s\n", p.Description)
			}
		}

		if e.CurlExample != "" {
			fmt.Fprintf(&b, "cURL Example:\n%s\n", e.CurlExample)
		}

		b.WriteString("\n---\n\n")
	}

	return b.String(), matches[0].Score
}
