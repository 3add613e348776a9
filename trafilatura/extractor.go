// Package trafilatura implements freshrag.ContentExtractor using
// go-trafilatura. The probe command uses it to show what the documentation
// page actually contains when endpoint extraction comes up short.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/freshrag"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements freshrag.ContentExtractor at compile time.
var _ freshrag.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to pull the main content out of a page,
// dropping navigation, footers, and other boilerplate.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*freshrag.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, freshrag.Errorf(freshrag.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &freshrag.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
