package main

import (
	"fmt"
	"strings"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/freshrag"
)

// Run executes the probe command. It reports how the documentation page is
// structured, which is the first thing to check when extraction returns
// fewer endpoints than expected.
func (c *ProbeCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, deps.SourceURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", freshrag.ErrorMessage(err))
		return err
	}

	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return freshrag.Errorf(freshrag.EINVALID, "parsing HTML from %s: %v", deps.SourceURL, err)
	}

	endpoints, err := deps.Extractor.Extract(html)
	if err != nil {
		endpoints = nil
	}

	fmt.Fprintf(deps.Stdout, "Source: %s\n", deps.SourceURL)
	fmt.Fprintf(deps.Stdout, "HTML size: %d bytes\n", len(html))
	fmt.Fprintf(deps.Stdout, "Title: %s\n", strings.TrimSpace(doc.Find("title").First().Text()))
	fmt.Fprintf(deps.Stdout, "Headings (h2): %d\n", doc.Find("h2").Length())
	fmt.Fprintf(deps.Stdout, "Ticket sections ([id*=ticket]): %d\n", doc.Find(`[id*="ticket"]`).Length())
	fmt.Fprintf(deps.Stdout, "Tickets container (#tickets): %t\n", doc.Find("#tickets").Length() > 0)
	fmt.Fprintf(deps.Stdout, "Code blocks: %d\n", doc.Find(`pre, [class*="highlight"]`).Length())
	fmt.Fprintf(deps.Stdout, "Tables: %d\n", doc.Find("table").Length())
	fmt.Fprintf(deps.Stdout, "Extracted endpoints: %d\n", len(endpoints))
	for _, e := range endpoints {
		fmt.Fprintf(deps.Stdout, "  %s %s  %s\n", e.Method, e.Path, e.DisplayName())
	}

	if !c.Preview {
		return nil
	}

	result, err := deps.ContentExtractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", freshrag.ErrorMessage(err))
		return err
	}
	markdown, err := deps.Converter.Convert(result.ContentHTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", freshrag.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "\n--- Preview: %s ---\n\n%s\n", result.Title, markdown)
	return nil
}
