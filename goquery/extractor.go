package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/freshrag"
)

// Ensure Extractor implements freshrag.Extractor at compile time.
var _ freshrag.Extractor = (*Extractor)(nil)

// containerIDs are ids of known grouping containers on the documentation
// page. They wrap many endpoints, so they are never parsed as a single
// endpoint section and never used as an endpoint description.
var containerIDs = map[string]bool{
	"tickets":           true,
	"tickets-panel":     true,
	"ticket_attributes": true,
}

// strategy extracts candidate endpoints from a parsed document. Strategies
// run in priority order; deduplication across strategies happens in
// Extract.
type strategy func(doc *goquery.Document) []*freshrag.Endpoint

// Extractor extracts endpoint records from the Freshservice documentation
// page. It runs an ordered cascade of strategies and deduplicates results
// by (method, path), keeping the first record encountered.
type Extractor struct {
	strategies []strategy
}

// NewExtractor creates a new Extractor with the default strategy cascade:
// ticket sections by id first, then a code-block scan of the main tickets
// container.
func NewExtractor() *Extractor {
	return &Extractor{
		strategies: []strategy{
			extractTicketSections,
			extractTicketCodeBlocks,
		},
	}
}

// Extract parses the page HTML and returns deduplicated endpoint records
// in discovery order. An empty slice is a valid result; the caller decides
// whether to substitute fallback data.
func (e *Extractor) Extract(html string) ([]*freshrag.Endpoint, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, freshrag.Errorf(freshrag.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var endpoints []*freshrag.Endpoint
	for _, extract := range e.strategies {
		for _, ep := range extract(doc) {
			if seen[ep.Key()] {
				continue
			}
			seen[ep.Key()] = true
			endpoints = append(endpoints, ep)
		}
	}

	return endpoints, nil
}

// extractTicketSections parses every element whose id mentions "ticket" as
// an endpoint section, excluding the known grouping containers.
func extractTicketSections(doc *goquery.Document) []*freshrag.Endpoint {
	var endpoints []*freshrag.Endpoint
	doc.Find(`[id*="ticket"]`).Each(func(_ int, sel *goquery.Selection) {
		id, _ := sel.Attr("id")
		if containerIDs[id] {
			return
		}
		if ep := ParseEndpointSection(sel); ep != nil {
			endpoints = append(endpoints, ep)
		}
	})
	return endpoints
}

// extractTicketCodeBlocks scans code blocks inside the main #tickets
// container for curl examples that mention a /tickets path. It recovers
// endpoints whose sections carry no usable id.
func extractTicketCodeBlocks(doc *goquery.Document) []*freshrag.Endpoint {
	main := doc.Find("#tickets").First()
	if main.Length() == 0 {
		return nil
	}

	var endpoints []*freshrag.Endpoint
	main.Find(codeBlockSelector).Each(func(_ int, code *goquery.Selection) {
		text := code.Text()
		if !strings.Contains(text, "curl") || !strings.Contains(text, "/tickets") {
			return
		}

		path, ok := freshrag.ExtractPath(text)
		if !ok || !strings.Contains(path, "/tickets") {
			return
		}
		method := freshrag.ExtractMethod(text)

		desc := ancestorDescription(code)
		if desc == "" {
			desc = describeOperation(method, path)
		}

		endpoints = append(endpoints, &freshrag.Endpoint{
			Name:        desc,
			Description: desc,
			Method:      method,
			Path:        path,
			CurlExample: strings.TrimSpace(text),
		})
	})
	return endpoints
}

// ancestorDescription walks up to five ancestors of a code block looking
// for an identifying id (converted to a title) or an h2 heading. The walk
// stops at a known grouping container: its headings belong to sibling
// endpoints, so nothing at or above it identifies this one. Returns an
// empty string when no identifying ancestor is found.
func ancestorDescription(sel *goquery.Selection) string {
	node := sel.Parent()
	for i := 0; i < 5 && node.Length() > 0; i++ {
		if id, ok := node.Attr("id"); ok && id != "" {
			if containerIDs[id] {
				return ""
			}
			return titleFromID(id)
		}
		if h2 := node.Find("h2").First(); h2.Length() > 0 {
			if t := strings.TrimSpace(h2.Text()); t != "" {
				return t
			}
		}
		node = node.Parent()
	}
	return ""
}

// titleFromID converts an element id like "create_ticket" to "Create
// Ticket".
func titleFromID(id string) string {
	id = strings.ReplaceAll(id, "_", " ")
	id = strings.ReplaceAll(id, "-", " ")
	words := strings.Fields(id)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// resources maps path segments to display names for the fixed description
// lookup. Paths that mention none of these are ticket operations.
var resources = []struct {
	segment  string
	singular string
	plural   string
}{
	{"/notes", "Note", "Notes"},
	{"/tasks", "Task", "Tasks"},
	{"/time_entries", "Time Entry", "Time Entries"},
}

// describeOperation derives a display name from the method and path shape
// when the surrounding markup offers no description.
func describeOperation(method, path string) string {
	singular, plural := "Ticket", "Tickets"
	for _, r := range resources {
		if strings.Contains(path, r.segment) {
			singular, plural = r.singular, r.plural
			break
		}
	}

	// Paths ending in a placeholder address a single resource.
	item := strings.HasSuffix(path, "}")

	switch {
	case method == "POST" && !item:
		return "Create a " + singular
	case method == "GET" && item:
		return "View a " + singular
	case method == "GET" && !item:
		return "List All " + plural
	case (method == "PUT" || method == "PATCH") && item:
		return "Update a " + singular
	case method == "DELETE" && item:
		return "Delete a " + singular
	default:
		return "Ticket Operation"
	}
}
