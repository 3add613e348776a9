// Package goquery implements endpoint extraction from Freshservice
// documentation HTML using CSS selectors. Extraction is best-effort
// throughout: elements that cannot be parsed confidently are skipped
// rather than filled with guessed values.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/freshrag"
)

// defaultValueRe captures the value following "Default:" or "default " in
// a parameter description.
var defaultValueRe = regexp.MustCompile(`[Dd]efault[:\s]+([^\s,.]+)`)

// ParseParameterTable converts an HTML table into parameter records.
// Returns nil when the table does not look like a parameter table: its
// rendered text must mention "parameter", "attribute", or "field".
//
// The first row is treated as a header and skipped. Subsequent rows must
// yield at least two cells and a non-empty name or they are discarded.
func ParseParameterTable(table *goquery.Selection) []freshrag.Parameter {
	text := strings.ToLower(table.Text())
	if !strings.Contains(text, "parameter") &&
		!strings.Contains(text, "attribute") &&
		!strings.Contains(text, "field") {
		return nil
	}

	var params []freshrag.Parameter
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header row
		}

		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}

		name := strings.TrimSpace(cells.Eq(0).Text())
		if name == "" {
			return
		}
		description := strings.TrimSpace(cells.Eq(1).Text())

		paramType := ""
		if cells.Length() > 2 {
			paramType = strings.ToLower(strings.TrimSpace(cells.Eq(2).Text()))
		}
		if paramType == "" {
			paramType = freshrag.InferParameterType(description)
		}

		params = append(params, freshrag.Parameter{
			Name:        name,
			Type:        paramType,
			Description: description,
			Required:    strings.Contains(strings.ToLower(description), "required"),
			Default:     extractDefault(description),
		})
	})

	return params
}

// extractDefault pulls a default value out of a description, e.g.
// "Default: 30". Returns nil when the description does not mention one.
func extractDefault(description string) *string {
	if !strings.Contains(strings.ToLower(description), "default") {
		return nil
	}
	m := defaultValueRe.FindStringSubmatch(description)
	if m == nil {
		return nil
	}
	return &m[1]
}
