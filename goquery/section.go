package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/freshrag"
)

// codeBlockSelector matches <pre> elements and anything carrying a
// "highlight" class marker, the two shapes the documentation page uses for
// curl examples.
const codeBlockSelector = `pre, [class*="highlight"]`

// ParseEndpointSection parses one HTML subtree believed to describe a
// single endpoint. Returns nil when the section has no curl code block or
// no recognizable API path; a synthetic placeholder path is never emitted.
func ParseEndpointSection(section *goquery.Selection) *freshrag.Endpoint {
	title := "API endpoint"
	if h2 := section.Find("h2").First(); h2.Length() > 0 {
		if t := strings.TrimSpace(h2.Text()); t != "" {
			title = t
		}
	}

	code := section.Find(codeBlockSelector).First()
	if code.Length() == 0 {
		return nil
	}
	codeText := code.Text()
	if !strings.Contains(codeText, "curl") {
		return nil
	}

	path, ok := freshrag.ExtractPath(codeText)
	if !ok {
		return nil
	}
	method := freshrag.ExtractMethod(codeText)

	var params []freshrag.Parameter
	section.Find("table").Each(func(_ int, table *goquery.Selection) {
		params = append(params, ParseParameterTable(table)...)
	})

	return &freshrag.Endpoint{
		Name:        title,
		Description: title,
		Method:      method,
		Path:        path,
		Parameters:  params,
		CurlExample: strings.TrimSpace(codeText),
	}
}
