package freshrag

import (
	"regexp"
	"strings"
)

// pathSegment matches one path segment: alphanumerics, underscores,
// hyphens, or a {placeholder}.
const pathSegment = `(?:[A-Za-z0-9_\-]+|\{[A-Za-z0-9_]+\})`

// apiPath matches a documented API path like /api/v2/tickets/{id}.
const apiPath = `/api/v2/` + pathSegment + `(?:/` + pathSegment + `)*`

// Path patterns in order of specificity. The first pattern that matches
// anywhere in the text wins.
var pathPatterns = []*regexp.Regexp{
	// Full URL; the host is stripped and only the path is captured.
	regexp.MustCompile(`https?://[A-Za-z0-9.\-]+(` + apiPath + `)`),
	// Single-quoted path.
	regexp.MustCompile(`'(` + apiPath + `)`),
	// Double-quoted path.
	regexp.MustCompile(`"(` + apiPath + `)`),
	// Bare path.
	regexp.MustCompile(`(` + apiPath + `)`),
}

// methodTokens maps literal command tokens to HTTP methods, checked in
// order. A bare curl invocation without -X defaults to GET.
var methodTokens = []struct {
	token  string
	method string
}{
	{"-X POST", "POST"},
	{"-X PUT", "PUT"},
	{"-X DELETE", "DELETE"},
	{"-X PATCH", "PATCH"},
	{"-X GET", "GET"},
	{"curl", "GET"},
}

// ExtractMethod scans a text fragment (typically a shell command) for an
// HTTP method token. Returns GET when no token is present.
func ExtractMethod(text string) string {
	for _, mt := range methodTokens {
		if strings.Contains(text, mt.token) {
			return mt.method
		}
	}
	return "GET"
}

// ExtractPath scans a text fragment for an API path. Returns false when no
// path literal is found; callers must skip the record rather than
// synthesize a placeholder path.
func ExtractPath(text string) (string, bool) {
	for _, re := range pathPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		path := strings.TrimRight(m[1], `'"\`)
		if path != "" {
			return path, true
		}
	}
	return "", false
}
