package freshrag

import (
	"strings"
	"time"
)

// Parameter types. Types are inferred from documentation text, not
// validated against a schema.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeArray   = "array"
)

// Parameter represents a single documented request parameter.
// Immutable once created.
type Parameter struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Required    bool    `json:"required"`
	Default     *string `json:"default,omitempty"`
}

// InferParameterType guesses a parameter type from its description text.
// Defaults to string when no type keyword is present.
func InferParameterType(description string) string {
	desc := strings.ToLower(description)
	switch {
	case strings.Contains(desc, "integer") || strings.Contains(desc, "number"):
		return TypeInteger
	case strings.Contains(desc, "boolean"):
		return TypeBoolean
	case strings.Contains(desc, "array"):
		return TypeArray
	default:
		return TypeString
	}
}

// Endpoint represents one documented API operation.
type Endpoint struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Method      string      `json:"method"`
	Path        string      `json:"path"`
	Parameters  []Parameter `json:"parameters"`
	CurlExample string      `json:"curlExample,omitempty"`
}

// Key returns the identity key used for deduplication. Two endpoints with
// the same key describe the same operation; the first encountered wins.
func (e *Endpoint) Key() string {
	return e.Method + " " + e.Path
}

// DisplayName returns the endpoint name, falling back to "METHOD /path"
// when no display label was extracted.
func (e *Endpoint) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Method + " " + e.Path
}

// Validate returns an error if the endpoint contains invalid fields.
func (e *Endpoint) Validate() error {
	switch e.Method {
	case "GET", "POST", "PUT", "PATCH", "DELETE":
	default:
		return Errorf(EINVALID, "endpoint method %q not supported", e.Method)
	}
	if e.Path == "" {
		return Errorf(EINVALID, "endpoint path required")
	}
	return nil
}

// Documentation is a snapshot of all endpoints scraped from one page.
// It is built once per scrape and held read-only for the lifetime of a
// serving process, so it may be shared across concurrent query handlers
// without synchronization.
type Documentation struct {
	BaseURL   string      `json:"baseUrl"`
	Endpoints []*Endpoint `json:"endpoints"`
	ScrapedAt time.Time   `json:"scrapedAt"`
}

// Validate returns an error if the documentation contains invalid fields.
func (d *Documentation) Validate() error {
	if d.BaseURL == "" {
		return Errorf(EINVALID, "documentation base URL required")
	}
	for _, e := range d.Endpoints {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}
