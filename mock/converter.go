package mock

import "github.com/fwojciec/freshrag"

var _ freshrag.Converter = (*Converter)(nil)

// Converter is a mock implementation of freshrag.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
