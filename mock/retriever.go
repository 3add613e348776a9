package mock

import "github.com/fwojciec/freshrag"

var _ freshrag.Retriever = (*Retriever)(nil)

// Retriever is a mock implementation of freshrag.Retriever.
type Retriever struct {
	RetrieveFn func(query string) freshrag.RetrievalResult
}

func (r *Retriever) Retrieve(query string) freshrag.RetrievalResult {
	return r.RetrieveFn(query)
}
