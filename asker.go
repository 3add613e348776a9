package freshrag

import "context"

// Asker generates a natural language answer to a question, grounded in a
// context string produced by a Retriever. The asker is only invoked after
// the retrieval engine has produced a non-empty context; callers are
// responsible for falling back to the raw context when the asker fails.
type Asker interface {
	Ask(ctx context.Context, question, docContext string) (string, error)
}
