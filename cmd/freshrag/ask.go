package main

import (
	"fmt"

	"github.com/fwojciec/freshrag"
	"github.com/fwojciec/freshrag/rag"
	freshslog "github.com/fwojciec/freshrag/slog"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	docs, err := loadOrScrape(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", freshrag.ErrorMessage(err))
		return err
	}

	retriever := freshslog.NewLoggingRetriever(rag.NewRetriever(docs), deps.Logger)
	result := retriever.Retrieve(c.Question)

	answer := c.answer(deps, result)

	fmt.Fprintln(deps.Stdout, answer)
	fmt.Fprintf(deps.Stderr, "confidence: %.2f\n", result.Confidence)
	return nil
}

// answer mirrors the server's degradation ladder: no matches gets a fixed
// message, a missing asker returns the raw context, and an asker failure
// falls back to the context as well.
func (c *AskCmd) answer(deps *Dependencies, result freshrag.RetrievalResult) string {
	if len(result.Matches) == 0 {
		return "No relevant endpoints found for your question. Try asking about specific ticket operations, for example creating, listing, updating, or deleting tickets."
	}
	if deps.Asker == nil {
		return "Here is the relevant documentation:\n\n" + result.Context
	}

	answer, err := deps.Asker.Ask(deps.Ctx, c.Question, result.Context)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "warning: %s\n", freshrag.ErrorMessage(err))
		return "Here is the relevant documentation:\n\n" + result.Context
	}
	return answer
}
