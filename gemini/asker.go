// Package gemini implements freshrag.Asker using Google Gemini.
package gemini

import (
	"context"
	"fmt"

	"github.com/fwojciec/freshrag"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Asker implements freshrag.Asker at compile time.
var _ freshrag.Asker = (*Asker)(nil)

// Asker answers questions about the Freshservice API using Google Gemini,
// grounded on the retrieved documentation context.
type Asker struct {
	client *genai.Client
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client) *Asker {
	return &Asker{client: client}
}

// Ask answers a natural language question using the given documentation
// context. The context comes from the retriever and is the only grounding
// the model is allowed to use.
func (a *Asker) Ask(ctx context.Context, question, docContext string) (string, error) {
	if question == "" {
		return "", freshrag.Errorf(freshrag.EINVALID, "question required")
	}
	if docContext == "" {
		return "", freshrag.Errorf(freshrag.EINVALID, "documentation context required")
	}

	prompt := BuildUserPrompt(question, docContext)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", freshrag.Errorf(freshrag.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls. The
// temperature is kept low since answers must stay close to the retrieved
// documentation.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.1)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an expert on the Freshservice API documentation. Answer questions based only on the provided context. Be specific and include exact endpoint paths, HTTP methods, and parameter names when relevant. If the context does not contain the answer, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the retrieved context
// and the question.
func BuildUserPrompt(question, docContext string) string {
	return fmt.Sprintf("CONTEXT:\n%s\n\nQUESTION: %s\n", docContext, question)
}
