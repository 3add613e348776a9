// Package freshrag turns the Freshservice API documentation page into a
// queryable knowledge base. It scrapes endpoint records out of the
// documentation HTML, ranks them against free-text questions using lexical
// relevance scoring, and hands the best matches to a language model as
// grounding context.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, rod/).
package freshrag
