package rag_test

import (
	"testing"

	"github.com/fwojciec/freshrag"
	"github.com/fwojciec/freshrag/rag"
	"github.com/stretchr/testify/assert"
)

func TestWeights_Score(t *testing.T) {
	t.Parallel()

	weights := rag.DefaultWeights()

	t.Run("scores stay within the unit interval", func(t *testing.T) {
		t.Parallel()

		queries := []string{
			"",
			"create",
			"create ticket",
			"how do I create a ticket with curl in the freshservice api",
			"delete user",
			"api api api curl create get list update delete view ticket",
		}
		for _, e := range freshrag.FallbackEndpoints() {
			for _, q := range queries {
				score := weights.Score(e, q)
				assert.GreaterOrEqual(t, score, float32(0), "endpoint %s query %q", e.Key(), q)
				assert.LessOrEqual(t, score, float32(1), "endpoint %s query %q", e.Key(), q)
			}
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		e := freshrag.FallbackEndpoints()[0]
		first := weights.Score(e, "create ticket with curl")
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, weights.Score(e, "create ticket with curl"))
		}
	})

	t.Run("appending name words never lowers the score", func(t *testing.T) {
		t.Parallel()

		e := &freshrag.Endpoint{
			Name:        "Create Ticket",
			Description: "Create a new ticket",
			Method:      "POST",
			Path:        "/api/v2/tickets",
		}

		short := weights.Score(e, "create")
		long := weights.Score(e, "create ticket")

		assert.GreaterOrEqual(t, long, short)
	})

	t.Run("empty query scores zero", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, weights.Score(freshrag.FallbackEndpoints()[0], ""))
		assert.Zero(t, weights.Score(freshrag.FallbackEndpoints()[0], "   "))
	})

	t.Run("curl mention rewards endpoints with examples", func(t *testing.T) {
		t.Parallel()

		withExample := &freshrag.Endpoint{
			Name: "Create Ticket", Method: "POST", Path: "/api/v2/tickets",
			CurlExample: `curl -X POST "/api/v2/tickets"`,
		}
		withoutExample := &freshrag.Endpoint{
			Name: "Create Ticket", Method: "POST", Path: "/api/v2/tickets",
		}

		q := "curl example for create ticket"
		assert.Greater(t, weights.Score(withExample, q), weights.Score(withoutExample, q))
	})

	t.Run("domain keywords add a flat bonus", func(t *testing.T) {
		t.Parallel()

		e := &freshrag.Endpoint{Name: "List Tickets", Method: "GET", Path: "/api/v2/tickets"}

		assert.Greater(t, weights.Score(e, "freshservice list tickets"), weights.Score(e, "list tickets"))
	})

	t.Run("verb agreement separates same-resource operations", func(t *testing.T) {
		t.Parallel()

		create := &freshrag.Endpoint{Name: "Create Ticket", Description: "Create a new ticket", Method: "POST", Path: "/api/v2/tickets"}
		update := &freshrag.Endpoint{Name: "Update Ticket", Description: "Update an existing ticket", Method: "PUT", Path: "/api/v2/tickets/{id}"}

		q := "create ticket"
		assert.Greater(t, weights.Score(create, q), weights.Score(update, q))
	})

	t.Run("falls back to method and path for unnamed endpoints", func(t *testing.T) {
		t.Parallel()

		e := &freshrag.Endpoint{Method: "GET", Path: "/api/v2/tickets"}

		// DisplayName is "GET /api/v2/tickets"; the word "tickets" matches.
		assert.Greater(t, weights.Score(e, "tickets"), float32(0))
	})

	t.Run("weight table is configurable", func(t *testing.T) {
		t.Parallel()

		muted := rag.Weights{Ceiling: 7.0}
		assert.Zero(t, muted.Score(freshrag.FallbackEndpoints()[0], "create ticket"))
	})
}
