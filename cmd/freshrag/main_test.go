package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_NoArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	m := NewMain()

	err := m.Run(context.Background(), nil, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	m := NewMain()

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "scrape")
	assert.Contains(t, stdout.String(), "serve")
	assert.Contains(t, stdout.String(), "ask")
	assert.Contains(t, stdout.String(), "probe")
}

func TestRun_UnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	m := NewMain()

	err := m.Run(context.Background(), []string{"bogus"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestRun_Scrape(t *testing.T) {
	// A page without recognizable endpoint markup exercises the fallback
	// catalog path end to end.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>maintenance page</p></body></html>`))
	}))
	defer srv.Close()

	m := NewMain()
	m.DataPath = filepath.Join(t.TempDir(), "documentation.json")
	m.SourceURL = srv.URL
	m.BaseURL = "https://api.freshservice.com"

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), []string{"scrape"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Scraped 5 endpoints")
	assert.Contains(t, stdout.String(), "Fingerprint: ")
}

func TestRun_Scrape_UnchangedFingerprint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body></body></html>`))
	}))
	defer srv.Close()

	m := NewMain()
	m.DataPath = filepath.Join(t.TempDir(), "documentation.json")
	m.SourceURL = srv.URL
	m.BaseURL = "https://api.freshservice.com"

	var stdout, stderr bytes.Buffer
	require.NoError(t, m.Run(context.Background(), []string{"scrape"}, &stdout, &stderr))

	stdout.Reset()
	require.NoError(t, m.Run(context.Background(), []string{"scrape"}, &stdout, &stderr))

	assert.Contains(t, stdout.String(), "(unchanged)")
}

func TestRun_Ask_WithoutAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body></body></html>`))
	}))
	defer srv.Close()

	m := NewMain()
	m.DataPath = filepath.Join(t.TempDir(), "documentation.json")
	m.SourceURL = srv.URL
	m.BaseURL = "https://api.freshservice.com"

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), []string{"ask", "how do I create a ticket"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Create Ticket")
	assert.Contains(t, stderr.String(), "confidence: ")
}

func TestRun_Probe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>
<head><title>Freshservice API</title></head>
<body>
<div id="tickets">
<div id="create_ticket"><h2>Create Ticket</h2>
<pre>curl -X POST 'https://domain.freshservice.com/api/v2/tickets'</pre>
</div>
</div>
</body>
</html>`))
	}))
	defer srv.Close()

	m := NewMain()
	m.DataPath = filepath.Join(t.TempDir(), "documentation.json")
	m.SourceURL = srv.URL
	m.BaseURL = "https://api.freshservice.com"

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), []string{"probe"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Title: Freshservice API")
	assert.Contains(t, stdout.String(), "Tickets container (#tickets): true")
	assert.Contains(t, stdout.String(), "Extracted endpoints: 1")
	assert.Contains(t, stdout.String(), "POST /api/v2/tickets")
}
