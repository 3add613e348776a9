package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/freshrag"
	"github.com/fwojciec/freshrag/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func probeDeps(stdout, stderr *bytes.Buffer) *Dependencies {
	return &Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    stderr,
		SourceURL: "https://api.freshservice.com/v2/#ticket",
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return `<html><head><title>Freshservice API</title></head><body>
<div id="tickets"><pre>curl -X POST 'https://domain.freshservice.com/api/v2/tickets'</pre></div>
</body></html>`, nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(html string) ([]*freshrag.Endpoint, error) {
				return []*freshrag.Endpoint{
					{Name: "Create Ticket", Method: "POST", Path: "/api/v2/tickets"},
				}, nil
			},
		},
	}
}

func TestProbeCmd_Run(t *testing.T) {
	t.Run("renders a markdown preview through the converter", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		deps := probeDeps(&stdout, &stderr)
		deps.ContentExtractor = &mock.ContentExtractor{
			ExtractFn: func(html string) (*freshrag.ExtractResult, error) {
				return &freshrag.ExtractResult{
					Title:       "Freshservice API",
					ContentHTML: "<h2>Create Ticket</h2>",
				}, nil
			},
		}
		deps.Converter = &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				assert.Equal(t, "<h2>Create Ticket</h2>", html)
				return "## Create Ticket", nil
			},
		}

		cmd := &ProbeCmd{Preview: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Extracted endpoints: 1")
		assert.Contains(t, stdout.String(), "POST /api/v2/tickets")
		assert.Contains(t, stdout.String(), "--- Preview: Freshservice API ---")
		assert.Contains(t, stdout.String(), "## Create Ticket")
	})

	t.Run("skips the preview pipeline without the flag", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		deps := probeDeps(&stdout, &stderr)
		deps.ContentExtractor = &mock.ContentExtractor{
			ExtractFn: func(html string) (*freshrag.ExtractResult, error) {
				t.Fatal("content extractor must not run without --preview")
				return nil, nil
			},
		}
		deps.Converter = &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				t.Fatal("converter must not run without --preview")
				return "", nil
			},
		}

		cmd := &ProbeCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Title: Freshservice API")
		assert.NotContains(t, stdout.String(), "Preview")
	})

	t.Run("propagates fetch failures", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		deps := probeDeps(&stdout, &stderr)
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", freshrag.Errorf(freshrag.EUNAVAILABLE, "HTTP 503 for %s", url)
			},
		}

		cmd := &ProbeCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, freshrag.EUNAVAILABLE, freshrag.ErrorCode(err))
		assert.Contains(t, stderr.String(), "HTTP 503")
	})
}
