package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/freshrag"
	"github.com/fwojciec/freshrag/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	SourceURL string
	BaseURL   string

	Store   *fs.Store
	Scraper freshrag.Scraper

	// Wired per command.
	Fetcher          freshrag.Fetcher
	Asker            freshrag.Asker
	Extractor        freshrag.Extractor
	ContentExtractor freshrag.ContentExtractor
	Converter        freshrag.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Scrape ScrapeCmd `cmd:"" help:"Scrape the documentation page and save a snapshot"`
	Serve  ServeCmd  `cmd:"" help:"Serve the query API over HTTP"`
	Ask    AskCmd    `cmd:"" help:"Ask a one-off question about the API"`
	Probe  ProbeCmd  `cmd:"" help:"Inspect the structure of the documentation page"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Browser bool `short:"b" help:"Fetch with a headless browser instead of plain HTTP"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr    string `default:":8080" help:"Listen address"`
	Browser bool   `short:"b" help:"Fetch with a headless browser if a scrape is needed"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the API documentation"`
	Browser  bool   `short:"b" help:"Fetch with a headless browser if a scrape is needed"`
}

// ProbeCmd is the "probe" subcommand.
type ProbeCmd struct {
	Preview bool `short:"p" help:"Render the page's main content as Markdown"`
	Browser bool `short:"b" help:"Fetch with a headless browser"`
}
