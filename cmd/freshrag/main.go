// Command freshrag scrapes the Freshservice API documentation into a local
// snapshot and answers questions about it, either one-off from the command
// line or through an HTTP query API.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/freshrag"
	"github.com/fwojciec/freshrag/fs"
	"github.com/fwojciec/freshrag/gemini"
	"github.com/fwojciec/freshrag/goquery"
	"github.com/fwojciec/freshrag/htmltomarkdown"
	freshhttp "github.com/fwojciec/freshrag/http"
	"github.com/fwojciec/freshrag/rod"
	freshslog "github.com/fwojciec/freshrag/slog"
	"github.com/fwojciec/freshrag/trafilatura"
	"google.golang.org/genai"
)

// Default scrape targets. The source URL points at the ticket section of
// the Freshservice API v2 documentation.
const (
	defaultSourceURL = "https://api.freshservice.com/v2/#ticket"
	defaultBaseURL   = "https://api.freshservice.com"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Snapshot file path. Set before calling Run().
	DataPath string

	// Scrape targets. Set before calling Run().
	SourceURL string
	BaseURL   string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DataPath:  defaultDataPath(),
		SourceURL: defaultSourceURL,
		BaseURL:   defaultBaseURL,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		SourceURL: m.SourceURL,
		BaseURL:   m.BaseURL,
		Store:     fs.NewStore(m.DataPath),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("freshrag"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'freshrag --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Wire the fetcher-backed dependencies. Serve and ask only scrape when
	// no snapshot exists, but the fetcher has to be ready before the
	// command runs.
	cmd = strings.Fields(kongCtx.Command())[0]
	browser := false
	switch cmd {
	case "scrape":
		browser = cli.Scrape.Browser
	case "serve":
		browser = cli.Serve.Browser
	case "ask":
		browser = cli.Ask.Browser
	case "probe":
		browser = cli.Probe.Browser
	}

	fetcher, err := newFetcher(browser)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
		return fmt.Errorf("failed to create fetcher: %w", err)
	}
	defer fetcher.Close()

	deps.Fetcher = fetcher
	deps.Extractor = goquery.NewExtractor()
	deps.Scraper = freshslog.NewLoggingScraper(&freshrag.DocScraper{
		Fetcher:   fetcher,
		Extractor: deps.Extractor,
		SourceURL: m.SourceURL,
		BaseURL:   m.BaseURL,
	}, logger)

	if cmd == "probe" {
		deps.ContentExtractor = trafilatura.NewExtractor()
		deps.Converter = htmltomarkdown.NewConverter()
	}

	// Serve and ask answer through Gemini when a key is available and
	// degrade to returning the retrieved context when it is not.
	if cmd == "serve" || cmd == "ask" {
		if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			deps.Asker = gemini.NewAsker(client)
		} else {
			logger.Warn("GEMINI_API_KEY not set, answers degrade to raw documentation context")
		}
	}

	return kongCtx.Run(deps)
}

// newFetcher returns the browser fetcher when requested, the plain HTTP
// fetcher otherwise.
func newFetcher(browser bool) (freshrag.Fetcher, error) {
	if browser {
		return rod.NewFetcher()
	}
	return freshhttp.NewFetcher(), nil
}

func defaultDataPath() string {
	if path := os.Getenv("FRESHRAG_DATA"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "documentation.json"
	}
	return filepath.Join(home, ".freshrag", "documentation.json")
}
