package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/fwojciec/freshrag"
	freshhttp "github.com/fwojciec/freshrag/http"
	"github.com/fwojciec/freshrag/rag"
	freshslog "github.com/fwojciec/freshrag/slog"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds graceful shutdown after SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	docs, err := loadOrScrape(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", freshrag.ErrorMessage(err))
		return err
	}

	retriever := freshslog.NewLoggingRetriever(rag.NewRetriever(docs), deps.Logger)

	opts := []freshhttp.ServerOption{
		freshhttp.WithAddr(c.Addr),
		freshhttp.WithLogger(deps.Logger),
	}
	if deps.Asker != nil {
		opts = append(opts, freshhttp.WithAsker(deps.Asker))
	}
	srv := freshhttp.NewServer(docs, retriever, opts...)

	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.ListenAndServe)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// loadOrScrape loads the saved snapshot, scraping a fresh one when no
// snapshot exists yet.
func loadOrScrape(deps *Dependencies) (*freshrag.Documentation, error) {
	docs, err := deps.Store.Load(deps.Ctx)
	if err == nil {
		return docs, nil
	}
	if freshrag.ErrorCode(err) != freshrag.ENOTFOUND {
		return nil, err
	}

	deps.Logger.Info("no documentation snapshot found, scraping", "path", deps.Store.Path())
	docs, err = deps.Scraper.Scrape(deps.Ctx)
	if err != nil {
		return nil, err
	}
	if err := deps.Store.Save(deps.Ctx, docs); err != nil {
		return nil, err
	}
	return docs, nil
}
