package main

import (
	"fmt"

	"github.com/fwojciec/freshrag"
	"github.com/fwojciec/freshrag/fs"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	// The previous snapshot's fingerprint, if any, tells us whether the
	// page content actually changed.
	var prevFingerprint string
	if prev, err := deps.Store.Load(deps.Ctx); err == nil {
		prevFingerprint, _ = fs.Fingerprint(prev)
	}

	docs, err := deps.Scraper.Scrape(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", freshrag.ErrorMessage(err))
		return err
	}

	if err := deps.Store.Save(deps.Ctx, docs); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", freshrag.ErrorMessage(err))
		return err
	}

	fingerprint, err := fs.Fingerprint(docs)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Scraped %d endpoints to %s\n", len(docs.Endpoints), deps.Store.Path())
	switch {
	case prevFingerprint == "":
		fmt.Fprintf(deps.Stdout, "Fingerprint: %s\n", fingerprint)
	case prevFingerprint == fingerprint:
		fmt.Fprintf(deps.Stdout, "Fingerprint: %s (unchanged)\n", fingerprint)
	default:
		fmt.Fprintf(deps.Stdout, "Fingerprint: %s (changed from %s)\n", fingerprint, prevFingerprint)
	}

	return nil
}
