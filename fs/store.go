// Package fs persists documentation snapshots as JSON files on disk, with
// atomic replace semantics so a crashed scrape never leaves a torn file.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/freshrag"
)

// Store saves and loads a single Documentation snapshot at a fixed path.
type Store struct {
	path string
}

// NewStore creates a Store persisting to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// Save writes the snapshot to disk. The write goes to a temporary file in
// the same directory and is renamed into place, so readers never observe a
// partial snapshot.
func (s *Store) Save(ctx context.Context, docs *freshrag.Documentation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := docs.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return nil
}

// Load reads the snapshot from disk. A missing file is ENOTFOUND so callers
// can fall back to scraping; a corrupt file is EINVALID.
func (s *Store) Load(ctx context.Context) (*freshrag.Documentation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, freshrag.Errorf(freshrag.ENOTFOUND, "no documentation snapshot at %s", s.path)
		}
		return nil, err
	}

	var docs freshrag.Documentation
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, freshrag.Errorf(freshrag.EINVALID, "corrupt documentation snapshot at %s: %v", s.path, err)
	}
	if err := docs.Validate(); err != nil {
		return nil, err
	}

	return &docs, nil
}

// Fingerprint computes a content hash of the snapshot's endpoints. The
// scrape time is excluded so two scrapes of an unchanged page produce the
// same fingerprint. Endpoints are hashed in key order, making the result
// independent of extraction order.
func Fingerprint(docs *freshrag.Documentation) (string, error) {
	endpoints := make([]*freshrag.Endpoint, len(docs.Endpoints))
	copy(endpoints, docs.Endpoints)
	sort.Slice(endpoints, func(i, j int) bool {
		return endpoints[i].Key() < endpoints[j].Key()
	})

	h := xxhash.New()
	for _, e := range endpoints {
		data, err := json.Marshal(e)
		if err != nil {
			return "", err
		}
		_, _ = h.Write(data)
		_, _ = h.Write([]byte{'\n'})
	}

	return fmt.Sprintf("%016x", h.Sum64()), nil
}
