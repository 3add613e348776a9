package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/freshrag"
	"github.com/fwojciec/freshrag/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocs() *freshrag.Documentation {
	return &freshrag.Documentation{
		BaseURL:   "https://api.freshservice.com",
		Endpoints: freshrag.FallbackEndpoints(),
		ScrapedAt: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore_SaveLoad(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a snapshot", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "documentation.json")
		store := fs.NewStore(path)
		docs := testDocs()

		require.NoError(t, store.Save(context.Background(), docs))

		loaded, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, docs.BaseURL, loaded.BaseURL)
		require.Len(t, loaded.Endpoints, len(docs.Endpoints))
		assert.Equal(t, docs.Endpoints[0].Key(), loaded.Endpoints[0].Key())
		assert.True(t, docs.ScrapedAt.Equal(loaded.ScrapedAt))
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "deeper", "documentation.json")
		store := fs.NewStore(path)

		require.NoError(t, store.Save(context.Background(), testDocs()))

		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("leaves no temporary file behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewStore(filepath.Join(dir, "documentation.json"))

		require.NoError(t, store.Save(context.Background(), testDocs()))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "documentation.json", entries[0].Name())
	})

	t.Run("missing snapshot is not found", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(filepath.Join(t.TempDir(), "missing.json"))

		_, err := store.Load(context.Background())

		require.Error(t, err)
		assert.Equal(t, freshrag.ENOTFOUND, freshrag.ErrorCode(err))
	})

	t.Run("corrupt snapshot is invalid", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "documentation.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
		store := fs.NewStore(path)

		_, err := store.Load(context.Background())

		require.Error(t, err)
		assert.Equal(t, freshrag.EINVALID, freshrag.ErrorCode(err))
	})

	t.Run("save rejects an invalid snapshot", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(filepath.Join(t.TempDir(), "documentation.json"))
		docs := testDocs()
		docs.Endpoints[0].Method = "FETCH"

		err := store.Save(context.Background(), docs)

		require.Error(t, err)
		assert.Equal(t, freshrag.EINVALID, freshrag.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(filepath.Join(t.TempDir(), "documentation.json"))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.Error(t, store.Save(ctx, testDocs()))
		_, err := store.Load(ctx)
		assert.Error(t, err)
	})
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	t.Run("ignores scrape time", func(t *testing.T) {
		t.Parallel()

		a := testDocs()
		b := testDocs()
		b.ScrapedAt = b.ScrapedAt.Add(48 * time.Hour)

		fpA, err := fs.Fingerprint(a)
		require.NoError(t, err)
		fpB, err := fs.Fingerprint(b)
		require.NoError(t, err)

		assert.Equal(t, fpA, fpB)
	})

	t.Run("ignores endpoint order", func(t *testing.T) {
		t.Parallel()

		a := testDocs()
		b := testDocs()
		for i, j := 0, len(b.Endpoints)-1; i < j; i, j = i+1, j-1 {
			b.Endpoints[i], b.Endpoints[j] = b.Endpoints[j], b.Endpoints[i]
		}

		fpA, err := fs.Fingerprint(a)
		require.NoError(t, err)
		fpB, err := fs.Fingerprint(b)
		require.NoError(t, err)

		assert.Equal(t, fpA, fpB)
	})

	t.Run("changes when an endpoint changes", func(t *testing.T) {
		t.Parallel()

		a := testDocs()
		b := testDocs()
		b.Endpoints[0].Description = "changed"

		fpA, err := fs.Fingerprint(a)
		require.NoError(t, err)
		fpB, err := fs.Fingerprint(b)
		require.NoError(t, err)

		assert.NotEqual(t, fpA, fpB)
	})
}
