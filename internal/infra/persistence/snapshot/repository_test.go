package snapshot

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"prepcat/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSnapshot = `{
	"categories": [
		{"id": "cat-water", "name": "Water", "parent_id": null}
	],
	"master_items": [
		{"id": "mi-jug", "name": "Water Jug", "category_id": "cat-water",
		 "tags": {"scenarios": ["EMP"]}}
	],
	"products": [
		{"id": "jug-1", "name": "7G Jug", "master_item_id": "mi-jug",
		 "price": 24.99, "tags": {"demographics": []}}
	],
	"suppliers": [
		{"id": "sup-acme", "name": "Acme Outfitters"}
	]
}`

func newTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleSnapshot), 0o600))

	cfg := &config.Config{}
	cfg.Catalog.SnapshotPath = path

	return NewRepository(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))), path
}

func TestRepository_LoadSnapshot(t *testing.T) {
	repo, _ := newTestRepository(t)

	snapshot, err := repo.LoadSnapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snapshot.Products, 1)
	product := snapshot.Products[0]
	assert.Equal(t, "24.99", product.Price, "numeric price decodes to string")
	assert.Nil(t, product.Tags.Scenarios, "absent dimension inherits")
	assert.NotNil(t, product.Tags.Demographics, "[] stays an override")

	require.Len(t, snapshot.Categories, 1)
	assert.True(t, snapshot.Categories[0].IsRoot())
}

func TestRepository_LoadSnapshotMissingFile(t *testing.T) {
	cfg := &config.Config{}
	cfg.Catalog.SnapshotPath = filepath.Join(t.TempDir(), "absent.json")
	repo := NewRepository(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := repo.LoadSnapshot(context.Background())
	assert.Error(t, err)
}

func TestRepository_LoadSnapshotMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"products": [`), 0o600))

	cfg := &config.Config{}
	cfg.Catalog.SnapshotPath = path
	repo := NewRepository(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := repo.LoadSnapshot(context.Background())
	assert.Error(t, err)
}

func TestRepository_LoadIfChangedShortCircuits(t *testing.T) {
	repo, path := newTestRepository(t)

	_, err := repo.LoadSnapshot(context.Background())
	require.NoError(t, err)

	// Same content: nothing to do.
	snapshot, changed, err := repo.LoadIfChanged(context.Background())
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Nil(t, snapshot)

	// Content change flips the checksum and reloads.
	updated := []byte(`{"products": [{"id": "jug-1", "name": "7G Jug", "master_item_id": "mi-jug", "price": "29.99", "tags": {}}]}`)
	require.NoError(t, os.WriteFile(path, updated, 0o600))

	snapshot, changed, err = repo.LoadIfChanged(context.Background())
	require.NoError(t, err)
	assert.True(t, changed)
	require.NotNil(t, snapshot)
	assert.Equal(t, "29.99", snapshot.Products[0].Price)
}

func TestRepository_LoadIfChangedBeforeFirstLoad(t *testing.T) {
	repo, _ := newTestRepository(t)

	snapshot, changed, err := repo.LoadIfChanged(context.Background())
	require.NoError(t, err)
	assert.True(t, changed, "no recorded checksum means load")
	assert.NotNil(t, snapshot)
}
