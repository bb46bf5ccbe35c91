// Package snapshot loads the catalog snapshot from the JSON file exported by
// the storefront pipeline and keeps it fresh via filesystem watching.
package snapshot

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"time"

	"prepcat/config"
	"prepcat/internal/domain/entity"
	"prepcat/internal/infra/persistence/model"
	"prepcat/internal/util"

	"github.com/pkg/errors"
)

// Repository reads whole snapshots from one JSON file. It remembers the
// checksum of the last load so watch-triggered reloads can skip no-op events.
type Repository struct {
	path   string
	logger *slog.Logger

	mu       sync.Mutex
	checksum string
}

// NewRepository is the constructor for Repository.
func NewRepository(cfg *config.Config, logger *slog.Logger) *Repository {
	return &Repository{
		path:   cfg.Catalog.SnapshotPath,
		logger: logger,
	}
}

// LoadSnapshot reads and decodes the full snapshot file.
func (r *Repository) LoadSnapshot(_ context.Context) (*entity.Snapshot, error) {
	start := time.Now()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, errors.Wrapf(err, "read snapshot file %s", r.path)
	}

	var document model.SnapshotModel
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, errors.Wrapf(err, "decode snapshot file %s", r.path)
	}

	checksum, err := util.CalculateFileChecksum(r.path)
	if err != nil {
		// The file was read fine; a failed checksum only disables the
		// no-op short-circuit for the next reload.
		r.logger.Warn("Failed to checksum snapshot file", slog.Any("error", err))
		checksum = ""
	}

	r.mu.Lock()
	r.checksum = checksum
	r.mu.Unlock()

	snapshot := document.ToEntity()
	r.logger.Info("Loaded catalog snapshot",
		slog.String("path", r.path),
		slog.String("size", util.FormatBytes(int64(len(data)))),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
		slog.Int("categories", len(snapshot.Categories)),
		slog.Int("master_items", len(snapshot.MasterItems)),
		slog.Int("products", len(snapshot.Products)),
		slog.Int("suppliers", len(snapshot.Suppliers)))

	return snapshot, nil
}

// LoadIfChanged reloads the snapshot only when the file content differs from
// the last load, reported through the checksum.
func (r *Repository) LoadIfChanged(ctx context.Context) (*entity.Snapshot, bool, error) {
	checksum, err := util.CalculateFileChecksum(r.path)
	if err != nil {
		return nil, false, errors.Wrap(err, "checksum snapshot file")
	}

	r.mu.Lock()
	unchanged := checksum != "" && checksum == r.checksum
	r.mu.Unlock()

	if unchanged {
		r.logger.Debug("Snapshot file unchanged, skipping reload", slog.String("path", r.path))

		return nil, false, nil
	}

	snapshot, err := r.LoadSnapshot(ctx)
	if err != nil {
		return nil, false, err
	}

	return snapshot, true, nil
}
