package snapshot

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"prepcat/config"
	"prepcat/internal/domain/repository"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watcher replaces the in-memory snapshot whenever the backing file changes.
// Export pipelines usually write-then-rename, so the directory is watched
// rather than the file itself, and rename/create events count as changes.
type Watcher struct {
	repo    *Repository
	store   repository.CatalogStore
	logger  *slog.Logger
	path    string
	enabled bool

	fsWatcher *fsnotify.Watcher
	done      chan struct{}
	wg        sync.WaitGroup
}

// NewWatcher is the constructor for Watcher.
func NewWatcher(cfg *config.Config, repo *Repository, store repository.CatalogStore, logger *slog.Logger) *Watcher {
	return &Watcher{
		repo:    repo,
		store:   store,
		logger:  logger,
		path:    cfg.Catalog.SnapshotPath,
		enabled: cfg.Catalog.WatchSnapshot,
	}
}

// Start begins watching the snapshot file's directory. No-op when watching is
// disabled by configuration.
func (w *Watcher) Start(_ context.Context) error {
	if !w.enabled {
		w.logger.Info("Snapshot watching disabled")

		return nil
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create snapshot watcher")
	}
	if err := fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		fsWatcher.Close()

		return errors.Wrapf(err, "watch snapshot directory %s", filepath.Dir(w.path))
	}

	w.fsWatcher = fsWatcher
	w.done = make(chan struct{})
	w.wg.Add(1)
	go w.run()

	w.logger.Info("Watching snapshot file", slog.String("path", w.path))

	return nil
}

// Stop tears the watcher down and waits for the event loop to drain.
func (w *Watcher) Stop(_ context.Context) error {
	if w.fsWatcher == nil {
		return nil
	}

	close(w.done)
	err := w.fsWatcher.Close()
	w.wg.Wait()

	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Snapshot watcher error", slog.Any("error", err))
		}
	}
}

// handleEvent reloads on any event touching the snapshot file. The checksum
// short-circuit in the repository absorbs duplicate events from
// write-then-rename sequences.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	snapshot, changed, err := w.repo.LoadIfChanged(context.Background())
	if err != nil {
		w.logger.Error("Failed to reload snapshot after file change",
			slog.Any("error", err), slog.String("event", event.Op.String()))

		return
	}
	if !changed {
		return
	}

	w.store.Replace(snapshot)
	w.logger.Info("Snapshot reloaded after file change", slog.String("event", event.Op.String()))
}
