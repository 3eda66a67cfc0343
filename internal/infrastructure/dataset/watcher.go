package dataset

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/flavorlab/cocktailiq/internal/domain/molecule"
	"github.com/flavorlab/cocktailiq/internal/infrastructure/monitoring/logging"
)

// reloadDebounce coalesces the burst of write events editors and atomic
// saves produce into one reload.
const reloadDebounce = 500 * time.Millisecond

// Watcher reloads the molecule file when it changes and hands the freshly
// built index to the apply callback, typically Profiler.SwapIndex. The
// watch covers the file's directory because most writers replace the file
// instead of writing in place.
type Watcher struct {
	store  *FileStore
	apply  func(*molecule.Index)
	opts   []molecule.Option
	logger logging.Logger
}

// NewWatcher constructs a watcher. opts are forwarded to every index
// rebuild so alias and keyword tables survive reloads.
func NewWatcher(store *FileStore, apply func(*molecule.Index), logger logging.Logger, opts ...molecule.Option) *Watcher {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Watcher{
		store:  store,
		apply:  apply,
		opts:   opts,
		logger: logger.Named("data-watcher"),
	}
}

// Run blocks until the context is canceled, reloading on every relevant
// filesystem event. A reload failure keeps the previous index and is only
// logged; the pipeline never serves a half-loaded dataset.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	dir := filepath.Dir(w.store.Path())
	if err := fw.Add(dir); err != nil {
		return err
	}
	w.logger.Info("watching molecule data", logging.String("path", w.store.Path()))

	var timer *time.Timer
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.store.Path()) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			w.reload(ctx)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", logging.Err(err))
		}
	}
}

// Reload forces an immediate rebuild, used at startup and by tests.
func (w *Watcher) Reload(ctx context.Context) error {
	molecules, err := w.store.LoadMolecules(ctx)
	if err != nil {
		return err
	}
	w.apply(molecule.NewIndex(molecules, w.logger, w.opts...))
	return nil
}

func (w *Watcher) reload(ctx context.Context) {
	start := time.Now()
	if err := w.Reload(ctx); err != nil {
		w.logger.Error("molecule reload failed, keeping previous index", logging.Err(err))
		return
	}
	w.logger.Info("molecule data reloaded", logging.Duration("elapsed", time.Since(start)))
}
