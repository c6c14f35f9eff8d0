package worker

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/utils/logging"
)

const folderLayout = "02_Jan_2006"

// RetentionWorker prunes dated response folders once they exceed the
// configured age. The master dataset is never touched.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
type RetentionWorker struct {
	baseDir  string
	maxAge   time.Duration
	interval time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewRetentionWorker creates a worker that removes response folders under
// baseDir whose date encoded in the folder name is older than maxAge.
func NewRetentionWorker(baseDir string, maxAge, interval time.Duration) *RetentionWorker {
	return NewRetentionWorkerAt(baseDir, maxAge, interval, time.Now)
}

// NewRetentionWorkerAt is NewRetentionWorker with an injectable clock
func NewRetentionWorkerAt(baseDir string, maxAge, interval time.Duration, now func() time.Time) *RetentionWorker {
	return &RetentionWorker{
		baseDir:  baseDir,
		maxAge:   maxAge,
		interval: interval,
		now:      now,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background prune loop. Does not block server startup.
func (w *RetentionWorker) Start(ctx context.Context) error {
	logging.Default().Info("retention worker starting",
		"baseDir", w.baseDir,
		"maxAge", w.maxAge.String(),
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *RetentionWorker) Stop() {
	logging.Default().Info("retention worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("retention worker stopped")
}

func (w *RetentionWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	if err := w.Prune(ctx); err != nil {
		logging.Default().Error("retention prune failed (will retry next interval)",
			"error", err.Error())
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.Prune(ctx); err != nil {
				logging.Default().Error("retention prune failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			return

		case <-ctx.Done():
			logging.Default().Info("retention worker context cancelled")
			return
		}
	}
}

// Prune performs a single prune cycle. Folders whose name does not parse
// as a date are left alone.
func (w *RetentionWorker) Prune(ctx context.Context) error {
	entries, err := os.ReadDir(w.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return goerr.Wrap(err, "failed to read response directory", goerr.T(types.ErrTagPersistence), goerr.V("baseDir", w.baseDir))
	}

	cutoff := w.now().Add(-w.maxAge)
	removed := 0

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		day, err := time.Parse(folderLayout, entry.Name())
		if err != nil {
			continue
		}
		if !day.Before(cutoff) {
			continue
		}

		path := filepath.Join(w.baseDir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return goerr.Wrap(err, "failed to remove expired folder", goerr.T(types.ErrTagPersistence), goerr.V("path", path))
		}
		logging.From(ctx).Info("removed expired response folder", "path", path)
		removed++
	}

	if removed > 0 {
		logging.Default().Info("retention prune completed", "removed", removed)
	}

	return nil
}
