package backup

import (
	"context"
	"time"

	"github.com/writewell/writewell/internal/logger"
	"github.com/writewell/writewell/internal/store"
)

// Exporter periodically writes a snapshot of the store to a file, and
// on demand through the manual trigger channel.
type Exporter struct {
	store         *store.Store
	logger        logger.Logger
	path          string
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewExporter creates an exporter writing to path every interval.
func NewExporter(
	st *store.Store,
	log logger.Logger,
	path string,
	interval time.Duration,
	manualTrigger chan struct{},
) *Exporter {
	return &Exporter{
		store:         st,
		logger:        log,
		path:          path,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start begins the periodic export process.
func (e *Exporter) Start(ctx context.Context) error {
	ticker := time.NewTicker(e.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := e.Export(); err != nil {
					e.logger.Error("scheduled backup failed",
						logger.Error(err))
				}
			case <-e.manualTrigger:
				e.logger.Info("manual backup triggered")
				if err := e.Export(); err != nil {
					e.logger.Error("manual backup failed",
						logger.Error(err))
				}
			case <-e.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the exporter.
func (e *Exporter) Stop() {
	close(e.stopCh)
}

// Export writes one snapshot of the current collections.
func (e *Exporter) Export() error {
	snap := &Snapshot{
		ExportedAt: time.Now().UTC(),
		Notes:      e.store.Notes(),
		Folders:    e.store.Folders(),
		Tags:       e.store.Tags(),
	}

	if err := snap.WriteFile(e.path); err != nil {
		return err
	}

	e.logger.Info("backup written",
		logger.String("path", e.path),
		logger.Int("notes", len(snap.Notes)),
		logger.Int("folders", len(snap.Folders)),
		logger.Int("tags", len(snap.Tags)))
	return nil
}

// Restore loads a snapshot file and replaces the store's collections
// with its contents.
func Restore(ctx context.Context, st *store.Store, log logger.Logger, path string) error {
	snap, err := Load(path)
	if err != nil {
		return err
	}

	if err := st.Restore(ctx, snap.Notes, snap.Folders, snap.Tags); err != nil {
		return err
	}

	log.Info("store restored from backup",
		logger.String("path", path),
		logger.Int("notes", len(snap.Notes)),
		logger.Int("folders", len(snap.Folders)),
		logger.Int("tags", len(snap.Tags)))
	return nil
}
