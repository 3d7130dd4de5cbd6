package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// BadgerGC periodically rewrites Badger's value log to reclaim space left
// behind by read-status updates and soft deletes. Badger never runs this
// on its own.
type BadgerGC struct {
	log      *slog.Logger
	db       *badger.DB
	interval time.Duration
}

func NewBadgerGC(log *slog.Logger, db *badger.DB, interval time.Duration) *BadgerGC {
	return &BadgerGC{log: log, db: db, interval: interval}
}

func (w *BadgerGC) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping value log GC")
			return nil
		case <-ticker.C:
			// Each successful call rewrites one file; loop until
			// there is nothing left worth rewriting.
			for {
				if err := w.db.RunValueLogGC(0.5); err != nil {
					break
				}
				w.log.Debug("Value log file rewritten")
			}
		}
	}
}
