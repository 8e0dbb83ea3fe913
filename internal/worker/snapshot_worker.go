package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"networth/internal/amqp"
	"networth/internal/core"
	"networth/internal/storage"
)

// EntryExporter mirrors a recorded entry to an external destination.
type EntryExporter interface {
	AppendEntry(ctx context.Context, e core.Entry) error
}

// SnapshotWorker maintains the daily net-worth snapshot. It reacts to
// entry-recorded messages and also refreshes on a timer, which covers
// events lost while the broker or worker was down.
type SnapshotWorker struct {
	storage  *storage.SQLiteRepository
	exporter EntryExporter // optional
}

func NewSnapshotWorker(storage *storage.SQLiteRepository, exporter EntryExporter) *SnapshotWorker {
	return &SnapshotWorker{
		storage:  storage,
		exporter: exporter,
	}
}

// HandleEntryRecorded processes one entry-recorded message: export the entry
// if an exporter is configured, then refresh the snapshot.
func (w *SnapshotWorker) HandleEntryRecorded(ctx context.Context, msg *amqp.EntryRecordedMessage) error {
	slog.InfoContext(ctx, "Processing entry recorded message", "id", msg.ID, "kind", msg.Kind)

	entry, err := w.storage.GetEntry(ctx, msg.ID)
	if err != nil {
		return fmt.Errorf("get entry from storage: %w", err)
	}

	if w.exporter != nil {
		if err := w.exporter.AppendEntry(ctx, entry); err != nil {
			// Export is best effort; the snapshot must still advance.
			slog.ErrorContext(ctx, "Failed to export entry", "id", entry.ID, "error", err)
		}
	}

	return w.Refresh(ctx)
}

// Refresh recomputes totals over the whole store and upserts today's
// snapshot row.
func (w *SnapshotWorker) Refresh(ctx context.Context) error {
	totals, err := w.storage.Totals(ctx)
	if err != nil {
		return fmt.Errorf("compute totals: %w", err)
	}

	day := time.Now().UTC().Format(core.DateFormat)
	if err := w.storage.SaveSnapshot(ctx, day, totals); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	slog.InfoContext(ctx, "Snapshot refreshed",
		"day", day,
		"total_assets", totals.Assets.String(),
		"total_liabilities", totals.Liabilities.String(),
		"net_worth", totals.NetWorth().String())

	return nil
}

// Run consumes entry-recorded messages and ticks a periodic refresh until
// the context is canceled.
func (w *SnapshotWorker) Run(ctx context.Context, client *amqp.Client, refreshInterval time.Duration) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return client.ConsumeWithReconnect(ctx, func(msg *amqp.EntryRecordedMessage) error {
			return w.HandleEntryRecorded(ctx, msg)
		})
	})

	g.Go(func() error {
		ticker := time.NewTicker(refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				if err := w.Refresh(ctx); err != nil {
					slog.ErrorContext(ctx, "Periodic snapshot refresh failed", "error", err)
				}
			}
		}
	})

	return g.Wait()
}
