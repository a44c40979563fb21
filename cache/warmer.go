package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/ketabio/bookserver/config"
	"github.com/ketabio/bookserver/ent"
	entbook "github.com/ketabio/bookserver/ent/book"
	entstats "github.com/ketabio/bookserver/ent/bookstats"
)

// Warmer pre-populates the cache for the highest-traffic books, typically at
// deploy time or on a schedule.
type Warmer struct {
	db       *ent.Client
	mgr      *Manager
	sink     EventSink
	limit    int
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewWarmer creates a warmer. Call Start for the periodic loop, or WarmTop
// directly for a one-shot run.
func NewWarmer(db *ent.Client, mgr *Manager, cfg config.Config, sink EventSink) *Warmer {
	return &Warmer{
		db:       db,
		mgr:      mgr,
		sink:     sink,
		limit:    cfg.WarmupLimit,
		interval: cfg.WarmupInterval,
		done:     make(chan struct{}),
	}
}

// Start begins the periodic warmup loop with an immediate first run.
// No-op when the interval is zero or negative.
func (w *Warmer) Start(ctx context.Context) {
	if w.interval <= 0 {
		close(w.done)
		return
	}
	ctx, w.cancel = context.WithCancel(ctx)
	go func() {
		defer close(w.done)

		w.WarmTop(ctx, w.limit)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.WarmTop(ctx, w.limit)
			}
		}
	}()
}

// Stop signals the loop to stop and waits for it.
func (w *Warmer) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	<-w.done
}

// WarmTop loads the n most-viewed published books through the tiered read
// path, sequentially on purpose — a parallel warmup at cold start would be a
// thundering herd against the store the cache exists to protect. Books that
// resolve to NotFound are skipped, not counted. Returns the count warmed.
func (w *Warmer) WarmTop(ctx context.Context, n int) int {
	if n <= 0 {
		return 0
	}

	ids, err := w.db.BookStats.Query().
		Where(entstats.HasBookWith(entbook.StatusEQ(entbook.StatusPublished))).
		Order(entstats.ByViewCount(sql.OrderDesc())).
		Limit(n).
		QueryBook().
		IDs(ctx)
	if err != nil {
		slog.Error("warmer: selecting top books", "error", err)
		return 0
	}

	count := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		_, _, err := w.mgr.GetBookDetail(ctx, id)
		switch {
		case err == nil:
			count++
		case errors.Is(err, ErrNotFound):
			// Unpublished since selection — skip.
		default:
			slog.Warn("warmer: warm failed", "book_id", id, "error", err)
		}
	}

	if count > 0 {
		slog.Info("warmer: cache warmed", "count", count)
		publish(w.sink, Event{Kind: EventWarmed, Count: count})
	}
	return count
}
