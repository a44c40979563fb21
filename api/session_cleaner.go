package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/ketabio/bookserver/config"
	"github.com/ketabio/bookserver/ent"
	entsession "github.com/ketabio/bookserver/ent/session"
)

// sessionCleanInterval is how often expired sessions are swept.
const sessionCleanInterval = time.Hour

// SessionCleaner periodically deletes sessions idle past the session TTL so
// the table does not grow unbounded when clients never log out.
type SessionCleaner struct {
	db     *ent.Client
	cfg    config.Config
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSessionCleaner(db *ent.Client, cfg config.Config) *SessionCleaner {
	return &SessionCleaner{
		db:   db,
		cfg:  cfg,
		done: make(chan struct{}),
	}
}

// Start begins the background sweep loop.
func (sc *SessionCleaner) Start(ctx context.Context) {
	ctx, sc.cancel = context.WithCancel(ctx)
	go func() {
		defer close(sc.done)
		ticker := time.NewTicker(sessionCleanInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sc.sweep(ctx)
			}
		}
	}()
}

// Stop signals the loop to stop and waits for it.
func (sc *SessionCleaner) Stop() {
	if sc.cancel != nil {
		sc.cancel()
	}
	<-sc.done
}

func (sc *SessionCleaner) sweep(ctx context.Context) {
	if sc.cfg.SessionTTL <= 0 {
		return
	}
	cutoff := time.Now().Add(-sc.cfg.SessionTTL)
	n, err := sc.db.Session.Delete().
		Where(entsession.LastActivityLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Warn("session sweep failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("expired sessions removed", "count", n)
	}
}
