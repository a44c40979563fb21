package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/ketabio/bookserver/config"
	"github.com/ketabio/bookserver/ent"
	entbook "github.com/ketabio/bookserver/ent/book"
	entcontent "github.com/ketabio/bookserver/ent/bookcontent"
	entsnapshot "github.com/ketabio/bookserver/ent/booksnapshot"
	entstats "github.com/ketabio/bookserver/ent/bookstats"
	"github.com/ketabio/bookserver/ent/schema"
)

// Source identifies which tier served a read. Exposed for observability and
// tests only — nothing downstream may branch on it.
type Source string

const (
	SourceFast     Source = "fast"
	SourceSnapshot Source = "snapshot"
	SourceDatabase Source = "database"
)

// forceStaleBackdate is how far into the past a snapshot's refreshed_at is
// moved on invalidation. Far enough that no plausible SnapshotTTL still
// considers the row fresh; the row itself is kept so invalidating thousands
// of books stays a timestamp update per row instead of a delete storm.
const forceStaleBackdate = 48 * time.Hour

// statsTimeout bounds the fire-and-forget view-count increment.
const statsTimeout = 5 * time.Second

// Manager orchestrates the three-tier book-detail lookup and is the sole
// writer of cache entries. Concurrent fills for the same book are accepted:
// both writers derive the payload from current store state, so last-writer-
// wins converges.
type Manager struct {
	db          *ent.Client
	fast        *ttlcache.Cache[int, []byte]
	snapshotTTL time.Duration
	fillTimeout time.Duration
}

// NewManager creates a manager with a running fast-tier eviction loop.
// Call Close when done.
func NewManager(db *ent.Client, cfg config.Config) *Manager {
	fast := ttlcache.New[int, []byte](
		ttlcache.WithTTL[int, []byte](cfg.FastTTL),
		ttlcache.WithDisableTouchOnHit[int, []byte](),
	)
	go fast.Start() // automatic expired-item eviction

	return &Manager{
		db:          db,
		fast:        fast,
		snapshotTTL: cfg.SnapshotTTL,
		fillTimeout: cfg.FillTimeout,
	}
}

// Close stops the fast-tier eviction loop.
func (m *Manager) Close() {
	m.fast.Stop()
}

// GetBookDetail returns the denormalized payload for a published book,
// checking the fast tier, then the snapshot table, then assembling from the
// canonical store. Returns ErrNotFound for absent or unpublished books and
// a TransientError for store failures; cache-write failures never fail a
// read that already has data.
func (m *Manager) GetBookDetail(ctx context.Context, id int) (*BookPayload, Source, error) {
	if item := m.fast.Get(id); item != nil {
		p, err := decodePayload(item.Value())
		if err == nil {
			return p, SourceFast, nil
		}
		// Corrupt entry — drop it and fall through.
		slog.Warn("cache: discarding undecodable fast-tier entry", "book_id", id, "error", err)
		m.fast.Delete(id)
	}

	cutoff := time.Now().Add(-m.snapshotTTL)
	snap, err := m.db.BookSnapshot.Query().
		Where(entsnapshot.BookID(id), entsnapshot.RefreshedAtGT(cutoff)).
		Only(ctx)
	if err == nil {
		p, derr := decodePayload(snap.Payload)
		if derr == nil {
			// Write-through into the fast tier with the exact snapshot bytes
			// so subsequent reads stay byte-identical.
			m.fast.Set(id, snap.Payload, ttlcache.DefaultTTL)
			return p, SourceSnapshot, nil
		}
		slog.Warn("cache: discarding undecodable snapshot", "book_id", id, "error", derr)
	} else if !ent.IsNotFound(err) {
		// A failing snapshot read is not fatal — the canonical store below
		// is authoritative. Log and fall through.
		slog.Warn("cache: snapshot read failed", "book_id", id, "error", err)
	}

	fillCtx, cancel := context.WithTimeout(ctx, m.fillTimeout)
	defer cancel()

	p, raw, err := m.assemble(fillCtx, id)
	if err != nil {
		return nil, "", err
	}

	if err := m.writeSnapshot(fillCtx, id, raw); err != nil {
		slog.Warn("cache: snapshot write failed", "book_id", id, "error", err)
	}
	m.fast.Set(id, raw, ttlcache.DefaultTTL)

	// View-count increment happens after the response, never blocking it.
	// Atomic SQL add — a read-modify-write from the payload would lose
	// updates under concurrency.
	go m.bumpViewCount(id)

	return p, SourceDatabase, nil
}

// Invalidate synchronously purges both cache tiers for a book: the fast-tier
// entry is deleted and the snapshot is force-staled by back-dating
// refreshed_at. The snapshot row is kept. Invalidating an already-stale or
// absent entry is a no-op.
func (m *Manager) Invalidate(ctx context.Context, id int) error {
	m.fast.Delete(id)
	_, err := m.db.BookSnapshot.Update().
		Where(entsnapshot.BookID(id)).
		SetRefreshedAt(time.Now().Add(-forceStaleBackdate)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("cache: force-staling snapshot for book %d: %w", id, err)
	}
	return nil
}

// assemble builds the payload from the canonical store: the book row with
// its denormalized embeds, the stats row, and the table-of-contents rows.
func (m *Manager) assemble(ctx context.Context, id int) (*BookPayload, []byte, error) {
	b, err := m.db.Book.Query().
		Where(entbook.ID(id), entbook.StatusEQ(entbook.StatusPublished)).
		WithPrimaryCategory().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, &TransientError{Err: err}
	}

	stats, err := m.db.BookStats.Query().
		Where(entstats.HasBookWith(entbook.ID(id))).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, nil, &TransientError{Err: err}
	}

	tocRows, err := m.db.BookContent.Query().
		Where(entcontent.HasBookWith(entbook.ID(id)), entcontent.IsIndex(true)).
		Order(entcontent.ByPageNumber(), entcontent.ByOrder()).
		All(ctx)
	if err != nil {
		return nil, nil, &TransientError{Err: err}
	}

	toc := make([]IndexEntry, len(tocRows))
	for i, row := range tocRows {
		toc[i] = IndexEntry{
			ID:    row.ID,
			Title: row.IndexTitle,
			Level: row.IndexLevel,
			Page:  row.PageNumber,
		}
	}

	p := &BookPayload{
		ID:                 b.ID,
		Title:              b.Title,
		Slug:               b.Slug,
		Excerpt:            b.Excerpt,
		Content:            b.Content,
		Pages:              b.Pages,
		Price:              b.Price,
		DiscountPrice:      b.DiscountPrice,
		EffectivePrice:     effectivePrice(b.Price, b.DiscountPrice),
		HasDiscount:        hasDiscount(b.Price, b.DiscountPrice),
		DiscountPercentage: discountPercentage(b.Price, b.DiscountPrice),
		IsFree:             b.IsFree,
		Authors:            emptyIfNil(b.AuthorsEmbed),
		Categories:         emptyIfNil(b.CategoriesEmbed),
		Index:              toc,
		CreatedAt:          b.CreatedAt,
	}
	if b.Cover != nil && len(*b.Cover) > 0 {
		p.CoverURL = fmt.Sprintf("/books/%d/cover", b.ID)
	}
	if pc := b.Edges.PrimaryCategory; pc != nil {
		p.PrimaryCategory = &schema.EntityRef{ID: pc.ID, Name: pc.Name, Slug: pc.Slug}
	}
	if stats != nil {
		p.Rating = stats.Rating
		p.RatingCount = stats.RatingCount
		p.ViewCount = stats.ViewCount
		p.PurchaseCount = stats.PurchaseCount
		p.DownloadCount = stats.DownloadCount
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return nil, nil, fmt.Errorf("cache: encoding payload for book %d: %w", id, err)
	}
	return p, raw, nil
}

// writeSnapshot upserts the snapshot row for a book. Update-then-create
// instead of ON CONFLICT: concurrent fills write convergent payloads, so a
// lost race is harmless.
func (m *Manager) writeSnapshot(ctx context.Context, id int, raw []byte) error {
	n, err := m.db.BookSnapshot.Update().
		Where(entsnapshot.BookID(id)).
		SetPayload(raw).
		SetRefreshedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	err = m.db.BookSnapshot.Create().
		SetBookID(id).
		SetPayload(raw).
		SetRefreshedAt(time.Now()).
		Exec(ctx)
	if ent.IsConstraintError(err) {
		// Another filler created the row first — convergent payload, done.
		return nil
	}
	return err
}

func (m *Manager) bumpViewCount(id int) {
	ctx, cancel := context.WithTimeout(context.Background(), statsTimeout)
	defer cancel()
	err := m.db.BookStats.Update().
		Where(entstats.HasBookWith(entbook.ID(id))).
		AddViewCount(1).
		Exec(ctx)
	if err != nil {
		slog.Warn("cache: view-count increment failed", "book_id", id, "error", err)
	}
}

func decodePayload(raw []byte) (*BookPayload, error) {
	var p BookPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// emptyIfNil keeps the JSON representation stable: embeds serialize as []
// rather than null regardless of how the row was written.
func emptyIfNil(refs []schema.EntityRef) []schema.EntityRef {
	if refs == nil {
		return []schema.EntityRef{}
	}
	return refs
}
