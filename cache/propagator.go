package cache

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/ketabio/bookserver/config"
	"github.com/ketabio/bookserver/ent"
	entauthor "github.com/ketabio/bookserver/ent/author"
	entbook "github.com/ketabio/bookserver/ent/book"
	entcategory "github.com/ketabio/bookserver/ent/category"
	"github.com/ketabio/bookserver/ent/schema"
)

// EntityType identifies which kind of entity a mutation event refers to.
type EntityType string

const (
	EntityAuthor   EntityType = "author"
	EntityCategory EntityType = "category"
	EntityBook     EntityType = "book"
)

// job is one unit of propagation work: a single affected book.
type job struct {
	bookID int
	// syncEmbeds re-derives the book's denormalized author/category embeds
	// from the normalized relations before invalidating. Set for dependency
	// changes, not for plain book updates (those already wrote their own
	// embeds synchronously).
	syncEmbeds bool
}

// Propagator keeps derived caches coherent when upstream entities mutate.
// Dependency changes fan out to one queued job per affected book, drained by
// a fixed worker pool, so a rename touching thousands of books never blocks
// the mutating request and never starves other propagation work.
type Propagator struct {
	db   *ent.Client
	mgr  *Manager
	sink EventSink

	jobs    chan job
	workers int

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPropagator creates a propagator. Call Start to launch the worker pool.
func NewPropagator(db *ent.Client, mgr *Manager, cfg config.Config, sink EventSink) *Propagator {
	workers := cfg.InvalidationWorkers
	if workers <= 0 {
		workers = 1
	}
	queue := cfg.InvalidationQueueSize
	if queue <= 0 {
		queue = 256
	}
	return &Propagator{
		db:      db,
		mgr:     mgr,
		sink:    sink,
		jobs:    make(chan job, queue),
		workers: workers,
	}
}

// Start launches the worker pool. Safe to call once.
func (p *Propagator) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j := <-p.jobs:
					p.process(ctx, j)
				}
			}
		}()
	}
}

// Stop signals the workers to stop and waits for them. Queued jobs that were
// not picked up are dropped; the snapshot TTL self-heals anything missed.
func (p *Propagator) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
}

// OnEntityUpdated reacts to an entity mutation raised by the administrative
// CRUD layer. Author/category changes only matter when the name or slug
// changed — those are the denormalized fields. Book updates invalidate the
// book itself without re-deriving embeds.
func (p *Propagator) OnEntityUpdated(ctx context.Context, typ EntityType, id int, changedFields []string) {
	switch typ {
	case EntityAuthor, EntityCategory:
		if !touchesEmbeds(changedFields) {
			return
		}
		p.fanOut(ctx, typ, id)
	case EntityBook:
		p.enqueue(job{bookID: id})
	}
}

// OnEntityDeleted reacts to an entity deletion. Must be called after the
// delete committed, so embed re-derivation sees the relation without the
// removed entity.
func (p *Propagator) OnEntityDeleted(ctx context.Context, typ EntityType, id int, affectedBookIDs []int) {
	switch typ {
	case EntityAuthor, EntityCategory:
		for _, bookID := range affectedBookIDs {
			p.enqueue(job{bookID: bookID, syncEmbeds: true})
		}
	case EntityBook:
		p.enqueue(job{bookID: id})
	}
}

// fanOut enumerates the books attached to a changed author or category and
// enqueues one job per book.
func (p *Propagator) fanOut(ctx context.Context, typ EntityType, id int) {
	ids, err := p.affectedBooks(ctx, typ, id)
	if err != nil {
		slog.Error("propagator: enumerating affected books", "entity", typ, "id", id, "error", err)
		return
	}
	for _, bookID := range ids {
		p.enqueue(job{bookID: bookID, syncEmbeds: true})
	}
}

// AffectedBooks returns the ids of every book whose cache depends on the
// given entity. For categories this includes books holding it as primary
// category, since those embed it in the payload as well.
func (p *Propagator) AffectedBooks(ctx context.Context, typ EntityType, id int) ([]int, error) {
	return p.affectedBooks(ctx, typ, id)
}

func (p *Propagator) affectedBooks(ctx context.Context, typ EntityType, id int) ([]int, error) {
	q := p.db.Book.Query()
	switch typ {
	case EntityAuthor:
		q = q.Where(entbook.HasAuthorsWith(entauthor.ID(id)))
	case EntityCategory:
		q = q.Where(entbook.Or(
			entbook.HasCategoriesWith(entcategory.ID(id)),
			entbook.HasPrimaryCategoryWith(entcategory.ID(id)),
		))
	default:
		return nil, nil
	}
	return q.IDs(ctx)
}

// enqueue adds a job without blocking. On a full queue the job is dropped:
// cache correctness never depends on propagation arriving, and the snapshot
// TTL bounds the resulting staleness.
func (p *Propagator) enqueue(j job) {
	select {
	case p.jobs <- j:
	default:
		slog.Warn("propagator: queue full, dropping invalidation", "book_id", j.bookID)
	}
}

// process handles one affected book: optionally re-derive its embeds from
// the normalized relations, then purge both cache tiers.
func (p *Propagator) process(ctx context.Context, j job) {
	if j.syncEmbeds {
		if err := p.syncEmbeds(ctx, j.bookID); err != nil {
			// The stale embeds stay until the next successful sync; the
			// invalidation below still forces a reload of everything else.
			slog.Error("propagator: embed sync failed", "book_id", j.bookID, "error", err)
		}
	}
	if err := p.mgr.Invalidate(ctx, j.bookID); err != nil {
		slog.Error("propagator: invalidation failed", "book_id", j.bookID, "error", err)
		return
	}
	publish(p.sink, Event{Kind: EventInvalidated, BookID: j.bookID})
}

// syncEmbeds rewrites a book's denormalized author/category embeds as a
// fresh projection of the normalized relations.
func (p *Propagator) syncEmbeds(ctx context.Context, bookID int) error {
	authors, err := p.db.Book.Query().
		Where(entbook.ID(bookID)).
		QueryAuthors().
		Order(entauthor.ByID()).
		All(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil // book deleted meanwhile
		}
		return err
	}
	categories, err := p.db.Book.Query().
		Where(entbook.ID(bookID)).
		QueryCategories().
		Order(entcategory.ByID()).
		All(ctx)
	if err != nil {
		return err
	}

	authorRefs := make([]schema.EntityRef, len(authors))
	for i, a := range authors {
		authorRefs[i] = schema.EntityRef{ID: a.ID, Name: a.Name, Slug: a.Slug}
	}
	categoryRefs := make([]schema.EntityRef, len(categories))
	for i, c := range categories {
		categoryRefs[i] = schema.EntityRef{ID: c.ID, Name: c.Name, Slug: c.Slug}
	}

	err = p.db.Book.UpdateOneID(bookID).
		SetAuthorsEmbed(authorRefs).
		SetCategoriesEmbed(categoryRefs).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return nil
	}
	return err
}

func touchesEmbeds(changedFields []string) bool {
	return slices.Contains(changedFields, "name") || slices.Contains(changedFields, "slug")
}
