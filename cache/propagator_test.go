package cache_test

import (
	"context"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ketabio/bookserver/cache"
	"github.com/ketabio/bookserver/ent"
	entbook "github.com/ketabio/bookserver/ent/book"
	entsnapshot "github.com/ketabio/bookserver/ent/booksnapshot"
	entstats "github.com/ketabio/bookserver/ent/bookstats"
)

// recordingSink collects published events for assertions.
type recordingSink struct {
	mu     sync.Mutex
	events []cache.Event
}

func (s *recordingSink) Publish(ev cache.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordingSink) invalidatedBooks() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []int
	for _, ev := range s.events {
		if ev.Kind == cache.EventInvalidated {
			ids = append(ids, ev.BookID)
		}
	}
	return ids
}

var _ = Describe("Propagator", func() {
	var (
		ctx  context.Context
		mgr  *cache.Manager
		sink *recordingSink
		prop *cache.Propagator
	)

	BeforeEach(func() {
		cleanDB()
		ctx = context.Background()
		mgr = cache.NewManager(db, testConfig())
		DeferCleanup(mgr.Close)
		sink = &recordingSink{}
		prop = cache.NewPropagator(db, mgr, testConfig(), sink)
		prop.Start(ctx)
		DeferCleanup(prop.Stop)
	})

	// warm loads a book through every tier so the specs can observe the
	// invalidation flipping its source back to the database.
	warm := func(id int) {
		_, src, err := mgr.GetBookDetail(ctx, id)
		Expect(err).NotTo(HaveOccurred())
		Expect(src).To(Equal(cache.SourceDatabase))
		_, src, err = mgr.GetBookDetail(ctx, id)
		Expect(err).NotTo(HaveOccurred())
		Expect(src).To(Equal(cache.SourceFast))
	}

	sourceOf := func(id int) cache.Source {
		_, src, err := mgr.GetBookDetail(ctx, id)
		Expect(err).NotTo(HaveOccurred())
		return src
	}

	Describe("author updates", func() {
		It("invalidates exactly the author's books", func() {
			shared := createAuthor("Shared Author", "shared-author")
			other := createAuthor("Other Author", "other-author")
			a := createBook("Alpha", "alpha", bookOpts{authors: []*ent.Author{shared}})
			b := createBook("Beta", "beta", bookOpts{authors: []*ent.Author{shared}})
			c := createBook("Gamma", "gamma", bookOpts{authors: []*ent.Author{shared, other}})
			d := createBook("Delta", "delta", bookOpts{authors: []*ent.Author{other}})
			for _, id := range []int{a.ID, b.ID, c.ID, d.ID} {
				warm(id)
			}

			err := db.Author.UpdateOneID(shared.ID).SetName("Renamed Author").Exec(ctx)
			Expect(err).NotTo(HaveOccurred())
			prop.OnEntityUpdated(ctx, cache.EntityAuthor, shared.ID, []string{"name"})

			Eventually(func() []int {
				return sink.invalidatedBooks()
			}, 2*time.Second).Should(ConsistOf(a.ID, b.ID, c.ID))

			Expect(sourceOf(a.ID)).To(Equal(cache.SourceDatabase))
			Expect(sourceOf(b.ID)).To(Equal(cache.SourceDatabase))
			Expect(sourceOf(c.ID)).To(Equal(cache.SourceDatabase))
			Expect(sourceOf(d.ID)).To(Equal(cache.SourceFast))
		})

		It("re-derives the embedded author name", func() {
			au := createAuthor("Old Name", "old-name")
			b := createBook("Renamer", "renamer", bookOpts{authors: []*ent.Author{au}})
			warm(b.ID)

			err := db.Author.UpdateOneID(au.ID).SetName("New Name").Exec(ctx)
			Expect(err).NotTo(HaveOccurred())
			prop.OnEntityUpdated(ctx, cache.EntityAuthor, au.ID, []string{"name"})

			Eventually(func() []int {
				return sink.invalidatedBooks()
			}, 2*time.Second).Should(ConsistOf(b.ID))

			payload, _, err := mgr.GetBookDetail(ctx, b.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(payload.Authors).To(HaveLen(1))
			Expect(payload.Authors[0].Name).To(Equal("New Name"))
		})

		It("ignores changes to fields outside the embeds", func() {
			au := createAuthor("Stable", "stable")
			b := createBook("Untouched", "untouched", bookOpts{authors: []*ent.Author{au}})
			warm(b.ID)

			prop.OnEntityUpdated(ctx, cache.EntityAuthor, au.ID, []string{"bio"})

			Consistently(func() []int {
				return sink.invalidatedBooks()
			}, 200*time.Millisecond).Should(BeEmpty())
			Expect(sourceOf(b.ID)).To(Equal(cache.SourceFast))
		})
	})

	Describe("category updates", func() {
		It("invalidates books holding the category as primary as well", func() {
			c := createCategory("Before", "before")
			viaPrimary := createBook("Primary Holder", "primary-holder", bookOpts{primary: c})
			viaList := createBook("List Holder", "list-holder", bookOpts{cats: []*ent.Category{c}})
			warm(viaPrimary.ID)
			warm(viaList.ID)

			err := db.Category.UpdateOneID(c.ID).SetSlug("after").Exec(ctx)
			Expect(err).NotTo(HaveOccurred())
			prop.OnEntityUpdated(ctx, cache.EntityCategory, c.ID, []string{"slug"})

			Eventually(func() []int {
				return sink.invalidatedBooks()
			}, 2*time.Second).Should(ConsistOf(viaPrimary.ID, viaList.ID))

			payload, _, err := mgr.GetBookDetail(ctx, viaPrimary.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(payload.PrimaryCategory).NotTo(BeNil())
			Expect(payload.PrimaryCategory.Slug).To(Equal("after"))
		})
	})

	Describe("book updates", func() {
		It("invalidates the book itself", func() {
			b := createBook("Self", "self", bookOpts{})
			warm(b.ID)

			prop.OnEntityUpdated(ctx, cache.EntityBook, b.ID, []string{"title"})

			Eventually(func() []int {
				return sink.invalidatedBooks()
			}, 2*time.Second).Should(ConsistOf(b.ID))
			Expect(sourceOf(b.ID)).To(Equal(cache.SourceDatabase))
		})
	})

	Describe("deletions", func() {
		It("re-derives embeds for the books captured before the delete", func() {
			keep := createAuthor("Keeper", "keeper")
			gone := createAuthor("Goner", "goner")
			b := createBook("Survivor", "survivor", bookOpts{authors: []*ent.Author{keep, gone}})
			warm(b.ID)

			affected, err := prop.AffectedBooks(ctx, cache.EntityAuthor, gone.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(affected).To(ConsistOf(b.ID))

			err = db.Author.DeleteOneID(gone.ID).Exec(ctx)
			Expect(err).NotTo(HaveOccurred())
			prop.OnEntityDeleted(ctx, cache.EntityAuthor, gone.ID, affected)

			Eventually(func() []int {
				return sink.invalidatedBooks()
			}, 2*time.Second).Should(ConsistOf(b.ID))

			payload, _, err := mgr.GetBookDetail(ctx, b.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(payload.Authors).To(HaveLen(1))
			Expect(payload.Authors[0].Slug).To(Equal("keeper"))
		})

		It("invalidates a deleted book's cache entries", func() {
			b := createBook("Removed", "removed", bookOpts{})
			warm(b.ID)

			db.BookStats.Delete().
				Where(entstats.HasBookWith(entbook.ID(b.ID))).
				ExecX(ctx)
			err := db.Book.DeleteOneID(b.ID).Exec(ctx)
			Expect(err).NotTo(HaveOccurred())
			prop.OnEntityDeleted(ctx, cache.EntityBook, b.ID, nil)

			Eventually(func() []int {
				return sink.invalidatedBooks()
			}, 2*time.Second).Should(ConsistOf(b.ID))

			_, _, err = mgr.GetBookDetail(ctx, b.ID)
			Expect(err).To(MatchError(cache.ErrNotFound))
		})
	})

	Describe("invalidation semantics", func() {
		It("back-dates the snapshot instead of deleting it", func() {
			b := createBook("Kept Row", "kept-row", bookOpts{})
			warm(b.ID)

			prop.OnEntityUpdated(ctx, cache.EntityBook, b.ID, []string{"title"})

			Eventually(func() []int {
				return sink.invalidatedBooks()
			}, 2*time.Second).Should(ConsistOf(b.ID))

			count := db.BookSnapshot.Query().
				Where(entsnapshot.BookID(b.ID)).
				CountX(ctx)
			Expect(count).To(Equal(1))
		})
	})
})
