package cache_test

import (
	"context"
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ketabio/bookserver/cache"
	"github.com/ketabio/bookserver/ent"
	entbook "github.com/ketabio/bookserver/ent/book"
	entsnapshot "github.com/ketabio/bookserver/ent/booksnapshot"
	entstats "github.com/ketabio/bookserver/ent/bookstats"
)

var _ = Describe("Manager", func() {
	var (
		ctx context.Context
		mgr *cache.Manager
	)

	BeforeEach(func() {
		cleanDB()
		ctx = context.Background()
		mgr = cache.NewManager(db, testConfig())
		DeferCleanup(mgr.Close)
	})

	Describe("GetBookDetail", func() {
		Context("with no prior cache entries", func() {
			It("serves the first read from the database and the second from the fast tier", func() {
				b := createBook("The Go Programming Language", "gopl", bookOpts{price: 10000})

				_, src, err := mgr.GetBookDetail(ctx, b.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(src).To(Equal(cache.SourceDatabase))

				_, src, err = mgr.GetBookDetail(ctx, b.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(src).To(Equal(cache.SourceFast))
			})

			It("returns byte-identical payloads regardless of the serving tier", func() {
				a := createAuthor("Alan Donovan", "alan-donovan")
				c := createCategory("Programming", "programming")
				b := createBook("The Go Programming Language", "gopl", bookOpts{
					price:   10000,
					primary: c,
					authors: []*ent.Author{a},
					cats:    []*ent.Category{c},
				})
				createIndexRow(b, 1, 1, "Introduction", 1)

				fromDB, _, err := mgr.GetBookDetail(ctx, b.ID)
				Expect(err).NotTo(HaveOccurred())
				fromFast, src, err := mgr.GetBookDetail(ctx, b.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(src).To(Equal(cache.SourceFast))

				// A second manager has an empty fast tier, so it reads the
				// snapshot row instead.
				mgr2 := cache.NewManager(db, testConfig())
				defer mgr2.Close()
				fromSnapshot, src, err := mgr2.GetBookDetail(ctx, b.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(src).To(Equal(cache.SourceSnapshot))

				dbRaw := mustMarshal(fromDB)
				Expect(mustMarshal(fromFast)).To(Equal(dbRaw))
				Expect(mustMarshal(fromSnapshot)).To(Equal(dbRaw))
			})

			It("repopulates the fast tier after a snapshot hit", func() {
				b := createBook("Snapshot Refill", "snapshot-refill", bookOpts{price: 500})

				_, _, err := mgr.GetBookDetail(ctx, b.ID)
				Expect(err).NotTo(HaveOccurred())

				mgr2 := cache.NewManager(db, testConfig())
				defer mgr2.Close()
				_, src, err := mgr2.GetBookDetail(ctx, b.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(src).To(Equal(cache.SourceSnapshot))

				_, src, err = mgr2.GetBookDetail(ctx, b.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(src).To(Equal(cache.SourceFast))
			})
		})

		Context("with a stale snapshot", func() {
			It("falls through to the database", func() {
				b := createBook("Stale Read", "stale-read", bookOpts{price: 500})

				_, _, err := mgr.GetBookDetail(ctx, b.ID)
				Expect(err).NotTo(HaveOccurred())

				// Age the snapshot beyond the TTL and use a fresh fast tier.
				_, err = db.BookSnapshot.Update().
					Where(entsnapshot.BookID(b.ID)).
					SetRefreshedAt(time.Now().Add(-25 * time.Hour)).
					Save(ctx)
				Expect(err).NotTo(HaveOccurred())

				mgr2 := cache.NewManager(db, testConfig())
				defer mgr2.Close()
				_, src, err := mgr2.GetBookDetail(ctx, b.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(src).To(Equal(cache.SourceDatabase))
			})
		})

		Context("when the book does not exist", func() {
			It("returns ErrNotFound", func() {
				_, _, err := mgr.GetBookDetail(ctx, 999999)
				Expect(err).To(MatchError(cache.ErrNotFound))
			})
		})

		Context("when the book is not published", func() {
			It("returns ErrNotFound for drafts", func() {
				b := createBook("Unfinished", "unfinished", bookOpts{status: "draft"})

				_, _, err := mgr.GetBookDetail(ctx, b.ID)
				Expect(err).To(MatchError(cache.ErrNotFound))
			})

			It("returns ErrNotFound for archived books", func() {
				b := createBook("Retired", "retired", bookOpts{status: "archived"})

				_, _, err := mgr.GetBookDetail(ctx, b.ID)
				Expect(err).To(MatchError(cache.ErrNotFound))
			})
		})

		Context("payload derivation", func() {
			It("computes discount pricing fields", func() {
				discount := int64(8000)
				b := createBook("Discounted", "discounted", bookOpts{price: 10000, discount: &discount})

				p, _, err := mgr.GetBookDetail(ctx, b.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(p.Price).To(Equal(int64(10000)))
				Expect(p.EffectivePrice).To(Equal(int64(8000)))
				Expect(p.HasDiscount).To(BeTrue())
				Expect(p.DiscountPercentage).To(Equal(20.0))
			})

			It("embeds authors, categories, primary category and the index", func() {
				a := createAuthor("Donald Knuth", "donald-knuth")
				c := createCategory("Computer Science", "computer-science")
				b := createBook("TAOCP", "taocp", bookOpts{
					price:   30000,
					primary: c,
					authors: []*ent.Author{a},
					cats:    []*ent.Category{c},
				})
				createIndexRow(b, 1, 1, "Basic Concepts", 1)
				createIndexRow(b, 40, 1, "Information Structures", 1)

				p, _, err := mgr.GetBookDetail(ctx, b.ID)
				Expect(err).NotTo(HaveOccurred())

				Expect(p.Authors).To(HaveLen(1))
				Expect(p.Authors[0].Name).To(Equal("Donald Knuth"))
				Expect(p.Categories).To(HaveLen(1))
				Expect(p.PrimaryCategory).NotTo(BeNil())
				Expect(p.PrimaryCategory.Slug).To(Equal("computer-science"))
				Expect(p.Index).To(HaveLen(2))
				Expect(p.Index[0].Title).To(Equal("Basic Concepts"))
				Expect(p.Index[1].Page).To(Equal(40))
			})

			It("increments the view count asynchronously on a database fill", func() {
				b := createBook("Counted", "counted", bookOpts{price: 100})

				_, src, err := mgr.GetBookDetail(ctx, b.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(src).To(Equal(cache.SourceDatabase))

				Eventually(func() int64 {
					s, err := db.BookStats.Query().
						Where(entstats.HasBookWith(entbook.ID(b.ID))).
						Only(ctx)
					if err != nil {
						return -1
					}
					return s.ViewCount
				}).WithTimeout(2 * time.Second).Should(Equal(int64(1)))
			})
		})
	})

	Describe("Invalidate", func() {
		It("forces the next read through the database", func() {
			b := createBook("Purged", "purged", bookOpts{price: 100})

			_, _, err := mgr.GetBookDetail(ctx, b.ID)
			Expect(err).NotTo(HaveOccurred())
			_, src, err := mgr.GetBookDetail(ctx, b.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(src).To(Equal(cache.SourceFast))

			Expect(mgr.Invalidate(ctx, b.ID)).To(Succeed())

			_, src, err = mgr.GetBookDetail(ctx, b.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(src).To(Equal(cache.SourceDatabase))
		})

		It("keeps the snapshot row instead of deleting it", func() {
			b := createBook("Soft", "soft", bookOpts{price: 100})

			_, _, err := mgr.GetBookDetail(ctx, b.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(mgr.Invalidate(ctx, b.ID)).To(Succeed())

			n, err := db.BookSnapshot.Query().
				Where(entsnapshot.BookID(b.ID)).
				Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))
		})

		It("is a no-op on an already-stale or absent entry", func() {
			b := createBook("Idempotent", "idempotent", bookOpts{price: 100})

			Expect(mgr.Invalidate(ctx, b.ID)).To(Succeed())
			Expect(mgr.Invalidate(ctx, b.ID)).To(Succeed())
			Expect(mgr.Invalidate(ctx, 424242)).To(Succeed())
		})
	})
})

func mustMarshal(v any) []byte {
	raw, err := json.Marshal(v)
	Expect(err).NotTo(HaveOccurred())
	return raw
}
