package cache_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ketabio/bookserver/cache"
	entbook "github.com/ketabio/bookserver/ent/book"
	entstats "github.com/ketabio/bookserver/ent/bookstats"
)

var _ = Describe("Warmer", func() {
	var (
		ctx    context.Context
		mgr    *cache.Manager
		sink   *recordingSink
		warmer *cache.Warmer
	)

	BeforeEach(func() {
		cleanDB()
		ctx = context.Background()
		mgr = cache.NewManager(db, testConfig())
		DeferCleanup(mgr.Close)
		sink = &recordingSink{}
		warmer = cache.NewWarmer(db, mgr, testConfig(), sink)
	})

	setViews := func(bookID, views int) {
		db.BookStats.Update().
			Where(entstats.HasBookWith(entbook.ID(bookID))).
			SetViewCount(int64(views)).
			ExecX(ctx)
	}

	Describe("WarmTop", func() {
		It("preloads the most viewed published books", func() {
			hot := createBook("Hot", "hot", bookOpts{})
			mild := createBook("Mild", "mild", bookOpts{})
			cold := createBook("Cold", "cold", bookOpts{})
			setViews(hot.ID, 500)
			setViews(mild.ID, 50)
			setViews(cold.ID, 5)

			n := warmer.WarmTop(ctx, 2)
			Expect(n).To(Equal(2))

			_, src, err := mgr.GetBookDetail(ctx, hot.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(src).To(Equal(cache.SourceFast))

			_, src, err = mgr.GetBookDetail(ctx, mild.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(src).To(Equal(cache.SourceFast))

			_, src, err = mgr.GetBookDetail(ctx, cold.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(src).To(Equal(cache.SourceDatabase))
		})

		It("skips unpublished books regardless of view count", func() {
			draft := createBook("Draft Hit", "draft-hit", bookOpts{status: "draft"})
			published := createBook("Modest", "modest", bookOpts{})
			setViews(draft.ID, 9000)
			setViews(published.ID, 10)

			n := warmer.WarmTop(ctx, 5)
			Expect(n).To(Equal(1))

			_, src, err := mgr.GetBookDetail(ctx, published.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(src).To(Equal(cache.SourceFast))
		})

		It("publishes a warmed event with the count", func() {
			createBook("Counted", "counted", bookOpts{})

			warmer.WarmTop(ctx, 10)

			sink.mu.Lock()
			defer sink.mu.Unlock()
			Expect(sink.events).To(HaveLen(1))
			Expect(sink.events[0].Kind).To(Equal(cache.EventWarmed))
			Expect(sink.events[0].Count).To(Equal(1))
		})

		It("returns zero when nothing is published", func() {
			createBook("Hidden", "hidden", bookOpts{status: "archived"})

			Expect(warmer.WarmTop(ctx, 10)).To(BeZero())
		})

		It("returns zero for a non-positive limit", func() {
			createBook("Any", "any", bookOpts{})

			Expect(warmer.WarmTop(ctx, 0)).To(BeZero())
		})
	})

	Describe("Start", func() {
		It("is a no-op when no interval is configured", func() {
			warmer.Start(ctx)
			warmer.Stop()
		})
	})
})
