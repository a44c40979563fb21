package cache_test

import (
	"context"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/ketabio/bookserver/cache"
	"github.com/ketabio/bookserver/ent"
)

// countingDriver wraps a dialect.Driver and counts read queries, so specs
// can assert that a cached entitlement result does not touch the store.
type countingDriver struct {
	dialect.Driver
	queries atomic.Int64
}

func (d *countingDriver) Query(ctx context.Context, query string, args, v any) error {
	d.queries.Add(1)
	return d.Driver.Query(ctx, query, args, v)
}

var _ = Describe("AccessResolver", func() {
	var (
		ctx      context.Context
		resolver *cache.AccessResolver
	)

	BeforeEach(func() {
		cleanDB()
		ctx = context.Background()
		resolver = cache.NewAccessResolver(db, testConfig())
		DeferCleanup(resolver.Close)
	})

	Describe("Resolve", func() {
		Context("with a completed purchase", func() {
			It("returns purchased access without expiry", func() {
				u := createUser("alice")
				b := createBook("Bought", "bought", bookOpts{price: 1000})
				createCompletedPurchase(u, b)

				acc, err := resolver.Resolve(ctx, u.ID, b.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(acc.HasAccess).To(BeTrue())
				Expect(acc.Type).To(Equal(cache.AccessPurchased))
				Expect(acc.ExpiresAt).To(BeNil())
			})

			It("prefers the purchase over an unrelated subscription", func() {
				u := createUser("bob")
				c := createCategory("History", "history")
				other := createCategory("Poetry", "poetry")
				b := createBook("Bought Too", "bought-too", bookOpts{price: 1000, primary: c})
				createCompletedPurchase(u, b)
				createSubscription(u, other, time.Now().Add(24*time.Hour))

				acc, err := resolver.Resolve(ctx, u.ID, b.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(acc.Type).To(Equal(cache.AccessPurchased))
			})
		})

		Context("with a pending purchase only", func() {
			It("does not grant access", func() {
				u := createUser("carol")
				b := createBook("Pending", "pending", bookOpts{price: 1000})
				_, err := db.Purchase.Create().
					SetUser(u).
					SetBook(b).
					SetAmount(b.Price).
					Save(ctx)
				Expect(err).NotTo(HaveOccurred())

				acc, err := resolver.Resolve(ctx, u.ID, b.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(acc.HasAccess).To(BeFalse())
				Expect(acc.Type).To(Equal(cache.AccessNone))
			})
		})

		Context("with an active subscription on the primary category", func() {
			It("returns subscription access with the subscription's expiry", func() {
				u := createUser("dave")
				c := createCategory("Science", "science")
				b := createBook("Subscribed", "subscribed", bookOpts{price: 1000, primary: c})
				expires := time.Now().Add(48 * time.Hour)
				createSubscription(u, c, expires)

				acc, err := resolver.Resolve(ctx, u.ID, b.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(acc.HasAccess).To(BeTrue())
				Expect(acc.Type).To(Equal(cache.AccessSubscription))
				Expect(acc.ExpiresAt).NotTo(BeNil())
				Expect(acc.ExpiresAt.Unix()).To(Equal(expires.Unix()))
			})

			It("ignores expired subscriptions", func() {
				u := createUser("erin")
				c := createCategory("Fiction", "fiction")
				b := createBook("Lapsed", "lapsed", bookOpts{price: 1000, primary: c})
				createSubscription(u, c, time.Now().Add(-time.Hour))

				acc, err := resolver.Resolve(ctx, u.ID, b.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(acc.HasAccess).To(BeFalse())
			})

			It("ignores subscriptions on a non-primary category", func() {
				u := createUser("frank")
				primary := createCategory("Primary", "primary")
				secondary := createCategory("Secondary", "secondary")
				b := createBook("Wrong Category", "wrong-category", bookOpts{
					price:   1000,
					primary: primary,
					cats:    []*ent.Category{secondary},
				})
				createSubscription(u, secondary, time.Now().Add(24*time.Hour))

				acc, err := resolver.Resolve(ctx, u.ID, b.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(acc.HasAccess).To(BeFalse())
			})
		})

		Context("with a free book", func() {
			It("grants access without purchase or subscription", func() {
				u := createUser("grace")
				b := createBook("Gratis", "gratis", bookOpts{free: true})

				acc, err := resolver.Resolve(ctx, u.ID, b.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(acc.HasAccess).To(BeTrue())
				Expect(acc.Type).To(Equal(cache.AccessFree))
			})
		})

		Context("caching", func() {
			It("caches negative results and does not re-query within the TTL", func() {
				// A dedicated client on a counting driver, sharing the same
				// in-memory database as the suite's fixtures.
				drv, err := entsql.Open("sqlite3", "file:cache_test?mode=memory&cache=shared&_pragma=foreign_keys(1)")
				Expect(err).NotTo(HaveOccurred())
				counting := &countingDriver{Driver: drv}
				client := ent.NewClient(ent.Driver(counting))
				defer func() { _ = client.Close() }()

				u := createUser("heidi")
				b := createBook("Probed", "probed", bookOpts{price: 1000})

				r := cache.NewAccessResolver(client, testConfig())
				defer r.Close()

				acc, err := r.Resolve(ctx, u.ID, b.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(acc.HasAccess).To(BeFalse())
				queriesAfterMiss := counting.queries.Load()
				Expect(queriesAfterMiss).To(BeNumerically(">", 0))

				acc, err = r.Resolve(ctx, u.ID, b.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(acc.HasAccess).To(BeFalse())
				Expect(counting.queries.Load()).To(Equal(queriesAfterMiss))
			})

			It("caches positive results", func() {
				u := createUser("ivan")
				b := createBook("Kept", "kept", bookOpts{price: 1000})
				createCompletedPurchase(u, b)

				first, err := resolver.Resolve(ctx, u.ID, b.ID)
				Expect(err).NotTo(HaveOccurred())

				// Deleting the purchase is not visible until the TTL expires.
				db.Purchase.Delete().ExecX(ctx)

				second, err := resolver.Resolve(ctx, u.ID, b.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(second).To(Equal(first))
			})
		})
	})

	Describe("Forget", func() {
		It("makes a fresh purchase visible immediately", func() {
			u := createUser("judy")
			b := createBook("Just Bought", "just-bought", bookOpts{price: 1000})

			acc, err := resolver.Resolve(ctx, u.ID, b.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(acc.HasAccess).To(BeFalse())

			createCompletedPurchase(u, b)
			resolver.Forget(u.ID, b.ID)

			acc, err = resolver.Resolve(ctx, u.ID, b.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(acc.HasAccess).To(BeTrue())
			Expect(acc.Type).To(Equal(cache.AccessPurchased))
		})
	})
})
