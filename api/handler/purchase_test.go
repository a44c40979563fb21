package handler_test

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	entbook "github.com/ketabio/bookserver/ent/book"
	entstats "github.com/ketabio/bookserver/ent/bookstats"
)

var _ = Describe("PurchaseHandler", func() {
	var env *testEnv

	BeforeEach(func() {
		cleanDB()
		env = newTestEnv()
	})

	statsFor := func(bookID int) map[string]interface{} {
		s := db.BookStats.Query().
			Where(entstats.HasBookWith(entbook.ID(bookID))).
			OnlyX(ctxBG)
		return map[string]interface{}{
			"purchase_count": s.PurchaseCount,
			"rating":         s.Rating,
			"rating_count":   s.RatingCount,
		}
	}

	Describe("Purchase", func() {
		It("records the purchase at the effective price and bumps the counter", func() {
			_, headers := loginAs("buyer", false)
			b := createBook("Deal", "deal", bookOpts{price: 10000, discount: int64Ptr(8000)})

			w := doPost(env.router, bookPath(b.ID)+"/purchase", nil, headers)
			Expect(w.Code).To(Equal(http.StatusCreated))
			resp := decodeJSON(w)
			Expect(resp["amount"]).To(BeNumerically("==", 8000))
			Expect(resp["status"]).To(Equal("completed"))
			Expect(statsFor(b.ID)["purchase_count"]).To(BeNumerically("==", 1))
		})

		It("lets the buyer read page one immediately", func() {
			_, headers := loginAs("eager", false)
			b := createBook("Fresh", "fresh", bookOpts{price: 1000, pages: 1})
			createPage(b, 1, 1, "opening line")

			// A denied read first, so the negative result sits in the
			// entitlement cache when the purchase lands.
			Expect(doGet(env.router, pagePath(b.ID, 1), headers).Code).To(Equal(http.StatusForbidden))

			Expect(doPost(env.router, bookPath(b.ID)+"/purchase", nil, headers).Code).To(Equal(http.StatusCreated))

			w := doGet(env.router, pagePath(b.ID, 1), headers)
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("is idempotent for an already purchased book", func() {
			u, headers := loginAs("repeat", false)
			b := createBook("Once", "once", bookOpts{price: 1000})
			createCompletedPurchase(u, b)

			w := doPost(env.router, bookPath(b.ID)+"/purchase", nil, headers)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeJSON(w)["status"]).To(Equal("already_purchased"))
			Expect(statsFor(b.ID)["purchase_count"]).To(BeNumerically("==", 0))
		})

		It("rejects unknown and unpublished books", func() {
			_, headers := loginAs("lost", false)
			draft := createBook("Draft", "draft-sale", bookOpts{status: "draft"})

			Expect(doPost(env.router, bookPath(draft.ID)+"/purchase", nil, headers).Code).To(Equal(http.StatusNotFound))
			Expect(doPost(env.router, bookPath(999999)+"/purchase", nil, headers).Code).To(Equal(http.StatusNotFound))
		})

		It("requires a session", func() {
			b := createBook("NoAuth", "no-auth", bookOpts{price: 1000})
			Expect(doPost(env.router, bookPath(b.ID)+"/purchase", nil).Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("Rate", func() {
		It("folds ratings into the running mean", func() {
			_, headers := loginAs("critic", false)
			b := createBook("Rated", "rated", bookOpts{price: 1000})

			w := doPost(env.router, bookPath(b.ID)+"/rating", map[string]interface{}{"rating": 5}, headers)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeJSON(w)["rating"]).To(BeNumerically("==", 5))

			w = doPost(env.router, bookPath(b.ID)+"/rating", map[string]interface{}{"rating": 2}, headers)
			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decodeJSON(w)
			Expect(resp["rating"]).To(BeNumerically("~", 3.5, 0.0001))
			Expect(resp["rating_count"]).To(BeNumerically("==", 2))

			Expect(statsFor(b.ID)["rating_count"]).To(BeNumerically("==", 2))
		})

		It("rejects out-of-range ratings", func() {
			_, headers := loginAs("harsh", false)
			b := createBook("Bounds", "bounds", bookOpts{price: 1000})

			Expect(doPost(env.router, bookPath(b.ID)+"/rating", map[string]interface{}{"rating": 0}, headers).Code).To(Equal(http.StatusBadRequest))
			Expect(doPost(env.router, bookPath(b.ID)+"/rating", map[string]interface{}{"rating": 6}, headers).Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 for unpublished books", func() {
			_, headers := loginAs("early-bird", false)
			draft := createBook("Hidden", "hidden-rate", bookOpts{status: "draft"})

			w := doPost(env.router, bookPath(draft.ID)+"/rating", map[string]interface{}{"rating": 4}, headers)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Subscribe", func() {
		It("creates a subscription on the book's primary category and unlocks pages", func() {
			_, headers := loginAs("joiner", false)
			c := createCategory("Poetry", "poetry")
			b := createBook("Verses", "verses", bookOpts{price: 1000, pages: 1, primary: c})
			other := createBook("More Verses", "more-verses", bookOpts{price: 1000, pages: 1, primary: c})
			createPage(b, 1, 1, "a poem")
			createPage(other, 1, 1, "another poem")

			w := doPost(env.router, bookPath(b.ID)+"/subscribe", map[string]interface{}{"days": 7}, headers)
			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(decodeJSON(w)["category"]).To(Equal("poetry"))

			// The subscription covers every book with the same primary category.
			Expect(doGet(env.router, pagePath(b.ID, 1), headers).Code).To(Equal(http.StatusOK))
			Expect(doGet(env.router, pagePath(other.ID, 1), headers).Code).To(Equal(http.StatusOK))
		})

		It("returns 409 for a book without a primary category", func() {
			_, headers := loginAs("stray", false)
			b := createBook("Uncategorized", "uncategorized", bookOpts{price: 1000})

			w := doPost(env.router, bookPath(b.ID)+"/subscribe", nil, headers)
			Expect(w.Code).To(Equal(http.StatusConflict))
		})
	})
})
