package handler_test

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ketabio/bookserver/ent"
	entbook "github.com/ketabio/bookserver/ent/book"
	entstats "github.com/ketabio/bookserver/ent/bookstats"
)

var _ = Describe("BookHandler", func() {
	var env *testEnv

	BeforeEach(func() {
		cleanDB()
		env = newTestEnv()
	})

	Describe("GetBookDetail", func() {
		It("serves the payload with its source and advances tiers", func() {
			b := createBook("Tiers", "tiers", bookOpts{price: 10000, discount: int64Ptr(8000)})

			w := doGet(env.router, bookPath(b.ID))
			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decodeJSON(w)
			Expect(resp["source"]).To(Equal("database"))
			book := resp["book"].(map[string]interface{})
			Expect(book["title"]).To(Equal("Tiers"))
			Expect(book["effective_price"]).To(BeNumerically("==", 8000))
			Expect(book["has_discount"]).To(BeTrue())
			Expect(book["discount_percentage"]).To(BeNumerically("==", 20.0))

			w = doGet(env.router, bookPath(b.ID))
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeJSON(w)["source"]).To(Equal("fast"))
		})

		It("omits user_access for anonymous callers", func() {
			b := createBook("Anon", "anon", bookOpts{price: 1000})

			resp := decodeJSON(doGet(env.router, bookPath(b.ID)))
			Expect(resp).NotTo(HaveKey("user_access"))
		})

		It("attaches user_access for authenticated callers", func() {
			u, headers := loginAs("buyer", false)
			b := createBook("Owned", "owned", bookOpts{price: 1000})
			createCompletedPurchase(u, b)

			w := doGet(env.router, bookPath(b.ID), headers)
			Expect(w.Code).To(Equal(http.StatusOK))
			access := decodeJSON(w)["user_access"].(map[string]interface{})
			Expect(access["has_access"]).To(BeTrue())
			Expect(access["access_type"]).To(Equal("purchased"))
		})

		It("reports no access for an entitled-less session", func() {
			_, headers := loginAs("browser", false)
			b := createBook("Locked", "locked", bookOpts{price: 1000})

			access := decodeJSON(doGet(env.router, bookPath(b.ID), headers))["user_access"].(map[string]interface{})
			Expect(access["has_access"]).To(BeFalse())
			Expect(access["access_type"]).To(Equal("none"))
		})

		It("returns 404 for unknown and unpublished books", func() {
			draft := createBook("Draft", "draft-book", bookOpts{status: "draft"})

			Expect(doGet(env.router, bookPath(draft.ID)).Code).To(Equal(http.StatusNotFound))
			Expect(doGet(env.router, bookPath(999999)).Code).To(Equal(http.StatusNotFound))
		})

		It("returns 400 for a malformed id", func() {
			Expect(doGet(env.router, "/books/abc").Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("ListBooks", func() {
		var fiction, science *ent.Category

		BeforeEach(func() {
			fiction = createCategory("Fiction", "fiction")
			science = createCategory("Science", "science")
		})

		It("lists only published books", func() {
			createBook("Visible", "visible", bookOpts{})
			createBook("Hidden Draft", "hidden-draft", bookOpts{status: "draft"})
			createBook("Hidden Archive", "hidden-archive", bookOpts{status: "archived"})

			resp := decodeJSON(doGet(env.router, "/books"))
			Expect(resp["total"]).To(BeNumerically("==", 1))
			books := resp["books"].([]interface{})
			Expect(books).To(HaveLen(1))
			Expect(books[0].(map[string]interface{})["slug"]).To(Equal("visible"))
		})

		It("filters by category slug, including primary-only books", func() {
			createBook("In List", "in-list", bookOpts{cats: []*ent.Category{fiction}})
			createBook("As Primary", "as-primary", bookOpts{primary: fiction})
			createBook("Elsewhere", "elsewhere", bookOpts{cats: []*ent.Category{science}})

			resp := decodeJSON(doGet(env.router, "/books?category=fiction"))
			Expect(resp["total"]).To(BeNumerically("==", 2))
		})

		It("sorts by view count for sort=popular", func() {
			createBook("Quiet", "quiet", bookOpts{})
			loud := createBook("Loud", "loud", bookOpts{})
			db.BookStats.Update().
				Where(entstats.HasBookWith(entbook.ID(loud.ID))).
				SetViewCount(100).
				ExecX(ctxBG)

			resp := decodeJSON(doGet(env.router, "/books?sort=popular"))
			books := resp["books"].([]interface{})
			Expect(books).To(HaveLen(2))
			Expect(books[0].(map[string]interface{})["slug"]).To(Equal("loud"))
			Expect(books[1].(map[string]interface{})["slug"]).To(Equal("quiet"))
		})

		It("paginates", func() {
			for i := 0; i < 5; i++ {
				createBook("Book "+string(rune('A'+i)), "book-"+string(rune('a'+i)), bookOpts{})
			}

			resp := decodeJSON(doGet(env.router, "/books?page=2&page_size=2"))
			Expect(resp["total"]).To(BeNumerically("==", 5))
			Expect(resp["page"]).To(BeNumerically("==", 2))
			Expect(resp["books"].([]interface{})).To(HaveLen(2))
		})
	})
})
