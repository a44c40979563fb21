package handler_test

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	entsnapshot "github.com/ketabio/bookserver/ent/booksnapshot"
)

var _ = Describe("CacheAdminHandler", func() {
	var (
		env   *testEnv
		admin map[string]string
	)

	BeforeEach(func() {
		cleanDB()
		env = newTestEnv()
		_, admin = loginAs("operator", true)
	})

	detailSource := func(id int) string {
		resp := decodeJSON(doGet(env.router, bookPath(id)))
		src, _ := resp["source"].(string)
		return src
	}

	Describe("Invalidate", func() {
		It("forces the next read back to the database without dropping the snapshot row", func() {
			b := createBook("Purged", "purged", bookOpts{})
			Expect(detailSource(b.ID)).To(Equal("database"))
			Expect(detailSource(b.ID)).To(Equal("fast"))

			w := doPost(env.router, "/admin/cache/invalidate/"+itoa(b.ID), nil, admin)
			Expect(w.Code).To(Equal(http.StatusOK))

			Expect(detailSource(b.ID)).To(Equal("database"))
			count := db.BookSnapshot.Query().
				Where(entsnapshot.BookID(b.ID)).
				CountX(ctxBG)
			Expect(count).To(Equal(1))
		})

		It("succeeds for an unknown book", func() {
			w := doPost(env.router, "/admin/cache/invalidate/999999", nil, admin)
			Expect(w.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("Warm", func() {
		It("preloads books and reports the count", func() {
			createBook("First", "first", bookOpts{})
			createBook("Second", "second", bookOpts{})
			createBook("Unpublished", "unpublished", bookOpts{status: "draft"})

			w := doPost(env.router, "/admin/cache/warm", nil, admin)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeJSON(w)["warmed"]).To(BeNumerically("==", 2))
		})

		It("honours the limit query parameter", func() {
			createBook("One", "one", bookOpts{})
			createBook("Two", "two", bookOpts{})

			w := doPost(env.router, "/admin/cache/warm?limit=1", nil, admin)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeJSON(w)["warmed"]).To(BeNumerically("==", 1))
		})

		It("rejects a malformed limit", func() {
			w := doPost(env.router, "/admin/cache/warm?limit=none", nil, admin)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("authorization", func() {
		It("is admin-only", func() {
			_, reader := loginAs("curious", false)
			Expect(doPost(env.router, "/admin/cache/warm", nil, reader).Code).To(Equal(http.StatusForbidden))
			Expect(doPost(env.router, "/admin/cache/warm", nil).Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
