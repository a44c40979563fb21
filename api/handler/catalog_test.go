package handler_test

import (
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ketabio/bookserver/ent"
)

var _ = Describe("CatalogHandler", func() {
	var (
		env   *testEnv
		admin map[string]string
	)

	BeforeEach(func() {
		cleanDB()
		env = newTestEnv()
		_, admin = loginAs("root", true)
	})

	// detailSource reads a book and returns the reported cache source.
	detailSource := func(id int) string {
		resp := decodeJSON(doGet(env.router, bookPath(id)))
		src, _ := resp["source"].(string)
		return src
	}

	// warm pulls a book through to the fast tier.
	warm := func(id int) {
		Expect(detailSource(id)).To(Equal("database"))
		Expect(detailSource(id)).To(Equal("fast"))
	}

	Describe("author endpoints", func() {
		It("creates authors", func() {
			w := doPost(env.router, "/admin/authors", map[string]interface{}{
				"name": "New Author",
				"slug": "new-author",
			}, admin)
			Expect(w.Code).To(Equal(http.StatusCreated))
		})

		It("rejects duplicate slugs with 409", func() {
			createAuthor("Taken", "taken")

			w := doPost(env.router, "/admin/authors", map[string]interface{}{
				"name": "Another",
				"slug": "taken",
			}, admin)
			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("propagates a rename into cached book payloads", func() {
			a := createAuthor("Before Rename", "before-rename")
			b := createBook("Novel", "novel", bookOpts{authors: []*ent.Author{a}})
			warm(b.ID)

			w := doPatch(env.router, "/admin/authors/"+itoa(a.ID), map[string]interface{}{
				"name": "After Rename",
			}, admin)
			Expect(w.Code).To(Equal(http.StatusOK))

			Eventually(func() string {
				resp := decodeJSON(doGet(env.router, bookPath(b.ID)))
				book := resp["book"].(map[string]interface{})
				authors := book["authors"].([]interface{})
				if len(authors) == 0 {
					return ""
				}
				name, _ := authors[0].(map[string]interface{})["name"].(string)
				return name
			}, 2*time.Second).Should(Equal("After Rename"))
		})

		It("leaves unrelated cached books on the fast tier after a rename", func() {
			a := createAuthor("Scoped", "scoped")
			mine := createBook("Mine", "mine", bookOpts{authors: []*ent.Author{a}})
			other := createBook("Other", "other", bookOpts{})
			warm(mine.ID)
			warm(other.ID)

			doPatch(env.router, "/admin/authors/"+itoa(a.ID), map[string]interface{}{"name": "Scoped Two"}, admin)

			Eventually(func() string {
				return detailSource(mine.ID)
			}, 2*time.Second).Should(Equal("database"))
			Expect(detailSource(other.ID)).To(Equal("fast"))
		})

		It("removes a deleted author from cached payloads", func() {
			keep := createAuthor("Keeper", "keeper")
			gone := createAuthor("Goner", "goner")
			b := createBook("Pair", "pair", bookOpts{authors: []*ent.Author{keep, gone}})
			warm(b.ID)

			w := doDelete(env.router, "/admin/authors/"+itoa(gone.ID), admin)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			Eventually(func() int {
				resp := decodeJSON(doGet(env.router, bookPath(b.ID)))
				book := resp["book"].(map[string]interface{})
				return len(book["authors"].([]interface{}))
			}, 2*time.Second).Should(Equal(1))
		})
	})

	Describe("category endpoints", func() {
		It("propagates a slug change to books holding it as primary", func() {
			c := createCategory("Old", "old")
			b := createBook("Primary Bound", "primary-bound", bookOpts{primary: c})
			warm(b.ID)

			w := doPatch(env.router, "/admin/categories/"+itoa(c.ID), map[string]interface{}{
				"slug": "new",
			}, admin)
			Expect(w.Code).To(Equal(http.StatusOK))

			Eventually(func() string {
				resp := decodeJSON(doGet(env.router, bookPath(b.ID)))
				book := resp["book"].(map[string]interface{})
				pc, _ := book["primary_category"].(map[string]interface{})
				slug, _ := pc["slug"].(string)
				return slug
			}, 2*time.Second).Should(Equal("new"))
		})

		It("refuses to delete a category in use as a primary category", func() {
			c := createCategory("Pinned", "pinned")
			createBook("Depends", "depends", bookOpts{primary: c})

			w := doDelete(env.router, "/admin/categories/"+itoa(c.ID), admin)
			Expect(w.Code).To(Equal(http.StatusConflict))
		})
	})

	Describe("authorization", func() {
		It("rejects anonymous callers with 401", func() {
			w := doPost(env.router, "/admin/authors", map[string]interface{}{"name": "x", "slug": "x"})
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects non-admin sessions with 403", func() {
			_, reader := loginAs("plain", false)
			w := doPost(env.router, "/admin/authors", map[string]interface{}{"name": "x", "slug": "x"}, reader)
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})
})
