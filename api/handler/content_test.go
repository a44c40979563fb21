package handler_test

import (
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ContentHandler", func() {
	var env *testEnv

	BeforeEach(func() {
		cleanDB()
		env = newTestEnv()
	})

	Describe("GetPageContent", func() {
		It("returns 401 for anonymous callers", func() {
			b := createBook("Sealed", "sealed", bookOpts{price: 1000, pages: 3})
			createPage(b, 1, 1, "first paragraph")

			w := doGet(env.router, pagePath(b.ID, 1))
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns 403 for a session without entitlement", func() {
			_, headers := loginAs("peeker", false)
			b := createBook("Gated", "gated", bookOpts{price: 1000, pages: 3})
			createPage(b, 1, 1, "first paragraph")

			w := doGet(env.router, pagePath(b.ID, 1), headers)
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("serves ordered paragraphs to a purchaser", func() {
			u, headers := loginAs("owner", false)
			b := createBook("Open", "open", bookOpts{price: 1000, pages: 3})
			createPage(b, 1, 2, "second")
			createPage(b, 1, 1, "first")
			createPage(b, 2, 1, "next page")
			createCompletedPurchase(u, b)

			w := doGet(env.router, pagePath(b.ID, 1), headers)
			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decodeJSON(w)
			Expect(resp["page"]).To(BeNumerically("==", 1))
			paragraphs := resp["paragraphs"].([]interface{})
			Expect(paragraphs).To(HaveLen(2))
			Expect(paragraphs[0].(map[string]interface{})["text"]).To(Equal("first"))
			Expect(paragraphs[1].(map[string]interface{})["text"]).To(Equal("second"))
		})

		It("serves free books to any session", func() {
			_, headers := loginAs("taster", false)
			b := createBook("Gratis", "gratis", bookOpts{free: true, pages: 1})
			createPage(b, 1, 1, "free text")

			w := doGet(env.router, pagePath(b.ID, 1), headers)
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("serves subscribers of the primary category", func() {
			u, headers := loginAs("member", false)
			c := createCategory("History", "history")
			b := createBook("Archive", "archive", bookOpts{price: 1000, pages: 1, primary: c})
			createPage(b, 1, 1, "chapter one")
			createSubscription(u, c, time.Now().Add(24*time.Hour))

			w := doGet(env.router, pagePath(b.ID, 1), headers)
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("returns 404 for an unknown book even with a session", func() {
			_, headers := loginAs("wanderer", false)

			w := doGet(env.router, pagePath(999999, 1), headers)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 404 for a draft book before the entitlement check decides 403", func() {
			_, headers := loginAs("early", false)
			b := createBook("Unreleased", "unreleased", bookOpts{status: "draft", pages: 1})
			createPage(b, 1, 1, "draft text")

			w := doGet(env.router, pagePath(b.ID, 1), headers)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 404 for a page past the end", func() {
			u, headers := loginAs("finisher", false)
			b := createBook("Short", "short", bookOpts{price: 1000, pages: 2})
			createPage(b, 1, 1, "only page")
			createCompletedPurchase(u, b)

			w := doGet(env.router, pagePath(b.ID, 3), headers)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 400 for a malformed page number", func() {
			_, headers := loginAs("typo", false)
			b := createBook("Typo", "typo", bookOpts{free: true, pages: 1})

			w := doGet(env.router, bookPath(b.ID)+"/pages/zero", headers)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
