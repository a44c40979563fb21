package handler_test

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// pngHeader is enough of a PNG for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

var _ = Describe("CoverHandler", func() {
	var (
		env   *testEnv
		admin map[string]string
	)

	BeforeEach(func() {
		cleanDB()
		env = newTestEnv()
		_, admin = loginAs("librarian", true)
	})

	Describe("UploadCover and GetCover", func() {
		It("stores the sniffed image and serves it publicly", func() {
			b := createBook("Illustrated", "illustrated", bookOpts{})

			w := doRawPut(env.router, "/admin"+bookPath(b.ID)+"/cover", pngHeader, "application/octet-stream", admin)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeJSON(w)["content_type"]).To(Equal("image/png"))

			r := doGet(env.router, bookPath(b.ID)+"/cover")
			Expect(r.Code).To(Equal(http.StatusOK))
			Expect(r.Header().Get("Content-Type")).To(ContainSubstring("image/png"))
			Expect(r.Body.Bytes()).To(Equal(pngHeader))
		})

		It("rejects non-image bodies", func() {
			b := createBook("Plain", "plain", bookOpts{})

			w := doRawPut(env.router, "/admin"+bookPath(b.ID)+"/cover", []byte("just text"), "text/plain", admin)
			Expect(w.Code).To(Equal(http.StatusUnsupportedMediaType))
		})

		It("rejects an empty body", func() {
			b := createBook("Empty", "empty", bookOpts{})

			w := doRawPut(env.router, "/admin"+bookPath(b.ID)+"/cover", nil, "image/png", admin)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 serving a book without a cover", func() {
			b := createBook("Bare", "bare", bookOpts{})
			Expect(doGet(env.router, bookPath(b.ID)+"/cover").Code).To(Equal(http.StatusNotFound))
		})

		It("requires admin for uploads", func() {
			b := createBook("Guarded", "guarded", bookOpts{})
			_, reader := loginAs("visitor", false)

			w := doRawPut(env.router, "/admin"+bookPath(b.ID)+"/cover", pngHeader, "image/png", reader)
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})
})
