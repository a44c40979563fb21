package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/ketabio/bookserver/cache"
	"github.com/ketabio/bookserver/ent"
)

const maxCoverBytes = 4 << 20 // 4 MiB

// CoverHandler stores and serves book cover images from the book row.
type CoverHandler struct {
	db  *ent.Client
	mgr *cache.Manager
}

func NewCoverHandler(db *ent.Client, mgr *cache.Manager) *CoverHandler {
	return &CoverHandler{db: db, mgr: mgr}
}

// GetCover handles GET /books/:id/cover. Public; covers render in listings
// for anonymous readers.
func (h *CoverHandler) GetCover(c *gin.Context) {
	id, ok := bookIDParam(c)
	if !ok {
		return
	}
	b, err := h.db.Book.Get(c.Request.Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			writeCacheError(c, cache.ErrNotFound)
			return
		}
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}
	if b.Cover == nil || len(*b.Cover) == 0 {
		c.Status(http.StatusNotFound)
		return
	}
	ct := "image/jpeg"
	if b.CoverContentType != nil && *b.CoverContentType != "" {
		ct = *b.CoverContentType
	}
	c.Data(http.StatusOK, ct, *b.Cover)
}

// UploadCover handles PUT /books/:id/cover (admin). The body is the raw
// image; the content type is sniffed rather than trusted, since mimetype
// recognises more formats than the Content-Type header tends to carry.
func (h *CoverHandler) UploadCover(c *gin.Context) {
	id, ok := bookIDParam(c)
	if !ok {
		return
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCoverBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty body"})
		return
	}
	if len(data) > maxCoverBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "cover must be <= 4 MiB"})
		return
	}

	ct := mimetype.Detect(data).String()
	if !strings.HasPrefix(ct, "image/") {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "body must be an image"})
		return
	}

	err = h.db.Book.UpdateOneID(id).
		SetCover(data).
		SetCoverContentType(ct).
		Exec(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			writeCacheError(c, cache.ErrNotFound)
			return
		}
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}

	// The cached payload references the cover by URL, not bytes, but the
	// cover_url presence flips on first upload.
	_ = h.mgr.Invalidate(c.Request.Context(), id)

	c.JSON(http.StatusOK, gin.H{"content_type": ct, "size": len(data)})
}
