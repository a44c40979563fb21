package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ketabio/bookserver/cache"
	"github.com/ketabio/bookserver/config"
)

// CacheAdminHandler exposes the cache's operator controls.
type CacheAdminHandler struct {
	mgr    *cache.Manager
	warmer *cache.Warmer
	cfg    config.Config
}

func NewCacheAdminHandler(mgr *cache.Manager, warmer *cache.Warmer, cfg config.Config) *CacheAdminHandler {
	return &CacheAdminHandler{mgr: mgr, warmer: warmer, cfg: cfg}
}

// Invalidate handles POST /admin/cache/invalidate/:id — the synchronous
// purge. Idempotent: purging an unknown or already-stale book succeeds.
func (h *CacheAdminHandler) Invalidate(c *gin.Context) {
	id, ok := bookIDParam(c)
	if !ok {
		return
	}
	if err := h.mgr.Invalidate(c.Request.Context(), id); err != nil {
		writeCacheError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invalidated": id})
}

// Warm handles POST /admin/cache/warm?limit=n. Without a limit the
// configured warmup limit applies.
func (h *CacheAdminHandler) Warm(c *gin.Context) {
	limit := h.cfg.WarmupLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}
	warmed := h.warmer.WarmTop(c.Request.Context(), limit)
	c.JSON(http.StatusOK, gin.H{"warmed": warmed})
}
