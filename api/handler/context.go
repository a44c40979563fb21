package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ketabio/bookserver/api/middleware"
	"github.com/ketabio/bookserver/cache"
	"github.com/ketabio/bookserver/ent"
)

// userFromCtx extracts the authenticated user from the gin context, nil when
// the request is anonymous.
func userFromCtx(c *gin.Context) *ent.User {
	u, _ := c.Get(middleware.ContextKeyUser)
	user, _ := u.(*ent.User)
	return user
}

// bookIDParam parses the :id route parameter. Writes the 400 response itself
// on failure.
func bookIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book ID"})
		return 0, false
	}
	return id, true
}

// writeCacheError maps the cache package's error taxonomy onto HTTP statuses:
// not found 404, access denied 403, unauthenticated 401, transient store
// failures 503 with a Retry-After hint.
func writeCacheError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cache.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
	case errors.Is(err, cache.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	case errors.Is(err, cache.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case cache.IsTransient(err):
		c.Header("Retry-After", "1")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
