package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ketabio/bookserver/cache"
	"github.com/ketabio/bookserver/ent"
)

// CatalogHandler is the thin admin CRUD for authors and categories. Its one
// interesting job is telling the propagator which entity changed and which
// fields, so renames fan out to every dependent book's cache entries.
type CatalogHandler struct {
	db   *ent.Client
	prop *cache.Propagator
}

func NewCatalogHandler(db *ent.Client, prop *cache.Propagator) *CatalogHandler {
	return &CatalogHandler{db: db, prop: prop}
}

type authorRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	Bio  string `json:"bio"`
}

// CreateAuthor handles POST /admin/authors.
func (h *CatalogHandler) CreateAuthor(c *gin.Context) {
	var req authorRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and slug are required"})
		return
	}
	a, err := h.db.Author.Create().
		SetName(req.Name).
		SetSlug(req.Slug).
		SetBio(req.Bio).
		Save(c.Request.Context())
	if err != nil {
		if ent.IsConstraintError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
			return
		}
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}
	c.JSON(http.StatusCreated, a)
}

// UpdateAuthor handles PATCH /admin/authors/:id. A name or slug change is
// reported to the propagator; bio-only edits are invisible to the cache.
func (h *CatalogHandler) UpdateAuthor(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req authorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	builder := h.db.Author.UpdateOneID(id)
	var changed []string
	if req.Name != "" {
		builder = builder.SetName(req.Name)
		changed = append(changed, "name")
	}
	if req.Slug != "" {
		builder = builder.SetSlug(req.Slug)
		changed = append(changed, "slug")
	}
	if req.Bio != "" {
		builder = builder.SetBio(req.Bio)
		changed = append(changed, "bio")
	}

	a, err := builder.Save(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "author not found"})
			return
		}
		if ent.IsConstraintError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
			return
		}
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}

	h.prop.OnEntityUpdated(c.Request.Context(), cache.EntityAuthor, id, changed)
	c.JSON(http.StatusOK, a)
}

// DeleteAuthor handles DELETE /admin/authors/:id. Affected book ids are
// captured before the delete; afterwards the edges are gone.
func (h *CatalogHandler) DeleteAuthor(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	affected, err := h.prop.AffectedBooks(ctx, cache.EntityAuthor, id)
	if err != nil {
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}

	if err := h.db.Author.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "author not found"})
			return
		}
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}

	h.prop.OnEntityDeleted(ctx, cache.EntityAuthor, id, affected)
	c.Status(http.StatusNoContent)
}

type categoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CreateCategory handles POST /admin/categories.
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and slug are required"})
		return
	}
	cat, err := h.db.Category.Create().
		SetName(req.Name).
		SetSlug(req.Slug).
		Save(c.Request.Context())
	if err != nil {
		if ent.IsConstraintError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
			return
		}
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// UpdateCategory handles PATCH /admin/categories/:id.
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	builder := h.db.Category.UpdateOneID(id)
	var changed []string
	if req.Name != "" {
		builder = builder.SetName(req.Name)
		changed = append(changed, "name")
	}
	if req.Slug != "" {
		builder = builder.SetSlug(req.Slug)
		changed = append(changed, "slug")
	}

	cat, err := builder.Save(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		if ent.IsConstraintError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
			return
		}
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}

	h.prop.OnEntityUpdated(c.Request.Context(), cache.EntityCategory, id, changed)
	c.JSON(http.StatusOK, cat)
}

// DeleteCategory handles DELETE /admin/categories/:id. Categories still set
// as some book's primary category cannot be deleted; entitlements hang off
// that edge.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	affected, err := h.prop.AffectedBooks(ctx, cache.EntityCategory, id)
	if err != nil {
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}

	if err := h.db.Category.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		if ent.IsConstraintError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "category is in use as a primary category"})
			return
		}
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}

	h.prop.OnEntityDeleted(ctx, cache.EntityCategory, id, affected)
	c.Status(http.StatusNoContent)
}

// intParam parses an integer route parameter, writing the 400 itself.
func intParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
