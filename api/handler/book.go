package handler

import (
	"net/http"
	"strconv"

	"entgo.io/ent/dialect/sql"
	"github.com/gin-gonic/gin"

	"github.com/ketabio/bookserver/cache"
	"github.com/ketabio/bookserver/ent"
	entbook "github.com/ketabio/bookserver/ent/book"
	entstats "github.com/ketabio/bookserver/ent/bookstats"
	entcategory "github.com/ketabio/bookserver/ent/category"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// BookHandler serves book detail through the tiered cache and the uncached
// thin listing.
type BookHandler struct {
	db       *ent.Client
	mgr      *cache.Manager
	resolver *cache.AccessResolver
}

func NewBookHandler(db *ent.Client, mgr *cache.Manager, resolver *cache.AccessResolver) *BookHandler {
	return &BookHandler{db: db, mgr: mgr, resolver: resolver}
}

// GetBookDetail handles GET /books/:id. The payload comes from the tiered
// cache; user_access is attached only for authenticated callers and is never
// part of the cached bytes.
func (h *BookHandler) GetBookDetail(c *gin.Context) {
	id, ok := bookIDParam(c)
	if !ok {
		return
	}

	payload, source, err := h.mgr.GetBookDetail(c.Request.Context(), id)
	if err != nil {
		writeCacheError(c, err)
		return
	}

	resp := gin.H{
		"book":   payload,
		"source": source,
	}
	if user := userFromCtx(c); user != nil {
		access, err := h.resolver.Resolve(c.Request.Context(), user.ID, id)
		if err != nil {
			writeCacheError(c, err)
			return
		}
		resp["user_access"] = access
	}
	c.JSON(http.StatusOK, resp)
}

// ListBooks handles GET /books: a thin, uncached listing of published books
// with category filter, sort (latest, popular, rating) and pagination. Detail
// reads go through the cache; the listing reads the store directly since its
// result set shifts with every filter combination.
func (h *BookHandler) ListBooks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if size < 1 || size > maxPageSize {
		size = defaultPageSize
	}

	q := h.db.Book.Query().
		Where(entbook.StatusEQ(entbook.StatusPublished))
	if slug := c.Query("category"); slug != "" {
		q = q.Where(entbook.Or(
			entbook.HasCategoriesWith(entcategory.Slug(slug)),
			entbook.HasPrimaryCategoryWith(entcategory.Slug(slug)),
		))
	}

	switch c.DefaultQuery("sort", "latest") {
	case "popular":
		q = q.Order(entbook.ByStatsField(entstats.FieldViewCount, sql.OrderDesc()))
	case "rating":
		q = q.Order(entbook.ByStatsField(entstats.FieldRating, sql.OrderDesc()))
	default:
		q = q.Order(entbook.ByCreatedAt(sql.OrderDesc()))
	}

	total, err := q.Clone().Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporarily unavailable"})
		return
	}

	books, err := q.
		WithStats().
		Limit(size).
		Offset((page - 1) * size).
		All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporarily unavailable"})
		return
	}

	items := make([]gin.H, 0, len(books))
	for _, b := range books {
		items = append(items, listItem(b))
	}
	c.JSON(http.StatusOK, gin.H{
		"books":     items,
		"page":      page,
		"page_size": size,
		"total":     total,
	})
}

// listItem projects a book row into the listing shape. The embeds make this a
// single-table read; no author or category joins.
func listItem(b *ent.Book) gin.H {
	item := gin.H{
		"id":         b.ID,
		"title":      b.Title,
		"slug":       b.Slug,
		"excerpt":    b.Excerpt,
		"pages":      b.Pages,
		"price":      b.Price,
		"is_free":    b.IsFree,
		"authors":    b.AuthorsEmbed,
		"categories": b.CategoriesEmbed,
		"created_at": b.CreatedAt,
	}
	if b.DiscountPrice != nil {
		item["discount_price"] = *b.DiscountPrice
	}
	if s := b.Edges.Stats; s != nil {
		item["rating"] = s.Rating
		item["rating_count"] = s.RatingCount
		item["view_count"] = s.ViewCount
	}
	return item
}
