package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ketabio/bookserver/cache"
	"github.com/ketabio/bookserver/ent"
	entbook "github.com/ketabio/bookserver/ent/book"
	entstats "github.com/ketabio/bookserver/ent/bookstats"
	entpurchase "github.com/ketabio/bookserver/ent/purchase"
	entuser "github.com/ketabio/bookserver/ent/user"
)

// defaultSubscriptionDays is the subscription length when the request does
// not specify one.
const defaultSubscriptionDays = 30

// PurchaseHandler records purchases, ratings and subscriptions. Payment
// processing happens elsewhere; this layer only records the outcome and keeps
// the entitlement cache honest.
type PurchaseHandler struct {
	db       *ent.Client
	resolver *cache.AccessResolver
}

func NewPurchaseHandler(db *ent.Client, resolver *cache.AccessResolver) *PurchaseHandler {
	return &PurchaseHandler{db: db, resolver: resolver}
}

// Purchase handles POST /books/:id/purchase. It records a completed purchase
// at the book's effective price, bumps the purchase counter, and drops the
// cached entitlement so the very next page read sees the new access.
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	user := userFromCtx(c)
	id, ok := bookIDParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	b, err := h.db.Book.Query().
		Where(entbook.ID(id), entbook.StatusEQ(entbook.StatusPublished)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			writeCacheError(c, cache.ErrNotFound)
			return
		}
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}

	exists, err := h.db.Purchase.Query().
		Where(
			entpurchase.HasUserWith(entuser.ID(user.ID)),
			entpurchase.HasBookWith(entbook.ID(id)),
			entpurchase.StatusEQ(entpurchase.StatusCompleted),
		).
		Exist(ctx)
	if err != nil {
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}
	if exists {
		c.JSON(http.StatusOK, gin.H{"status": "already_purchased"})
		return
	}

	amount := b.Price
	if b.DiscountPrice != nil {
		amount = *b.DiscountPrice
	}
	p, err := h.db.Purchase.Create().
		SetUser(user).
		SetBook(b).
		SetAmount(amount).
		SetStatus(entpurchase.StatusCompleted).
		Save(ctx)
	if err != nil {
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}

	// Atomic SQL add; the counter is never derived from a cached value.
	_, err = h.db.BookStats.Update().
		Where(entstats.HasBookWith(entbook.ID(id))).
		AddPurchaseCount(1).
		Save(ctx)
	if err != nil {
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}

	h.resolver.Forget(user.ID, id)

	c.JSON(http.StatusCreated, gin.H{
		"purchase_id": p.ID,
		"amount":      amount,
		"status":      p.Status,
	})
}

type ratingRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// Rate handles POST /books/:id/rating. New ratings fold into the running
// mean; the count only ever increases.
func (h *PurchaseHandler) Rate(c *gin.Context) {
	id, ok := bookIDParam(c)
	if !ok {
		return
	}
	var req ratingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}
	ctx := c.Request.Context()

	tx, err := h.db.Tx(ctx)
	if err != nil {
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}

	stats, err := tx.BookStats.Query().
		Where(entstats.HasBookWith(
			entbook.ID(id),
			entbook.StatusEQ(entbook.StatusPublished),
		)).
		Only(ctx)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsNotFound(err) {
			writeCacheError(c, cache.ErrNotFound)
			return
		}
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}

	newCount := stats.RatingCount + 1
	newMean := (stats.Rating*float64(stats.RatingCount) + float64(req.Rating)) / float64(newCount)
	err = tx.BookStats.UpdateOne(stats).
		SetRating(newMean).
		SetRatingCount(newCount).
		Exec(ctx)
	if err != nil {
		_ = tx.Rollback()
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}
	if err := tx.Commit(); err != nil {
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rating":       newMean,
		"rating_count": newCount,
	})
}

type subscribeRequest struct {
	Days int `json:"days"`
}

// Subscribe handles POST /books/:id/subscribe: a thin subscription on the
// book's primary category.
func (h *PurchaseHandler) Subscribe(c *gin.Context) {
	user := userFromCtx(c)
	id, ok := bookIDParam(c)
	if !ok {
		return
	}
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	days := req.Days
	if days <= 0 {
		days = defaultSubscriptionDays
	}
	ctx := c.Request.Context()

	b, err := h.db.Book.Query().
		Where(entbook.ID(id), entbook.StatusEQ(entbook.StatusPublished)).
		WithPrimaryCategory().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			writeCacheError(c, cache.ErrNotFound)
			return
		}
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}
	if b.Edges.PrimaryCategory == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "book has no primary category"})
		return
	}

	expires := time.Now().Add(time.Duration(days) * 24 * time.Hour)
	sub, err := h.db.Subscription.Create().
		SetUser(user).
		SetCategory(b.Edges.PrimaryCategory).
		SetActive(true).
		SetExpiresAt(expires).
		Save(ctx)
	if err != nil {
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}

	h.resolver.Forget(user.ID, id)

	c.JSON(http.StatusCreated, gin.H{
		"subscription_id": sub.ID,
		"category":        b.Edges.PrimaryCategory.Slug,
		"expires_at":      sub.ExpiresAt,
	})
}
