package cache

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"

	"github.com/ketabio/bookserver/config"
	"github.com/ketabio/bookserver/ent"
	entbook "github.com/ketabio/bookserver/ent/book"
	entcategory "github.com/ketabio/bookserver/ent/category"
	entpurchase "github.com/ketabio/bookserver/ent/purchase"
	entsub "github.com/ketabio/bookserver/ent/subscription"
	entuser "github.com/ketabio/bookserver/ent/user"
)

// AccessType classifies how a user came to have (or not have) access.
type AccessType string

const (
	AccessPurchased    AccessType = "purchased"
	AccessSubscription AccessType = "subscription"
	AccessFree         AccessType = "free"
	AccessNone         AccessType = "none"
)

// Access is the result of an entitlement check.
type Access struct {
	HasAccess bool       `json:"has_access"`
	Type      AccessType `json:"access_type"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// AccessResolver answers "may this user read this book" with a short-TTL
// cache per (user, book) pair. Negative results are cached too — with their
// own, typically shorter, TTL — so repeated no-access probing (bots, crawler
// retries) never hammers the store.
type AccessResolver struct {
	db          *ent.Client
	cache       *ttlcache.Cache[string, Access]
	ttl         time.Duration
	negativeTTL time.Duration
}

// NewAccessResolver creates a resolver with a running eviction loop.
// Call Close when done.
func NewAccessResolver(db *ent.Client, cfg config.Config) *AccessResolver {
	c := ttlcache.New[string, Access](
		ttlcache.WithDisableTouchOnHit[string, Access](),
	)
	go c.Start()

	return &AccessResolver{
		db:          db,
		cache:       c,
		ttl:         cfg.AccessTTL,
		negativeTTL: cfg.AccessNegativeTTL,
	}
}

// Close stops the eviction loop.
func (r *AccessResolver) Close() {
	r.cache.Stop()
}

// Resolve checks entitlement for (user, book). Precedence: completed
// purchase, then free book, then an unexpired subscription on the book's
// primary category. The result — positive or negative — is cached.
func (r *AccessResolver) Resolve(ctx context.Context, userID uuid.UUID, bookID int) (Access, error) {
	key := accessKey(userID, bookID)
	if item := r.cache.Get(key); item != nil {
		return item.Value(), nil
	}

	acc, err := r.lookup(ctx, userID, bookID)
	if err != nil {
		return Access{}, err
	}

	ttl := r.ttl
	if !acc.HasAccess {
		ttl = r.negativeTTL
	}
	r.cache.Set(key, acc, ttl)
	return acc, nil
}

// Forget drops the cached result for (user, book). Called after a purchase
// completes so the new entitlement is visible immediately instead of after
// the negative TTL runs out.
func (r *AccessResolver) Forget(userID uuid.UUID, bookID int) {
	r.cache.Delete(accessKey(userID, bookID))
}

func (r *AccessResolver) lookup(ctx context.Context, userID uuid.UUID, bookID int) (Access, error) {
	purchased, err := r.db.Purchase.Query().
		Where(
			entpurchase.HasUserWith(entuser.ID(userID)),
			entpurchase.HasBookWith(entbook.ID(bookID)),
			entpurchase.StatusEQ(entpurchase.StatusCompleted),
		).
		Exist(ctx)
	if err != nil {
		return Access{}, &TransientError{Err: err}
	}
	if purchased {
		return Access{HasAccess: true, Type: AccessPurchased}, nil
	}

	b, err := r.db.Book.Query().
		Where(entbook.ID(bookID)).
		WithPrimaryCategory().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return Access{Type: AccessNone}, nil
		}
		return Access{}, &TransientError{Err: err}
	}
	if b.IsFree {
		return Access{HasAccess: true, Type: AccessFree}, nil
	}
	pc := b.Edges.PrimaryCategory
	if pc == nil {
		return Access{Type: AccessNone}, nil
	}

	sub, err := r.db.Subscription.Query().
		Where(
			entsub.HasUserWith(entuser.ID(userID)),
			entsub.HasCategoryWith(entcategory.ID(pc.ID)),
			entsub.Active(true),
			entsub.ExpiresAtGT(time.Now()),
		).
		Order(entsub.ByExpiresAt(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return Access{Type: AccessNone}, nil
		}
		return Access{}, &TransientError{Err: err}
	}
	return Access{HasAccess: true, Type: AccessSubscription, ExpiresAt: &sub.ExpiresAt}, nil
}

func accessKey(userID uuid.UUID, bookID int) string {
	return fmt.Sprintf("%s:%d", userID, bookID)
}
