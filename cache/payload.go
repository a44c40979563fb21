// Package cache implements the tiered book-detail cache and the
// entitlement-gated read path: an in-process fast tier, a durable snapshot
// table, and assembly from the canonical store, plus queued invalidation
// propagation when authors or categories change.
package cache

import (
	"math"
	"time"

	"github.com/ketabio/bookserver/ent/schema"
)

// IndexEntry is one table-of-contents row of a book.
type IndexEntry struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Level int    `json:"level"`
	Page  int    `json:"page"`
}

// BookPayload is the fully denormalized book detail served to readers. The
// same struct is stored serialized in both cache tiers, so a payload read
// from any tier is byte-identical to the one written at fill time.
type BookPayload struct {
	ID                 int                `json:"id"`
	Title              string             `json:"title"`
	Slug               string             `json:"slug"`
	Excerpt            string             `json:"excerpt,omitempty"`
	Content            string             `json:"content,omitempty"`
	CoverURL           string             `json:"cover_url,omitempty"`
	Pages              int                `json:"pages"`
	Price              int64              `json:"price"`
	DiscountPrice      *int64             `json:"discount_price,omitempty"`
	EffectivePrice     int64              `json:"effective_price"`
	HasDiscount        bool               `json:"has_discount"`
	DiscountPercentage float64            `json:"discount_percentage"`
	IsFree             bool               `json:"is_free"`
	Authors            []schema.EntityRef `json:"authors"`
	Categories         []schema.EntityRef `json:"categories"`
	PrimaryCategory    *schema.EntityRef  `json:"primary_category,omitempty"`
	Rating             float64            `json:"rating"`
	RatingCount        int                `json:"rating_count"`
	ViewCount          int64              `json:"view_count"`
	PurchaseCount      int64              `json:"purchase_count"`
	DownloadCount      int64              `json:"download_count"`
	Index              []IndexEntry       `json:"index"`
	CreatedAt          time.Time          `json:"created_at"`
}

// effectivePrice returns the discounted price when one is set, the list
// price otherwise.
func effectivePrice(price int64, discount *int64) int64 {
	if discount != nil {
		return *discount
	}
	return price
}

// hasDiscount is true only when a discount price exists and actually
// undercuts the list price.
func hasDiscount(price int64, discount *int64) bool {
	return discount != nil && *discount < price
}

// discountPercentage returns the discount as a percentage of the list price,
// rounded to two decimals. 0 when there is no effective discount or the
// list price is zero.
func discountPercentage(price int64, discount *int64) float64 {
	if !hasDiscount(price, discount) || price == 0 {
		return 0
	}
	pct := float64(price-*discount) / float64(price) * 100
	return math.Round(pct*100) / 100
}
