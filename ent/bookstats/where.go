// Code generated by ent, DO NOT EDIT.

package bookstats

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ketabio/bookserver/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BookStats {
	return predicate.BookStats(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BookStats {
	return predicate.BookStats(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BookStats {
	return predicate.BookStats(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BookStats {
	return predicate.BookStats(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BookStats {
	return predicate.BookStats(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BookStats {
	return predicate.BookStats(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BookStats {
	return predicate.BookStats(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BookStats {
	return predicate.BookStats(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BookStats {
	return predicate.BookStats(sql.FieldLTE(FieldID, id))
}

// ViewCount applies equality check predicate on the "view_count" field. It's identical to ViewCountEQ.
func ViewCount(v int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldEQ(FieldViewCount, v))
}

// PurchaseCount applies equality check predicate on the "purchase_count" field. It's identical to PurchaseCountEQ.
func PurchaseCount(v int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldEQ(FieldPurchaseCount, v))
}

// DownloadCount applies equality check predicate on the "download_count" field. It's identical to DownloadCountEQ.
func DownloadCount(v int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldEQ(FieldDownloadCount, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v float64) predicate.BookStats {
	return predicate.BookStats(sql.FieldEQ(FieldRating, v))
}

// RatingCount applies equality check predicate on the "rating_count" field. It's identical to RatingCountEQ.
func RatingCount(v int) predicate.BookStats {
	return predicate.BookStats(sql.FieldEQ(FieldRatingCount, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BookStats {
	return predicate.BookStats(sql.FieldEQ(FieldUpdatedAt, v))
}

// ViewCountEQ applies the EQ predicate on the "view_count" field.
func ViewCountEQ(v int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldEQ(FieldViewCount, v))
}

// ViewCountNEQ applies the NEQ predicate on the "view_count" field.
func ViewCountNEQ(v int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldNEQ(FieldViewCount, v))
}

// ViewCountIn applies the In predicate on the "view_count" field.
func ViewCountIn(vs ...int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldIn(FieldViewCount, vs...))
}

// ViewCountNotIn applies the NotIn predicate on the "view_count" field.
func ViewCountNotIn(vs ...int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldNotIn(FieldViewCount, vs...))
}

// ViewCountGT applies the GT predicate on the "view_count" field.
func ViewCountGT(v int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldGT(FieldViewCount, v))
}

// ViewCountGTE applies the GTE predicate on the "view_count" field.
func ViewCountGTE(v int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldGTE(FieldViewCount, v))
}

// ViewCountLT applies the LT predicate on the "view_count" field.
func ViewCountLT(v int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldLT(FieldViewCount, v))
}

// ViewCountLTE applies the LTE predicate on the "view_count" field.
func ViewCountLTE(v int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldLTE(FieldViewCount, v))
}

// PurchaseCountEQ applies the EQ predicate on the "purchase_count" field.
func PurchaseCountEQ(v int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldEQ(FieldPurchaseCount, v))
}

// PurchaseCountNEQ applies the NEQ predicate on the "purchase_count" field.
func PurchaseCountNEQ(v int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldNEQ(FieldPurchaseCount, v))
}

// PurchaseCountIn applies the In predicate on the "purchase_count" field.
func PurchaseCountIn(vs ...int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldIn(FieldPurchaseCount, vs...))
}

// PurchaseCountNotIn applies the NotIn predicate on the "purchase_count" field.
func PurchaseCountNotIn(vs ...int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldNotIn(FieldPurchaseCount, vs...))
}

// PurchaseCountGT applies the GT predicate on the "purchase_count" field.
func PurchaseCountGT(v int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldGT(FieldPurchaseCount, v))
}

// PurchaseCountGTE applies the GTE predicate on the "purchase_count" field.
func PurchaseCountGTE(v int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldGTE(FieldPurchaseCount, v))
}

// PurchaseCountLT applies the LT predicate on the "purchase_count" field.
func PurchaseCountLT(v int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldLT(FieldPurchaseCount, v))
}

// PurchaseCountLTE applies the LTE predicate on the "purchase_count" field.
func PurchaseCountLTE(v int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldLTE(FieldPurchaseCount, v))
}

// DownloadCountEQ applies the EQ predicate on the "download_count" field.
func DownloadCountEQ(v int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldEQ(FieldDownloadCount, v))
}

// DownloadCountNEQ applies the NEQ predicate on the "download_count" field.
func DownloadCountNEQ(v int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldNEQ(FieldDownloadCount, v))
}

// DownloadCountIn applies the In predicate on the "download_count" field.
func DownloadCountIn(vs ...int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldIn(FieldDownloadCount, vs...))
}

// DownloadCountNotIn applies the NotIn predicate on the "download_count" field.
func DownloadCountNotIn(vs ...int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldNotIn(FieldDownloadCount, vs...))
}

// DownloadCountGT applies the GT predicate on the "download_count" field.
func DownloadCountGT(v int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldGT(FieldDownloadCount, v))
}

// DownloadCountGTE applies the GTE predicate on the "download_count" field.
func DownloadCountGTE(v int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldGTE(FieldDownloadCount, v))
}

// DownloadCountLT applies the LT predicate on the "download_count" field.
func DownloadCountLT(v int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldLT(FieldDownloadCount, v))
}

// DownloadCountLTE applies the LTE predicate on the "download_count" field.
func DownloadCountLTE(v int64) predicate.BookStats {
	return predicate.BookStats(sql.FieldLTE(FieldDownloadCount, v))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v float64) predicate.BookStats {
	return predicate.BookStats(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v float64) predicate.BookStats {
	return predicate.BookStats(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...float64) predicate.BookStats {
	return predicate.BookStats(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...float64) predicate.BookStats {
	return predicate.BookStats(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v float64) predicate.BookStats {
	return predicate.BookStats(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v float64) predicate.BookStats {
	return predicate.BookStats(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v float64) predicate.BookStats {
	return predicate.BookStats(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v float64) predicate.BookStats {
	return predicate.BookStats(sql.FieldLTE(FieldRating, v))
}

// RatingCountEQ applies the EQ predicate on the "rating_count" field.
func RatingCountEQ(v int) predicate.BookStats {
	return predicate.BookStats(sql.FieldEQ(FieldRatingCount, v))
}

// RatingCountNEQ applies the NEQ predicate on the "rating_count" field.
func RatingCountNEQ(v int) predicate.BookStats {
	return predicate.BookStats(sql.FieldNEQ(FieldRatingCount, v))
}

// RatingCountIn applies the In predicate on the "rating_count" field.
func RatingCountIn(vs ...int) predicate.BookStats {
	return predicate.BookStats(sql.FieldIn(FieldRatingCount, vs...))
}

// RatingCountNotIn applies the NotIn predicate on the "rating_count" field.
func RatingCountNotIn(vs ...int) predicate.BookStats {
	return predicate.BookStats(sql.FieldNotIn(FieldRatingCount, vs...))
}

// RatingCountGT applies the GT predicate on the "rating_count" field.
func RatingCountGT(v int) predicate.BookStats {
	return predicate.BookStats(sql.FieldGT(FieldRatingCount, v))
}

// RatingCountGTE applies the GTE predicate on the "rating_count" field.
func RatingCountGTE(v int) predicate.BookStats {
	return predicate.BookStats(sql.FieldGTE(FieldRatingCount, v))
}

// RatingCountLT applies the LT predicate on the "rating_count" field.
func RatingCountLT(v int) predicate.BookStats {
	return predicate.BookStats(sql.FieldLT(FieldRatingCount, v))
}

// RatingCountLTE applies the LTE predicate on the "rating_count" field.
func RatingCountLTE(v int) predicate.BookStats {
	return predicate.BookStats(sql.FieldLTE(FieldRatingCount, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BookStats {
	return predicate.BookStats(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BookStats {
	return predicate.BookStats(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BookStats {
	return predicate.BookStats(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BookStats {
	return predicate.BookStats(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BookStats {
	return predicate.BookStats(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BookStats {
	return predicate.BookStats(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BookStats {
	return predicate.BookStats(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BookStats {
	return predicate.BookStats(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBook applies the HasEdge predicate on the "book" edge.
func HasBook() predicate.BookStats {
	return predicate.BookStats(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, BookTable, BookColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBookWith applies the HasEdge predicate on the "book" edge with a given conditions (other predicates).
func HasBookWith(preds ...predicate.Book) predicate.BookStats {
	return predicate.BookStats(func(s *sql.Selector) {
		step := newBookStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BookStats) predicate.BookStats {
	return predicate.BookStats(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BookStats) predicate.BookStats {
	return predicate.BookStats(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BookStats) predicate.BookStats {
	return predicate.BookStats(sql.NotPredicates(p))
}
