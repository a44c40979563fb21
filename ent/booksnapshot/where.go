// Code generated by ent, DO NOT EDIT.

package booksnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ketabio/bookserver/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldLTE(FieldID, id))
}

// BookID applies equality check predicate on the "book_id" field. It's identical to BookIDEQ.
func BookID(v int) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldEQ(FieldBookID, v))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v []byte) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldEQ(FieldPayload, v))
}

// RefreshedAt applies equality check predicate on the "refreshed_at" field. It's identical to RefreshedAtEQ.
func RefreshedAt(v time.Time) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldEQ(FieldRefreshedAt, v))
}

// BookIDEQ applies the EQ predicate on the "book_id" field.
func BookIDEQ(v int) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldEQ(FieldBookID, v))
}

// BookIDNEQ applies the NEQ predicate on the "book_id" field.
func BookIDNEQ(v int) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldNEQ(FieldBookID, v))
}

// BookIDIn applies the In predicate on the "book_id" field.
func BookIDIn(vs ...int) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldIn(FieldBookID, vs...))
}

// BookIDNotIn applies the NotIn predicate on the "book_id" field.
func BookIDNotIn(vs ...int) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldNotIn(FieldBookID, vs...))
}

// BookIDGT applies the GT predicate on the "book_id" field.
func BookIDGT(v int) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldGT(FieldBookID, v))
}

// BookIDGTE applies the GTE predicate on the "book_id" field.
func BookIDGTE(v int) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldGTE(FieldBookID, v))
}

// BookIDLT applies the LT predicate on the "book_id" field.
func BookIDLT(v int) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldLT(FieldBookID, v))
}

// BookIDLTE applies the LTE predicate on the "book_id" field.
func BookIDLTE(v int) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldLTE(FieldBookID, v))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v []byte) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v []byte) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...[]byte) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...[]byte) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v []byte) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v []byte) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v []byte) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v []byte) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldLTE(FieldPayload, v))
}

// RefreshedAtEQ applies the EQ predicate on the "refreshed_at" field.
func RefreshedAtEQ(v time.Time) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldEQ(FieldRefreshedAt, v))
}

// RefreshedAtNEQ applies the NEQ predicate on the "refreshed_at" field.
func RefreshedAtNEQ(v time.Time) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldNEQ(FieldRefreshedAt, v))
}

// RefreshedAtIn applies the In predicate on the "refreshed_at" field.
func RefreshedAtIn(vs ...time.Time) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldIn(FieldRefreshedAt, vs...))
}

// RefreshedAtNotIn applies the NotIn predicate on the "refreshed_at" field.
func RefreshedAtNotIn(vs ...time.Time) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldNotIn(FieldRefreshedAt, vs...))
}

// RefreshedAtGT applies the GT predicate on the "refreshed_at" field.
func RefreshedAtGT(v time.Time) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldGT(FieldRefreshedAt, v))
}

// RefreshedAtGTE applies the GTE predicate on the "refreshed_at" field.
func RefreshedAtGTE(v time.Time) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldGTE(FieldRefreshedAt, v))
}

// RefreshedAtLT applies the LT predicate on the "refreshed_at" field.
func RefreshedAtLT(v time.Time) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldLT(FieldRefreshedAt, v))
}

// RefreshedAtLTE applies the LTE predicate on the "refreshed_at" field.
func RefreshedAtLTE(v time.Time) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.FieldLTE(FieldRefreshedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BookSnapshot) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BookSnapshot) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BookSnapshot) predicate.BookSnapshot {
	return predicate.BookSnapshot(sql.NotPredicates(p))
}
