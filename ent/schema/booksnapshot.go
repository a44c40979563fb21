package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BookSnapshot is the durable middle cache tier: one row per book holding the
// fully denormalized payload blob and its refresh time. Invalidation
// back-dates refreshed_at instead of deleting the row.
//
// book_id is a plain column rather than an edge: the snapshot must survive
// independently of the book row's lifecycle and is only ever addressed by id.
type BookSnapshot struct {
	ent.Schema
}

func (BookSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int("book_id").
			Unique(),
		field.Bytes("payload"),
		field.Time("refreshed_at").
			Default(time.Now),
	}
}

func (BookSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("book_id", "refreshed_at"),
	}
}
