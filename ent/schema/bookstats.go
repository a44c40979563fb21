package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// BookStats holds per-book counters in a separate row so that high-frequency
// increments (views, purchases) never contend with book-content writes.
// Counter updates must go through atomic Add* mutations, never
// read-modify-write from cached values.
type BookStats struct {
	ent.Schema
}

func (BookStats) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("view_count").
			Default(0),
		field.Int64("purchase_count").
			Default(0),
		field.Int64("download_count").
			Default(0),
		// Running mean of all submitted ratings. rating_count only increases.
		field.Float("rating").
			Default(0),
		field.Int("rating_count").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (BookStats) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("book", Book.Type).
			Ref("stats").
			Unique().
			Required(),
	}
}
