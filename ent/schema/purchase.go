package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Purchase records a user buying a single book. Only completed purchases
// grant entitlement.
type Purchase struct {
	ent.Schema
}

func (Purchase) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		// Amount actually paid, after any discount, in the smallest currency unit.
		field.Int64("amount").
			Default(0),
		field.Enum("status").
			Values("pending", "completed", "refunded").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Purchase) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("purchases").
			Unique().
			Required(),
		edge.From("book", Book.Type).
			Ref("purchases").
			Unique().
			Required(),
	}
}
