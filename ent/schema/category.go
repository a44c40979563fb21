package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Category groups books. Subscriptions are sold per category and grant
// access to every book whose primary category matches.
type Category struct {
	ent.Schema
}

func (Category) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.String("slug").
			Unique().
			NotEmpty(),
	}
}

func (Category) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("books", Book.Type).
			Ref("categories"),
		edge.From("primary_books", Book.Type).
			Ref("primary_category"),
		edge.From("subscriptions", Subscription.Type).
			Ref("category"),
	}
}
