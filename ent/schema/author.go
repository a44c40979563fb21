package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Author is a normalized author row. Books embed a {id,name,slug} projection
// of their authors; renaming or deleting an author triggers cache
// invalidation for every attached book.
type Author struct {
	ent.Schema
}

func (Author) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.String("slug").
			Unique().
			NotEmpty(),
		field.Text("bio").
			Optional(),
	}
}

func (Author) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("books", Book.Type).
			Ref("authors"),
	}
}
