package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntityRef is a denormalized reference to an author or category as embedded
// in a book row and its cached payload. The embeds are projections of the
// normalized Author/Category tables; the invalidation propagator re-derives
// them whenever the referenced entity changes.
type EntityRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Book is a digital book. Prices are stored in the smallest currency unit.
type Book struct {
	ent.Schema
}

func (Book) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty(),
		field.String("slug").
			Unique().
			NotEmpty(),
		field.Text("excerpt").
			Optional(),
		field.Text("content").
			Optional(),
		field.Int("pages").
			Default(0),
		field.Int64("price").
			Default(0),
		field.Int64("discount_price").
			Optional().
			Nillable(),
		field.Bool("is_free").
			Default(false),
		field.Enum("status").
			Values("draft", "published", "archived").
			Default("draft"),
		// Denormalized projections of the authors/categories edges. Updated
		// synchronously by book mutations and asynchronously by the
		// invalidation propagator when an author or category changes.
		field.JSON("authors_embed", []EntityRef{}).
			Optional(),
		field.JSON("categories_embed", []EntityRef{}).
			Optional(),
		field.Bytes("cover").
			Optional().
			Nillable(),
		field.String("cover_content_type").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Book) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("authors", Author.Type),
		edge.To("categories", Category.Type),
		// The category whose subscriptions grant access to this book.
		edge.To("primary_category", Category.Type).
			Unique(),
		edge.To("stats", BookStats.Type).
			Unique(),
		edge.To("contents", BookContent.Type),
		edge.To("purchases", Purchase.Type),
	}
}

func (Book) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
