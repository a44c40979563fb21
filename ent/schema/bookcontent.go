package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BookContent is one paragraph of a book page. Rows flagged is_index form
// the book's table of contents.
type BookContent struct {
	ent.Schema
}

func (BookContent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("page_number").
			Min(1),
		field.Int("paragraph_number").
			Min(1),
		field.Int("order").
			Default(0),
		field.Text("text").
			Optional(),
		field.Text("description").
			Optional(),
		field.String("sound_path").
			Optional(),
		field.String("video_path").
			Optional(),
		field.JSON("image_paths", []string{}).
			Optional(),
		field.Bool("is_index").
			Default(false),
		field.String("index_title").
			Optional(),
		field.Int("index_level").
			Default(0),
	}
}

func (BookContent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("book", Book.Type).
			Ref("contents").
			Unique().
			Required(),
	}
}

func (BookContent) Indexes() []ent.Index {
	return []ent.Index{
		// Page reads filter by (book, page); TOC reads by (book, is_index).
		index.Fields("page_number").
			Edges("book"),
		index.Fields("is_index").
			Edges("book"),
		index.Fields("page_number", "paragraph_number").
			Edges("book").
			Unique(),
	}
}
