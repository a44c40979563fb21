// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ketabio/bookserver/ent/book"
	"github.com/ketabio/bookserver/ent/bookcontent"
)

// BookContentCreate is the builder for creating a BookContent entity.
type BookContentCreate struct {
	config
	mutation *BookContentMutation
	hooks    []Hook
}

// SetPageNumber sets the "page_number" field.
func (_c *BookContentCreate) SetPageNumber(v int) *BookContentCreate {
	_c.mutation.SetPageNumber(v)
	return _c
}

// SetParagraphNumber sets the "paragraph_number" field.
func (_c *BookContentCreate) SetParagraphNumber(v int) *BookContentCreate {
	_c.mutation.SetParagraphNumber(v)
	return _c
}

// SetOrder sets the "order" field.
func (_c *BookContentCreate) SetOrder(v int) *BookContentCreate {
	_c.mutation.SetOrder(v)
	return _c
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_c *BookContentCreate) SetNillableOrder(v *int) *BookContentCreate {
	if v != nil {
		_c.SetOrder(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *BookContentCreate) SetText(v string) *BookContentCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_c *BookContentCreate) SetNillableText(v *string) *BookContentCreate {
	if v != nil {
		_c.SetText(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *BookContentCreate) SetDescription(v string) *BookContentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *BookContentCreate) SetNillableDescription(v *string) *BookContentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSoundPath sets the "sound_path" field.
func (_c *BookContentCreate) SetSoundPath(v string) *BookContentCreate {
	_c.mutation.SetSoundPath(v)
	return _c
}

// SetNillableSoundPath sets the "sound_path" field if the given value is not nil.
func (_c *BookContentCreate) SetNillableSoundPath(v *string) *BookContentCreate {
	if v != nil {
		_c.SetSoundPath(*v)
	}
	return _c
}

// SetVideoPath sets the "video_path" field.
func (_c *BookContentCreate) SetVideoPath(v string) *BookContentCreate {
	_c.mutation.SetVideoPath(v)
	return _c
}

// SetNillableVideoPath sets the "video_path" field if the given value is not nil.
func (_c *BookContentCreate) SetNillableVideoPath(v *string) *BookContentCreate {
	if v != nil {
		_c.SetVideoPath(*v)
	}
	return _c
}

// SetImagePaths sets the "image_paths" field.
func (_c *BookContentCreate) SetImagePaths(v []string) *BookContentCreate {
	_c.mutation.SetImagePaths(v)
	return _c
}

// SetIsIndex sets the "is_index" field.
func (_c *BookContentCreate) SetIsIndex(v bool) *BookContentCreate {
	_c.mutation.SetIsIndex(v)
	return _c
}

// SetNillableIsIndex sets the "is_index" field if the given value is not nil.
func (_c *BookContentCreate) SetNillableIsIndex(v *bool) *BookContentCreate {
	if v != nil {
		_c.SetIsIndex(*v)
	}
	return _c
}

// SetIndexTitle sets the "index_title" field.
func (_c *BookContentCreate) SetIndexTitle(v string) *BookContentCreate {
	_c.mutation.SetIndexTitle(v)
	return _c
}

// SetNillableIndexTitle sets the "index_title" field if the given value is not nil.
func (_c *BookContentCreate) SetNillableIndexTitle(v *string) *BookContentCreate {
	if v != nil {
		_c.SetIndexTitle(*v)
	}
	return _c
}

// SetIndexLevel sets the "index_level" field.
func (_c *BookContentCreate) SetIndexLevel(v int) *BookContentCreate {
	_c.mutation.SetIndexLevel(v)
	return _c
}

// SetNillableIndexLevel sets the "index_level" field if the given value is not nil.
func (_c *BookContentCreate) SetNillableIndexLevel(v *int) *BookContentCreate {
	if v != nil {
		_c.SetIndexLevel(*v)
	}
	return _c
}

// SetBookID sets the "book" edge to the Book entity by ID.
func (_c *BookContentCreate) SetBookID(id int) *BookContentCreate {
	_c.mutation.SetBookID(id)
	return _c
}

// SetBook sets the "book" edge to the Book entity.
func (_c *BookContentCreate) SetBook(v *Book) *BookContentCreate {
	return _c.SetBookID(v.ID)
}

// Mutation returns the BookContentMutation object of the builder.
func (_c *BookContentCreate) Mutation() *BookContentMutation {
	return _c.mutation
}

// Save creates the BookContent in the database.
func (_c *BookContentCreate) Save(ctx context.Context) (*BookContent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BookContentCreate) SaveX(ctx context.Context) *BookContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookContentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookContentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BookContentCreate) defaults() {
	if _, ok := _c.mutation.Order(); !ok {
		v := bookcontent.DefaultOrder
		_c.mutation.SetOrder(v)
	}
	if _, ok := _c.mutation.IsIndex(); !ok {
		v := bookcontent.DefaultIsIndex
		_c.mutation.SetIsIndex(v)
	}
	if _, ok := _c.mutation.IndexLevel(); !ok {
		v := bookcontent.DefaultIndexLevel
		_c.mutation.SetIndexLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BookContentCreate) check() error {
	if _, ok := _c.mutation.PageNumber(); !ok {
		return &ValidationError{Name: "page_number", err: errors.New(`ent: missing required field "BookContent.page_number"`)}
	}
	if v, ok := _c.mutation.PageNumber(); ok {
		if err := bookcontent.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "BookContent.page_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ParagraphNumber(); !ok {
		return &ValidationError{Name: "paragraph_number", err: errors.New(`ent: missing required field "BookContent.paragraph_number"`)}
	}
	if v, ok := _c.mutation.ParagraphNumber(); ok {
		if err := bookcontent.ParagraphNumberValidator(v); err != nil {
			return &ValidationError{Name: "paragraph_number", err: fmt.Errorf(`ent: validator failed for field "BookContent.paragraph_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Order(); !ok {
		return &ValidationError{Name: "order", err: errors.New(`ent: missing required field "BookContent.order"`)}
	}
	if _, ok := _c.mutation.IsIndex(); !ok {
		return &ValidationError{Name: "is_index", err: errors.New(`ent: missing required field "BookContent.is_index"`)}
	}
	if _, ok := _c.mutation.IndexLevel(); !ok {
		return &ValidationError{Name: "index_level", err: errors.New(`ent: missing required field "BookContent.index_level"`)}
	}
	if len(_c.mutation.BookIDs()) == 0 {
		return &ValidationError{Name: "book", err: errors.New(`ent: missing required edge "BookContent.book"`)}
	}
	return nil
}

func (_c *BookContentCreate) sqlSave(ctx context.Context) (*BookContent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BookContentCreate) createSpec() (*BookContent, *sqlgraph.CreateSpec) {
	var (
		_node = &BookContent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bookcontent.Table, sqlgraph.NewFieldSpec(bookcontent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PageNumber(); ok {
		_spec.SetField(bookcontent.FieldPageNumber, field.TypeInt, value)
		_node.PageNumber = value
	}
	if value, ok := _c.mutation.ParagraphNumber(); ok {
		_spec.SetField(bookcontent.FieldParagraphNumber, field.TypeInt, value)
		_node.ParagraphNumber = value
	}
	if value, ok := _c.mutation.Order(); ok {
		_spec.SetField(bookcontent.FieldOrder, field.TypeInt, value)
		_node.Order = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(bookcontent.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(bookcontent.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.SoundPath(); ok {
		_spec.SetField(bookcontent.FieldSoundPath, field.TypeString, value)
		_node.SoundPath = value
	}
	if value, ok := _c.mutation.VideoPath(); ok {
		_spec.SetField(bookcontent.FieldVideoPath, field.TypeString, value)
		_node.VideoPath = value
	}
	if value, ok := _c.mutation.ImagePaths(); ok {
		_spec.SetField(bookcontent.FieldImagePaths, field.TypeJSON, value)
		_node.ImagePaths = value
	}
	if value, ok := _c.mutation.IsIndex(); ok {
		_spec.SetField(bookcontent.FieldIsIndex, field.TypeBool, value)
		_node.IsIndex = value
	}
	if value, ok := _c.mutation.IndexTitle(); ok {
		_spec.SetField(bookcontent.FieldIndexTitle, field.TypeString, value)
		_node.IndexTitle = value
	}
	if value, ok := _c.mutation.IndexLevel(); ok {
		_spec.SetField(bookcontent.FieldIndexLevel, field.TypeInt, value)
		_node.IndexLevel = value
	}
	if nodes := _c.mutation.BookIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bookcontent.BookTable,
			Columns: []string{bookcontent.BookColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(book.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.book_contents = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BookContentCreateBulk is the builder for creating many BookContent entities in bulk.
type BookContentCreateBulk struct {
	config
	err      error
	builders []*BookContentCreate
}

// Save creates the BookContent entities in the database.
func (_c *BookContentCreateBulk) Save(ctx context.Context) ([]*BookContent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BookContent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BookContentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BookContentCreateBulk) SaveX(ctx context.Context) []*BookContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookContentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookContentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
