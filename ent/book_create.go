// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/ketabio/bookserver/ent/author"
	"github.com/ketabio/bookserver/ent/book"
	"github.com/ketabio/bookserver/ent/bookcontent"
	"github.com/ketabio/bookserver/ent/bookstats"
	"github.com/ketabio/bookserver/ent/category"
	"github.com/ketabio/bookserver/ent/purchase"
	"github.com/ketabio/bookserver/ent/schema"
)

// BookCreate is the builder for creating a Book entity.
type BookCreate struct {
	config
	mutation *BookMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *BookCreate) SetTitle(v string) *BookCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *BookCreate) SetSlug(v string) *BookCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetExcerpt sets the "excerpt" field.
func (_c *BookCreate) SetExcerpt(v string) *BookCreate {
	_c.mutation.SetExcerpt(v)
	return _c
}

// SetNillableExcerpt sets the "excerpt" field if the given value is not nil.
func (_c *BookCreate) SetNillableExcerpt(v *string) *BookCreate {
	if v != nil {
		_c.SetExcerpt(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *BookCreate) SetContent(v string) *BookCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *BookCreate) SetNillableContent(v *string) *BookCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetPages sets the "pages" field.
func (_c *BookCreate) SetPages(v int) *BookCreate {
	_c.mutation.SetPages(v)
	return _c
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_c *BookCreate) SetNillablePages(v *int) *BookCreate {
	if v != nil {
		_c.SetPages(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *BookCreate) SetPrice(v int64) *BookCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *BookCreate) SetNillablePrice(v *int64) *BookCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetDiscountPrice sets the "discount_price" field.
func (_c *BookCreate) SetDiscountPrice(v int64) *BookCreate {
	_c.mutation.SetDiscountPrice(v)
	return _c
}

// SetNillableDiscountPrice sets the "discount_price" field if the given value is not nil.
func (_c *BookCreate) SetNillableDiscountPrice(v *int64) *BookCreate {
	if v != nil {
		_c.SetDiscountPrice(*v)
	}
	return _c
}

// SetIsFree sets the "is_free" field.
func (_c *BookCreate) SetIsFree(v bool) *BookCreate {
	_c.mutation.SetIsFree(v)
	return _c
}

// SetNillableIsFree sets the "is_free" field if the given value is not nil.
func (_c *BookCreate) SetNillableIsFree(v *bool) *BookCreate {
	if v != nil {
		_c.SetIsFree(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BookCreate) SetStatus(v book.Status) *BookCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BookCreate) SetNillableStatus(v *book.Status) *BookCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAuthorsEmbed sets the "authors_embed" field.
func (_c *BookCreate) SetAuthorsEmbed(v []schema.EntityRef) *BookCreate {
	_c.mutation.SetAuthorsEmbed(v)
	return _c
}

// SetCategoriesEmbed sets the "categories_embed" field.
func (_c *BookCreate) SetCategoriesEmbed(v []schema.EntityRef) *BookCreate {
	_c.mutation.SetCategoriesEmbed(v)
	return _c
}

// SetCover sets the "cover" field.
func (_c *BookCreate) SetCover(v []byte) *BookCreate {
	_c.mutation.SetCover(v)
	return _c
}

// SetCoverContentType sets the "cover_content_type" field.
func (_c *BookCreate) SetCoverContentType(v string) *BookCreate {
	_c.mutation.SetCoverContentType(v)
	return _c
}

// SetNillableCoverContentType sets the "cover_content_type" field if the given value is not nil.
func (_c *BookCreate) SetNillableCoverContentType(v *string) *BookCreate {
	if v != nil {
		_c.SetCoverContentType(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BookCreate) SetCreatedAt(v time.Time) *BookCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BookCreate) SetNillableCreatedAt(v *time.Time) *BookCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BookCreate) SetUpdatedAt(v time.Time) *BookCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BookCreate) SetNillableUpdatedAt(v *time.Time) *BookCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddAuthorIDs adds the "authors" edge to the Author entity by IDs.
func (_c *BookCreate) AddAuthorIDs(ids ...int) *BookCreate {
	_c.mutation.AddAuthorIDs(ids...)
	return _c
}

// AddAuthors adds the "authors" edges to the Author entity.
func (_c *BookCreate) AddAuthors(v ...*Author) *BookCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuthorIDs(ids...)
}

// AddCategoryIDs adds the "categories" edge to the Category entity by IDs.
func (_c *BookCreate) AddCategoryIDs(ids ...int) *BookCreate {
	_c.mutation.AddCategoryIDs(ids...)
	return _c
}

// AddCategories adds the "categories" edges to the Category entity.
func (_c *BookCreate) AddCategories(v ...*Category) *BookCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCategoryIDs(ids...)
}

// SetPrimaryCategoryID sets the "primary_category" edge to the Category entity by ID.
func (_c *BookCreate) SetPrimaryCategoryID(id int) *BookCreate {
	_c.mutation.SetPrimaryCategoryID(id)
	return _c
}

// SetNillablePrimaryCategoryID sets the "primary_category" edge to the Category entity by ID if the given value is not nil.
func (_c *BookCreate) SetNillablePrimaryCategoryID(id *int) *BookCreate {
	if id != nil {
		_c = _c.SetPrimaryCategoryID(*id)
	}
	return _c
}

// SetPrimaryCategory sets the "primary_category" edge to the Category entity.
func (_c *BookCreate) SetPrimaryCategory(v *Category) *BookCreate {
	return _c.SetPrimaryCategoryID(v.ID)
}

// SetStatsID sets the "stats" edge to the BookStats entity by ID.
func (_c *BookCreate) SetStatsID(id int) *BookCreate {
	_c.mutation.SetStatsID(id)
	return _c
}

// SetNillableStatsID sets the "stats" edge to the BookStats entity by ID if the given value is not nil.
func (_c *BookCreate) SetNillableStatsID(id *int) *BookCreate {
	if id != nil {
		_c = _c.SetStatsID(*id)
	}
	return _c
}

// SetStats sets the "stats" edge to the BookStats entity.
func (_c *BookCreate) SetStats(v *BookStats) *BookCreate {
	return _c.SetStatsID(v.ID)
}

// AddContentIDs adds the "contents" edge to the BookContent entity by IDs.
func (_c *BookCreate) AddContentIDs(ids ...int) *BookCreate {
	_c.mutation.AddContentIDs(ids...)
	return _c
}

// AddContents adds the "contents" edges to the BookContent entity.
func (_c *BookCreate) AddContents(v ...*BookContent) *BookCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddContentIDs(ids...)
}

// AddPurchaseIDs adds the "purchases" edge to the Purchase entity by IDs.
func (_c *BookCreate) AddPurchaseIDs(ids ...uuid.UUID) *BookCreate {
	_c.mutation.AddPurchaseIDs(ids...)
	return _c
}

// AddPurchases adds the "purchases" edges to the Purchase entity.
func (_c *BookCreate) AddPurchases(v ...*Purchase) *BookCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPurchaseIDs(ids...)
}

// Mutation returns the BookMutation object of the builder.
func (_c *BookCreate) Mutation() *BookMutation {
	return _c.mutation
}

// Save creates the Book in the database.
func (_c *BookCreate) Save(ctx context.Context) (*Book, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BookCreate) SaveX(ctx context.Context) *Book {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BookCreate) defaults() {
	if _, ok := _c.mutation.Pages(); !ok {
		v := book.DefaultPages
		_c.mutation.SetPages(v)
	}
	if _, ok := _c.mutation.Price(); !ok {
		v := book.DefaultPrice
		_c.mutation.SetPrice(v)
	}
	if _, ok := _c.mutation.IsFree(); !ok {
		v := book.DefaultIsFree
		_c.mutation.SetIsFree(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := book.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := book.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := book.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BookCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Book.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := book.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Book.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Book.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := book.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Book.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Pages(); !ok {
		return &ValidationError{Name: "pages", err: errors.New(`ent: missing required field "Book.pages"`)}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "Book.price"`)}
	}
	if _, ok := _c.mutation.IsFree(); !ok {
		return &ValidationError{Name: "is_free", err: errors.New(`ent: missing required field "Book.is_free"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Book.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := book.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Book.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Book.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Book.updated_at"`)}
	}
	return nil
}

func (_c *BookCreate) sqlSave(ctx context.Context) (*Book, error) {
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

func (_c *BookCreate) createSpec() (*Book, *sqlgraph.CreateSpec) {
	var (
		_node = &Book{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(book.Table, sqlgraph.NewFieldSpec(book.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(book.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(book.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Excerpt(); ok {
		_spec.SetField(book.FieldExcerpt, field.TypeString, value)
		_node.Excerpt = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(book.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Pages(); ok {
		_spec.SetField(book.FieldPages, field.TypeInt, value)
		_node.Pages = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(book.FieldPrice, field.TypeInt64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.DiscountPrice(); ok {
		_spec.SetField(book.FieldDiscountPrice, field.TypeInt64, value)
		_node.DiscountPrice = &value
	}
	if value, ok := _c.mutation.IsFree(); ok {
		_spec.SetField(book.FieldIsFree, field.TypeBool, value)
		_node.IsFree = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(book.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AuthorsEmbed(); ok {
		_spec.SetField(book.FieldAuthorsEmbed, field.TypeJSON, value)
		_node.AuthorsEmbed = value
	}
	if value, ok := _c.mutation.CategoriesEmbed(); ok {
		_spec.SetField(book.FieldCategoriesEmbed, field.TypeJSON, value)
		_node.CategoriesEmbed = value
	}
	if value, ok := _c.mutation.Cover(); ok {
		_spec.SetField(book.FieldCover, field.TypeBytes, value)
		_node.Cover = &value
	}
	if value, ok := _c.mutation.CoverContentType(); ok {
		_spec.SetField(book.FieldCoverContentType, field.TypeString, value)
		_node.CoverContentType = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(book.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(book.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AuthorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   book.AuthorsTable,
			Columns: book.AuthorsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(author.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CategoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   book.CategoriesTable,
			Columns: book.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PrimaryCategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   book.PrimaryCategoryTable,
			Columns: []string{book.PrimaryCategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.book_primary_category = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StatsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   book.StatsTable,
			Columns: []string{book.StatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookstats.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ContentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   book.ContentsTable,
			Columns: []string{book.ContentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookcontent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PurchasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   book.PurchasesTable,
			Columns: []string{book.PurchasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(purchase.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BookCreateBulk is the builder for creating many Book entities in bulk.
type BookCreateBulk struct {
	config
	err      error
	builders []*BookCreate
}

// Save creates the Book entities in the database.
func (_c *BookCreateBulk) Save(ctx context.Context) ([]*Book, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Book, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BookMutation)
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
func (_c *BookCreateBulk) SaveX(ctx context.Context) []*Book {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
