// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ketabio/bookserver/ent/book"
	"github.com/ketabio/bookserver/ent/bookstats"
)

// BookStatsCreate is the builder for creating a BookStats entity.
type BookStatsCreate struct {
	config
	mutation *BookStatsMutation
	hooks    []Hook
}

// SetViewCount sets the "view_count" field.
func (_c *BookStatsCreate) SetViewCount(v int64) *BookStatsCreate {
	_c.mutation.SetViewCount(v)
	return _c
}

// SetNillableViewCount sets the "view_count" field if the given value is not nil.
func (_c *BookStatsCreate) SetNillableViewCount(v *int64) *BookStatsCreate {
	if v != nil {
		_c.SetViewCount(*v)
	}
	return _c
}

// SetPurchaseCount sets the "purchase_count" field.
func (_c *BookStatsCreate) SetPurchaseCount(v int64) *BookStatsCreate {
	_c.mutation.SetPurchaseCount(v)
	return _c
}

// SetNillablePurchaseCount sets the "purchase_count" field if the given value is not nil.
func (_c *BookStatsCreate) SetNillablePurchaseCount(v *int64) *BookStatsCreate {
	if v != nil {
		_c.SetPurchaseCount(*v)
	}
	return _c
}

// SetDownloadCount sets the "download_count" field.
func (_c *BookStatsCreate) SetDownloadCount(v int64) *BookStatsCreate {
	_c.mutation.SetDownloadCount(v)
	return _c
}

// SetNillableDownloadCount sets the "download_count" field if the given value is not nil.
func (_c *BookStatsCreate) SetNillableDownloadCount(v *int64) *BookStatsCreate {
	if v != nil {
		_c.SetDownloadCount(*v)
	}
	return _c
}

// SetRating sets the "rating" field.
func (_c *BookStatsCreate) SetRating(v float64) *BookStatsCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *BookStatsCreate) SetNillableRating(v *float64) *BookStatsCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// SetRatingCount sets the "rating_count" field.
func (_c *BookStatsCreate) SetRatingCount(v int) *BookStatsCreate {
	_c.mutation.SetRatingCount(v)
	return _c
}

// SetNillableRatingCount sets the "rating_count" field if the given value is not nil.
func (_c *BookStatsCreate) SetNillableRatingCount(v *int) *BookStatsCreate {
	if v != nil {
		_c.SetRatingCount(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BookStatsCreate) SetUpdatedAt(v time.Time) *BookStatsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BookStatsCreate) SetNillableUpdatedAt(v *time.Time) *BookStatsCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetBookID sets the "book" edge to the Book entity by ID.
func (_c *BookStatsCreate) SetBookID(id int) *BookStatsCreate {
	_c.mutation.SetBookID(id)
	return _c
}

// SetBook sets the "book" edge to the Book entity.
func (_c *BookStatsCreate) SetBook(v *Book) *BookStatsCreate {
	return _c.SetBookID(v.ID)
}

// Mutation returns the BookStatsMutation object of the builder.
func (_c *BookStatsCreate) Mutation() *BookStatsMutation {
	return _c.mutation
}

// Save creates the BookStats in the database.
func (_c *BookStatsCreate) Save(ctx context.Context) (*BookStats, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BookStatsCreate) SaveX(ctx context.Context) *BookStats {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookStatsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookStatsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BookStatsCreate) defaults() {
	if _, ok := _c.mutation.ViewCount(); !ok {
		v := bookstats.DefaultViewCount
		_c.mutation.SetViewCount(v)
	}
	if _, ok := _c.mutation.PurchaseCount(); !ok {
		v := bookstats.DefaultPurchaseCount
		_c.mutation.SetPurchaseCount(v)
	}
	if _, ok := _c.mutation.DownloadCount(); !ok {
		v := bookstats.DefaultDownloadCount
		_c.mutation.SetDownloadCount(v)
	}
	if _, ok := _c.mutation.Rating(); !ok {
		v := bookstats.DefaultRating
		_c.mutation.SetRating(v)
	}
	if _, ok := _c.mutation.RatingCount(); !ok {
		v := bookstats.DefaultRatingCount
		_c.mutation.SetRatingCount(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := bookstats.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BookStatsCreate) check() error {
	if _, ok := _c.mutation.ViewCount(); !ok {
		return &ValidationError{Name: "view_count", err: errors.New(`ent: missing required field "BookStats.view_count"`)}
	}
	if _, ok := _c.mutation.PurchaseCount(); !ok {
		return &ValidationError{Name: "purchase_count", err: errors.New(`ent: missing required field "BookStats.purchase_count"`)}
	}
	if _, ok := _c.mutation.DownloadCount(); !ok {
		return &ValidationError{Name: "download_count", err: errors.New(`ent: missing required field "BookStats.download_count"`)}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "BookStats.rating"`)}
	}
	if _, ok := _c.mutation.RatingCount(); !ok {
		return &ValidationError{Name: "rating_count", err: errors.New(`ent: missing required field "BookStats.rating_count"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BookStats.updated_at"`)}
	}
	if len(_c.mutation.BookIDs()) == 0 {
		return &ValidationError{Name: "book", err: errors.New(`ent: missing required edge "BookStats.book"`)}
	}
	return nil
}

func (_c *BookStatsCreate) sqlSave(ctx context.Context) (*BookStats, error) {
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

func (_c *BookStatsCreate) createSpec() (*BookStats, *sqlgraph.CreateSpec) {
	var (
		_node = &BookStats{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bookstats.Table, sqlgraph.NewFieldSpec(bookstats.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ViewCount(); ok {
		_spec.SetField(bookstats.FieldViewCount, field.TypeInt64, value)
		_node.ViewCount = value
	}
	if value, ok := _c.mutation.PurchaseCount(); ok {
		_spec.SetField(bookstats.FieldPurchaseCount, field.TypeInt64, value)
		_node.PurchaseCount = value
	}
	if value, ok := _c.mutation.DownloadCount(); ok {
		_spec.SetField(bookstats.FieldDownloadCount, field.TypeInt64, value)
		_node.DownloadCount = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(bookstats.FieldRating, field.TypeFloat64, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.RatingCount(); ok {
		_spec.SetField(bookstats.FieldRatingCount, field.TypeInt, value)
		_node.RatingCount = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(bookstats.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BookIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   bookstats.BookTable,
			Columns: []string{bookstats.BookColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(book.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.book_stats = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BookStatsCreateBulk is the builder for creating many BookStats entities in bulk.
type BookStatsCreateBulk struct {
	config
	err      error
	builders []*BookStatsCreate
}

// Save creates the BookStats entities in the database.
func (_c *BookStatsCreateBulk) Save(ctx context.Context) ([]*BookStats, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BookStats, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BookStatsMutation)
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
func (_c *BookStatsCreateBulk) SaveX(ctx context.Context) []*BookStats {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookStatsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookStatsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
