// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ketabio/bookserver/ent/book"
	"github.com/ketabio/bookserver/ent/bookstats"
	"github.com/ketabio/bookserver/ent/predicate"
)

// BookStatsUpdate is the builder for updating BookStats entities.
type BookStatsUpdate struct {
	config
	hooks    []Hook
	mutation *BookStatsMutation
}

// Where appends a list predicates to the BookStatsUpdate builder.
func (_u *BookStatsUpdate) Where(ps ...predicate.BookStats) *BookStatsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetViewCount sets the "view_count" field.
func (_u *BookStatsUpdate) SetViewCount(v int64) *BookStatsUpdate {
	_u.mutation.ResetViewCount()
	_u.mutation.SetViewCount(v)
	return _u
}

// SetNillableViewCount sets the "view_count" field if the given value is not nil.
func (_u *BookStatsUpdate) SetNillableViewCount(v *int64) *BookStatsUpdate {
	if v != nil {
		_u.SetViewCount(*v)
	}
	return _u
}

// AddViewCount adds value to the "view_count" field.
func (_u *BookStatsUpdate) AddViewCount(v int64) *BookStatsUpdate {
	_u.mutation.AddViewCount(v)
	return _u
}

// SetPurchaseCount sets the "purchase_count" field.
func (_u *BookStatsUpdate) SetPurchaseCount(v int64) *BookStatsUpdate {
	_u.mutation.ResetPurchaseCount()
	_u.mutation.SetPurchaseCount(v)
	return _u
}

// SetNillablePurchaseCount sets the "purchase_count" field if the given value is not nil.
func (_u *BookStatsUpdate) SetNillablePurchaseCount(v *int64) *BookStatsUpdate {
	if v != nil {
		_u.SetPurchaseCount(*v)
	}
	return _u
}

// AddPurchaseCount adds value to the "purchase_count" field.
func (_u *BookStatsUpdate) AddPurchaseCount(v int64) *BookStatsUpdate {
	_u.mutation.AddPurchaseCount(v)
	return _u
}

// SetDownloadCount sets the "download_count" field.
func (_u *BookStatsUpdate) SetDownloadCount(v int64) *BookStatsUpdate {
	_u.mutation.ResetDownloadCount()
	_u.mutation.SetDownloadCount(v)
	return _u
}

// SetNillableDownloadCount sets the "download_count" field if the given value is not nil.
func (_u *BookStatsUpdate) SetNillableDownloadCount(v *int64) *BookStatsUpdate {
	if v != nil {
		_u.SetDownloadCount(*v)
	}
	return _u
}

// AddDownloadCount adds value to the "download_count" field.
func (_u *BookStatsUpdate) AddDownloadCount(v int64) *BookStatsUpdate {
	_u.mutation.AddDownloadCount(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *BookStatsUpdate) SetRating(v float64) *BookStatsUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *BookStatsUpdate) SetNillableRating(v *float64) *BookStatsUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *BookStatsUpdate) AddRating(v float64) *BookStatsUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetRatingCount sets the "rating_count" field.
func (_u *BookStatsUpdate) SetRatingCount(v int) *BookStatsUpdate {
	_u.mutation.ResetRatingCount()
	_u.mutation.SetRatingCount(v)
	return _u
}

// SetNillableRatingCount sets the "rating_count" field if the given value is not nil.
func (_u *BookStatsUpdate) SetNillableRatingCount(v *int) *BookStatsUpdate {
	if v != nil {
		_u.SetRatingCount(*v)
	}
	return _u
}

// AddRatingCount adds value to the "rating_count" field.
func (_u *BookStatsUpdate) AddRatingCount(v int) *BookStatsUpdate {
	_u.mutation.AddRatingCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BookStatsUpdate) SetUpdatedAt(v time.Time) *BookStatsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBookID sets the "book" edge to the Book entity by ID.
func (_u *BookStatsUpdate) SetBookID(id int) *BookStatsUpdate {
	_u.mutation.SetBookID(id)
	return _u
}

// SetBook sets the "book" edge to the Book entity.
func (_u *BookStatsUpdate) SetBook(v *Book) *BookStatsUpdate {
	return _u.SetBookID(v.ID)
}

// Mutation returns the BookStatsMutation object of the builder.
func (_u *BookStatsUpdate) Mutation() *BookStatsMutation {
	return _u.mutation
}

// ClearBook clears the "book" edge to the Book entity.
func (_u *BookStatsUpdate) ClearBook() *BookStatsUpdate {
	_u.mutation.ClearBook()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BookStatsUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookStatsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BookStatsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookStatsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BookStatsUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bookstats.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookStatsUpdate) check() error {
	if _u.mutation.BookCleared() && len(_u.mutation.BookIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BookStats.book"`)
	}
	return nil
}

func (_u *BookStatsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bookstats.Table, bookstats.Columns, sqlgraph.NewFieldSpec(bookstats.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ViewCount(); ok {
		_spec.SetField(bookstats.FieldViewCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedViewCount(); ok {
		_spec.AddField(bookstats.FieldViewCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PurchaseCount(); ok {
		_spec.SetField(bookstats.FieldPurchaseCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPurchaseCount(); ok {
		_spec.AddField(bookstats.FieldPurchaseCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DownloadCount(); ok {
		_spec.SetField(bookstats.FieldDownloadCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDownloadCount(); ok {
		_spec.AddField(bookstats.FieldDownloadCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(bookstats.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(bookstats.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RatingCount(); ok {
		_spec.SetField(bookstats.FieldRatingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRatingCount(); ok {
		_spec.AddField(bookstats.FieldRatingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bookstats.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BookCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BookIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bookstats.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BookStatsUpdateOne is the builder for updating a single BookStats entity.
type BookStatsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BookStatsMutation
}

// SetViewCount sets the "view_count" field.
func (_u *BookStatsUpdateOne) SetViewCount(v int64) *BookStatsUpdateOne {
	_u.mutation.ResetViewCount()
	_u.mutation.SetViewCount(v)
	return _u
}

// SetNillableViewCount sets the "view_count" field if the given value is not nil.
func (_u *BookStatsUpdateOne) SetNillableViewCount(v *int64) *BookStatsUpdateOne {
	if v != nil {
		_u.SetViewCount(*v)
	}
	return _u
}

// AddViewCount adds value to the "view_count" field.
func (_u *BookStatsUpdateOne) AddViewCount(v int64) *BookStatsUpdateOne {
	_u.mutation.AddViewCount(v)
	return _u
}

// SetPurchaseCount sets the "purchase_count" field.
func (_u *BookStatsUpdateOne) SetPurchaseCount(v int64) *BookStatsUpdateOne {
	_u.mutation.ResetPurchaseCount()
	_u.mutation.SetPurchaseCount(v)
	return _u
}

// SetNillablePurchaseCount sets the "purchase_count" field if the given value is not nil.
func (_u *BookStatsUpdateOne) SetNillablePurchaseCount(v *int64) *BookStatsUpdateOne {
	if v != nil {
		_u.SetPurchaseCount(*v)
	}
	return _u
}

// AddPurchaseCount adds value to the "purchase_count" field.
func (_u *BookStatsUpdateOne) AddPurchaseCount(v int64) *BookStatsUpdateOne {
	_u.mutation.AddPurchaseCount(v)
	return _u
}

// SetDownloadCount sets the "download_count" field.
func (_u *BookStatsUpdateOne) SetDownloadCount(v int64) *BookStatsUpdateOne {
	_u.mutation.ResetDownloadCount()
	_u.mutation.SetDownloadCount(v)
	return _u
}

// SetNillableDownloadCount sets the "download_count" field if the given value is not nil.
func (_u *BookStatsUpdateOne) SetNillableDownloadCount(v *int64) *BookStatsUpdateOne {
	if v != nil {
		_u.SetDownloadCount(*v)
	}
	return _u
}

// AddDownloadCount adds value to the "download_count" field.
func (_u *BookStatsUpdateOne) AddDownloadCount(v int64) *BookStatsUpdateOne {
	_u.mutation.AddDownloadCount(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *BookStatsUpdateOne) SetRating(v float64) *BookStatsUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *BookStatsUpdateOne) SetNillableRating(v *float64) *BookStatsUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *BookStatsUpdateOne) AddRating(v float64) *BookStatsUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetRatingCount sets the "rating_count" field.
func (_u *BookStatsUpdateOne) SetRatingCount(v int) *BookStatsUpdateOne {
	_u.mutation.ResetRatingCount()
	_u.mutation.SetRatingCount(v)
	return _u
}

// SetNillableRatingCount sets the "rating_count" field if the given value is not nil.
func (_u *BookStatsUpdateOne) SetNillableRatingCount(v *int) *BookStatsUpdateOne {
	if v != nil {
		_u.SetRatingCount(*v)
	}
	return _u
}

// AddRatingCount adds value to the "rating_count" field.
func (_u *BookStatsUpdateOne) AddRatingCount(v int) *BookStatsUpdateOne {
	_u.mutation.AddRatingCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BookStatsUpdateOne) SetUpdatedAt(v time.Time) *BookStatsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBookID sets the "book" edge to the Book entity by ID.
func (_u *BookStatsUpdateOne) SetBookID(id int) *BookStatsUpdateOne {
	_u.mutation.SetBookID(id)
	return _u
}

// SetBook sets the "book" edge to the Book entity.
func (_u *BookStatsUpdateOne) SetBook(v *Book) *BookStatsUpdateOne {
	return _u.SetBookID(v.ID)
}

// Mutation returns the BookStatsMutation object of the builder.
func (_u *BookStatsUpdateOne) Mutation() *BookStatsMutation {
	return _u.mutation
}

// ClearBook clears the "book" edge to the Book entity.
func (_u *BookStatsUpdateOne) ClearBook() *BookStatsUpdateOne {
	_u.mutation.ClearBook()
	return _u
}

// Where appends a list predicates to the BookStatsUpdate builder.
func (_u *BookStatsUpdateOne) Where(ps ...predicate.BookStats) *BookStatsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BookStatsUpdateOne) Select(field string, fields ...string) *BookStatsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BookStats entity.
func (_u *BookStatsUpdateOne) Save(ctx context.Context) (*BookStats, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookStatsUpdateOne) SaveX(ctx context.Context) *BookStats {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BookStatsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookStatsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BookStatsUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bookstats.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookStatsUpdateOne) check() error {
	if _u.mutation.BookCleared() && len(_u.mutation.BookIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BookStats.book"`)
	}
	return nil
}

func (_u *BookStatsUpdateOne) sqlSave(ctx context.Context) (_node *BookStats, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bookstats.Table, bookstats.Columns, sqlgraph.NewFieldSpec(bookstats.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BookStats.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bookstats.FieldID)
		for _, f := range fields {
			if !bookstats.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bookstats.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ViewCount(); ok {
		_spec.SetField(bookstats.FieldViewCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedViewCount(); ok {
		_spec.AddField(bookstats.FieldViewCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PurchaseCount(); ok {
		_spec.SetField(bookstats.FieldPurchaseCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPurchaseCount(); ok {
		_spec.AddField(bookstats.FieldPurchaseCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DownloadCount(); ok {
		_spec.SetField(bookstats.FieldDownloadCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDownloadCount(); ok {
		_spec.AddField(bookstats.FieldDownloadCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(bookstats.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(bookstats.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RatingCount(); ok {
		_spec.SetField(bookstats.FieldRatingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRatingCount(); ok {
		_spec.AddField(bookstats.FieldRatingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bookstats.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BookCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BookIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BookStats{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bookstats.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
