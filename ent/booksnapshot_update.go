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
	"github.com/ketabio/bookserver/ent/booksnapshot"
	"github.com/ketabio/bookserver/ent/predicate"
)

// BookSnapshotUpdate is the builder for updating BookSnapshot entities.
type BookSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *BookSnapshotMutation
}

// Where appends a list predicates to the BookSnapshotUpdate builder.
func (_u *BookSnapshotUpdate) Where(ps ...predicate.BookSnapshot) *BookSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBookID sets the "book_id" field.
func (_u *BookSnapshotUpdate) SetBookID(v int) *BookSnapshotUpdate {
	_u.mutation.ResetBookID()
	_u.mutation.SetBookID(v)
	return _u
}

// SetNillableBookID sets the "book_id" field if the given value is not nil.
func (_u *BookSnapshotUpdate) SetNillableBookID(v *int) *BookSnapshotUpdate {
	if v != nil {
		_u.SetBookID(*v)
	}
	return _u
}

// AddBookID adds value to the "book_id" field.
func (_u *BookSnapshotUpdate) AddBookID(v int) *BookSnapshotUpdate {
	_u.mutation.AddBookID(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *BookSnapshotUpdate) SetPayload(v []byte) *BookSnapshotUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetRefreshedAt sets the "refreshed_at" field.
func (_u *BookSnapshotUpdate) SetRefreshedAt(v time.Time) *BookSnapshotUpdate {
	_u.mutation.SetRefreshedAt(v)
	return _u
}

// SetNillableRefreshedAt sets the "refreshed_at" field if the given value is not nil.
func (_u *BookSnapshotUpdate) SetNillableRefreshedAt(v *time.Time) *BookSnapshotUpdate {
	if v != nil {
		_u.SetRefreshedAt(*v)
	}
	return _u
}

// Mutation returns the BookSnapshotMutation object of the builder.
func (_u *BookSnapshotUpdate) Mutation() *BookSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BookSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BookSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BookSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(booksnapshot.Table, booksnapshot.Columns, sqlgraph.NewFieldSpec(booksnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BookID(); ok {
		_spec.SetField(booksnapshot.FieldBookID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBookID(); ok {
		_spec.AddField(booksnapshot.FieldBookID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(booksnapshot.FieldPayload, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.RefreshedAt(); ok {
		_spec.SetField(booksnapshot.FieldRefreshedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{booksnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BookSnapshotUpdateOne is the builder for updating a single BookSnapshot entity.
type BookSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BookSnapshotMutation
}

// SetBookID sets the "book_id" field.
func (_u *BookSnapshotUpdateOne) SetBookID(v int) *BookSnapshotUpdateOne {
	_u.mutation.ResetBookID()
	_u.mutation.SetBookID(v)
	return _u
}

// SetNillableBookID sets the "book_id" field if the given value is not nil.
func (_u *BookSnapshotUpdateOne) SetNillableBookID(v *int) *BookSnapshotUpdateOne {
	if v != nil {
		_u.SetBookID(*v)
	}
	return _u
}

// AddBookID adds value to the "book_id" field.
func (_u *BookSnapshotUpdateOne) AddBookID(v int) *BookSnapshotUpdateOne {
	_u.mutation.AddBookID(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *BookSnapshotUpdateOne) SetPayload(v []byte) *BookSnapshotUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetRefreshedAt sets the "refreshed_at" field.
func (_u *BookSnapshotUpdateOne) SetRefreshedAt(v time.Time) *BookSnapshotUpdateOne {
	_u.mutation.SetRefreshedAt(v)
	return _u
}

// SetNillableRefreshedAt sets the "refreshed_at" field if the given value is not nil.
func (_u *BookSnapshotUpdateOne) SetNillableRefreshedAt(v *time.Time) *BookSnapshotUpdateOne {
	if v != nil {
		_u.SetRefreshedAt(*v)
	}
	return _u
}

// Mutation returns the BookSnapshotMutation object of the builder.
func (_u *BookSnapshotUpdateOne) Mutation() *BookSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the BookSnapshotUpdate builder.
func (_u *BookSnapshotUpdateOne) Where(ps ...predicate.BookSnapshot) *BookSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BookSnapshotUpdateOne) Select(field string, fields ...string) *BookSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BookSnapshot entity.
func (_u *BookSnapshotUpdateOne) Save(ctx context.Context) (*BookSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookSnapshotUpdateOne) SaveX(ctx context.Context) *BookSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BookSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BookSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *BookSnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(booksnapshot.Table, booksnapshot.Columns, sqlgraph.NewFieldSpec(booksnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BookSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, booksnapshot.FieldID)
		for _, f := range fields {
			if !booksnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != booksnapshot.FieldID {
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
	if value, ok := _u.mutation.BookID(); ok {
		_spec.SetField(booksnapshot.FieldBookID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBookID(); ok {
		_spec.AddField(booksnapshot.FieldBookID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(booksnapshot.FieldPayload, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.RefreshedAt(); ok {
		_spec.SetField(booksnapshot.FieldRefreshedAt, field.TypeTime, value)
	}
	_node = &BookSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{booksnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
