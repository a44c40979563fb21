// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ketabio/bookserver/ent/booksnapshot"
)

// BookSnapshotCreate is the builder for creating a BookSnapshot entity.
type BookSnapshotCreate struct {
	config
	mutation *BookSnapshotMutation
	hooks    []Hook
}

// SetBookID sets the "book_id" field.
func (_c *BookSnapshotCreate) SetBookID(v int) *BookSnapshotCreate {
	_c.mutation.SetBookID(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *BookSnapshotCreate) SetPayload(v []byte) *BookSnapshotCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetRefreshedAt sets the "refreshed_at" field.
func (_c *BookSnapshotCreate) SetRefreshedAt(v time.Time) *BookSnapshotCreate {
	_c.mutation.SetRefreshedAt(v)
	return _c
}

// SetNillableRefreshedAt sets the "refreshed_at" field if the given value is not nil.
func (_c *BookSnapshotCreate) SetNillableRefreshedAt(v *time.Time) *BookSnapshotCreate {
	if v != nil {
		_c.SetRefreshedAt(*v)
	}
	return _c
}

// Mutation returns the BookSnapshotMutation object of the builder.
func (_c *BookSnapshotCreate) Mutation() *BookSnapshotMutation {
	return _c.mutation
}

// Save creates the BookSnapshot in the database.
func (_c *BookSnapshotCreate) Save(ctx context.Context) (*BookSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BookSnapshotCreate) SaveX(ctx context.Context) *BookSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BookSnapshotCreate) defaults() {
	if _, ok := _c.mutation.RefreshedAt(); !ok {
		v := booksnapshot.DefaultRefreshedAt()
		_c.mutation.SetRefreshedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BookSnapshotCreate) check() error {
	if _, ok := _c.mutation.BookID(); !ok {
		return &ValidationError{Name: "book_id", err: errors.New(`ent: missing required field "BookSnapshot.book_id"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "BookSnapshot.payload"`)}
	}
	if _, ok := _c.mutation.RefreshedAt(); !ok {
		return &ValidationError{Name: "refreshed_at", err: errors.New(`ent: missing required field "BookSnapshot.refreshed_at"`)}
	}
	return nil
}

func (_c *BookSnapshotCreate) sqlSave(ctx context.Context) (*BookSnapshot, error) {
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

func (_c *BookSnapshotCreate) createSpec() (*BookSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &BookSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(booksnapshot.Table, sqlgraph.NewFieldSpec(booksnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.BookID(); ok {
		_spec.SetField(booksnapshot.FieldBookID, field.TypeInt, value)
		_node.BookID = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(booksnapshot.FieldPayload, field.TypeBytes, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.RefreshedAt(); ok {
		_spec.SetField(booksnapshot.FieldRefreshedAt, field.TypeTime, value)
		_node.RefreshedAt = value
	}
	return _node, _spec
}

// BookSnapshotCreateBulk is the builder for creating many BookSnapshot entities in bulk.
type BookSnapshotCreateBulk struct {
	config
	err      error
	builders []*BookSnapshotCreate
}

// Save creates the BookSnapshot entities in the database.
func (_c *BookSnapshotCreateBulk) Save(ctx context.Context) ([]*BookSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BookSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BookSnapshotMutation)
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
func (_c *BookSnapshotCreateBulk) SaveX(ctx context.Context) []*BookSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
