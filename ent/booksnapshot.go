// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ketabio/bookserver/ent/booksnapshot"
)

// BookSnapshot is the model entity for the BookSnapshot schema.
type BookSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// BookID holds the value of the "book_id" field.
	BookID int `json:"book_id,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload []byte `json:"payload,omitempty"`
	// RefreshedAt holds the value of the "refreshed_at" field.
	RefreshedAt  time.Time `json:"refreshed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BookSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case booksnapshot.FieldPayload:
			values[i] = new([]byte)
		case booksnapshot.FieldID, booksnapshot.FieldBookID:
			values[i] = new(sql.NullInt64)
		case booksnapshot.FieldRefreshedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BookSnapshot fields.
func (_m *BookSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case booksnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case booksnapshot.FieldBookID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field book_id", values[i])
			} else if value.Valid {
				_m.BookID = int(value.Int64)
			}
		case booksnapshot.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil {
				_m.Payload = *value
			}
		case booksnapshot.FieldRefreshedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field refreshed_at", values[i])
			} else if value.Valid {
				_m.RefreshedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BookSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *BookSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BookSnapshot.
// Note that you need to call BookSnapshot.Unwrap() before calling this method if this BookSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BookSnapshot) Update() *BookSnapshotUpdateOne {
	return NewBookSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BookSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BookSnapshot) Unwrap() *BookSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BookSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BookSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("BookSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("book_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BookID))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("refreshed_at=")
	builder.WriteString(_m.RefreshedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BookSnapshots is a parsable slice of BookSnapshot.
type BookSnapshots []*BookSnapshot
