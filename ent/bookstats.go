// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ketabio/bookserver/ent/book"
	"github.com/ketabio/bookserver/ent/bookstats"
)

// BookStats is the model entity for the BookStats schema.
type BookStats struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ViewCount holds the value of the "view_count" field.
	ViewCount int64 `json:"view_count,omitempty"`
	// PurchaseCount holds the value of the "purchase_count" field.
	PurchaseCount int64 `json:"purchase_count,omitempty"`
	// DownloadCount holds the value of the "download_count" field.
	DownloadCount int64 `json:"download_count,omitempty"`
	// Rating holds the value of the "rating" field.
	Rating float64 `json:"rating,omitempty"`
	// RatingCount holds the value of the "rating_count" field.
	RatingCount int `json:"rating_count,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BookStatsQuery when eager-loading is set.
	Edges        BookStatsEdges `json:"edges"`
	book_stats   *int
	selectValues sql.SelectValues
}

// BookStatsEdges holds the relations/edges for other nodes in the graph.
type BookStatsEdges struct {
	// Book holds the value of the book edge.
	Book *Book `json:"book,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BookOrErr returns the Book value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BookStatsEdges) BookOrErr() (*Book, error) {
	if e.Book != nil {
		return e.Book, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: book.Label}
	}
	return nil, &NotLoadedError{edge: "book"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BookStats) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bookstats.FieldRating:
			values[i] = new(sql.NullFloat64)
		case bookstats.FieldID, bookstats.FieldViewCount, bookstats.FieldPurchaseCount, bookstats.FieldDownloadCount, bookstats.FieldRatingCount:
			values[i] = new(sql.NullInt64)
		case bookstats.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case bookstats.ForeignKeys[0]: // book_stats
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BookStats fields.
func (_m *BookStats) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bookstats.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case bookstats.FieldViewCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field view_count", values[i])
			} else if value.Valid {
				_m.ViewCount = value.Int64
			}
		case bookstats.FieldPurchaseCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field purchase_count", values[i])
			} else if value.Valid {
				_m.PurchaseCount = value.Int64
			}
		case bookstats.FieldDownloadCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field download_count", values[i])
			} else if value.Valid {
				_m.DownloadCount = value.Int64
			}
		case bookstats.FieldRating:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = value.Float64
			}
		case bookstats.FieldRatingCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rating_count", values[i])
			} else if value.Valid {
				_m.RatingCount = int(value.Int64)
			}
		case bookstats.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case bookstats.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field book_stats", value)
			} else if value.Valid {
				_m.book_stats = new(int)
				*_m.book_stats = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BookStats.
// This includes values selected through modifiers, order, etc.
func (_m *BookStats) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBook queries the "book" edge of the BookStats entity.
func (_m *BookStats) QueryBook() *BookQuery {
	return NewBookStatsClient(_m.config).QueryBook(_m)
}

// Update returns a builder for updating this BookStats.
// Note that you need to call BookStats.Unwrap() before calling this method if this BookStats
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BookStats) Update() *BookStatsUpdateOne {
	return NewBookStatsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BookStats entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BookStats) Unwrap() *BookStats {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BookStats is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BookStats) String() string {
	var builder strings.Builder
	builder.WriteString("BookStats(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("view_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ViewCount))
	builder.WriteString(", ")
	builder.WriteString("purchase_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PurchaseCount))
	builder.WriteString(", ")
	builder.WriteString("download_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.DownloadCount))
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rating))
	builder.WriteString(", ")
	builder.WriteString("rating_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RatingCount))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BookStatsSlice is a parsable slice of BookStats.
type BookStatsSlice []*BookStats
