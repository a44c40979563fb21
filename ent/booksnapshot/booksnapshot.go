// Code generated by ent, DO NOT EDIT.

package booksnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the booksnapshot type in the database.
	Label = "book_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBookID holds the string denoting the book_id field in the database.
	FieldBookID = "book_id"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldRefreshedAt holds the string denoting the refreshed_at field in the database.
	FieldRefreshedAt = "refreshed_at"
	// Table holds the table name of the booksnapshot in the database.
	Table = "book_snapshots"
)

// Columns holds all SQL columns for booksnapshot fields.
var Columns = []string{
	FieldID,
	FieldBookID,
	FieldPayload,
	FieldRefreshedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRefreshedAt holds the default value on creation for the "refreshed_at" field.
	DefaultRefreshedAt func() time.Time
)

// OrderOption defines the ordering options for the BookSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBookID orders the results by the book_id field.
func ByBookID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBookID, opts...).ToFunc()
}

// ByRefreshedAt orders the results by the refreshed_at field.
func ByRefreshedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRefreshedAt, opts...).ToFunc()
}
