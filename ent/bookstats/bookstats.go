// Code generated by ent, DO NOT EDIT.

package bookstats

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the bookstats type in the database.
	Label = "book_stats"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldViewCount holds the string denoting the view_count field in the database.
	FieldViewCount = "view_count"
	// FieldPurchaseCount holds the string denoting the purchase_count field in the database.
	FieldPurchaseCount = "purchase_count"
	// FieldDownloadCount holds the string denoting the download_count field in the database.
	FieldDownloadCount = "download_count"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldRatingCount holds the string denoting the rating_count field in the database.
	FieldRatingCount = "rating_count"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBook holds the string denoting the book edge name in mutations.
	EdgeBook = "book"
	// Table holds the table name of the bookstats in the database.
	Table = "book_stats"
	// BookTable is the table that holds the book relation/edge.
	BookTable = "book_stats"
	// BookInverseTable is the table name for the Book entity.
	// It exists in this package in order to avoid circular dependency with the "book" package.
	BookInverseTable = "books"
	// BookColumn is the table column denoting the book relation/edge.
	BookColumn = "book_stats"
)

// Columns holds all SQL columns for bookstats fields.
var Columns = []string{
	FieldID,
	FieldViewCount,
	FieldPurchaseCount,
	FieldDownloadCount,
	FieldRating,
	FieldRatingCount,
	FieldUpdatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "book_stats"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"book_stats",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultViewCount holds the default value on creation for the "view_count" field.
	DefaultViewCount int64
	// DefaultPurchaseCount holds the default value on creation for the "purchase_count" field.
	DefaultPurchaseCount int64
	// DefaultDownloadCount holds the default value on creation for the "download_count" field.
	DefaultDownloadCount int64
	// DefaultRating holds the default value on creation for the "rating" field.
	DefaultRating float64
	// DefaultRatingCount holds the default value on creation for the "rating_count" field.
	DefaultRatingCount int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the BookStats queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByViewCount orders the results by the view_count field.
func ByViewCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldViewCount, opts...).ToFunc()
}

// ByPurchaseCount orders the results by the purchase_count field.
func ByPurchaseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPurchaseCount, opts...).ToFunc()
}

// ByDownloadCount orders the results by the download_count field.
func ByDownloadCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDownloadCount, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByRatingCount orders the results by the rating_count field.
func ByRatingCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRatingCount, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBookField orders the results by book field.
func ByBookField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBookStep(), sql.OrderByField(field, opts...))
	}
}
func newBookStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BookInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, BookTable, BookColumn),
	)
}
