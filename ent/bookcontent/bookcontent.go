// Code generated by ent, DO NOT EDIT.

package bookcontent

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the bookcontent type in the database.
	Label = "book_content"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPageNumber holds the string denoting the page_number field in the database.
	FieldPageNumber = "page_number"
	// FieldParagraphNumber holds the string denoting the paragraph_number field in the database.
	FieldParagraphNumber = "paragraph_number"
	// FieldOrder holds the string denoting the order field in the database.
	FieldOrder = "order"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSoundPath holds the string denoting the sound_path field in the database.
	FieldSoundPath = "sound_path"
	// FieldVideoPath holds the string denoting the video_path field in the database.
	FieldVideoPath = "video_path"
	// FieldImagePaths holds the string denoting the image_paths field in the database.
	FieldImagePaths = "image_paths"
	// FieldIsIndex holds the string denoting the is_index field in the database.
	FieldIsIndex = "is_index"
	// FieldIndexTitle holds the string denoting the index_title field in the database.
	FieldIndexTitle = "index_title"
	// FieldIndexLevel holds the string denoting the index_level field in the database.
	FieldIndexLevel = "index_level"
	// EdgeBook holds the string denoting the book edge name in mutations.
	EdgeBook = "book"
	// Table holds the table name of the bookcontent in the database.
	Table = "book_contents"
	// BookTable is the table that holds the book relation/edge.
	BookTable = "book_contents"
	// BookInverseTable is the table name for the Book entity.
	// It exists in this package in order to avoid circular dependency with the "book" package.
	BookInverseTable = "books"
	// BookColumn is the table column denoting the book relation/edge.
	BookColumn = "book_contents"
)

// Columns holds all SQL columns for bookcontent fields.
var Columns = []string{
	FieldID,
	FieldPageNumber,
	FieldParagraphNumber,
	FieldOrder,
	FieldText,
	FieldDescription,
	FieldSoundPath,
	FieldVideoPath,
	FieldImagePaths,
	FieldIsIndex,
	FieldIndexTitle,
	FieldIndexLevel,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "book_contents"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"book_contents",
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
	// PageNumberValidator is a validator for the "page_number" field. It is called by the builders before save.
	PageNumberValidator func(int) error
	// ParagraphNumberValidator is a validator for the "paragraph_number" field. It is called by the builders before save.
	ParagraphNumberValidator func(int) error
	// DefaultOrder holds the default value on creation for the "order" field.
	DefaultOrder int
	// DefaultIsIndex holds the default value on creation for the "is_index" field.
	DefaultIsIndex bool
	// DefaultIndexLevel holds the default value on creation for the "index_level" field.
	DefaultIndexLevel int
)

// OrderOption defines the ordering options for the BookContent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPageNumber orders the results by the page_number field.
func ByPageNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageNumber, opts...).ToFunc()
}

// ByParagraphNumber orders the results by the paragraph_number field.
func ByParagraphNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParagraphNumber, opts...).ToFunc()
}

// ByOrder orders the results by the order field.
func ByOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrder, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// BySoundPath orders the results by the sound_path field.
func BySoundPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSoundPath, opts...).ToFunc()
}

// ByVideoPath orders the results by the video_path field.
func ByVideoPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVideoPath, opts...).ToFunc()
}

// ByIsIndex orders the results by the is_index field.
func ByIsIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsIndex, opts...).ToFunc()
}

// ByIndexTitle orders the results by the index_title field.
func ByIndexTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndexTitle, opts...).ToFunc()
}

// ByIndexLevel orders the results by the index_level field.
func ByIndexLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndexLevel, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.M2O, true, BookTable, BookColumn),
	)
}
