// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ketabio/bookserver/ent/book"
	"github.com/ketabio/bookserver/ent/bookstats"
	"github.com/ketabio/bookserver/ent/category"
	"github.com/ketabio/bookserver/ent/schema"
)

// Book is the model entity for the Book schema.
type Book struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Slug holds the value of the "slug" field.
	Slug string `json:"slug,omitempty"`
	// Excerpt holds the value of the "excerpt" field.
	Excerpt string `json:"excerpt,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Pages holds the value of the "pages" field.
	Pages int `json:"pages,omitempty"`
	// Price holds the value of the "price" field.
	Price int64 `json:"price,omitempty"`
	// DiscountPrice holds the value of the "discount_price" field.
	DiscountPrice *int64 `json:"discount_price,omitempty"`
	// IsFree holds the value of the "is_free" field.
	IsFree bool `json:"is_free,omitempty"`
	// Status holds the value of the "status" field.
	Status book.Status `json:"status,omitempty"`
	// AuthorsEmbed holds the value of the "authors_embed" field.
	AuthorsEmbed []schema.EntityRef `json:"authors_embed,omitempty"`
	// CategoriesEmbed holds the value of the "categories_embed" field.
	CategoriesEmbed []schema.EntityRef `json:"categories_embed,omitempty"`
	// Cover holds the value of the "cover" field.
	Cover *[]byte `json:"cover,omitempty"`
	// CoverContentType holds the value of the "cover_content_type" field.
	CoverContentType *string `json:"cover_content_type,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BookQuery when eager-loading is set.
	Edges                 BookEdges `json:"edges"`
	book_primary_category *int
	selectValues          sql.SelectValues
}

// BookEdges holds the relations/edges for other nodes in the graph.
type BookEdges struct {
	// Authors holds the value of the authors edge.
	Authors []*Author `json:"authors,omitempty"`
	// Categories holds the value of the categories edge.
	Categories []*Category `json:"categories,omitempty"`
	// PrimaryCategory holds the value of the primary_category edge.
	PrimaryCategory *Category `json:"primary_category,omitempty"`
	// Stats holds the value of the stats edge.
	Stats *BookStats `json:"stats,omitempty"`
	// Contents holds the value of the contents edge.
	Contents []*BookContent `json:"contents,omitempty"`
	// Purchases holds the value of the purchases edge.
	Purchases []*Purchase `json:"purchases,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// AuthorsOrErr returns the Authors value or an error if the edge
// was not loaded in eager-loading.
func (e BookEdges) AuthorsOrErr() ([]*Author, error) {
	if e.loadedTypes[0] {
		return e.Authors, nil
	}
	return nil, &NotLoadedError{edge: "authors"}
}

// CategoriesOrErr returns the Categories value or an error if the edge
// was not loaded in eager-loading.
func (e BookEdges) CategoriesOrErr() ([]*Category, error) {
	if e.loadedTypes[1] {
		return e.Categories, nil
	}
	return nil, &NotLoadedError{edge: "categories"}
}

// PrimaryCategoryOrErr returns the PrimaryCategory value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BookEdges) PrimaryCategoryOrErr() (*Category, error) {
	if e.PrimaryCategory != nil {
		return e.PrimaryCategory, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: category.Label}
	}
	return nil, &NotLoadedError{edge: "primary_category"}
}

// StatsOrErr returns the Stats value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BookEdges) StatsOrErr() (*BookStats, error) {
	if e.Stats != nil {
		return e.Stats, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: bookstats.Label}
	}
	return nil, &NotLoadedError{edge: "stats"}
}

// ContentsOrErr returns the Contents value or an error if the edge
// was not loaded in eager-loading.
func (e BookEdges) ContentsOrErr() ([]*BookContent, error) {
	if e.loadedTypes[4] {
		return e.Contents, nil
	}
	return nil, &NotLoadedError{edge: "contents"}
}

// PurchasesOrErr returns the Purchases value or an error if the edge
// was not loaded in eager-loading.
func (e BookEdges) PurchasesOrErr() ([]*Purchase, error) {
	if e.loadedTypes[5] {
		return e.Purchases, nil
	}
	return nil, &NotLoadedError{edge: "purchases"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Book) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case book.FieldAuthorsEmbed, book.FieldCategoriesEmbed, book.FieldCover:
			values[i] = new([]byte)
		case book.FieldIsFree:
			values[i] = new(sql.NullBool)
		case book.FieldID, book.FieldPages, book.FieldPrice, book.FieldDiscountPrice:
			values[i] = new(sql.NullInt64)
		case book.FieldTitle, book.FieldSlug, book.FieldExcerpt, book.FieldContent, book.FieldStatus, book.FieldCoverContentType:
			values[i] = new(sql.NullString)
		case book.FieldCreatedAt, book.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case book.ForeignKeys[0]: // book_primary_category
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Book fields.
func (_m *Book) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case book.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case book.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case book.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case book.FieldExcerpt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field excerpt", values[i])
			} else if value.Valid {
				_m.Excerpt = value.String
			}
		case book.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case book.FieldPages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pages", values[i])
			} else if value.Valid {
				_m.Pages = int(value.Int64)
			}
		case book.FieldPrice:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.Int64
			}
		case book.FieldDiscountPrice:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field discount_price", values[i])
			} else if value.Valid {
				_m.DiscountPrice = new(int64)
				*_m.DiscountPrice = value.Int64
			}
		case book.FieldIsFree:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_free", values[i])
			} else if value.Valid {
				_m.IsFree = value.Bool
			}
		case book.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = book.Status(value.String)
			}
		case book.FieldAuthorsEmbed:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field authors_embed", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AuthorsEmbed); err != nil {
					return fmt.Errorf("unmarshal field authors_embed: %w", err)
				}
			}
		case book.FieldCategoriesEmbed:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field categories_embed", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CategoriesEmbed); err != nil {
					return fmt.Errorf("unmarshal field categories_embed: %w", err)
				}
			}
		case book.FieldCover:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field cover", values[i])
			} else if value != nil {
				_m.Cover = value
			}
		case book.FieldCoverContentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cover_content_type", values[i])
			} else if value.Valid {
				_m.CoverContentType = new(string)
				*_m.CoverContentType = value.String
			}
		case book.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case book.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case book.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field book_primary_category", value)
			} else if value.Valid {
				_m.book_primary_category = new(int)
				*_m.book_primary_category = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Book.
// This includes values selected through modifiers, order, etc.
func (_m *Book) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAuthors queries the "authors" edge of the Book entity.
func (_m *Book) QueryAuthors() *AuthorQuery {
	return NewBookClient(_m.config).QueryAuthors(_m)
}

// QueryCategories queries the "categories" edge of the Book entity.
func (_m *Book) QueryCategories() *CategoryQuery {
	return NewBookClient(_m.config).QueryCategories(_m)
}

// QueryPrimaryCategory queries the "primary_category" edge of the Book entity.
func (_m *Book) QueryPrimaryCategory() *CategoryQuery {
	return NewBookClient(_m.config).QueryPrimaryCategory(_m)
}

// QueryStats queries the "stats" edge of the Book entity.
func (_m *Book) QueryStats() *BookStatsQuery {
	return NewBookClient(_m.config).QueryStats(_m)
}

// QueryContents queries the "contents" edge of the Book entity.
func (_m *Book) QueryContents() *BookContentQuery {
	return NewBookClient(_m.config).QueryContents(_m)
}

// QueryPurchases queries the "purchases" edge of the Book entity.
func (_m *Book) QueryPurchases() *PurchaseQuery {
	return NewBookClient(_m.config).QueryPurchases(_m)
}

// Update returns a builder for updating this Book.
// Note that you need to call Book.Unwrap() before calling this method if this Book
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Book) Update() *BookUpdateOne {
	return NewBookClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Book entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Book) Unwrap() *Book {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Book is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Book) String() string {
	var builder strings.Builder
	builder.WriteString("Book(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("excerpt=")
	builder.WriteString(_m.Excerpt)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("pages=")
	builder.WriteString(fmt.Sprintf("%v", _m.Pages))
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteString(", ")
	if v := _m.DiscountPrice; v != nil {
		builder.WriteString("discount_price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_free=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsFree))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("authors_embed=")
	builder.WriteString(fmt.Sprintf("%v", _m.AuthorsEmbed))
	builder.WriteString(", ")
	builder.WriteString("categories_embed=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoriesEmbed))
	builder.WriteString(", ")
	if v := _m.Cover; v != nil {
		builder.WriteString("cover=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CoverContentType; v != nil {
		builder.WriteString("cover_content_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Books is a parsable slice of Book.
type Books []*Book
