// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ketabio/bookserver/ent/book"
	"github.com/ketabio/bookserver/ent/bookcontent"
)

// BookContent is the model entity for the BookContent schema.
type BookContent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PageNumber holds the value of the "page_number" field.
	PageNumber int `json:"page_number,omitempty"`
	// ParagraphNumber holds the value of the "paragraph_number" field.
	ParagraphNumber int `json:"paragraph_number,omitempty"`
	// Order holds the value of the "order" field.
	Order int `json:"order,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// SoundPath holds the value of the "sound_path" field.
	SoundPath string `json:"sound_path,omitempty"`
	// VideoPath holds the value of the "video_path" field.
	VideoPath string `json:"video_path,omitempty"`
	// ImagePaths holds the value of the "image_paths" field.
	ImagePaths []string `json:"image_paths,omitempty"`
	// IsIndex holds the value of the "is_index" field.
	IsIndex bool `json:"is_index,omitempty"`
	// IndexTitle holds the value of the "index_title" field.
	IndexTitle string `json:"index_title,omitempty"`
	// IndexLevel holds the value of the "index_level" field.
	IndexLevel int `json:"index_level,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BookContentQuery when eager-loading is set.
	Edges         BookContentEdges `json:"edges"`
	book_contents *int
	selectValues  sql.SelectValues
}

// BookContentEdges holds the relations/edges for other nodes in the graph.
type BookContentEdges struct {
	// Book holds the value of the book edge.
	Book *Book `json:"book,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BookOrErr returns the Book value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BookContentEdges) BookOrErr() (*Book, error) {
	if e.Book != nil {
		return e.Book, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: book.Label}
	}
	return nil, &NotLoadedError{edge: "book"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BookContent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bookcontent.FieldImagePaths:
			values[i] = new([]byte)
		case bookcontent.FieldIsIndex:
			values[i] = new(sql.NullBool)
		case bookcontent.FieldID, bookcontent.FieldPageNumber, bookcontent.FieldParagraphNumber, bookcontent.FieldOrder, bookcontent.FieldIndexLevel:
			values[i] = new(sql.NullInt64)
		case bookcontent.FieldText, bookcontent.FieldDescription, bookcontent.FieldSoundPath, bookcontent.FieldVideoPath, bookcontent.FieldIndexTitle:
			values[i] = new(sql.NullString)
		case bookcontent.ForeignKeys[0]: // book_contents
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BookContent fields.
func (_m *BookContent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bookcontent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case bookcontent.FieldPageNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_number", values[i])
			} else if value.Valid {
				_m.PageNumber = int(value.Int64)
			}
		case bookcontent.FieldParagraphNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field paragraph_number", values[i])
			} else if value.Valid {
				_m.ParagraphNumber = int(value.Int64)
			}
		case bookcontent.FieldOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order", values[i])
			} else if value.Valid {
				_m.Order = int(value.Int64)
			}
		case bookcontent.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case bookcontent.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case bookcontent.FieldSoundPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sound_path", values[i])
			} else if value.Valid {
				_m.SoundPath = value.String
			}
		case bookcontent.FieldVideoPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field video_path", values[i])
			} else if value.Valid {
				_m.VideoPath = value.String
			}
		case bookcontent.FieldImagePaths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field image_paths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ImagePaths); err != nil {
					return fmt.Errorf("unmarshal field image_paths: %w", err)
				}
			}
		case bookcontent.FieldIsIndex:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_index", values[i])
			} else if value.Valid {
				_m.IsIndex = value.Bool
			}
		case bookcontent.FieldIndexTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field index_title", values[i])
			} else if value.Valid {
				_m.IndexTitle = value.String
			}
		case bookcontent.FieldIndexLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field index_level", values[i])
			} else if value.Valid {
				_m.IndexLevel = int(value.Int64)
			}
		case bookcontent.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field book_contents", value)
			} else if value.Valid {
				_m.book_contents = new(int)
				*_m.book_contents = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BookContent.
// This includes values selected through modifiers, order, etc.
func (_m *BookContent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBook queries the "book" edge of the BookContent entity.
func (_m *BookContent) QueryBook() *BookQuery {
	return NewBookContentClient(_m.config).QueryBook(_m)
}

// Update returns a builder for updating this BookContent.
// Note that you need to call BookContent.Unwrap() before calling this method if this BookContent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BookContent) Update() *BookContentUpdateOne {
	return NewBookContentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BookContent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BookContent) Unwrap() *BookContent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BookContent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BookContent) String() string {
	var builder strings.Builder
	builder.WriteString("BookContent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("page_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageNumber))
	builder.WriteString(", ")
	builder.WriteString("paragraph_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParagraphNumber))
	builder.WriteString(", ")
	builder.WriteString("order=")
	builder.WriteString(fmt.Sprintf("%v", _m.Order))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("sound_path=")
	builder.WriteString(_m.SoundPath)
	builder.WriteString(", ")
	builder.WriteString("video_path=")
	builder.WriteString(_m.VideoPath)
	builder.WriteString(", ")
	builder.WriteString("image_paths=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImagePaths))
	builder.WriteString(", ")
	builder.WriteString("is_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsIndex))
	builder.WriteString(", ")
	builder.WriteString("index_title=")
	builder.WriteString(_m.IndexTitle)
	builder.WriteString(", ")
	builder.WriteString("index_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.IndexLevel))
	builder.WriteByte(')')
	return builder.String()
}

// BookContents is a parsable slice of BookContent.
type BookContents []*BookContent
