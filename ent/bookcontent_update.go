// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ketabio/bookserver/ent/book"
	"github.com/ketabio/bookserver/ent/bookcontent"
	"github.com/ketabio/bookserver/ent/predicate"
)

// BookContentUpdate is the builder for updating BookContent entities.
type BookContentUpdate struct {
	config
	hooks    []Hook
	mutation *BookContentMutation
}

// Where appends a list predicates to the BookContentUpdate builder.
func (_u *BookContentUpdate) Where(ps ...predicate.BookContent) *BookContentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *BookContentUpdate) SetPageNumber(v int) *BookContentUpdate {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *BookContentUpdate) SetNillablePageNumber(v *int) *BookContentUpdate {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *BookContentUpdate) AddPageNumber(v int) *BookContentUpdate {
	_u.mutation.AddPageNumber(v)
	return _u
}

// SetParagraphNumber sets the "paragraph_number" field.
func (_u *BookContentUpdate) SetParagraphNumber(v int) *BookContentUpdate {
	_u.mutation.ResetParagraphNumber()
	_u.mutation.SetParagraphNumber(v)
	return _u
}

// SetNillableParagraphNumber sets the "paragraph_number" field if the given value is not nil.
func (_u *BookContentUpdate) SetNillableParagraphNumber(v *int) *BookContentUpdate {
	if v != nil {
		_u.SetParagraphNumber(*v)
	}
	return _u
}

// AddParagraphNumber adds value to the "paragraph_number" field.
func (_u *BookContentUpdate) AddParagraphNumber(v int) *BookContentUpdate {
	_u.mutation.AddParagraphNumber(v)
	return _u
}

// SetOrder sets the "order" field.
func (_u *BookContentUpdate) SetOrder(v int) *BookContentUpdate {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *BookContentUpdate) SetNillableOrder(v *int) *BookContentUpdate {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *BookContentUpdate) AddOrder(v int) *BookContentUpdate {
	_u.mutation.AddOrder(v)
	return _u
}

// SetText sets the "text" field.
func (_u *BookContentUpdate) SetText(v string) *BookContentUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *BookContentUpdate) SetNillableText(v *string) *BookContentUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// ClearText clears the value of the "text" field.
func (_u *BookContentUpdate) ClearText() *BookContentUpdate {
	_u.mutation.ClearText()
	return _u
}

// SetDescription sets the "description" field.
func (_u *BookContentUpdate) SetDescription(v string) *BookContentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BookContentUpdate) SetNillableDescription(v *string) *BookContentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BookContentUpdate) ClearDescription() *BookContentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSoundPath sets the "sound_path" field.
func (_u *BookContentUpdate) SetSoundPath(v string) *BookContentUpdate {
	_u.mutation.SetSoundPath(v)
	return _u
}

// SetNillableSoundPath sets the "sound_path" field if the given value is not nil.
func (_u *BookContentUpdate) SetNillableSoundPath(v *string) *BookContentUpdate {
	if v != nil {
		_u.SetSoundPath(*v)
	}
	return _u
}

// ClearSoundPath clears the value of the "sound_path" field.
func (_u *BookContentUpdate) ClearSoundPath() *BookContentUpdate {
	_u.mutation.ClearSoundPath()
	return _u
}

// SetVideoPath sets the "video_path" field.
func (_u *BookContentUpdate) SetVideoPath(v string) *BookContentUpdate {
	_u.mutation.SetVideoPath(v)
	return _u
}

// SetNillableVideoPath sets the "video_path" field if the given value is not nil.
func (_u *BookContentUpdate) SetNillableVideoPath(v *string) *BookContentUpdate {
	if v != nil {
		_u.SetVideoPath(*v)
	}
	return _u
}

// ClearVideoPath clears the value of the "video_path" field.
func (_u *BookContentUpdate) ClearVideoPath() *BookContentUpdate {
	_u.mutation.ClearVideoPath()
	return _u
}

// SetImagePaths sets the "image_paths" field.
func (_u *BookContentUpdate) SetImagePaths(v []string) *BookContentUpdate {
	_u.mutation.SetImagePaths(v)
	return _u
}

// AppendImagePaths appends value to the "image_paths" field.
func (_u *BookContentUpdate) AppendImagePaths(v []string) *BookContentUpdate {
	_u.mutation.AppendImagePaths(v)
	return _u
}

// ClearImagePaths clears the value of the "image_paths" field.
func (_u *BookContentUpdate) ClearImagePaths() *BookContentUpdate {
	_u.mutation.ClearImagePaths()
	return _u
}

// SetIsIndex sets the "is_index" field.
func (_u *BookContentUpdate) SetIsIndex(v bool) *BookContentUpdate {
	_u.mutation.SetIsIndex(v)
	return _u
}

// SetNillableIsIndex sets the "is_index" field if the given value is not nil.
func (_u *BookContentUpdate) SetNillableIsIndex(v *bool) *BookContentUpdate {
	if v != nil {
		_u.SetIsIndex(*v)
	}
	return _u
}

// SetIndexTitle sets the "index_title" field.
func (_u *BookContentUpdate) SetIndexTitle(v string) *BookContentUpdate {
	_u.mutation.SetIndexTitle(v)
	return _u
}

// SetNillableIndexTitle sets the "index_title" field if the given value is not nil.
func (_u *BookContentUpdate) SetNillableIndexTitle(v *string) *BookContentUpdate {
	if v != nil {
		_u.SetIndexTitle(*v)
	}
	return _u
}

// ClearIndexTitle clears the value of the "index_title" field.
func (_u *BookContentUpdate) ClearIndexTitle() *BookContentUpdate {
	_u.mutation.ClearIndexTitle()
	return _u
}

// SetIndexLevel sets the "index_level" field.
func (_u *BookContentUpdate) SetIndexLevel(v int) *BookContentUpdate {
	_u.mutation.ResetIndexLevel()
	_u.mutation.SetIndexLevel(v)
	return _u
}

// SetNillableIndexLevel sets the "index_level" field if the given value is not nil.
func (_u *BookContentUpdate) SetNillableIndexLevel(v *int) *BookContentUpdate {
	if v != nil {
		_u.SetIndexLevel(*v)
	}
	return _u
}

// AddIndexLevel adds value to the "index_level" field.
func (_u *BookContentUpdate) AddIndexLevel(v int) *BookContentUpdate {
	_u.mutation.AddIndexLevel(v)
	return _u
}

// SetBookID sets the "book" edge to the Book entity by ID.
func (_u *BookContentUpdate) SetBookID(id int) *BookContentUpdate {
	_u.mutation.SetBookID(id)
	return _u
}

// SetBook sets the "book" edge to the Book entity.
func (_u *BookContentUpdate) SetBook(v *Book) *BookContentUpdate {
	return _u.SetBookID(v.ID)
}

// Mutation returns the BookContentMutation object of the builder.
func (_u *BookContentUpdate) Mutation() *BookContentMutation {
	return _u.mutation
}

// ClearBook clears the "book" edge to the Book entity.
func (_u *BookContentUpdate) ClearBook() *BookContentUpdate {
	_u.mutation.ClearBook()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BookContentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookContentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BookContentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookContentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookContentUpdate) check() error {
	if v, ok := _u.mutation.PageNumber(); ok {
		if err := bookcontent.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "BookContent.page_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ParagraphNumber(); ok {
		if err := bookcontent.ParagraphNumberValidator(v); err != nil {
			return &ValidationError{Name: "paragraph_number", err: fmt.Errorf(`ent: validator failed for field "BookContent.paragraph_number": %w`, err)}
		}
	}
	if _u.mutation.BookCleared() && len(_u.mutation.BookIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BookContent.book"`)
	}
	return nil
}

func (_u *BookContentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bookcontent.Table, bookcontent.Columns, sqlgraph.NewFieldSpec(bookcontent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(bookcontent.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(bookcontent.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParagraphNumber(); ok {
		_spec.SetField(bookcontent.FieldParagraphNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParagraphNumber(); ok {
		_spec.AddField(bookcontent.FieldParagraphNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(bookcontent.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(bookcontent.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(bookcontent.FieldText, field.TypeString, value)
	}
	if _u.mutation.TextCleared() {
		_spec.ClearField(bookcontent.FieldText, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(bookcontent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(bookcontent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SoundPath(); ok {
		_spec.SetField(bookcontent.FieldSoundPath, field.TypeString, value)
	}
	if _u.mutation.SoundPathCleared() {
		_spec.ClearField(bookcontent.FieldSoundPath, field.TypeString)
	}
	if value, ok := _u.mutation.VideoPath(); ok {
		_spec.SetField(bookcontent.FieldVideoPath, field.TypeString, value)
	}
	if _u.mutation.VideoPathCleared() {
		_spec.ClearField(bookcontent.FieldVideoPath, field.TypeString)
	}
	if value, ok := _u.mutation.ImagePaths(); ok {
		_spec.SetField(bookcontent.FieldImagePaths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImagePaths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bookcontent.FieldImagePaths, value)
		})
	}
	if _u.mutation.ImagePathsCleared() {
		_spec.ClearField(bookcontent.FieldImagePaths, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsIndex(); ok {
		_spec.SetField(bookcontent.FieldIsIndex, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IndexTitle(); ok {
		_spec.SetField(bookcontent.FieldIndexTitle, field.TypeString, value)
	}
	if _u.mutation.IndexTitleCleared() {
		_spec.ClearField(bookcontent.FieldIndexTitle, field.TypeString)
	}
	if value, ok := _u.mutation.IndexLevel(); ok {
		_spec.SetField(bookcontent.FieldIndexLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIndexLevel(); ok {
		_spec.AddField(bookcontent.FieldIndexLevel, field.TypeInt, value)
	}
	if _u.mutation.BookCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bookcontent.BookTable,
			Columns: []string{bookcontent.BookColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(book.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BookIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bookcontent.BookTable,
			Columns: []string{bookcontent.BookColumn},
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
			err = &NotFoundError{bookcontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BookContentUpdateOne is the builder for updating a single BookContent entity.
type BookContentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BookContentMutation
}

// SetPageNumber sets the "page_number" field.
func (_u *BookContentUpdateOne) SetPageNumber(v int) *BookContentUpdateOne {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *BookContentUpdateOne) SetNillablePageNumber(v *int) *BookContentUpdateOne {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *BookContentUpdateOne) AddPageNumber(v int) *BookContentUpdateOne {
	_u.mutation.AddPageNumber(v)
	return _u
}

// SetParagraphNumber sets the "paragraph_number" field.
func (_u *BookContentUpdateOne) SetParagraphNumber(v int) *BookContentUpdateOne {
	_u.mutation.ResetParagraphNumber()
	_u.mutation.SetParagraphNumber(v)
	return _u
}

// SetNillableParagraphNumber sets the "paragraph_number" field if the given value is not nil.
func (_u *BookContentUpdateOne) SetNillableParagraphNumber(v *int) *BookContentUpdateOne {
	if v != nil {
		_u.SetParagraphNumber(*v)
	}
	return _u
}

// AddParagraphNumber adds value to the "paragraph_number" field.
func (_u *BookContentUpdateOne) AddParagraphNumber(v int) *BookContentUpdateOne {
	_u.mutation.AddParagraphNumber(v)
	return _u
}

// SetOrder sets the "order" field.
func (_u *BookContentUpdateOne) SetOrder(v int) *BookContentUpdateOne {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *BookContentUpdateOne) SetNillableOrder(v *int) *BookContentUpdateOne {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *BookContentUpdateOne) AddOrder(v int) *BookContentUpdateOne {
	_u.mutation.AddOrder(v)
	return _u
}

// SetText sets the "text" field.
func (_u *BookContentUpdateOne) SetText(v string) *BookContentUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *BookContentUpdateOne) SetNillableText(v *string) *BookContentUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// ClearText clears the value of the "text" field.
func (_u *BookContentUpdateOne) ClearText() *BookContentUpdateOne {
	_u.mutation.ClearText()
	return _u
}

// SetDescription sets the "description" field.
func (_u *BookContentUpdateOne) SetDescription(v string) *BookContentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BookContentUpdateOne) SetNillableDescription(v *string) *BookContentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BookContentUpdateOne) ClearDescription() *BookContentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSoundPath sets the "sound_path" field.
func (_u *BookContentUpdateOne) SetSoundPath(v string) *BookContentUpdateOne {
	_u.mutation.SetSoundPath(v)
	return _u
}

// SetNillableSoundPath sets the "sound_path" field if the given value is not nil.
func (_u *BookContentUpdateOne) SetNillableSoundPath(v *string) *BookContentUpdateOne {
	if v != nil {
		_u.SetSoundPath(*v)
	}
	return _u
}

// ClearSoundPath clears the value of the "sound_path" field.
func (_u *BookContentUpdateOne) ClearSoundPath() *BookContentUpdateOne {
	_u.mutation.ClearSoundPath()
	return _u
}

// SetVideoPath sets the "video_path" field.
func (_u *BookContentUpdateOne) SetVideoPath(v string) *BookContentUpdateOne {
	_u.mutation.SetVideoPath(v)
	return _u
}

// SetNillableVideoPath sets the "video_path" field if the given value is not nil.
func (_u *BookContentUpdateOne) SetNillableVideoPath(v *string) *BookContentUpdateOne {
	if v != nil {
		_u.SetVideoPath(*v)
	}
	return _u
}

// ClearVideoPath clears the value of the "video_path" field.
func (_u *BookContentUpdateOne) ClearVideoPath() *BookContentUpdateOne {
	_u.mutation.ClearVideoPath()
	return _u
}

// SetImagePaths sets the "image_paths" field.
func (_u *BookContentUpdateOne) SetImagePaths(v []string) *BookContentUpdateOne {
	_u.mutation.SetImagePaths(v)
	return _u
}

// AppendImagePaths appends value to the "image_paths" field.
func (_u *BookContentUpdateOne) AppendImagePaths(v []string) *BookContentUpdateOne {
	_u.mutation.AppendImagePaths(v)
	return _u
}

// ClearImagePaths clears the value of the "image_paths" field.
func (_u *BookContentUpdateOne) ClearImagePaths() *BookContentUpdateOne {
	_u.mutation.ClearImagePaths()
	return _u
}

// SetIsIndex sets the "is_index" field.
func (_u *BookContentUpdateOne) SetIsIndex(v bool) *BookContentUpdateOne {
	_u.mutation.SetIsIndex(v)
	return _u
}

// SetNillableIsIndex sets the "is_index" field if the given value is not nil.
func (_u *BookContentUpdateOne) SetNillableIsIndex(v *bool) *BookContentUpdateOne {
	if v != nil {
		_u.SetIsIndex(*v)
	}
	return _u
}

// SetIndexTitle sets the "index_title" field.
func (_u *BookContentUpdateOne) SetIndexTitle(v string) *BookContentUpdateOne {
	_u.mutation.SetIndexTitle(v)
	return _u
}

// SetNillableIndexTitle sets the "index_title" field if the given value is not nil.
func (_u *BookContentUpdateOne) SetNillableIndexTitle(v *string) *BookContentUpdateOne {
	if v != nil {
		_u.SetIndexTitle(*v)
	}
	return _u
}

// ClearIndexTitle clears the value of the "index_title" field.
func (_u *BookContentUpdateOne) ClearIndexTitle() *BookContentUpdateOne {
	_u.mutation.ClearIndexTitle()
	return _u
}

// SetIndexLevel sets the "index_level" field.
func (_u *BookContentUpdateOne) SetIndexLevel(v int) *BookContentUpdateOne {
	_u.mutation.ResetIndexLevel()
	_u.mutation.SetIndexLevel(v)
	return _u
}

// SetNillableIndexLevel sets the "index_level" field if the given value is not nil.
func (_u *BookContentUpdateOne) SetNillableIndexLevel(v *int) *BookContentUpdateOne {
	if v != nil {
		_u.SetIndexLevel(*v)
	}
	return _u
}

// AddIndexLevel adds value to the "index_level" field.
func (_u *BookContentUpdateOne) AddIndexLevel(v int) *BookContentUpdateOne {
	_u.mutation.AddIndexLevel(v)
	return _u
}

// SetBookID sets the "book" edge to the Book entity by ID.
func (_u *BookContentUpdateOne) SetBookID(id int) *BookContentUpdateOne {
	_u.mutation.SetBookID(id)
	return _u
}

// SetBook sets the "book" edge to the Book entity.
func (_u *BookContentUpdateOne) SetBook(v *Book) *BookContentUpdateOne {
	return _u.SetBookID(v.ID)
}

// Mutation returns the BookContentMutation object of the builder.
func (_u *BookContentUpdateOne) Mutation() *BookContentMutation {
	return _u.mutation
}

// ClearBook clears the "book" edge to the Book entity.
func (_u *BookContentUpdateOne) ClearBook() *BookContentUpdateOne {
	_u.mutation.ClearBook()
	return _u
}

// Where appends a list predicates to the BookContentUpdate builder.
func (_u *BookContentUpdateOne) Where(ps ...predicate.BookContent) *BookContentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BookContentUpdateOne) Select(field string, fields ...string) *BookContentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BookContent entity.
func (_u *BookContentUpdateOne) Save(ctx context.Context) (*BookContent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookContentUpdateOne) SaveX(ctx context.Context) *BookContent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BookContentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookContentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookContentUpdateOne) check() error {
	if v, ok := _u.mutation.PageNumber(); ok {
		if err := bookcontent.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "BookContent.page_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ParagraphNumber(); ok {
		if err := bookcontent.ParagraphNumberValidator(v); err != nil {
			return &ValidationError{Name: "paragraph_number", err: fmt.Errorf(`ent: validator failed for field "BookContent.paragraph_number": %w`, err)}
		}
	}
	if _u.mutation.BookCleared() && len(_u.mutation.BookIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BookContent.book"`)
	}
	return nil
}

func (_u *BookContentUpdateOne) sqlSave(ctx context.Context) (_node *BookContent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bookcontent.Table, bookcontent.Columns, sqlgraph.NewFieldSpec(bookcontent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BookContent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bookcontent.FieldID)
		for _, f := range fields {
			if !bookcontent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bookcontent.FieldID {
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
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(bookcontent.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(bookcontent.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParagraphNumber(); ok {
		_spec.SetField(bookcontent.FieldParagraphNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParagraphNumber(); ok {
		_spec.AddField(bookcontent.FieldParagraphNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(bookcontent.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(bookcontent.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(bookcontent.FieldText, field.TypeString, value)
	}
	if _u.mutation.TextCleared() {
		_spec.ClearField(bookcontent.FieldText, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(bookcontent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(bookcontent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SoundPath(); ok {
		_spec.SetField(bookcontent.FieldSoundPath, field.TypeString, value)
	}
	if _u.mutation.SoundPathCleared() {
		_spec.ClearField(bookcontent.FieldSoundPath, field.TypeString)
	}
	if value, ok := _u.mutation.VideoPath(); ok {
		_spec.SetField(bookcontent.FieldVideoPath, field.TypeString, value)
	}
	if _u.mutation.VideoPathCleared() {
		_spec.ClearField(bookcontent.FieldVideoPath, field.TypeString)
	}
	if value, ok := _u.mutation.ImagePaths(); ok {
		_spec.SetField(bookcontent.FieldImagePaths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImagePaths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bookcontent.FieldImagePaths, value)
		})
	}
	if _u.mutation.ImagePathsCleared() {
		_spec.ClearField(bookcontent.FieldImagePaths, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsIndex(); ok {
		_spec.SetField(bookcontent.FieldIsIndex, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IndexTitle(); ok {
		_spec.SetField(bookcontent.FieldIndexTitle, field.TypeString, value)
	}
	if _u.mutation.IndexTitleCleared() {
		_spec.ClearField(bookcontent.FieldIndexTitle, field.TypeString)
	}
	if value, ok := _u.mutation.IndexLevel(); ok {
		_spec.SetField(bookcontent.FieldIndexLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIndexLevel(); ok {
		_spec.AddField(bookcontent.FieldIndexLevel, field.TypeInt, value)
	}
	if _u.mutation.BookCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bookcontent.BookTable,
			Columns: []string{bookcontent.BookColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(book.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BookIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bookcontent.BookTable,
			Columns: []string{bookcontent.BookColumn},
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
	_node = &BookContent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bookcontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
