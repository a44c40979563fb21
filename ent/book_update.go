// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/ketabio/bookserver/ent/author"
	"github.com/ketabio/bookserver/ent/book"
	"github.com/ketabio/bookserver/ent/bookcontent"
	"github.com/ketabio/bookserver/ent/bookstats"
	"github.com/ketabio/bookserver/ent/category"
	"github.com/ketabio/bookserver/ent/predicate"
	"github.com/ketabio/bookserver/ent/purchase"
	"github.com/ketabio/bookserver/ent/schema"
)

// BookUpdate is the builder for updating Book entities.
type BookUpdate struct {
	config
	hooks    []Hook
	mutation *BookMutation
}

// Where appends a list predicates to the BookUpdate builder.
func (_u *BookUpdate) Where(ps ...predicate.Book) *BookUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *BookUpdate) SetTitle(v string) *BookUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BookUpdate) SetNillableTitle(v *string) *BookUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *BookUpdate) SetSlug(v string) *BookUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *BookUpdate) SetNillableSlug(v *string) *BookUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetExcerpt sets the "excerpt" field.
func (_u *BookUpdate) SetExcerpt(v string) *BookUpdate {
	_u.mutation.SetExcerpt(v)
	return _u
}

// SetNillableExcerpt sets the "excerpt" field if the given value is not nil.
func (_u *BookUpdate) SetNillableExcerpt(v *string) *BookUpdate {
	if v != nil {
		_u.SetExcerpt(*v)
	}
	return _u
}

// ClearExcerpt clears the value of the "excerpt" field.
func (_u *BookUpdate) ClearExcerpt() *BookUpdate {
	_u.mutation.ClearExcerpt()
	return _u
}

// SetContent sets the "content" field.
func (_u *BookUpdate) SetContent(v string) *BookUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *BookUpdate) SetNillableContent(v *string) *BookUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *BookUpdate) ClearContent() *BookUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetPages sets the "pages" field.
func (_u *BookUpdate) SetPages(v int) *BookUpdate {
	_u.mutation.ResetPages()
	_u.mutation.SetPages(v)
	return _u
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_u *BookUpdate) SetNillablePages(v *int) *BookUpdate {
	if v != nil {
		_u.SetPages(*v)
	}
	return _u
}

// AddPages adds value to the "pages" field.
func (_u *BookUpdate) AddPages(v int) *BookUpdate {
	_u.mutation.AddPages(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *BookUpdate) SetPrice(v int64) *BookUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *BookUpdate) SetNillablePrice(v *int64) *BookUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *BookUpdate) AddPrice(v int64) *BookUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetDiscountPrice sets the "discount_price" field.
func (_u *BookUpdate) SetDiscountPrice(v int64) *BookUpdate {
	_u.mutation.ResetDiscountPrice()
	_u.mutation.SetDiscountPrice(v)
	return _u
}

// SetNillableDiscountPrice sets the "discount_price" field if the given value is not nil.
func (_u *BookUpdate) SetNillableDiscountPrice(v *int64) *BookUpdate {
	if v != nil {
		_u.SetDiscountPrice(*v)
	}
	return _u
}

// AddDiscountPrice adds value to the "discount_price" field.
func (_u *BookUpdate) AddDiscountPrice(v int64) *BookUpdate {
	_u.mutation.AddDiscountPrice(v)
	return _u
}

// ClearDiscountPrice clears the value of the "discount_price" field.
func (_u *BookUpdate) ClearDiscountPrice() *BookUpdate {
	_u.mutation.ClearDiscountPrice()
	return _u
}

// SetIsFree sets the "is_free" field.
func (_u *BookUpdate) SetIsFree(v bool) *BookUpdate {
	_u.mutation.SetIsFree(v)
	return _u
}

// SetNillableIsFree sets the "is_free" field if the given value is not nil.
func (_u *BookUpdate) SetNillableIsFree(v *bool) *BookUpdate {
	if v != nil {
		_u.SetIsFree(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BookUpdate) SetStatus(v book.Status) *BookUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BookUpdate) SetNillableStatus(v *book.Status) *BookUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAuthorsEmbed sets the "authors_embed" field.
func (_u *BookUpdate) SetAuthorsEmbed(v []schema.EntityRef) *BookUpdate {
	_u.mutation.SetAuthorsEmbed(v)
	return _u
}

// AppendAuthorsEmbed appends value to the "authors_embed" field.
func (_u *BookUpdate) AppendAuthorsEmbed(v []schema.EntityRef) *BookUpdate {
	_u.mutation.AppendAuthorsEmbed(v)
	return _u
}

// ClearAuthorsEmbed clears the value of the "authors_embed" field.
func (_u *BookUpdate) ClearAuthorsEmbed() *BookUpdate {
	_u.mutation.ClearAuthorsEmbed()
	return _u
}

// SetCategoriesEmbed sets the "categories_embed" field.
func (_u *BookUpdate) SetCategoriesEmbed(v []schema.EntityRef) *BookUpdate {
	_u.mutation.SetCategoriesEmbed(v)
	return _u
}

// AppendCategoriesEmbed appends value to the "categories_embed" field.
func (_u *BookUpdate) AppendCategoriesEmbed(v []schema.EntityRef) *BookUpdate {
	_u.mutation.AppendCategoriesEmbed(v)
	return _u
}

// ClearCategoriesEmbed clears the value of the "categories_embed" field.
func (_u *BookUpdate) ClearCategoriesEmbed() *BookUpdate {
	_u.mutation.ClearCategoriesEmbed()
	return _u
}

// SetCover sets the "cover" field.
func (_u *BookUpdate) SetCover(v []byte) *BookUpdate {
	_u.mutation.SetCover(v)
	return _u
}

// ClearCover clears the value of the "cover" field.
func (_u *BookUpdate) ClearCover() *BookUpdate {
	_u.mutation.ClearCover()
	return _u
}

// SetCoverContentType sets the "cover_content_type" field.
func (_u *BookUpdate) SetCoverContentType(v string) *BookUpdate {
	_u.mutation.SetCoverContentType(v)
	return _u
}

// SetNillableCoverContentType sets the "cover_content_type" field if the given value is not nil.
func (_u *BookUpdate) SetNillableCoverContentType(v *string) *BookUpdate {
	if v != nil {
		_u.SetCoverContentType(*v)
	}
	return _u
}

// ClearCoverContentType clears the value of the "cover_content_type" field.
func (_u *BookUpdate) ClearCoverContentType() *BookUpdate {
	_u.mutation.ClearCoverContentType()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BookUpdate) SetUpdatedAt(v time.Time) *BookUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAuthorIDs adds the "authors" edge to the Author entity by IDs.
func (_u *BookUpdate) AddAuthorIDs(ids ...int) *BookUpdate {
	_u.mutation.AddAuthorIDs(ids...)
	return _u
}

// AddAuthors adds the "authors" edges to the Author entity.
func (_u *BookUpdate) AddAuthors(v ...*Author) *BookUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuthorIDs(ids...)
}

// AddCategoryIDs adds the "categories" edge to the Category entity by IDs.
func (_u *BookUpdate) AddCategoryIDs(ids ...int) *BookUpdate {
	_u.mutation.AddCategoryIDs(ids...)
	return _u
}

// AddCategories adds the "categories" edges to the Category entity.
func (_u *BookUpdate) AddCategories(v ...*Category) *BookUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCategoryIDs(ids...)
}

// SetPrimaryCategoryID sets the "primary_category" edge to the Category entity by ID.
func (_u *BookUpdate) SetPrimaryCategoryID(id int) *BookUpdate {
	_u.mutation.SetPrimaryCategoryID(id)
	return _u
}

// SetNillablePrimaryCategoryID sets the "primary_category" edge to the Category entity by ID if the given value is not nil.
func (_u *BookUpdate) SetNillablePrimaryCategoryID(id *int) *BookUpdate {
	if id != nil {
		_u = _u.SetPrimaryCategoryID(*id)
	}
	return _u
}

// SetPrimaryCategory sets the "primary_category" edge to the Category entity.
func (_u *BookUpdate) SetPrimaryCategory(v *Category) *BookUpdate {
	return _u.SetPrimaryCategoryID(v.ID)
}

// SetStatsID sets the "stats" edge to the BookStats entity by ID.
func (_u *BookUpdate) SetStatsID(id int) *BookUpdate {
	_u.mutation.SetStatsID(id)
	return _u
}

// SetNillableStatsID sets the "stats" edge to the BookStats entity by ID if the given value is not nil.
func (_u *BookUpdate) SetNillableStatsID(id *int) *BookUpdate {
	if id != nil {
		_u = _u.SetStatsID(*id)
	}
	return _u
}

// SetStats sets the "stats" edge to the BookStats entity.
func (_u *BookUpdate) SetStats(v *BookStats) *BookUpdate {
	return _u.SetStatsID(v.ID)
}

// AddContentIDs adds the "contents" edge to the BookContent entity by IDs.
func (_u *BookUpdate) AddContentIDs(ids ...int) *BookUpdate {
	_u.mutation.AddContentIDs(ids...)
	return _u
}

// AddContents adds the "contents" edges to the BookContent entity.
func (_u *BookUpdate) AddContents(v ...*BookContent) *BookUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContentIDs(ids...)
}

// AddPurchaseIDs adds the "purchases" edge to the Purchase entity by IDs.
func (_u *BookUpdate) AddPurchaseIDs(ids ...uuid.UUID) *BookUpdate {
	_u.mutation.AddPurchaseIDs(ids...)
	return _u
}

// AddPurchases adds the "purchases" edges to the Purchase entity.
func (_u *BookUpdate) AddPurchases(v ...*Purchase) *BookUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPurchaseIDs(ids...)
}

// Mutation returns the BookMutation object of the builder.
func (_u *BookUpdate) Mutation() *BookMutation {
	return _u.mutation
}

// ClearAuthors clears all "authors" edges to the Author entity.
func (_u *BookUpdate) ClearAuthors() *BookUpdate {
	_u.mutation.ClearAuthors()
	return _u
}

// RemoveAuthorIDs removes the "authors" edge to Author entities by IDs.
func (_u *BookUpdate) RemoveAuthorIDs(ids ...int) *BookUpdate {
	_u.mutation.RemoveAuthorIDs(ids...)
	return _u
}

// RemoveAuthors removes "authors" edges to Author entities.
func (_u *BookUpdate) RemoveAuthors(v ...*Author) *BookUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuthorIDs(ids...)
}

// ClearCategories clears all "categories" edges to the Category entity.
func (_u *BookUpdate) ClearCategories() *BookUpdate {
	_u.mutation.ClearCategories()
	return _u
}

// RemoveCategoryIDs removes the "categories" edge to Category entities by IDs.
func (_u *BookUpdate) RemoveCategoryIDs(ids ...int) *BookUpdate {
	_u.mutation.RemoveCategoryIDs(ids...)
	return _u
}

// RemoveCategories removes "categories" edges to Category entities.
func (_u *BookUpdate) RemoveCategories(v ...*Category) *BookUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCategoryIDs(ids...)
}

// ClearPrimaryCategory clears the "primary_category" edge to the Category entity.
func (_u *BookUpdate) ClearPrimaryCategory() *BookUpdate {
	_u.mutation.ClearPrimaryCategory()
	return _u
}

// ClearStats clears the "stats" edge to the BookStats entity.
func (_u *BookUpdate) ClearStats() *BookUpdate {
	_u.mutation.ClearStats()
	return _u
}

// ClearContents clears all "contents" edges to the BookContent entity.
func (_u *BookUpdate) ClearContents() *BookUpdate {
	_u.mutation.ClearContents()
	return _u
}

// RemoveContentIDs removes the "contents" edge to BookContent entities by IDs.
func (_u *BookUpdate) RemoveContentIDs(ids ...int) *BookUpdate {
	_u.mutation.RemoveContentIDs(ids...)
	return _u
}

// RemoveContents removes "contents" edges to BookContent entities.
func (_u *BookUpdate) RemoveContents(v ...*BookContent) *BookUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContentIDs(ids...)
}

// ClearPurchases clears all "purchases" edges to the Purchase entity.
func (_u *BookUpdate) ClearPurchases() *BookUpdate {
	_u.mutation.ClearPurchases()
	return _u
}

// RemovePurchaseIDs removes the "purchases" edge to Purchase entities by IDs.
func (_u *BookUpdate) RemovePurchaseIDs(ids ...uuid.UUID) *BookUpdate {
	_u.mutation.RemovePurchaseIDs(ids...)
	return _u
}

// RemovePurchases removes "purchases" edges to Purchase entities.
func (_u *BookUpdate) RemovePurchases(v ...*Purchase) *BookUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePurchaseIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BookUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BookUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BookUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := book.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := book.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Book.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := book.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Book.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := book.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Book.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BookUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(book.Table, book.Columns, sqlgraph.NewFieldSpec(book.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(book.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(book.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Excerpt(); ok {
		_spec.SetField(book.FieldExcerpt, field.TypeString, value)
	}
	if _u.mutation.ExcerptCleared() {
		_spec.ClearField(book.FieldExcerpt, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(book.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(book.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(book.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPages(); ok {
		_spec.AddField(book.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(book.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(book.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DiscountPrice(); ok {
		_spec.SetField(book.FieldDiscountPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDiscountPrice(); ok {
		_spec.AddField(book.FieldDiscountPrice, field.TypeInt64, value)
	}
	if _u.mutation.DiscountPriceCleared() {
		_spec.ClearField(book.FieldDiscountPrice, field.TypeInt64)
	}
	if value, ok := _u.mutation.IsFree(); ok {
		_spec.SetField(book.FieldIsFree, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(book.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AuthorsEmbed(); ok {
		_spec.SetField(book.FieldAuthorsEmbed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAuthorsEmbed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, book.FieldAuthorsEmbed, value)
		})
	}
	if _u.mutation.AuthorsEmbedCleared() {
		_spec.ClearField(book.FieldAuthorsEmbed, field.TypeJSON)
	}
	if value, ok := _u.mutation.CategoriesEmbed(); ok {
		_spec.SetField(book.FieldCategoriesEmbed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategoriesEmbed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, book.FieldCategoriesEmbed, value)
		})
	}
	if _u.mutation.CategoriesEmbedCleared() {
		_spec.ClearField(book.FieldCategoriesEmbed, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cover(); ok {
		_spec.SetField(book.FieldCover, field.TypeBytes, value)
	}
	if _u.mutation.CoverCleared() {
		_spec.ClearField(book.FieldCover, field.TypeBytes)
	}
	if value, ok := _u.mutation.CoverContentType(); ok {
		_spec.SetField(book.FieldCoverContentType, field.TypeString, value)
	}
	if _u.mutation.CoverContentTypeCleared() {
		_spec.ClearField(book.FieldCoverContentType, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(book.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AuthorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   book.AuthorsTable,
			Columns: book.AuthorsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(author.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuthorsIDs(); len(nodes) > 0 && !_u.mutation.AuthorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   book.AuthorsTable,
			Columns: book.AuthorsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(author.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   book.AuthorsTable,
			Columns: book.AuthorsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(author.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CategoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   book.CategoriesTable,
			Columns: book.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCategoriesIDs(); len(nodes) > 0 && !_u.mutation.CategoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   book.CategoriesTable,
			Columns: book.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   book.CategoriesTable,
			Columns: book.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PrimaryCategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   book.PrimaryCategoryTable,
			Columns: []string{book.PrimaryCategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrimaryCategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   book.PrimaryCategoryTable,
			Columns: []string{book.PrimaryCategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   book.StatsTable,
			Columns: []string{book.StatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookstats.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   book.StatsTable,
			Columns: []string{book.StatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookstats.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   book.ContentsTable,
			Columns: []string{book.ContentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookcontent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContentsIDs(); len(nodes) > 0 && !_u.mutation.ContentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   book.ContentsTable,
			Columns: []string{book.ContentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookcontent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   book.ContentsTable,
			Columns: []string{book.ContentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookcontent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PurchasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   book.PurchasesTable,
			Columns: []string{book.PurchasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(purchase.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPurchasesIDs(); len(nodes) > 0 && !_u.mutation.PurchasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   book.PurchasesTable,
			Columns: []string{book.PurchasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(purchase.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PurchasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   book.PurchasesTable,
			Columns: []string{book.PurchasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(purchase.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{book.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BookUpdateOne is the builder for updating a single Book entity.
type BookUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BookMutation
}

// SetTitle sets the "title" field.
func (_u *BookUpdateOne) SetTitle(v string) *BookUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BookUpdateOne) SetNillableTitle(v *string) *BookUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *BookUpdateOne) SetSlug(v string) *BookUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *BookUpdateOne) SetNillableSlug(v *string) *BookUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetExcerpt sets the "excerpt" field.
func (_u *BookUpdateOne) SetExcerpt(v string) *BookUpdateOne {
	_u.mutation.SetExcerpt(v)
	return _u
}

// SetNillableExcerpt sets the "excerpt" field if the given value is not nil.
func (_u *BookUpdateOne) SetNillableExcerpt(v *string) *BookUpdateOne {
	if v != nil {
		_u.SetExcerpt(*v)
	}
	return _u
}

// ClearExcerpt clears the value of the "excerpt" field.
func (_u *BookUpdateOne) ClearExcerpt() *BookUpdateOne {
	_u.mutation.ClearExcerpt()
	return _u
}

// SetContent sets the "content" field.
func (_u *BookUpdateOne) SetContent(v string) *BookUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *BookUpdateOne) SetNillableContent(v *string) *BookUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *BookUpdateOne) ClearContent() *BookUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetPages sets the "pages" field.
func (_u *BookUpdateOne) SetPages(v int) *BookUpdateOne {
	_u.mutation.ResetPages()
	_u.mutation.SetPages(v)
	return _u
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_u *BookUpdateOne) SetNillablePages(v *int) *BookUpdateOne {
	if v != nil {
		_u.SetPages(*v)
	}
	return _u
}

// AddPages adds value to the "pages" field.
func (_u *BookUpdateOne) AddPages(v int) *BookUpdateOne {
	_u.mutation.AddPages(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *BookUpdateOne) SetPrice(v int64) *BookUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *BookUpdateOne) SetNillablePrice(v *int64) *BookUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *BookUpdateOne) AddPrice(v int64) *BookUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetDiscountPrice sets the "discount_price" field.
func (_u *BookUpdateOne) SetDiscountPrice(v int64) *BookUpdateOne {
	_u.mutation.ResetDiscountPrice()
	_u.mutation.SetDiscountPrice(v)
	return _u
}

// SetNillableDiscountPrice sets the "discount_price" field if the given value is not nil.
func (_u *BookUpdateOne) SetNillableDiscountPrice(v *int64) *BookUpdateOne {
	if v != nil {
		_u.SetDiscountPrice(*v)
	}
	return _u
}

// AddDiscountPrice adds value to the "discount_price" field.
func (_u *BookUpdateOne) AddDiscountPrice(v int64) *BookUpdateOne {
	_u.mutation.AddDiscountPrice(v)
	return _u
}

// ClearDiscountPrice clears the value of the "discount_price" field.
func (_u *BookUpdateOne) ClearDiscountPrice() *BookUpdateOne {
	_u.mutation.ClearDiscountPrice()
	return _u
}

// SetIsFree sets the "is_free" field.
func (_u *BookUpdateOne) SetIsFree(v bool) *BookUpdateOne {
	_u.mutation.SetIsFree(v)
	return _u
}

// SetNillableIsFree sets the "is_free" field if the given value is not nil.
func (_u *BookUpdateOne) SetNillableIsFree(v *bool) *BookUpdateOne {
	if v != nil {
		_u.SetIsFree(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BookUpdateOne) SetStatus(v book.Status) *BookUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BookUpdateOne) SetNillableStatus(v *book.Status) *BookUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAuthorsEmbed sets the "authors_embed" field.
func (_u *BookUpdateOne) SetAuthorsEmbed(v []schema.EntityRef) *BookUpdateOne {
	_u.mutation.SetAuthorsEmbed(v)
	return _u
}

// AppendAuthorsEmbed appends value to the "authors_embed" field.
func (_u *BookUpdateOne) AppendAuthorsEmbed(v []schema.EntityRef) *BookUpdateOne {
	_u.mutation.AppendAuthorsEmbed(v)
	return _u
}

// ClearAuthorsEmbed clears the value of the "authors_embed" field.
func (_u *BookUpdateOne) ClearAuthorsEmbed() *BookUpdateOne {
	_u.mutation.ClearAuthorsEmbed()
	return _u
}

// SetCategoriesEmbed sets the "categories_embed" field.
func (_u *BookUpdateOne) SetCategoriesEmbed(v []schema.EntityRef) *BookUpdateOne {
	_u.mutation.SetCategoriesEmbed(v)
	return _u
}

// AppendCategoriesEmbed appends value to the "categories_embed" field.
func (_u *BookUpdateOne) AppendCategoriesEmbed(v []schema.EntityRef) *BookUpdateOne {
	_u.mutation.AppendCategoriesEmbed(v)
	return _u
}

// ClearCategoriesEmbed clears the value of the "categories_embed" field.
func (_u *BookUpdateOne) ClearCategoriesEmbed() *BookUpdateOne {
	_u.mutation.ClearCategoriesEmbed()
	return _u
}

// SetCover sets the "cover" field.
func (_u *BookUpdateOne) SetCover(v []byte) *BookUpdateOne {
	_u.mutation.SetCover(v)
	return _u
}

// ClearCover clears the value of the "cover" field.
func (_u *BookUpdateOne) ClearCover() *BookUpdateOne {
	_u.mutation.ClearCover()
	return _u
}

// SetCoverContentType sets the "cover_content_type" field.
func (_u *BookUpdateOne) SetCoverContentType(v string) *BookUpdateOne {
	_u.mutation.SetCoverContentType(v)
	return _u
}

// SetNillableCoverContentType sets the "cover_content_type" field if the given value is not nil.
func (_u *BookUpdateOne) SetNillableCoverContentType(v *string) *BookUpdateOne {
	if v != nil {
		_u.SetCoverContentType(*v)
	}
	return _u
}

// ClearCoverContentType clears the value of the "cover_content_type" field.
func (_u *BookUpdateOne) ClearCoverContentType() *BookUpdateOne {
	_u.mutation.ClearCoverContentType()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BookUpdateOne) SetUpdatedAt(v time.Time) *BookUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAuthorIDs adds the "authors" edge to the Author entity by IDs.
func (_u *BookUpdateOne) AddAuthorIDs(ids ...int) *BookUpdateOne {
	_u.mutation.AddAuthorIDs(ids...)
	return _u
}

// AddAuthors adds the "authors" edges to the Author entity.
func (_u *BookUpdateOne) AddAuthors(v ...*Author) *BookUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuthorIDs(ids...)
}

// AddCategoryIDs adds the "categories" edge to the Category entity by IDs.
func (_u *BookUpdateOne) AddCategoryIDs(ids ...int) *BookUpdateOne {
	_u.mutation.AddCategoryIDs(ids...)
	return _u
}

// AddCategories adds the "categories" edges to the Category entity.
func (_u *BookUpdateOne) AddCategories(v ...*Category) *BookUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCategoryIDs(ids...)
}

// SetPrimaryCategoryID sets the "primary_category" edge to the Category entity by ID.
func (_u *BookUpdateOne) SetPrimaryCategoryID(id int) *BookUpdateOne {
	_u.mutation.SetPrimaryCategoryID(id)
	return _u
}

// SetNillablePrimaryCategoryID sets the "primary_category" edge to the Category entity by ID if the given value is not nil.
func (_u *BookUpdateOne) SetNillablePrimaryCategoryID(id *int) *BookUpdateOne {
	if id != nil {
		_u = _u.SetPrimaryCategoryID(*id)
	}
	return _u
}

// SetPrimaryCategory sets the "primary_category" edge to the Category entity.
func (_u *BookUpdateOne) SetPrimaryCategory(v *Category) *BookUpdateOne {
	return _u.SetPrimaryCategoryID(v.ID)
}

// SetStatsID sets the "stats" edge to the BookStats entity by ID.
func (_u *BookUpdateOne) SetStatsID(id int) *BookUpdateOne {
	_u.mutation.SetStatsID(id)
	return _u
}

// SetNillableStatsID sets the "stats" edge to the BookStats entity by ID if the given value is not nil.
func (_u *BookUpdateOne) SetNillableStatsID(id *int) *BookUpdateOne {
	if id != nil {
		_u = _u.SetStatsID(*id)
	}
	return _u
}

// SetStats sets the "stats" edge to the BookStats entity.
func (_u *BookUpdateOne) SetStats(v *BookStats) *BookUpdateOne {
	return _u.SetStatsID(v.ID)
}

// AddContentIDs adds the "contents" edge to the BookContent entity by IDs.
func (_u *BookUpdateOne) AddContentIDs(ids ...int) *BookUpdateOne {
	_u.mutation.AddContentIDs(ids...)
	return _u
}

// AddContents adds the "contents" edges to the BookContent entity.
func (_u *BookUpdateOne) AddContents(v ...*BookContent) *BookUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContentIDs(ids...)
}

// AddPurchaseIDs adds the "purchases" edge to the Purchase entity by IDs.
func (_u *BookUpdateOne) AddPurchaseIDs(ids ...uuid.UUID) *BookUpdateOne {
	_u.mutation.AddPurchaseIDs(ids...)
	return _u
}

// AddPurchases adds the "purchases" edges to the Purchase entity.
func (_u *BookUpdateOne) AddPurchases(v ...*Purchase) *BookUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPurchaseIDs(ids...)
}

// Mutation returns the BookMutation object of the builder.
func (_u *BookUpdateOne) Mutation() *BookMutation {
	return _u.mutation
}

// ClearAuthors clears all "authors" edges to the Author entity.
func (_u *BookUpdateOne) ClearAuthors() *BookUpdateOne {
	_u.mutation.ClearAuthors()
	return _u
}

// RemoveAuthorIDs removes the "authors" edge to Author entities by IDs.
func (_u *BookUpdateOne) RemoveAuthorIDs(ids ...int) *BookUpdateOne {
	_u.mutation.RemoveAuthorIDs(ids...)
	return _u
}

// RemoveAuthors removes "authors" edges to Author entities.
func (_u *BookUpdateOne) RemoveAuthors(v ...*Author) *BookUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuthorIDs(ids...)
}

// ClearCategories clears all "categories" edges to the Category entity.
func (_u *BookUpdateOne) ClearCategories() *BookUpdateOne {
	_u.mutation.ClearCategories()
	return _u
}

// RemoveCategoryIDs removes the "categories" edge to Category entities by IDs.
func (_u *BookUpdateOne) RemoveCategoryIDs(ids ...int) *BookUpdateOne {
	_u.mutation.RemoveCategoryIDs(ids...)
	return _u
}

// RemoveCategories removes "categories" edges to Category entities.
func (_u *BookUpdateOne) RemoveCategories(v ...*Category) *BookUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCategoryIDs(ids...)
}

// ClearPrimaryCategory clears the "primary_category" edge to the Category entity.
func (_u *BookUpdateOne) ClearPrimaryCategory() *BookUpdateOne {
	_u.mutation.ClearPrimaryCategory()
	return _u
}

// ClearStats clears the "stats" edge to the BookStats entity.
func (_u *BookUpdateOne) ClearStats() *BookUpdateOne {
	_u.mutation.ClearStats()
	return _u
}

// ClearContents clears all "contents" edges to the BookContent entity.
func (_u *BookUpdateOne) ClearContents() *BookUpdateOne {
	_u.mutation.ClearContents()
	return _u
}

// RemoveContentIDs removes the "contents" edge to BookContent entities by IDs.
func (_u *BookUpdateOne) RemoveContentIDs(ids ...int) *BookUpdateOne {
	_u.mutation.RemoveContentIDs(ids...)
	return _u
}

// RemoveContents removes "contents" edges to BookContent entities.
func (_u *BookUpdateOne) RemoveContents(v ...*BookContent) *BookUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContentIDs(ids...)
}

// ClearPurchases clears all "purchases" edges to the Purchase entity.
func (_u *BookUpdateOne) ClearPurchases() *BookUpdateOne {
	_u.mutation.ClearPurchases()
	return _u
}

// RemovePurchaseIDs removes the "purchases" edge to Purchase entities by IDs.
func (_u *BookUpdateOne) RemovePurchaseIDs(ids ...uuid.UUID) *BookUpdateOne {
	_u.mutation.RemovePurchaseIDs(ids...)
	return _u
}

// RemovePurchases removes "purchases" edges to Purchase entities.
func (_u *BookUpdateOne) RemovePurchases(v ...*Purchase) *BookUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePurchaseIDs(ids...)
}

// Where appends a list predicates to the BookUpdate builder.
func (_u *BookUpdateOne) Where(ps ...predicate.Book) *BookUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BookUpdateOne) Select(field string, fields ...string) *BookUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Book entity.
func (_u *BookUpdateOne) Save(ctx context.Context) (*Book, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookUpdateOne) SaveX(ctx context.Context) *Book {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BookUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BookUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := book.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := book.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Book.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := book.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Book.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := book.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Book.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BookUpdateOne) sqlSave(ctx context.Context) (_node *Book, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(book.Table, book.Columns, sqlgraph.NewFieldSpec(book.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Book.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, book.FieldID)
		for _, f := range fields {
			if !book.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != book.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(book.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(book.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Excerpt(); ok {
		_spec.SetField(book.FieldExcerpt, field.TypeString, value)
	}
	if _u.mutation.ExcerptCleared() {
		_spec.ClearField(book.FieldExcerpt, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(book.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(book.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(book.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPages(); ok {
		_spec.AddField(book.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(book.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(book.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DiscountPrice(); ok {
		_spec.SetField(book.FieldDiscountPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDiscountPrice(); ok {
		_spec.AddField(book.FieldDiscountPrice, field.TypeInt64, value)
	}
	if _u.mutation.DiscountPriceCleared() {
		_spec.ClearField(book.FieldDiscountPrice, field.TypeInt64)
	}
	if value, ok := _u.mutation.IsFree(); ok {
		_spec.SetField(book.FieldIsFree, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(book.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AuthorsEmbed(); ok {
		_spec.SetField(book.FieldAuthorsEmbed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAuthorsEmbed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, book.FieldAuthorsEmbed, value)
		})
	}
	if _u.mutation.AuthorsEmbedCleared() {
		_spec.ClearField(book.FieldAuthorsEmbed, field.TypeJSON)
	}
	if value, ok := _u.mutation.CategoriesEmbed(); ok {
		_spec.SetField(book.FieldCategoriesEmbed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategoriesEmbed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, book.FieldCategoriesEmbed, value)
		})
	}
	if _u.mutation.CategoriesEmbedCleared() {
		_spec.ClearField(book.FieldCategoriesEmbed, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cover(); ok {
		_spec.SetField(book.FieldCover, field.TypeBytes, value)
	}
	if _u.mutation.CoverCleared() {
		_spec.ClearField(book.FieldCover, field.TypeBytes)
	}
	if value, ok := _u.mutation.CoverContentType(); ok {
		_spec.SetField(book.FieldCoverContentType, field.TypeString, value)
	}
	if _u.mutation.CoverContentTypeCleared() {
		_spec.ClearField(book.FieldCoverContentType, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(book.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AuthorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   book.AuthorsTable,
			Columns: book.AuthorsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(author.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuthorsIDs(); len(nodes) > 0 && !_u.mutation.AuthorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   book.AuthorsTable,
			Columns: book.AuthorsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(author.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   book.AuthorsTable,
			Columns: book.AuthorsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(author.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CategoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   book.CategoriesTable,
			Columns: book.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCategoriesIDs(); len(nodes) > 0 && !_u.mutation.CategoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   book.CategoriesTable,
			Columns: book.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   book.CategoriesTable,
			Columns: book.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PrimaryCategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   book.PrimaryCategoryTable,
			Columns: []string{book.PrimaryCategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrimaryCategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   book.PrimaryCategoryTable,
			Columns: []string{book.PrimaryCategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   book.StatsTable,
			Columns: []string{book.StatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookstats.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   book.StatsTable,
			Columns: []string{book.StatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookstats.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   book.ContentsTable,
			Columns: []string{book.ContentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookcontent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContentsIDs(); len(nodes) > 0 && !_u.mutation.ContentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   book.ContentsTable,
			Columns: []string{book.ContentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookcontent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   book.ContentsTable,
			Columns: []string{book.ContentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookcontent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PurchasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   book.PurchasesTable,
			Columns: []string{book.PurchasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(purchase.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPurchasesIDs(); len(nodes) > 0 && !_u.mutation.PurchasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   book.PurchasesTable,
			Columns: []string{book.PurchasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(purchase.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PurchasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   book.PurchasesTable,
			Columns: []string{book.PurchasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(purchase.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Book{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{book.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
