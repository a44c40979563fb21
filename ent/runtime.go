// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/ketabio/bookserver/ent/author"
	"github.com/ketabio/bookserver/ent/book"
	"github.com/ketabio/bookserver/ent/bookcontent"
	"github.com/ketabio/bookserver/ent/booksnapshot"
	"github.com/ketabio/bookserver/ent/bookstats"
	"github.com/ketabio/bookserver/ent/category"
	"github.com/ketabio/bookserver/ent/purchase"
	"github.com/ketabio/bookserver/ent/schema"
	"github.com/ketabio/bookserver/ent/session"
	"github.com/ketabio/bookserver/ent/subscription"
	"github.com/ketabio/bookserver/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	authorFields := schema.Author{}.Fields()
	_ = authorFields
	// authorDescName is the schema descriptor for name field.
	authorDescName := authorFields[0].Descriptor()
	// author.NameValidator is a validator for the "name" field. It is called by the builders before save.
	author.NameValidator = authorDescName.Validators[0].(func(string) error)
	// authorDescSlug is the schema descriptor for slug field.
	authorDescSlug := authorFields[1].Descriptor()
	// author.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	author.SlugValidator = authorDescSlug.Validators[0].(func(string) error)
	bookFields := schema.Book{}.Fields()
	_ = bookFields
	// bookDescTitle is the schema descriptor for title field.
	bookDescTitle := bookFields[0].Descriptor()
	// book.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	book.TitleValidator = bookDescTitle.Validators[0].(func(string) error)
	// bookDescSlug is the schema descriptor for slug field.
	bookDescSlug := bookFields[1].Descriptor()
	// book.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	book.SlugValidator = bookDescSlug.Validators[0].(func(string) error)
	// bookDescPages is the schema descriptor for pages field.
	bookDescPages := bookFields[4].Descriptor()
	// book.DefaultPages holds the default value on creation for the pages field.
	book.DefaultPages = bookDescPages.Default.(int)
	// bookDescPrice is the schema descriptor for price field.
	bookDescPrice := bookFields[5].Descriptor()
	// book.DefaultPrice holds the default value on creation for the price field.
	book.DefaultPrice = bookDescPrice.Default.(int64)
	// bookDescIsFree is the schema descriptor for is_free field.
	bookDescIsFree := bookFields[7].Descriptor()
	// book.DefaultIsFree holds the default value on creation for the is_free field.
	book.DefaultIsFree = bookDescIsFree.Default.(bool)
	// bookDescCreatedAt is the schema descriptor for created_at field.
	bookDescCreatedAt := bookFields[13].Descriptor()
	// book.DefaultCreatedAt holds the default value on creation for the created_at field.
	book.DefaultCreatedAt = bookDescCreatedAt.Default.(func() time.Time)
	// bookDescUpdatedAt is the schema descriptor for updated_at field.
	bookDescUpdatedAt := bookFields[14].Descriptor()
	// book.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	book.DefaultUpdatedAt = bookDescUpdatedAt.Default.(func() time.Time)
	// book.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	book.UpdateDefaultUpdatedAt = bookDescUpdatedAt.UpdateDefault.(func() time.Time)
	bookcontentFields := schema.BookContent{}.Fields()
	_ = bookcontentFields
	// bookcontentDescPageNumber is the schema descriptor for page_number field.
	bookcontentDescPageNumber := bookcontentFields[0].Descriptor()
	// bookcontent.PageNumberValidator is a validator for the "page_number" field. It is called by the builders before save.
	bookcontent.PageNumberValidator = bookcontentDescPageNumber.Validators[0].(func(int) error)
	// bookcontentDescParagraphNumber is the schema descriptor for paragraph_number field.
	bookcontentDescParagraphNumber := bookcontentFields[1].Descriptor()
	// bookcontent.ParagraphNumberValidator is a validator for the "paragraph_number" field. It is called by the builders before save.
	bookcontent.ParagraphNumberValidator = bookcontentDescParagraphNumber.Validators[0].(func(int) error)
	// bookcontentDescOrder is the schema descriptor for order field.
	bookcontentDescOrder := bookcontentFields[2].Descriptor()
	// bookcontent.DefaultOrder holds the default value on creation for the order field.
	bookcontent.DefaultOrder = bookcontentDescOrder.Default.(int)
	// bookcontentDescIsIndex is the schema descriptor for is_index field.
	bookcontentDescIsIndex := bookcontentFields[8].Descriptor()
	// bookcontent.DefaultIsIndex holds the default value on creation for the is_index field.
	bookcontent.DefaultIsIndex = bookcontentDescIsIndex.Default.(bool)
	// bookcontentDescIndexLevel is the schema descriptor for index_level field.
	bookcontentDescIndexLevel := bookcontentFields[10].Descriptor()
	// bookcontent.DefaultIndexLevel holds the default value on creation for the index_level field.
	bookcontent.DefaultIndexLevel = bookcontentDescIndexLevel.Default.(int)
	booksnapshotFields := schema.BookSnapshot{}.Fields()
	_ = booksnapshotFields
	// booksnapshotDescRefreshedAt is the schema descriptor for refreshed_at field.
	booksnapshotDescRefreshedAt := booksnapshotFields[2].Descriptor()
	// booksnapshot.DefaultRefreshedAt holds the default value on creation for the refreshed_at field.
	booksnapshot.DefaultRefreshedAt = booksnapshotDescRefreshedAt.Default.(func() time.Time)
	bookstatsFields := schema.BookStats{}.Fields()
	_ = bookstatsFields
	// bookstatsDescViewCount is the schema descriptor for view_count field.
	bookstatsDescViewCount := bookstatsFields[0].Descriptor()
	// bookstats.DefaultViewCount holds the default value on creation for the view_count field.
	bookstats.DefaultViewCount = bookstatsDescViewCount.Default.(int64)
	// bookstatsDescPurchaseCount is the schema descriptor for purchase_count field.
	bookstatsDescPurchaseCount := bookstatsFields[1].Descriptor()
	// bookstats.DefaultPurchaseCount holds the default value on creation for the purchase_count field.
	bookstats.DefaultPurchaseCount = bookstatsDescPurchaseCount.Default.(int64)
	// bookstatsDescDownloadCount is the schema descriptor for download_count field.
	bookstatsDescDownloadCount := bookstatsFields[2].Descriptor()
	// bookstats.DefaultDownloadCount holds the default value on creation for the download_count field.
	bookstats.DefaultDownloadCount = bookstatsDescDownloadCount.Default.(int64)
	// bookstatsDescRating is the schema descriptor for rating field.
	bookstatsDescRating := bookstatsFields[3].Descriptor()
	// bookstats.DefaultRating holds the default value on creation for the rating field.
	bookstats.DefaultRating = bookstatsDescRating.Default.(float64)
	// bookstatsDescRatingCount is the schema descriptor for rating_count field.
	bookstatsDescRatingCount := bookstatsFields[4].Descriptor()
	// bookstats.DefaultRatingCount holds the default value on creation for the rating_count field.
	bookstats.DefaultRatingCount = bookstatsDescRatingCount.Default.(int)
	// bookstatsDescUpdatedAt is the schema descriptor for updated_at field.
	bookstatsDescUpdatedAt := bookstatsFields[5].Descriptor()
	// bookstats.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	bookstats.DefaultUpdatedAt = bookstatsDescUpdatedAt.Default.(func() time.Time)
	// bookstats.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	bookstats.UpdateDefaultUpdatedAt = bookstatsDescUpdatedAt.UpdateDefault.(func() time.Time)
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[0].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = categoryDescName.Validators[0].(func(string) error)
	// categoryDescSlug is the schema descriptor for slug field.
	categoryDescSlug := categoryFields[1].Descriptor()
	// category.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	category.SlugValidator = categoryDescSlug.Validators[0].(func(string) error)
	purchaseFields := schema.Purchase{}.Fields()
	_ = purchaseFields
	// purchaseDescAmount is the schema descriptor for amount field.
	purchaseDescAmount := purchaseFields[1].Descriptor()
	// purchase.DefaultAmount holds the default value on creation for the amount field.
	purchase.DefaultAmount = purchaseDescAmount.Default.(int64)
	// purchaseDescCreatedAt is the schema descriptor for created_at field.
	purchaseDescCreatedAt := purchaseFields[3].Descriptor()
	// purchase.DefaultCreatedAt holds the default value on creation for the created_at field.
	purchase.DefaultCreatedAt = purchaseDescCreatedAt.Default.(func() time.Time)
	// purchaseDescID is the schema descriptor for id field.
	purchaseDescID := purchaseFields[0].Descriptor()
	// purchase.DefaultID holds the default value on creation for the id field.
	purchase.DefaultID = purchaseDescID.Default.(func() uuid.UUID)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescToken is the schema descriptor for token field.
	sessionDescToken := sessionFields[1].Descriptor()
	// session.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	session.TokenValidator = sessionDescToken.Validators[0].(func(string) error)
	// sessionDescLastActivity is the schema descriptor for last_activity field.
	sessionDescLastActivity := sessionFields[3].Descriptor()
	// session.DefaultLastActivity holds the default value on creation for the last_activity field.
	session.DefaultLastActivity = sessionDescLastActivity.Default.(func() time.Time)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[4].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionFields[0].Descriptor()
	// session.DefaultID holds the default value on creation for the id field.
	session.DefaultID = sessionDescID.Default.(func() uuid.UUID)
	subscriptionFields := schema.Subscription{}.Fields()
	_ = subscriptionFields
	// subscriptionDescActive is the schema descriptor for active field.
	subscriptionDescActive := subscriptionFields[1].Descriptor()
	// subscription.DefaultActive holds the default value on creation for the active field.
	subscription.DefaultActive = subscriptionDescActive.Default.(bool)
	// subscriptionDescCreatedAt is the schema descriptor for created_at field.
	subscriptionDescCreatedAt := subscriptionFields[3].Descriptor()
	// subscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscription.DefaultCreatedAt = subscriptionDescCreatedAt.Default.(func() time.Time)
	// subscriptionDescID is the schema descriptor for id field.
	subscriptionDescID := subscriptionFields[0].Descriptor()
	// subscription.DefaultID holds the default value on creation for the id field.
	subscription.DefaultID = subscriptionDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescDisplayName is the schema descriptor for display_name field.
	userDescDisplayName := userFields[2].Descriptor()
	// user.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	user.DisplayNameValidator = userDescDisplayName.Validators[0].(func(string) error)
	// userDescHashedPassword is the schema descriptor for hashed_password field.
	userDescHashedPassword := userFields[3].Descriptor()
	// user.HashedPasswordValidator is a validator for the "hashed_password" field. It is called by the builders before save.
	user.HashedPasswordValidator = userDescHashedPassword.Validators[0].(func(string) error)
	// userDescIsAdmin is the schema descriptor for is_admin field.
	userDescIsAdmin := userFields[4].Descriptor()
	// user.DefaultIsAdmin holds the default value on creation for the is_admin field.
	user.DefaultIsAdmin = userDescIsAdmin.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[6].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
