// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuthorsColumns holds the columns for the "authors" table.
	AuthorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "bio", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// AuthorsTable holds the schema information for the "authors" table.
	AuthorsTable = &schema.Table{
		Name:       "authors",
		Columns:    AuthorsColumns,
		PrimaryKey: []*schema.Column{AuthorsColumns[0]},
	}
	// BooksColumns holds the columns for the "books" table.
	BooksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "excerpt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "pages", Type: field.TypeInt, Default: 0},
		{Name: "price", Type: field.TypeInt64, Default: 0},
		{Name: "discount_price", Type: field.TypeInt64, Nullable: true},
		{Name: "is_free", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "published", "archived"}, Default: "draft"},
		{Name: "authors_embed", Type: field.TypeJSON, Nullable: true},
		{Name: "categories_embed", Type: field.TypeJSON, Nullable: true},
		{Name: "cover", Type: field.TypeBytes, Nullable: true},
		{Name: "cover_content_type", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "book_primary_category", Type: field.TypeInt, Nullable: true},
	}
	// BooksTable holds the schema information for the "books" table.
	BooksTable = &schema.Table{
		Name:       "books",
		Columns:    BooksColumns,
		PrimaryKey: []*schema.Column{BooksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "books_categories_primary_category",
				Columns:    []*schema.Column{BooksColumns[16]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "book_status",
				Unique:  false,
				Columns: []*schema.Column{BooksColumns[9]},
			},
		},
	}
	// BookContentsColumns holds the columns for the "book_contents" table.
	BookContentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "page_number", Type: field.TypeInt},
		{Name: "paragraph_number", Type: field.TypeInt},
		{Name: "order", Type: field.TypeInt, Default: 0},
		{Name: "text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "sound_path", Type: field.TypeString, Nullable: true},
		{Name: "video_path", Type: field.TypeString, Nullable: true},
		{Name: "image_paths", Type: field.TypeJSON, Nullable: true},
		{Name: "is_index", Type: field.TypeBool, Default: false},
		{Name: "index_title", Type: field.TypeString, Nullable: true},
		{Name: "index_level", Type: field.TypeInt, Default: 0},
		{Name: "book_contents", Type: field.TypeInt},
	}
	// BookContentsTable holds the schema information for the "book_contents" table.
	BookContentsTable = &schema.Table{
		Name:       "book_contents",
		Columns:    BookContentsColumns,
		PrimaryKey: []*schema.Column{BookContentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "book_contents_books_contents",
				Columns:    []*schema.Column{BookContentsColumns[12]},
				RefColumns: []*schema.Column{BooksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "bookcontent_page_number_book_contents",
				Unique:  false,
				Columns: []*schema.Column{BookContentsColumns[1], BookContentsColumns[12]},
			},
			{
				Name:    "bookcontent_is_index_book_contents",
				Unique:  false,
				Columns: []*schema.Column{BookContentsColumns[9], BookContentsColumns[12]},
			},
			{
				Name:    "bookcontent_page_number_paragraph_number_book_contents",
				Unique:  true,
				Columns: []*schema.Column{BookContentsColumns[1], BookContentsColumns[2], BookContentsColumns[12]},
			},
		},
	}
	// BookSnapshotsColumns holds the columns for the "book_snapshots" table.
	BookSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "book_id", Type: field.TypeInt, Unique: true},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "refreshed_at", Type: field.TypeTime},
	}
	// BookSnapshotsTable holds the schema information for the "book_snapshots" table.
	BookSnapshotsTable = &schema.Table{
		Name:       "book_snapshots",
		Columns:    BookSnapshotsColumns,
		PrimaryKey: []*schema.Column{BookSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "booksnapshot_book_id_refreshed_at",
				Unique:  false,
				Columns: []*schema.Column{BookSnapshotsColumns[1], BookSnapshotsColumns[3]},
			},
		},
	}
	// BookStatsColumns holds the columns for the "book_stats" table.
	BookStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "view_count", Type: field.TypeInt64, Default: 0},
		{Name: "purchase_count", Type: field.TypeInt64, Default: 0},
		{Name: "download_count", Type: field.TypeInt64, Default: 0},
		{Name: "rating", Type: field.TypeFloat64, Default: 0},
		{Name: "rating_count", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "book_stats", Type: field.TypeInt, Unique: true},
	}
	// BookStatsTable holds the schema information for the "book_stats" table.
	BookStatsTable = &schema.Table{
		Name:       "book_stats",
		Columns:    BookStatsColumns,
		PrimaryKey: []*schema.Column{BookStatsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "book_stats_books_stats",
				Columns:    []*schema.Column{BookStatsColumns[7]},
				RefColumns: []*schema.Column{BooksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Unique: true},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
	}
	// PurchasesColumns holds the columns for the "purchases" table.
	PurchasesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "amount", Type: field.TypeInt64, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "completed", "refunded"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "book_purchases", Type: field.TypeInt},
		{Name: "user_purchases", Type: field.TypeUUID},
	}
	// PurchasesTable holds the schema information for the "purchases" table.
	PurchasesTable = &schema.Table{
		Name:       "purchases",
		Columns:    PurchasesColumns,
		PrimaryKey: []*schema.Column{PurchasesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "purchases_books_purchases",
				Columns:    []*schema.Column{PurchasesColumns[4]},
				RefColumns: []*schema.Column{BooksColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "purchases_users_purchases",
				Columns:    []*schema.Column{PurchasesColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "device_name", Type: field.TypeString, Nullable: true},
		{Name: "last_activity", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_sessions", Type: field.TypeUUID},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_users_sessions",
				Columns:    []*schema.Column{SessionsColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "session_token",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
		},
	}
	// SubscriptionsColumns holds the columns for the "subscriptions" table.
	SubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "subscription_category", Type: field.TypeInt},
		{Name: "user_subscriptions", Type: field.TypeUUID},
	}
	// SubscriptionsTable holds the schema information for the "subscriptions" table.
	SubscriptionsTable = &schema.Table{
		Name:       "subscriptions",
		Columns:    SubscriptionsColumns,
		PrimaryKey: []*schema.Column{SubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subscriptions_categories_category",
				Columns:    []*schema.Column{SubscriptionsColumns[4]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "subscriptions_users_subscriptions",
				Columns:    []*schema.Column{SubscriptionsColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "hashed_password", Type: field.TypeString},
		{Name: "is_admin", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// BookAuthorsColumns holds the columns for the "book_authors" table.
	BookAuthorsColumns = []*schema.Column{
		{Name: "book_id", Type: field.TypeInt},
		{Name: "author_id", Type: field.TypeInt},
	}
	// BookAuthorsTable holds the schema information for the "book_authors" table.
	BookAuthorsTable = &schema.Table{
		Name:       "book_authors",
		Columns:    BookAuthorsColumns,
		PrimaryKey: []*schema.Column{BookAuthorsColumns[0], BookAuthorsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "book_authors_book_id",
				Columns:    []*schema.Column{BookAuthorsColumns[0]},
				RefColumns: []*schema.Column{BooksColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "book_authors_author_id",
				Columns:    []*schema.Column{BookAuthorsColumns[1]},
				RefColumns: []*schema.Column{AuthorsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// BookCategoriesColumns holds the columns for the "book_categories" table.
	BookCategoriesColumns = []*schema.Column{
		{Name: "book_id", Type: field.TypeInt},
		{Name: "category_id", Type: field.TypeInt},
	}
	// BookCategoriesTable holds the schema information for the "book_categories" table.
	BookCategoriesTable = &schema.Table{
		Name:       "book_categories",
		Columns:    BookCategoriesColumns,
		PrimaryKey: []*schema.Column{BookCategoriesColumns[0], BookCategoriesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "book_categories_book_id",
				Columns:    []*schema.Column{BookCategoriesColumns[0]},
				RefColumns: []*schema.Column{BooksColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "book_categories_category_id",
				Columns:    []*schema.Column{BookCategoriesColumns[1]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuthorsTable,
		BooksTable,
		BookContentsTable,
		BookSnapshotsTable,
		BookStatsTable,
		CategoriesTable,
		PurchasesTable,
		SessionsTable,
		SubscriptionsTable,
		UsersTable,
		BookAuthorsTable,
		BookCategoriesTable,
	}
)

func init() {
	BooksTable.ForeignKeys[0].RefTable = CategoriesTable
	BookContentsTable.ForeignKeys[0].RefTable = BooksTable
	BookStatsTable.ForeignKeys[0].RefTable = BooksTable
	PurchasesTable.ForeignKeys[0].RefTable = BooksTable
	PurchasesTable.ForeignKeys[1].RefTable = UsersTable
	SessionsTable.ForeignKeys[0].RefTable = UsersTable
	SubscriptionsTable.ForeignKeys[0].RefTable = CategoriesTable
	SubscriptionsTable.ForeignKeys[1].RefTable = UsersTable
	BookAuthorsTable.ForeignKeys[0].RefTable = BooksTable
	BookAuthorsTable.ForeignKeys[1].RefTable = AuthorsTable
	BookCategoriesTable.ForeignKeys[0].RefTable = BooksTable
	BookCategoriesTable.ForeignKeys[1].RefTable = CategoriesTable
}
