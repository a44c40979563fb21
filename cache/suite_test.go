package cache_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"golang.org/x/crypto/bcrypt"

	"github.com/ketabio/bookserver/config"
	"github.com/ketabio/bookserver/ent"
	entbook "github.com/ketabio/bookserver/ent/book"
	"github.com/ketabio/bookserver/ent/enttest"
	entpurchase "github.com/ketabio/bookserver/ent/purchase"
	"github.com/ketabio/bookserver/ent/schema"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc.org/sqlite registers itself as "sqlite" in database/sql, but
	// ent's dialect layer recognises only "sqlite3". We fetch the already-
	// registered driver via a temporary connection and re-register it under
	// the name ent expects, so enttest.Open works without further changes.
	tmp, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		panic(err)
	}
	drv := tmp.Driver()
	_ = tmp.Close()
	sql.Register("sqlite3", drv)
}

// db is the shared ent client opened once per suite against an in-memory
// SQLite database. The schema is auto-migrated on open; rows are cleared in
// BeforeEach.
var db *ent.Client

func TestCache(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Cache Suite")
}

var _ = BeforeSuite(func() {
	db = enttest.Open(GinkgoT(), "sqlite3", "file:cache_test?mode=memory&cache=shared&_pragma=foreign_keys(1)")
})

var _ = AfterSuite(func() {
	if db != nil {
		Expect(db.Close()).To(Succeed())
	}
})

// testConfig returns cache settings used across the suite. Long TTLs so
// nothing expires mid-spec; expiry behaviour is exercised explicitly.
func testConfig() config.Config {
	return config.Config{
		FastTTL:               time.Hour,
		SnapshotTTL:           24 * time.Hour,
		AccessTTL:             5 * time.Minute,
		AccessNegativeTTL:     time.Minute,
		FillTimeout:           5 * time.Second,
		InvalidationWorkers:   2,
		InvalidationQueueSize: 64,
		WarmupLimit:           100,
	}
}

// cleanDB deletes all rows in foreign-key-safe order. Call at the top of
// each BeforeEach so every spec starts from a blank slate.
func cleanDB() {
	ctx := context.Background()
	db.Purchase.Delete().ExecX(ctx)
	db.Subscription.Delete().ExecX(ctx)
	db.Session.Delete().ExecX(ctx)
	db.BookSnapshot.Delete().ExecX(ctx)
	db.BookContent.Delete().ExecX(ctx)
	db.BookStats.Delete().ExecX(ctx)
	db.Book.Delete().ExecX(ctx)
	db.Author.Delete().ExecX(ctx)
	db.Category.Delete().ExecX(ctx)
	db.User.Delete().ExecX(ctx)
}

// ── DB fixtures ───────────────────────────────────────────────────────────────

type bookOpts struct {
	status   string
	price    int64
	discount *int64
	free     bool
	pages    int
	primary  *ent.Category
	authors  []*ent.Author
	cats     []*ent.Category
}

// createBook inserts a book plus its stats row (the two are created together
// in production) and writes the denormalized embeds the way a synchronous
// book mutation would.
func createBook(title, slug string, opts bookOpts) *ent.Book {
	ctx := context.Background()
	status := opts.status
	if status == "" {
		status = "published"
	}

	builder := db.Book.Create().
		SetTitle(title).
		SetSlug(slug).
		SetStatus(entbook.Status(status)).
		SetPrice(opts.price).
		SetIsFree(opts.free).
		SetPages(opts.pages)
	if opts.discount != nil {
		builder = builder.SetDiscountPrice(*opts.discount)
	}
	if opts.primary != nil {
		builder = builder.SetPrimaryCategory(opts.primary)
	}
	builder = builder.AddAuthors(opts.authors...).AddCategories(opts.cats...)
	builder = builder.
		SetAuthorsEmbed(authorRefs(opts.authors)).
		SetCategoriesEmbed(categoryRefs(opts.cats))

	b, err := builder.Save(ctx)
	Expect(err).NotTo(HaveOccurred())

	_, err = db.BookStats.Create().SetBook(b).Save(ctx)
	Expect(err).NotTo(HaveOccurred())
	return b
}

func createAuthor(name, slug string) *ent.Author {
	a, err := db.Author.Create().SetName(name).SetSlug(slug).Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return a
}

func createCategory(name, slug string) *ent.Category {
	c, err := db.Category.Create().SetName(name).SetSlug(slug).Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return c
}

// createPage inserts one paragraph row for a page.
func createPage(b *ent.Book, page, paragraph int, text string) *ent.BookContent {
	row, err := db.BookContent.Create().
		SetBook(b).
		SetPageNumber(page).
		SetParagraphNumber(paragraph).
		SetText(text).
		Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return row
}

// createIndexRow inserts one table-of-contents row.
func createIndexRow(b *ent.Book, page, paragraph int, title string, level int) *ent.BookContent {
	row, err := db.BookContent.Create().
		SetBook(b).
		SetPageNumber(page).
		SetParagraphNumber(paragraph).
		SetIsIndex(true).
		SetIndexTitle(title).
		SetIndexLevel(level).
		Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return row
}

// createUser inserts a user with a bcrypt hash. bcrypt.MinCost (4 rounds) is
// used intentionally to keep tests fast without affecting correctness.
func createUser(username string) *ent.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("password1!"), bcrypt.MinCost)
	Expect(err).NotTo(HaveOccurred())
	u, err := db.User.Create().
		SetUsername(username).
		SetDisplayName(username).
		SetHashedPassword(string(hash)).
		Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return u
}

func createCompletedPurchase(u *ent.User, b *ent.Book) *ent.Purchase {
	p, err := db.Purchase.Create().
		SetUser(u).
		SetBook(b).
		SetAmount(b.Price).
		SetStatus(entpurchase.StatusCompleted).
		Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return p
}

func createSubscription(u *ent.User, c *ent.Category, expiresAt time.Time) *ent.Subscription {
	s, err := db.Subscription.Create().
		SetUser(u).
		SetCategory(c).
		SetExpiresAt(expiresAt).
		Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return s
}

func authorRefs(authors []*ent.Author) []schema.EntityRef {
	refs := make([]schema.EntityRef, len(authors))
	for i, a := range authors {
		refs[i] = schema.EntityRef{ID: a.ID, Name: a.Name, Slug: a.Slug}
	}
	return refs
}

func categoryRefs(cats []*ent.Category) []schema.EntityRef {
	refs := make([]schema.EntityRef, len(cats))
	for i, c := range cats {
		refs[i] = schema.EntityRef{ID: c.ID, Name: c.Name, Slug: c.Slug}
	}
	return refs
}
