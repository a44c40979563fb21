package handler_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/ketabio/bookserver/api"
	"github.com/ketabio/bookserver/api/handler"
	"github.com/ketabio/bookserver/cache"
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

var ctxBG = context.Background()

func TestHandlers(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Handler Suite")
}

var _ = BeforeSuite(func() {
	db = enttest.Open(GinkgoT(), "sqlite3", "file:handler_test?mode=memory&cache=shared&_pragma=foreign_keys(1)")
})

var _ = AfterSuite(func() {
	if db != nil {
		Expect(db.Close()).To(Succeed())
	}
})

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
		SessionTTL:            720 * time.Hour,
	}
}

// testEnv is one full stack: cache components wired into the real router.
type testEnv struct {
	router http.Handler
	mgr    *cache.Manager
	hub    *handler.EventHub
}

// newTestEnv builds the router with fresh cache components. Each spec gets
// its own tiers; the database is shared and cleaned per spec.
func newTestEnv() *testEnv {
	cfg := testConfig()
	mgr := cache.NewManager(db, cfg)
	resolver := cache.NewAccessResolver(db, cfg)
	hub := handler.NewEventHub()
	prop := cache.NewPropagator(db, mgr, cfg, hub)
	prop.Start(context.Background())
	warmer := cache.NewWarmer(db, mgr, cfg, hub)

	DeferCleanup(func() {
		prop.Stop()
		resolver.Close()
		mgr.Close()
	})

	router := api.NewRouter(cfg, api.Deps{
		DB:       db,
		Manager:  mgr,
		Resolver: resolver,
		Prop:     prop,
		Warmer:   warmer,
		Hub:      hub,
	})
	return &testEnv{router: router, mgr: mgr, hub: hub}
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

// createUser inserts a user with a bcrypt hash. bcrypt.MinCost keeps tests
// fast without affecting correctness.
func createUser(username, password string, isAdmin bool) *ent.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	Expect(err).NotTo(HaveOccurred())
	u, err := db.User.Create().
		SetUsername(username).
		SetDisplayName(username).
		SetHashedPassword(string(hash)).
		SetIsAdmin(isAdmin).
		Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return u
}

// createSession inserts a session for the given user with the supplied token.
func createSession(user *ent.User, token string) *ent.Session {
	s, err := db.Session.Create().
		SetToken(token).
		SetDeviceName("test device").
		SetUser(user).
		Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return s
}

// loginAs creates a user plus session and returns the token header map.
func loginAs(username string, isAdmin bool) (*ent.User, map[string]string) {
	u := createUser(username, "password1!", isAdmin)
	token := username + "-token"
	createSession(u, token)
	return u, map[string]string{"X-Api-Token": token}
}

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

// createBook inserts a book plus its stats row and the denormalized embeds,
// the way a synchronous book mutation would.
func createBook(title, slug string, opts bookOpts) *ent.Book {
	ctx := context.Background()
	status := opts.status
	if status == "" {
		status = "published"
	}

	authorRefs := make([]schema.EntityRef, len(opts.authors))
	for i, a := range opts.authors {
		authorRefs[i] = schema.EntityRef{ID: a.ID, Name: a.Name, Slug: a.Slug}
	}
	categoryRefs := make([]schema.EntityRef, len(opts.cats))
	for i, cat := range opts.cats {
		categoryRefs[i] = schema.EntityRef{ID: cat.ID, Name: cat.Name, Slug: cat.Slug}
	}

	builder := db.Book.Create().
		SetTitle(title).
		SetSlug(slug).
		SetStatus(entbook.Status(status)).
		SetPrice(opts.price).
		SetIsFree(opts.free).
		SetPages(opts.pages).
		SetAuthorsEmbed(authorRefs).
		SetCategoriesEmbed(categoryRefs).
		AddAuthors(opts.authors...).
		AddCategories(opts.cats...)
	if opts.discount != nil {
		builder = builder.SetDiscountPrice(*opts.discount)
	}
	if opts.primary != nil {
		builder = builder.SetPrimaryCategory(opts.primary)
	}

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

func createPage(b *ent.Book, page, paragraph int, text string) *ent.BookContent {
	row, err := db.BookContent.Create().
		SetBook(b).
		SetPageNumber(page).
		SetParagraphNumber(paragraph).
		SetOrder(paragraph).
		SetText(text).
		Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return row
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
		SetActive(true).
		SetExpiresAt(expiresAt).
		Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return s
}

// ── HTTP helpers ──────────────────────────────────────────────────────────────

// doRequest fires an HTTP request against handler r and returns the recorder.
// body is JSON-encoded when non-nil. Extra header maps are applied in order.
func doRequest(r http.Handler, method, path string, body interface{}, headers ...map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewReader(b)
	}
	req, _ := http.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doPost(r http.Handler, path string, body interface{}, headers ...map[string]string) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, path, body, headers...)
}

func doPatch(r http.Handler, path string, body interface{}, headers ...map[string]string) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPatch, path, body, headers...)
}

func doGet(r http.Handler, path string, headers ...map[string]string) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodGet, path, nil, headers...)
}

func doDelete(r http.Handler, path string, headers ...map[string]string) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodDelete, path, nil, headers...)
}

// doRawPut fires a PUT with an arbitrary raw body and Content-Type, used for
// binary cover uploads.
func doRawPut(r http.Handler, path string, body []byte, contentType string, headers ...map[string]string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPut, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	for _, h := range headers {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeJSON unmarshals a recorder body into a generic map.
func decodeJSON(w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
	return resp
}

func int64Ptr(v int64) *int64 { return &v }

func itoa(id int) string {
	return strconv.Itoa(id)
}

func bookPath(id int) string {
	return "/books/" + strconv.Itoa(id)
}

func pagePath(id, page int) string {
	return bookPath(id) + "/pages/" + strconv.Itoa(page)
}
