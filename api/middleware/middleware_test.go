package middleware_test

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/ketabio/bookserver/api/middleware"
	"github.com/ketabio/bookserver/config"
	"github.com/ketabio/bookserver/ent"
	"github.com/ketabio/bookserver/ent/enttest"
	entsession "github.com/ketabio/bookserver/ent/session"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc.org/sqlite registers as "sqlite"; ent expects "sqlite3".
	tmp, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		panic(err)
	}
	drv := tmp.Driver()
	_ = tmp.Close()
	sql.Register("sqlite3", drv)
}

var db *ent.Client

func TestMiddleware(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Middleware Suite")
}

var _ = BeforeSuite(func() {
	gin.SetMode(gin.TestMode)
	db = enttest.Open(GinkgoT(), "sqlite3", "file:middleware_test?mode=memory&cache=shared&_pragma=foreign_keys(1)")
})

var _ = AfterSuite(func() {
	if db != nil {
		Expect(db.Close()).To(Succeed())
	}
})

func cleanDB() {
	ctx := context.Background()
	db.Session.Delete().ExecX(ctx)
	db.User.Delete().ExecX(ctx)
}

func createSession(token string, lastActivity time.Time) *ent.Session {
	ctx := context.Background()
	u, err := db.User.Create().
		SetUsername("user-" + token).
		SetDisplayName("User").
		SetHashedPassword("hash").
		Save(ctx)
	Expect(err).NotTo(HaveOccurred())
	s, err := db.Session.Create().
		SetToken(token).
		SetLastActivity(lastActivity).
		SetUser(u).
		Save(ctx)
	Expect(err).NotTo(HaveOccurred())
	return s
}

// newCtx builds a minimal gin.Context from a hand-crafted *http.Request.
func newCtx(req *http.Request) *gin.Context {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c
}

var _ = Describe("ExtractToken", func() {
	It("prefers the X-Api-Token header", func() {
		req, _ := http.NewRequest(http.MethodGet, "/?api_key=query-token", nil)
		req.Header.Set("X-Api-Token", "header-token")

		Expect(middleware.ExtractToken(newCtx(req))).To(Equal("header-token"))
	})

	It("falls back to the api_key query parameter", func() {
		req, _ := http.NewRequest(http.MethodGet, "/?api_key=query-token", nil)

		Expect(middleware.ExtractToken(newCtx(req))).To(Equal("query-token"))
	})

	It("returns an empty string when no token is present", func() {
		req, _ := http.NewRequest(http.MethodGet, "/", nil)

		Expect(middleware.ExtractToken(newCtx(req))).To(BeEmpty())
	})
})

var _ = Describe("Auth middleware", func() {
	var cfg config.Config

	BeforeEach(func() {
		cleanDB()
		cfg = config.Config{SessionTTL: time.Hour}
	})

	authRouter := func() (*gin.Engine, **ent.User) {
		var seen *ent.User
		r := gin.New()
		r.GET("/private", middleware.Auth(db, cfg), func(c *gin.Context) {
			u, _ := c.Get(middleware.ContextKeyUser)
			seen, _ = u.(*ent.User)
			c.Status(http.StatusOK)
		})
		return r, &seen
	}

	It("loads the session user for a valid token", func() {
		createSession("good-token", time.Now())
		r, seen := authRouter()

		req, _ := http.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("X-Api-Token", "good-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(*seen).NotTo(BeNil())
	})

	It("rejects requests without a token", func() {
		r, _ := authRouter()

		req, _ := http.NewRequest(http.MethodGet, "/private", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("rejects and deletes sessions idle past the TTL", func() {
		createSession("stale-token", time.Now().Add(-2*time.Hour))
		r, _ := authRouter()

		req, _ := http.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("X-Api-Token", "stale-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		count := db.Session.Query().
			Where(entsession.Token("stale-token")).
			CountX(context.Background())
		Expect(count).To(BeZero())
	})

	It("accepts the token via the api_key query parameter", func() {
		createSession("query-token", time.Now())
		r, _ := authRouter()

		req, _ := http.NewRequest(http.MethodGet, "/private?api_key=query-token", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
	})
})

var _ = Describe("OptionalAuth middleware", func() {
	var cfg config.Config

	BeforeEach(func() {
		cleanDB()
		cfg = config.Config{SessionTTL: time.Hour}
	})

	optRouter := func() (*gin.Engine, *bool) {
		var sawUser bool
		r := gin.New()
		r.GET("/open", middleware.OptionalAuth(db, cfg), func(c *gin.Context) {
			_, sawUser = c.Get(middleware.ContextKeyUser)
			c.Status(http.StatusOK)
		})
		return r, &sawUser
	}

	It("continues anonymously without a token", func() {
		r, sawUser := optRouter()

		req, _ := http.NewRequest(http.MethodGet, "/open", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(*sawUser).To(BeFalse())
	})

	It("attaches the user for a valid token", func() {
		createSession("opt-token", time.Now())
		r, sawUser := optRouter()

		req, _ := http.NewRequest(http.MethodGet, "/open", nil)
		req.Header.Set("X-Api-Token", "opt-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(*sawUser).To(BeTrue())
	})

	It("continues anonymously for an unknown token", func() {
		r, sawUser := optRouter()

		req, _ := http.NewRequest(http.MethodGet, "/open", nil)
		req.Header.Set("X-Api-Token", "nope")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(*sawUser).To(BeFalse())
	})
})

var _ = Describe("AdminOnly middleware", func() {
	It("allows admin users through", func() {
		r := gin.New()
		r.GET("/secret", func(c *gin.Context) {
			c.Set(middleware.ContextKeyUser, &ent.User{IsAdmin: true})
		}, middleware.AdminOnly(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req, _ := http.NewRequest(http.MethodGet, "/secret", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("returns 403 for non-admin users", func() {
		r := gin.New()
		r.GET("/secret", func(c *gin.Context) {
			c.Set(middleware.ContextKeyUser, &ent.User{IsAdmin: false})
		}, middleware.AdminOnly(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req, _ := http.NewRequest(http.MethodGet, "/secret", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusForbidden))
	})

	It("returns 401 when no user is set", func() {
		r := gin.New()
		r.GET("/secret", middleware.AdminOnly(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req, _ := http.NewRequest(http.MethodGet, "/secret", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})
})

var _ = Describe("Request ID and logging", func() {
	logRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(requestid.New(), middleware.RequestLogger())
		r.GET("/test", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	It("sets X-Request-ID on the response when none is provided", func() {
		req, _ := http.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		logRouter().ServeHTTP(w, req)

		Expect(w.Header().Get("X-Request-ID")).NotTo(BeEmpty())
	})

	It("reuses an incoming X-Request-ID", func() {
		req, _ := http.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-ID", "my-custom-id")
		w := httptest.NewRecorder()
		logRouter().ServeHTTP(w, req)

		Expect(w.Header().Get("X-Request-ID")).To(Equal("my-custom-id"))
	})
})
