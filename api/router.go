package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/ketabio/bookserver/api/handler"
	"github.com/ketabio/bookserver/api/middleware"
	"github.com/ketabio/bookserver/cache"
	"github.com/ketabio/bookserver/config"
	"github.com/ketabio/bookserver/ent"
)

// corsMiddleware allows credentialed requests from the configured origins.
// Unknown origins receive a wildcard Allow-Origin without credentials so
// public resources (covers, listings) still work from any frontend.
func corsMiddleware(cfg config.Config) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.CORSOrigins))
	for _, o := range cfg.CORSOrigins {
		allowed[strings.ToLower(o)] = true
	}

	return cors.New(cors.Config{
		AllowOriginWithContextFunc: func(c *gin.Context, origin string) bool {
			if !allowed[strings.ToLower(origin)] {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
				c.Writer.Header().Del("Access-Control-Allow-Credentials")
			}
			return true
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding", "Authorization", "X-Api-Token", "User-Agent", "X-Requested-With", "Cache-Control", "Pragma"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}

// Deps bundles the long-lived components the routes depend on. Built once in
// main and shared with the test suite.
type Deps struct {
	DB       *ent.Client
	Manager  *cache.Manager
	Resolver *cache.AccessResolver
	Prop     *cache.Propagator
	Warmer   *cache.Warmer
	Hub      *handler.EventHub
}

// NewRouter builds the HTTP handler.
func NewRouter(cfg config.Config, deps Deps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestid.New(), middleware.RequestLogger(), corsMiddleware(cfg))

	authH := handler.NewAuthHandler(deps.DB)
	bookH := handler.NewBookHandler(deps.DB, deps.Manager, deps.Resolver)
	contentH := handler.NewContentHandler(deps.DB, deps.Resolver)
	purchaseH := handler.NewPurchaseHandler(deps.DB, deps.Resolver)
	coverH := handler.NewCoverHandler(deps.DB, deps.Manager)
	catalogH := handler.NewCatalogHandler(deps.DB, deps.Prop)
	cacheH := handler.NewCacheAdminHandler(deps.Manager, deps.Warmer, cfg)
	userH := handler.NewUserHandler(deps.DB)

	r.POST("/auth/login", authH.Login)
	r.POST("/auth/logout", middleware.Auth(deps.DB, cfg), authH.Logout)

	// Public with optional session: detail gains user_access when a token is
	// supplied.
	pub := r.Group("/")
	pub.Use(middleware.OptionalAuth(deps.DB, cfg))
	{
		pub.GET("/books", bookH.ListBooks)
		pub.GET("/books/:id", bookH.GetBookDetail)
		pub.GET("/books/:id/cover", coverH.GetCover)
	}

	// Authenticated reader routes.
	priv := r.Group("/")
	priv.Use(middleware.Auth(deps.DB, cfg))
	{
		priv.GET("/books/:id/pages/:page", contentH.GetPageContent)
		priv.POST("/books/:id/purchase", purchaseH.Purchase)
		priv.POST("/books/:id/rating", purchaseH.Rate)
		priv.POST("/books/:id/subscribe", purchaseH.Subscribe)
	}

	// Admin surface.
	admin := r.Group("/admin")
	admin.Use(middleware.Auth(deps.DB, cfg), middleware.AdminOnly())
	{
		admin.POST("/users", userH.CreateUser)
		admin.GET("/users", userH.ListUsers)

		admin.POST("/authors", catalogH.CreateAuthor)
		admin.PATCH("/authors/:id", catalogH.UpdateAuthor)
		admin.DELETE("/authors/:id", catalogH.DeleteAuthor)

		admin.POST("/categories", catalogH.CreateCategory)
		admin.PATCH("/categories/:id", catalogH.UpdateCategory)
		admin.DELETE("/categories/:id", catalogH.DeleteCategory)

		admin.PUT("/books/:id/cover", coverH.UploadCover)

		admin.POST("/cache/invalidate/:id", cacheH.Invalidate)
		admin.POST("/cache/warm", cacheH.Warm)
		admin.GET("/cache/events", handler.EventStreamHandler(deps.Hub))
	}

	// Health probe for container orchestrators.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
	})

	return r
}
