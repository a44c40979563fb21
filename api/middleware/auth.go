package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ketabio/bookserver/config"
	"github.com/ketabio/bookserver/ent"
	entsession "github.com/ketabio/bookserver/ent/session"
)

const (
	ContextKeyUser    = "user"
	ContextKeySession = "session"
)

// lastActivityDebounce limits session last-activity writes to at most one
// per session per interval.
const lastActivityDebounce = 5 * time.Minute

// ExtractToken retrieves the session token from the request: the X-Api-Token
// header first, then the api_key query parameter (used by clients that cannot
// set headers, such as websocket upgrades from browsers).
func ExtractToken(c *gin.Context) string {
	if token := c.GetHeader("X-Api-Token"); token != "" {
		return token
	}
	return c.Query("api_key")
}

// Auth validates the session token on every protected request, loads the
// associated user, and stores both in the gin context. Requests without a
// valid session are rejected with 401. Sessions idle longer than
// cfg.SessionTTL are deleted and rejected.
func Auth(db *ent.Client, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := resolveSession(c, db, cfg)
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(ContextKeyUser, session.Edges.User)
		c.Set(ContextKeySession, session)
		c.Next()
	}
}

// OptionalAuth loads the user when a valid session token is supplied and
// continues anonymously otherwise. Routes behind it serve public data with
// extra per-user fields for authenticated callers.
func OptionalAuth(db *ent.Client, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session := resolveSession(c, db, cfg); session != nil {
			c.Set(ContextKeyUser, session.Edges.User)
			c.Set(ContextKeySession, session)
		}
		c.Next()
	}
}

// resolveSession returns the live session for the request's token, or nil.
// Expired sessions are deleted as a side effect.
func resolveSession(c *gin.Context, db *ent.Client, cfg config.Config) *ent.Session {
	token := ExtractToken(c)
	if token == "" {
		return nil
	}

	session, err := db.Session.Query().
		Where(entsession.Token(token)).
		WithUser().
		Only(c.Request.Context())
	if err != nil {
		return nil
	}

	if cfg.SessionTTL > 0 && time.Since(session.LastActivity) > cfg.SessionTTL {
		_ = db.Session.DeleteOne(session).Exec(c.Request.Context())
		return nil
	}

	// Debounce last-activity updates to avoid a DB write on every request.
	if time.Since(session.LastActivity) > lastActivityDebounce {
		_ = session.Update().SetLastActivity(time.Now()).Exec(c.Request.Context())
	}

	return session
}
