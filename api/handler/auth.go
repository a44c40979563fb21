package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ketabio/bookserver/api/middleware"
	"github.com/ketabio/bookserver/ent"
	entuser "github.com/ketabio/bookserver/ent/user"
)

// BcryptCost is the bcrypt work factor used for all password hashing.
const BcryptCost = 12

type AuthHandler struct {
	db *ent.Client
}

func NewAuthHandler(db *ent.Client) *AuthHandler {
	return &AuthHandler{db: db}
}

type loginRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	DeviceName string `json:"device_name"`
}

// Login handles POST /auth/login. It validates credentials and issues a
// session token for the X-Api-Token header.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.db.User.Query().
		Where(entuser.Username(req.Username)).
		Only(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	token := uuid.New().String()
	builder := h.db.Session.Create().
		SetToken(token).
		SetUser(user)
	if req.DeviceName != "" {
		builder = builder.SetDeviceName(req.DeviceName)
	}
	if _, err := builder.Save(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"display_name": user.DisplayName,
			"is_admin":     user.IsAdmin,
		},
	})
}

// Logout handles POST /auth/logout. It deletes the session so subsequent
// requests with the token are rejected.
func (h *AuthHandler) Logout(c *gin.Context) {
	raw, exists := c.Get(middleware.ContextKeySession)
	if !exists {
		c.Status(http.StatusNoContent)
		return
	}
	session := raw.(*ent.Session)
	_ = h.db.Session.DeleteOne(session).Exec(c.Request.Context())
	c.Status(http.StatusNoContent)
}
