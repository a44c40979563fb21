package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/ketabio/bookserver/cache"
	"github.com/ketabio/bookserver/ent"
	entuser "github.com/ketabio/bookserver/ent/user"
)

// UserHandler is the admin user management surface.
type UserHandler struct {
	db *ent.Client
}

func NewUserHandler(db *ent.Client) *UserHandler {
	return &UserHandler{db: db}
}

type createUserRequest struct {
	Username    string `json:"username" binding:"required"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password" binding:"required,min=8"`
	IsAdmin     bool   `json:"is_admin"`
}

// CreateUser handles POST /admin/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), BcryptCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	display := req.DisplayName
	if display == "" {
		display = req.Username
	}
	u, err := h.db.User.Create().
		SetUsername(req.Username).
		SetDisplayName(display).
		SetHashedPassword(string(hash)).
		SetIsAdmin(req.IsAdmin).
		Save(c.Request.Context())
	if err != nil {
		if ent.IsConstraintError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already in use"})
			return
		}
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}

	c.JSON(http.StatusCreated, userResponse(u))
}

// ListUsers handles GET /admin/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.db.User.Query().
		Order(entuser.ByUsername()).
		All(c.Request.Context())
	if err != nil {
		writeCacheError(c, &cache.TransientError{Err: err})
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse(u))
	}
	c.JSON(http.StatusOK, out)
}

// userResponse omits sensitive fields.
func userResponse(u *ent.User) gin.H {
	return gin.H{
		"id":           u.ID,
		"username":     u.Username,
		"display_name": u.DisplayName,
		"is_admin":     u.IsAdmin,
		"created_at":   u.CreatedAt,
	}
}
