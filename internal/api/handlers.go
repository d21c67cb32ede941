// Package api contains the gin handlers for the web surface.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/receptkylen/backend/internal/middleware"
	"github.com/receptkylen/backend/internal/recipe"
	"github.com/receptkylen/backend/internal/service"
	"github.com/receptkylen/backend/internal/session"
)

// Handler bundles the services the HTTP surface depends on.
type Handler struct {
	recipes   *recipe.Service
	auth      *service.AuthService
	favorites *service.FavoriteService
	sessions  *session.Manager
}

func New(recipes *recipe.Service, auth *service.AuthService, favorites *service.FavoriteService, sessions *session.Manager) *Handler {
	return &Handler{
		recipes:   recipes,
		auth:      auth,
		favorites: favorites,
		sessions:  sessions,
	}
}

// RegisterRoutes attaches every route to the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)
	r.POST("/", h.SearchRecipes)
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.POST("/favorite", h.AddFavorite)
	r.GET("/favorites", h.ListFavorites)
	r.POST("/remove-favorite", h.RemoveFavorite)
	r.GET("/health", h.Health)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	return middleware.CurrentUser(c)
}

// currentUsername resolves the identity cookie to a display name, if any.
func (h *Handler) currentUsername(c *gin.Context) string {
	userID, ok := currentUser(c)
	if !ok {
		return ""
	}
	username, ok := h.auth.UsernameByID(c.Request.Context(), userID)
	if !ok {
		return ""
	}
	return username
}
