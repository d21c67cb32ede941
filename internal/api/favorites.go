package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/receptkylen/backend/internal/models"
)

// AddFavorite stores a denormalized snapshot of a recipe for the current
// user. A duplicate for the same (user, recipe) pair answers {ok:false}
// without being an HTTP error.
func (h *Handler) AddFavorite(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Not logged in"})
		return
	}

	recipeID, err := strconv.Atoi(c.PostForm("recipe_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid recipe id"})
		return
	}

	// ready_in_minutes arrives as display text; a non-numeric value is zero.
	readyInMinutes, _ := strconv.Atoi(c.PostForm("ready_in_minutes"))

	fav := models.Favorite{
		UserID:         userID,
		RecipeID:       recipeID,
		Title:          c.PostForm("title"),
		Image:          c.PostForm("image"),
		Difficulty:     c.PostForm("difficulty"),
		ReadyInMinutes: readyInMinutes,
		Servings:       c.PostForm("servings"),
		Nutrition:      c.PostForm("nutrition"),
		Instructions:   c.PostForm("instructions"),
	}

	created, err := h.favorites.Add(c.Request.Context(), &fav)
	if err != nil {
		log.Printf("adding favorite: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Could not save favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": created})
}

// ListFavorites renders the current user's favorites. Anonymous requests
// are sent back to the home page.
func (h *Handler) ListFavorites(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	favorites, err := h.favorites.List(c.Request.Context(), userID)
	if err != nil {
		log.Printf("listing favorites: %v", err)
		c.HTML(http.StatusOK, "favorites.html", gin.H{
			"Favorites": []models.Favorite{},
			"Username":  h.currentUsername(c),
			"Error":     genericErrorMessage,
		})
		return
	}

	c.HTML(http.StatusOK, "favorites.html", gin.H{
		"Favorites": favorites,
		"Username":  h.currentUsername(c),
		"Error":     "",
	})
}

// RemoveFavorite deletes one favorite and redirects back to the list
// regardless of outcome; failures are logged, not surfaced.
func (h *Handler) RemoveFavorite(c *gin.Context) {
	userID, ok := currentUser(c)
	if ok {
		if recipeID, err := strconv.Atoi(c.PostForm("recipe_id")); err == nil {
			if err := h.favorites.Remove(c.Request.Context(), userID, recipeID); err != nil {
				log.Printf("removing favorite: %v", err)
			}
		}
	}

	c.Redirect(http.StatusSeeOther, "/favorites")
}
