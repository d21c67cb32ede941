package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/receptkylen/backend/internal/recipe"
)

// Home renders the search form. The login/logout query flags control the
// transient banners shown after a redirect.
func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Recipes":       []recipe.Recipe{},
		"LoginSuccess":  c.Query("login") == "1",
		"LogoutSuccess": c.Query("logout") == "1",
		"LoginError":    "",
		"Username":      h.currentUsername(c),
		"NoResults":     false,
		"Email":         "",
	})
}

// SearchRecipes runs the filter pipeline over the submitted form fields and
// re-renders the home page with results or a no-results message.
func (h *Handler) SearchRecipes(c *gin.Context) {
	criteria := recipe.ParseCriteria(
		c.PostForm("ingredients"),
		c.PostForm("diet"),
		c.PostForm("max_calories"),
		c.PostForm("max_time"),
		c.PostForm("difficulty"),
	)

	recipes := h.recipes.Search(c.Request.Context(), criteria)

	noResults := len(recipes) == 0
	message := ""
	if noResults {
		message = recipe.NoResultsMessage(criteria)
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Recipes":          recipes,
		"LoginSuccess":     false,
		"LogoutSuccess":    false,
		"LoginError":       "",
		"Username":         h.currentUsername(c),
		"NoResults":        noResults,
		"NoResultsMessage": message,
		"Email":            "",
	})
}
