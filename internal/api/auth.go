package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/receptkylen/backend/internal/recipe"
	"github.com/receptkylen/backend/internal/service"
)

const genericErrorMessage = "An unexpected error occurred. Please try again."

// ShowRegister renders the registration form.
func (h *Handler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Error":   "",
		"Success": "",
	})
}

// Register creates an account from the submitted form. Validation and
// uniqueness failures re-render the form with a field-level message; any
// other store failure is logged and reported generically.
func (h *Handler) Register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")

	_, err := h.auth.Register(c.Request.Context(), username, email, password)
	if err != nil {
		message := genericErrorMessage
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			message = "Invalid email address."
		case errors.Is(err, service.ErrPasswordTooShort):
			message = "Password must be at least 8 characters."
		case errors.Is(err, service.ErrEmailTaken):
			message = "Email is already registered."
		case errors.Is(err, service.ErrUsernameTaken):
			message = "Username is already taken."
		default:
			log.Printf("registration failed: %v", err)
		}
		c.HTML(http.StatusOK, "register.html", gin.H{
			"Error":   message,
			"Success": "",
		})
		return
	}

	c.HTML(http.StatusOK, "register.html", gin.H{
		"Error":   "",
		"Success": "Registration successful! You can now log in.",
	})
}

// Login authenticates by email and password. On success it issues the
// signed identity cookie and redirects home; on failure it re-renders the
// home page with a generic error and the submitted email echoed back.
func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.auth.Login(c.Request.Context(), email, password)
	if err != nil {
		message := "Invalid email or password."
		if !errors.Is(err, service.ErrInvalidCredentials) {
			log.Printf("login failed: %v", err)
			message = genericErrorMessage
		}
		c.HTML(http.StatusOK, "index.html", gin.H{
			"Recipes":       []recipe.Recipe{},
			"LoginSuccess":  false,
			"LogoutSuccess": false,
			"LoginError":    message,
			"Username":      "",
			"NoResults":     false,
			"Email":         email,
		})
		return
	}

	if err := h.sessions.SetCookie(c.Writer, user.ID); err != nil {
		log.Printf("issuing session cookie: %v", err)
		c.HTML(http.StatusOK, "index.html", gin.H{
			"Recipes":       []recipe.Recipe{},
			"LoginSuccess":  false,
			"LogoutSuccess": false,
			"LoginError":    genericErrorMessage,
			"Username":      "",
			"NoResults":     false,
			"Email":         email,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/?login=1")
}

// Logout clears the identity cookie.
func (h *Handler) Logout(c *gin.Context) {
	h.sessions.ClearCookie(c.Writer)
	c.Redirect(http.StatusSeeOther, "/?logout=1")
}
