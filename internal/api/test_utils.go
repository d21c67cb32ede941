package api

import (
	"context"
	"errors"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/receptkylen/backend/internal/middleware"
	"github.com/receptkylen/backend/internal/recipe"
	"github.com/receptkylen/backend/internal/recipesource"
	"github.com/receptkylen/backend/internal/service"
	"github.com/receptkylen/backend/internal/session"
	"github.com/receptkylen/backend/internal/testhelpers"
)

// stubSource serves canned results in place of the external API.
type stubSource struct {
	summaries []recipesource.Summary
	details   map[int]*recipesource.Detail
}

func (s *stubSource) Search(ctx context.Context, query, diet string) ([]recipesource.Summary, error) {
	return s.summaries, nil
}

func (s *stubSource) Details(ctx context.Context, id int) (*recipesource.Detail, error) {
	detail, ok := s.details[id]
	if !ok {
		return nil, errors.New("no such recipe")
	}
	return detail, nil
}

type testEnv struct {
	router   *gin.Engine
	db       *gorm.DB
	auth     *service.AuthService
	sessions *session.Manager
}

func setupTestRouter(t *testing.T, source recipe.Source) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupSQLiteDB(t)
	sessions := session.NewManager("test-cookie-secret")
	auth := service.NewAuthService(db)

	if source == nil {
		source = &stubSource{}
	}

	handler := New(
		recipe.NewService(source),
		auth,
		service.NewFavoriteService(db),
		sessions,
	)

	router := gin.New()
	router.Use(middleware.Identity(sessions))
	router.LoadHTMLGlob("../../templates/*.html")
	handler.RegisterRoutes(router)

	return &testEnv{router: router, db: db, auth: auth, sessions: sessions}
}

// createUser registers a user and returns its id plus a valid cookie value.
func (e *testEnv) createUser(t *testing.T, username, email string) (uuid.UUID, string) {
	t.Helper()

	user, err := e.auth.Register(context.Background(), username, email, "longenough")
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	token, err := e.sessions.Issue(user.ID)
	if err != nil {
		t.Fatalf("failed to issue session token: %v", err)
	}
	return user.ID, token
}
