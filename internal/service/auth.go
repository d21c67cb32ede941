package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/receptkylen/backend/internal/models"
)

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const uniqueViolationCode = "23505"

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register validates the input, hashes the password and creates the user.
// Uniqueness conflicts map to ErrEmailTaken or ErrUsernameTaken depending on
// which constraint was violated.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if len(password) < 8 {
		return nil, ErrPasswordTooShort
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return &user, nil
}

// Login verifies email and password. Unknown email and mismatched password
// return the same error so the two cases cannot be told apart.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// UsernameByID resolves the username for a verified identity. A stale id
// resolves to ok=false, not an error.
func (s *AuthService) UsernameByID(ctx context.Context, userID uuid.UUID) (string, bool) {
	var user models.User
	if err := s.db.WithContext(ctx).Select("username").Where("id = ?", userID).First(&user).Error; err != nil {
		return "", false
	}
	return user.Username, true
}

// mapUniqueViolation translates a store uniqueness conflict into the
// matching sentinel. The constraint name decides which field collided; the
// string fallback covers drivers that do not expose structured errors.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != uniqueViolationCode {
			return nil
		}
		if strings.Contains(pgErr.ConstraintName, "email") {
			return ErrEmailTaken
		}
		return ErrUsernameTaken
	}

	msg := err.Error()
	if !strings.Contains(strings.ToUpper(msg), "UNIQUE") {
		return nil
	}
	if strings.Contains(msg, "email") {
		return ErrEmailTaken
	}
	return ErrUsernameTaken
}
