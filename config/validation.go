package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that every required value is present. Absence of a
// required value is a startup failure, never a per-request error.
func ValidateConfig(cfg *Config) error {
	required := map[string]string{
		"API_KEY":     cfg.APIKey,
		"SECRET_KEY":  cfg.CookieSecret,
		"DB_HOST":     cfg.DBHost,
		"DB_PORT":     cfg.DBPort,
		"DB_USER":     cfg.DBUser,
		"DB_PASSWORD": cfg.DBPassword,
		"DB_NAME":     cfg.DBName,
	}

	var errors []string
	for _, name := range []string{"API_KEY", "SECRET_KEY", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME"} {
		if required[name] == "" {
			errors = append(errors, fmt.Sprintf("required environment variable %s is not set", name))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
