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

// ValidateConfig checks that the configuration is usable for the current
// environment. Development and test fall back to defaults; production and CI
// must provide real secrets.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.DBHost == "" {
		errs = append(errs, "database host is required")
	}
	if cfg.DBName == "" {
		errs = append(errs, "database name is required")
	}
	if cfg.ServerPort == "" {
		errs = append(errs, "server port is required")
	}

	if IsProduction() || IsCI() {
		if cfg.JWTSecret == "" || cfg.JWTSecret == "your-secret-key" {
			errs = append(errs, "JWT_SECRET must be set to a real secret")
		}
		if cfg.DBPassword == "" {
			errs = append(errs, "DB_PASSWORD is required")
		}
		if cfg.LLMAPIKey == "" {
			errs = append(errs, "DEEPSEEK_API_KEY or DEEPSEEK_API_KEY_FILE must be set")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}
