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

// requiredFields maps config fields to accessors; all of them must be set in
// every environment for the service to reach its database.
var requiredFields = []struct {
	name  string
	value func(*Config) string
}{
	{"DB_HOST", func(c *Config) string { return c.DBHost }},
	{"DB_PORT", func(c *Config) string { return c.DBPort }},
	{"DB_USER", func(c *Config) string { return c.DBUser }},
	{"DB_PASSWORD", func(c *Config) string { return c.DBPassword }},
	{"DB_NAME", func(c *Config) string { return c.DBName }},
	{"SERVER_PORT", func(c *Config) string { return c.ServerPort }},
}

// ValidateConfig checks that all required configuration values are present
func ValidateConfig(cfg *Config) error {
	var errors []string

	for _, field := range requiredFields {
		if field.value(cfg) == "" {
			errors = append(errors, ValidationError{
				Field:   field.name,
				Message: "required configuration value is not set",
			}.Error())
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
