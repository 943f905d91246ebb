package config

import (
	"fmt"
	"net/url"
	"strconv"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"      validate:"required"`
	Payment  PaymentConfig  `mapstructure:"payment"  validate:"required"`
	Session  SessionConfig  `mapstructure:"session"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// AllowedOrigins is the CORS origin allow-list. "*" allows any origin.
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1"`

	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// DatabaseConfig contains all database-related configuration settings.
// Either URL or the discrete Host/User/Name fields can be used; URL wins.
// Leaving both empty disables persistence: every store call then reports
// the store as unavailable instead of failing startup.
type DatabaseConfig struct {
	Driver        string `mapstructure:"driver"         validate:"required,oneof=postgres sqlite"`
	URL           string `mapstructure:"url"`
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"           validate:"gte=0,lt=65536"`
	User          string `mapstructure:"user"`
	Password      string `mapstructure:"password"`
	Name          string `mapstructure:"name"`
	SSLMode       string `mapstructure:"sslmode"        validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	RunMigrations bool   `mapstructure:"run_migrations"`
}

// DSN returns the connection string for the configured driver, or an empty
// string when no database is configured.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}

	switch c.Driver {
	case "sqlite":
		return c.Name
	default:
		if c.Host == "" || c.Name == "" {
			return ""
		}

		u := &url.URL{
			Scheme: "postgres",
			Host:   c.Host,
			Path:   "/" + c.Name,
		}
		if c.Port > 0 {
			u.Host = c.Host + ":" + strconv.Itoa(c.Port)
		}
		if c.User != "" {
			if c.Password != "" {
				u.User = url.UserPassword(c.User, c.Password)
			} else {
				u.User = url.User(c.User)
			}
		}
		if c.SSLMode != "" {
			u.RawQuery = fmt.Sprintf("sslmode=%s", c.SSLMode)
		}
		return u.String()
	}
}

// LLMConfig contains all LLM integration related settings.
// Missing credentials are not an error: the flashcard service falls back to
// static questions when the generator is unavailable.
type LLMConfig struct {
	Provider string `mapstructure:"provider" validate:"required,oneof=huggingface gemini"`

	HuggingFaceAPIKey string `mapstructure:"huggingface_api_key"`
	HuggingFaceURL    string `mapstructure:"huggingface_url"    validate:"required,url"`

	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	ModelName    string `mapstructure:"model_name"`

	// PromptTemplatePath optionally overrides the embedded prompt template.
	PromptTemplatePath string `mapstructure:"prompt_template_path"`
}

// PaymentConfig holds the payment provider settings used by the payment stub.
type PaymentConfig struct {
	// APIKey and PublishableKey are reserved for a real provider integration;
	// the stub loads them but never reads them.
	APIKey          string `mapstructure:"api_key"`
	PublishableKey  string `mapstructure:"publishable_key"`
	CheckoutBaseURL string `mapstructure:"checkout_base_url" validate:"required,url"`
	Currency        string `mapstructure:"currency"          validate:"required,len=3"`
	Method          string `mapstructure:"method"            validate:"required"`
	DefaultAmount   int    `mapstructure:"default_amount"    validate:"gt=0"`
}

// SessionConfig holds the cookie session secret. No handler uses sessions yet.
type SessionConfig struct {
	// Secret is reserved for signing session cookies; nothing reads it.
	Secret string `mapstructure:"secret"`
}
