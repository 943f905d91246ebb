package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for all environment variables read by Load.
const EnvPrefix = "STUDYBUDDY"

// keys lists every configuration key that can be set from the environment
// or from a flag.
var keys = []string{
	"server.port",
	"server.log_level",
	"server.allowed_origins",
	"server.shutdown_timeout_seconds",
	"database.driver",
	"database.url",
	"database.host",
	"database.port",
	"database.user",
	"database.password",
	"database.name",
	"database.sslmode",
	"database.run_migrations",
	"llm.provider",
	"llm.huggingface_api_key",
	"llm.huggingface_url",
	"llm.gemini_api_key",
	"llm.model_name",
	"llm.prompt_template_path",
	"payment.api_key",
	"payment.publishable_key",
	"payment.checkout_base_url",
	"payment.currency",
	"payment.method",
	"payment.default_amount",
	"session.secret",
}

// legacyEnv lists the unprefixed environment names still honoured for
// deployments that predate the STUDYBUDDY_ prefix. The prefixed name always
// wins when both are set.
var legacyEnv = map[string][]string{
	"server.port":             {"PORT"},
	"database.url":            {"DATABASE_URL"},
	"database.host":           {"DB_HOST"},
	"database.port":           {"DB_PORT"},
	"database.user":           {"DB_USER"},
	"database.password":       {"DB_PASSWORD"},
	"database.name":           {"DB_NAME"},
	"llm.huggingface_api_key": {"HUGGINGFACE_API_KEY"},
	"llm.gemini_api_key":      {"GEMINI_API_KEY"},
	"payment.api_key":         {"INTASEND_API_KEY"},
	"payment.publishable_key": {"INTASEND_PUBLISHABLE_KEY"},
	"session.secret":          {"SECRET_KEY"},
}

// Option customizes Load.
type Option func(*loadOptions)

type loadOptions struct {
	configFile string
	flags      *pflag.FlagSet
}

// WithConfigFile reads the given YAML (or any viper-supported) file before
// environment variables are applied.
func WithConfigFile(path string) Option {
	return func(o *loadOptions) {
		o.configFile = path
	}
}

// WithFlags binds command-line flags whose names match config keys with the
// dots replaced by dashes (e.g. --server-port). Flags that were set explicitly
// take precedence over environment variables.
func WithFlags(fs *pflag.FlagSet) Option {
	return func(o *loadOptions) {
		o.flags = fs
	}
}

// Load configuration from defaults, an optional config file, environment
// variables and command-line flags, in increasing order of precedence.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(opts ...Option) (*Config, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	v := viper.New()
	setDefaults(v)

	if o.configFile != "" {
		v.SetConfigFile(o.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", o.configFile, err)
		}
	}

	for _, key := range keys {
		input := append([]string{key, envName(key)}, legacyEnv[key]...)
		if err := v.BindEnv(input...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if o.flags != nil {
		for _, key := range keys {
			if f := o.flags.Lookup(strings.ReplaceAll(key, ".", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag for %s: %w", key, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags on cfg.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config validation failed: config is nil")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "ai_study_buddy")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.run_migrations", true)

	v.SetDefault("llm.provider", "huggingface")
	v.SetDefault("llm.huggingface_api_key", "")
	v.SetDefault("llm.huggingface_url", "https://api-inference.huggingface.co/models/facebook/bart-large-cnn")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", "gemini-2.0-flash")
	v.SetDefault("llm.prompt_template_path", "")

	v.SetDefault("payment.api_key", "")
	v.SetDefault("payment.publishable_key", "")
	v.SetDefault("payment.checkout_base_url", "https://pay.intasend.com/pay")
	v.SetDefault("payment.currency", "KES")
	v.SetDefault("payment.method", "MPESA")
	v.SetDefault("payment.default_amount", 1000)

	v.SetDefault("session.secret", "")
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
