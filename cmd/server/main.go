// Package main implements the entry point for the study buddy API server,
// which turns study notes into flashcards and serves the premium checkout
// pages.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/phrazzld/studybuddy-api/internal/config"
	"github.com/phrazzld/studybuddy-api/internal/platform/database"
	"github.com/phrazzld/studybuddy-api/internal/platform/logger"
	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "studybuddy-api: %v\n", err)
		os.Exit(1)
	}
}

// options are the command-line settings that are not part of config.Config.
type options struct {
	configFile  string
	envFile     string
	migrateOnly bool
}

// newFlagSet declares the command-line flags. Flags named after config keys
// (e.g. --server-port for server.port) override every other source.
func newFlagSet(opts *options) *pflag.FlagSet {
	flags := pflag.NewFlagSet("studybuddy-api", pflag.ContinueOnError)

	flags.StringVar(&opts.configFile, "config", "", "path to a YAML config file")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flags.BoolVar(&opts.migrateOnly, "migrate-only", false, "apply database migrations and exit")

	flags.Int("server-port", 5000, "HTTP listen port")
	flags.String("server-log-level", "info", "log level (debug, info, warn, error)")
	flags.String("database-driver", "postgres", "database driver (postgres, sqlite)")
	flags.String("database-url", "", "database connection URL")
	flags.String("llm-provider", "huggingface", "text generation provider (huggingface, gemini)")

	return flags
}

// run loads configuration, prepares the database and serves HTTP until ctx
// is canceled.
func run(ctx context.Context, args []string) error {
	var opts options
	flags := newFlagSet(&opts)
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(opts, flags)
	if err != nil {
		return err
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver,
		"llm_provider", cfg.LLM.Provider)

	db, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := prepareDatabase(ctx, cfg, db, opts.migrateOnly, log); err != nil {
		if db != nil {
			_ = db.Close()
		}
		return err
	}
	if opts.migrateOnly {
		if db != nil {
			_ = db.Close()
		}
		return nil
	}

	app, err := newApplication(ctx, cfg, log, db)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// loadConfig reads the dotenv file, then the configuration. A missing
// dotenv file is not an error.
func loadConfig(opts options, flags *pflag.FlagSet) (*config.Config, error) {
	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", opts.envFile, err)
		}
	}

	loadOpts := []config.Option{config.WithFlags(flags)}
	if opts.configFile != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(opts.configFile))
	}

	cfg, err := config.Load(loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// prepareDatabase applies migrations when enabled. A migration failure is
// only fatal for --migrate-only; otherwise the server starts and stores
// report their own errors.
func prepareDatabase(ctx context.Context, cfg *config.Config, db *sql.DB, migrateOnly bool, log *slog.Logger) error {
	if db == nil {
		if migrateOnly {
			return errors.New("cannot migrate: no database configured")
		}
		return nil
	}
	if !cfg.Database.RunMigrations && !migrateOnly {
		log.Info("database migrations disabled")
		return nil
	}

	if err := database.Migrate(ctx, db, cfg.Database.Driver, log); err != nil {
		if migrateOnly {
			return fmt.Errorf("migration failed: %w", err)
		}
		log.Error("database migration failed, continuing", "error", err)
	}
	return nil
}
