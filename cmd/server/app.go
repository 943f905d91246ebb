package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/studybuddy-api/internal/config"
	"github.com/phrazzld/studybuddy-api/internal/generation"
	"github.com/phrazzld/studybuddy-api/internal/platform/database"
	"github.com/phrazzld/studybuddy-api/internal/service"
	"github.com/phrazzld/studybuddy-api/internal/store"
)

// application holds the shared application dependencies and releases them
// on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db may be nil when no database is configured.
	db *sql.DB

	flashcardStore store.FlashcardStore
	generator      generation.Generator

	flashcardService service.FlashcardService
	paymentService   service.PaymentService
}

// newApplication wires stores, the text generator and services.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.flashcardStore = database.NewFlashcardStore(db, logger)

	var err error
	app.generator, err = newGenerator(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize text generator: %w", err)
	}

	prompts, err := generation.NewPromptBuilder(cfg.LLM.PromptTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}

	app.flashcardService, err = service.NewFlashcardService(app.flashcardStore, app.generator, prompts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create flashcard service: %w", err)
	}

	app.paymentService, err = service.NewPaymentService(cfg.Payment, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment service: %w", err)
	}

	logger.Info("application initialized",
		"persistence", db != nil,
		"llm_provider", cfg.LLM.Provider)
	return app, nil
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	router, err := app.setupRouter()
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
