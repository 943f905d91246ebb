package main

import (
	"context"
	"log/slog"

	"github.com/phrazzld/studybuddy-api/internal/config"
	"github.com/phrazzld/studybuddy-api/internal/generation"
	"github.com/phrazzld/studybuddy-api/internal/platform/gemini"
	"github.com/phrazzld/studybuddy-api/internal/platform/huggingface"
)

// newGenerator returns the configured text generator. A provider without a
// credential yields an unavailable generator so that every request gets the
// fallback questions instead of failing startup.
func newGenerator(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Generator, error) {
	switch cfg.Provider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			logger.Warn("gemini API key not set, using fallback questions")
			return generation.NewUnavailableGenerator("gemini API key is not set"), nil
		}
		return gemini.NewGenerator(ctx, logger, cfg)

	default:
		if cfg.HuggingFaceAPIKey == "" {
			logger.Warn("hugging face API key not set, using fallback questions")
			return generation.NewUnavailableGenerator("hugging face API key is not set"), nil
		}
		return huggingface.NewClient(logger, cfg)
	}
}
