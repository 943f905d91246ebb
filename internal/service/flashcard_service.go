package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/studybuddy-api/internal/domain"
	"github.com/phrazzld/studybuddy-api/internal/generation"
	"github.com/phrazzld/studybuddy-api/internal/platform/logger"
	"github.com/phrazzld/studybuddy-api/internal/store"
)

// PromptBuilder renders the generation prompt for a subject and its notes.
type PromptBuilder interface {
	Build(subject, notes string) (string, error)
}

// FlashcardService provides flashcard generation and retrieval.
type FlashcardService interface {
	// GenerateFlashcards turns notes into at most generation.MaxQuestions
	// questions, persists them best-effort and returns them. Only invalid
	// input produces an error.
	GenerateFlashcards(ctx context.Context, subject, notes string) ([]domain.GeneratedQuestion, error)

	// GetFlashcards returns the most recent saved flashcards for subject.
	GetFlashcards(ctx context.Context, subject string) ([]*domain.Flashcard, error)
}

// flashcardServiceImpl implements the FlashcardService interface
type flashcardServiceImpl struct {
	store     store.FlashcardStore
	generator generation.Generator
	prompts   PromptBuilder
	logger    *slog.Logger
}

// NewFlashcardService creates a new FlashcardService.
// It returns an error if any of the required dependencies are nil.
func NewFlashcardService(
	flashcardStore store.FlashcardStore,
	generator generation.Generator,
	prompts PromptBuilder,
	logger *slog.Logger,
) (FlashcardService, error) {
	if flashcardStore == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "flashcard store cannot be nil"}
	}
	if generator == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "generator cannot be nil"}
	}
	if prompts == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "prompt builder cannot be nil"}
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &flashcardServiceImpl{
		store:     flashcardStore,
		generator: generator,
		prompts:   prompts,
		logger:    logger.With("component", "flashcard_service"),
	}, nil
}

// GenerateFlashcards implements FlashcardService.
func (s *flashcardServiceImpl) GenerateFlashcards(
	ctx context.Context,
	subject, notes string,
) ([]domain.GeneratedQuestion, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if subject == "" || notes == "" {
		return nil, domain.NewValidationError("subject and notes", "are required", domain.ErrValidation)
	}

	questions := s.generate(ctx, log, subject, notes)
	s.persist(ctx, log, subject, notes, questions)

	return questions, nil
}

// generate returns parsed questions, or the fallback set when the generator
// cannot produce text.
func (s *flashcardServiceImpl) generate(
	ctx context.Context,
	log *slog.Logger,
	subject, notes string,
) []domain.GeneratedQuestion {
	prompt, err := s.prompts.Build(subject, notes)
	if err != nil {
		log.Warn("failed to build prompt, using fallback questions", "error", err)
		return FallbackQuestions(subject)
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, generation.ErrNotConfigured) {
			log.Debug("text generation not configured, using fallback questions")
		} else {
			log.Warn("text generation failed, using fallback questions", "error", err)
		}
		return FallbackQuestions(subject)
	}

	questions := generation.ParseQuestions(text)
	log.Info("questions generated",
		"subject", subject,
		"question_count", len(questions))
	return questions
}

// persist saves one flashcard per question. Each insert is independent; the
// first failure stops the loop and earlier inserts are kept.
func (s *flashcardServiceImpl) persist(
	ctx context.Context,
	log *slog.Logger,
	subject, notes string,
	questions []domain.GeneratedQuestion,
) {
	hash := domain.NotesHash(notes)

	for i, q := range questions {
		card, err := domain.NewFlashcard(subject, q, hash)
		if err != nil {
			log.Error("failed to build flashcard", "error", err, "index", i)
			return
		}

		if err := s.store.Insert(ctx, card); err != nil {
			if store.IsUnavailableError(err) {
				log.Warn("flashcard storage unavailable, questions not saved",
					"saved", i,
					"total", len(questions))
			} else {
				log.Error("failed to save flashcard",
					"error", err,
					"saved", i,
					"total", len(questions))
			}
			return
		}
	}

	log.Debug("flashcards saved", "subject", subject, "count", len(questions))
}

// GetFlashcards implements FlashcardService.
func (s *flashcardServiceImpl) GetFlashcards(ctx context.Context, subject string) ([]*domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if subject == "" {
		return nil, domain.NewValidationError("subject", "is required", domain.ErrValidation)
	}

	cards, err := s.store.ListBySubject(ctx, subject, store.DefaultListLimit)
	if err != nil {
		log.Error("failed to retrieve flashcards", "error", err, "subject", subject)
		return nil, NewServiceError("get_flashcards", "failed to retrieve flashcards", err)
	}

	return cards, nil
}
