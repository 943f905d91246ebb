package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/studybuddy-api/internal/api/shared"
	"github.com/phrazzld/studybuddy-api/internal/platform/logger"
	"github.com/phrazzld/studybuddy-api/internal/service"
)

// FlashcardHandler handles flashcard generation and retrieval requests.
type FlashcardHandler struct {
	flashcardService service.FlashcardService
	logger           *slog.Logger
}

// NewFlashcardHandler creates a new FlashcardHandler.
func NewFlashcardHandler(flashcardService service.FlashcardService, logger *slog.Logger) *FlashcardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FlashcardHandler{
		flashcardService: flashcardService,
		logger:           logger.With("component", "flashcard_handler"),
	}
}

// GenerateFlashcards handles POST /generate_flashcards.
func (h *FlashcardHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req GenerateFlashcardsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	questions, err := h.flashcardService.GenerateFlashcards(r.Context(), req.Subject, req.Notes)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate flashcards")
		return
	}

	log.Debug("flashcards generated", "subject", req.Subject, "count", len(questions))
	shared.RespondWithJSON(w, r, http.StatusOK, GenerateFlashcardsResponse{Questions: questions})
}

// GetFlashcards handles GET /get_flashcards/{subject}.
func (h *FlashcardHandler) GetFlashcards(w http.ResponseWriter, r *http.Request) {
	subject := chi.URLParam(r, "subject")

	cards, err := h.flashcardService.GetFlashcards(r.Context(), subject)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch flashcards")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, flashcardsToResponse(cards))
}
