package store

import (
	"context"

	"github.com/phrazzld/studybuddy-api/internal/domain"
)

// DefaultListLimit is used by ListBySubject when limit is not positive.
const DefaultListLimit = 20

// FlashcardStore defines the interface for flashcard persistence.
type FlashcardStore interface {
	// Insert saves a single flashcard in its own unit of work and sets its ID.
	// Returns ErrInvalidEntity if the flashcard fails domain validation and
	// ErrStorageUnavailable if no connection can be acquired.
	Insert(ctx context.Context, card *domain.Flashcard) error

	// ListBySubject returns up to limit flashcards whose subject matches
	// exactly, newest first. A non-positive limit means DefaultListLimit.
	ListBySubject(ctx context.Context, subject string, limit int) ([]*domain.Flashcard, error)
}
