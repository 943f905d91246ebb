package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
)

// AnonymousUserID is recorded on flashcards created without a known user.
const AnonymousUserID = "anonymous"

// Flashcard-specific validation errors
var (
	ErrFlashcardSubjectEmpty = errors.New("flashcard subject cannot be empty")
	ErrFlashcardHashEmpty    = errors.New("flashcard notes hash cannot be empty")
)

// GeneratedQuestion is one question/answer pair parsed from generated text.
// Answer may be empty when the generated text had no answer line.
type GeneratedQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Flashcard is a persisted question/answer pair for a subject.
// Flashcards are insert-only; ID is assigned by the store.
type Flashcard struct {
	ID        int64     `json:"id"`
	Subject   string    `json:"subject"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	NotesHash string    `json:"notes_hash"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewFlashcard builds a Flashcard for the anonymous user from a generated
// question. The creation time is set to now in UTC.
func NewFlashcard(subject string, q GeneratedQuestion, notesHash string) (*Flashcard, error) {
	card := &Flashcard{
		Subject:   subject,
		Question:  q.Question,
		Answer:    q.Answer,
		NotesHash: notesHash,
		UserID:    AnonymousUserID,
		CreatedAt: time.Now().UTC(),
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Flashcard has valid data. Question and answer may be
// empty: they are stored exactly as parsed.
func (f *Flashcard) Validate() error {
	if f.Subject == "" {
		return NewValidationError("subject", "cannot be empty", ErrFlashcardSubjectEmpty)
	}
	if f.NotesHash == "" {
		return NewValidationError("notes_hash", "cannot be empty", ErrFlashcardHashEmpty)
	}
	return nil
}

// NotesHash returns the hex-encoded SHA-256 digest of the notes text.
func NotesHash(notes string) string {
	sum := sha256.Sum256([]byte(notes))
	return hex.EncodeToString(sum[:])
}
