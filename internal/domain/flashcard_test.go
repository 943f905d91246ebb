package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlashcard(t *testing.T) {
	t.Parallel()

	hash := NotesHash("cells divide")
	card, err := NewFlashcard("Biology", GeneratedQuestion{Question: "What is mitosis?", Answer: "Cell division"}, hash)

	require.NoError(t, err)
	assert.Zero(t, card.ID, "ID is assigned by the store")
	assert.Equal(t, "Biology", card.Subject)
	assert.Equal(t, "What is mitosis?", card.Question)
	assert.Equal(t, "Cell division", card.Answer)
	assert.Equal(t, hash, card.NotesHash)
	assert.Equal(t, AnonymousUserID, card.UserID)
	assert.False(t, card.CreatedAt.IsZero())
	assert.Equal(t, time.UTC, card.CreatedAt.Location())
}

func TestNewFlashcardAllowsEmptyAnswer(t *testing.T) {
	t.Parallel()

	card, err := NewFlashcard("Math", GeneratedQuestion{Question: "What is 2+2?"}, NotesHash("x"))

	require.NoError(t, err)
	assert.Empty(t, card.Answer)
}

func TestNewFlashcardAllowsEmptyQuestion(t *testing.T) {
	t.Parallel()

	card, err := NewFlashcard("Math", GeneratedQuestion{}, NotesHash("x"))

	require.NoError(t, err)
	assert.Empty(t, card.Question)
}

func TestFlashcardValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		card    Flashcard
		wantErr error
	}{
		{
			name:    "empty subject",
			card:    Flashcard{Question: "q", NotesHash: "h"},
			wantErr: ErrFlashcardSubjectEmpty,
		},
		{
			name:    "empty hash",
			card:    Flashcard{Subject: "s", Question: "q"},
			wantErr: ErrFlashcardHashEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.card.Validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestFlashcardValidateKeepsWhitespaceSubject(t *testing.T) {
	t.Parallel()

	card := Flashcard{Subject: "  ", Question: "q", NotesHash: "h"}

	assert.NoError(t, card.Validate())
}

func TestNotesHash(t *testing.T) {
	t.Parallel()

	// sha256("") is a well-known constant.
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", NotesHash(""))

	a := NotesHash("Photosynthesis converts light to energy.")
	assert.Len(t, a, 64)
	assert.Equal(t, a, NotesHash("Photosynthesis converts light to energy."))
	assert.NotEqual(t, a, NotesHash("Photosynthesis converts light to energy"))
}

func TestNewPaymentReference(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, time.January, 31, 23, 59, 5, 0, time.UTC)

	assert.Equal(t, "AI_STUDY_BUDDY_20240131235905", NewPaymentReference(ts))
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("subject", "is required", nil)

	assert.Equal(t, "subject is required", err.Error())
	assert.ErrorIs(t, err, ErrValidation)

	amountErr := NewValidationError("amount", "must be positive", ErrInvalidAmount)
	assert.ErrorIs(t, amountErr, ErrInvalidAmount)
	assert.ErrorIs(t, amountErr, ErrValidation)
}
