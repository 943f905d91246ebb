package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/studybuddy-api/internal/domain"
	"github.com/phrazzld/studybuddy-api/internal/store"
)

// MockFlashcardStore implements store.FlashcardStore in memory for testing
type MockFlashcardStore struct {
	// Function fields for customizable behavior
	InsertFn        func(ctx context.Context, card *domain.Flashcard) error
	ListBySubjectFn func(ctx context.Context, subject string, limit int) ([]*domain.Flashcard, error)

	// InsertError is returned by every Insert call from the FailInsertAt-th on
	// (1-based). A zero FailInsertAt fails every call.
	InsertError  error
	FailInsertAt int
	ListError    error

	mu          sync.Mutex
	cards       []*domain.Flashcard
	insertCalls int
	nextID      int64
}

// NewMockFlashcardStore creates a new, empty mock store
func NewMockFlashcardStore() *MockFlashcardStore {
	return &MockFlashcardStore{}
}

// Insert implements the FlashcardStore interface
func (m *MockFlashcardStore) Insert(ctx context.Context, card *domain.Flashcard) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.insertCalls++

	if m.InsertFn != nil {
		return m.InsertFn(ctx, card)
	}

	if m.InsertError != nil && m.insertCalls >= m.FailInsertAt {
		return m.InsertError
	}

	m.nextID++
	card.ID = m.nextID
	stored := *card
	m.cards = append(m.cards, &stored)
	return nil
}

// ListBySubject implements the FlashcardStore interface. Cards are returned
// in reverse insertion order.
func (m *MockFlashcardStore) ListBySubject(
	ctx context.Context,
	subject string,
	limit int,
) ([]*domain.Flashcard, error) {
	if m.ListBySubjectFn != nil {
		return m.ListBySubjectFn(ctx, subject, limit)
	}
	if m.ListError != nil {
		return nil, m.ListError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if limit <= 0 {
		limit = store.DefaultListLimit
	}

	result := make([]*domain.Flashcard, 0, limit)
	for i := len(m.cards) - 1; i >= 0 && len(result) < limit; i-- {
		if m.cards[i].Subject == subject {
			c := *m.cards[i]
			result = append(result, &c)
		}
	}
	return result, nil
}

// Cards returns a copy of every stored flashcard in insertion order.
func (m *MockFlashcardStore) Cards() []*domain.Flashcard {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Flashcard(nil), m.cards...)
}

// InsertCalls returns how many times Insert was called.
func (m *MockFlashcardStore) InsertCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insertCalls
}

var _ store.FlashcardStore = (*MockFlashcardStore)(nil)
