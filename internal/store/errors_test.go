package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUnavailableError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: false},
		{name: "ErrStorageUnavailable", err: ErrStorageUnavailable, expected: true},
		{
			name:     "wrapped ErrStorageUnavailable",
			err:      fmt.Errorf("insert: %w", ErrStorageUnavailable),
			expected: true,
		},
		{
			name:     "StoreError wrapping ErrStorageUnavailable",
			err:      NewStoreError("flashcard", "list", "query failed", ErrStorageUnavailable),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsUnavailableError(tt.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		err := NewStoreError("flashcard", "insert", "validation failed", ErrInvalidEntity)

		assert.Equal(t, "insert operation on flashcard failed: validation failed: invalid entity", err.Error())
		assert.ErrorIs(t, err, ErrInvalidEntity)

		var storeErr *StoreError
		assert.True(t, errors.As(fmt.Errorf("outer: %w", err), &storeErr))
		assert.Equal(t, "flashcard", storeErr.Entity)
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := NewStoreError("flashcard", "list", "bad input", nil)

		assert.Equal(t, "list operation on flashcard failed: bad input", err.Error())
		assert.Nil(t, err.Unwrap())
	})
}
