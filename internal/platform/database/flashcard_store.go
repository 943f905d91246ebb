package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/studybuddy-api/internal/domain"
	"github.com/phrazzld/studybuddy-api/internal/platform/logger"
	"github.com/phrazzld/studybuddy-api/internal/store"
)

const flashcardEntity = "flashcard"

// FlashcardStore implements store.FlashcardStore on a SQL connection pool.
// Every call acquires its own connection and releases it before returning.
type FlashcardStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewFlashcardStore creates a FlashcardStore. A nil db is allowed: every call
// then fails with store.ErrStorageUnavailable.
// If logger is nil, a default logger will be used.
func NewFlashcardStore(db *sql.DB, logger *slog.Logger) *FlashcardStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &FlashcardStore{
		db:     db,
		logger: logger.With(slog.String("component", "flashcard_store")),
	}
}

// Ensure FlashcardStore implements store.FlashcardStore interface
var _ store.FlashcardStore = (*FlashcardStore)(nil)

// Insert implements store.FlashcardStore.Insert.
func (s *FlashcardStore) Insert(ctx context.Context, card *domain.Flashcard) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if card == nil {
		return store.NewStoreError(flashcardEntity, "insert", "flashcard is nil", store.ErrInvalidEntity)
	}
	if err := card.Validate(); err != nil {
		log.Debug("flashcard validation failed", slog.String("error", err.Error()))
		return store.NewStoreError(flashcardEntity, "insert", "validation failed",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	userID := card.UserID
	if userID == "" {
		userID = domain.AnonymousUserID
	}

	err := store.WithConn(ctx, s.db, func(ctx context.Context, conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, `
			INSERT INTO flashcards (subject, question, answer, notes_hash, user_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			card.Subject,
			card.Question,
			card.Answer,
			card.NotesHash,
			userID,
			card.CreatedAt.UTC(),
		).Scan(&card.ID)
	})
	if err != nil {
		mapped := MapError(err)
		logStoreError(log, "failed to insert flashcard", err, mapped, card.Subject)
		return store.NewStoreError(flashcardEntity, "insert", "insert failed", mapped)
	}

	card.UserID = userID
	log.Debug("flashcard inserted", slog.Int64("id", card.ID))
	return nil
}

// ListBySubject implements store.FlashcardStore.ListBySubject.
func (s *FlashcardStore) ListBySubject(
	ctx context.Context,
	subject string,
	limit int,
) ([]*domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = store.DefaultListLimit
	}

	cards := make([]*domain.Flashcard, 0, limit)
	err := store.WithConn(ctx, s.db, func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT id, subject, question, answer, notes_hash, user_id, created_at
			FROM flashcards
			WHERE subject = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2`,
			subject, limit,
		)
		if err != nil {
			return err
		}
		defer func() {
			_ = rows.Close()
		}()

		for rows.Next() {
			var card domain.Flashcard
			if err := rows.Scan(
				&card.ID,
				&card.Subject,
				&card.Question,
				&card.Answer,
				&card.NotesHash,
				&card.UserID,
				&card.CreatedAt,
			); err != nil {
				return err
			}
			card.CreatedAt = card.CreatedAt.UTC()
			cards = append(cards, &card)
		}
		return rows.Err()
	})
	if err != nil {
		mapped := MapError(err)
		logStoreError(log, "failed to list flashcards", err, mapped, subject)
		return nil, store.NewStoreError(flashcardEntity, "list", "query failed", mapped)
	}

	log.Debug("flashcards listed", slog.String("subject", subject), slog.Int("count", len(cards)))
	return cards, nil
}

// logStoreError logs at WARN when the database is unreachable and at ERROR
// otherwise.
func logStoreError(log *slog.Logger, msg string, err, mapped error, subject string) {
	level := slog.LevelError
	if store.IsUnavailableError(mapped) {
		level = slog.LevelWarn
	}
	log.LogAttrs(context.Background(), level, msg,
		slog.String("error", err.Error()),
		slog.String("subject", subject))
}
