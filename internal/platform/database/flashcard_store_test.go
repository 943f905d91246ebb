package database_test

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/studybuddy-api/internal/domain"
	"github.com/phrazzld/studybuddy-api/internal/platform/database"
	"github.com/phrazzld/studybuddy-api/internal/store"
	"github.com/phrazzld/studybuddy-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCard(subject, question string, createdAt time.Time) *domain.Flashcard {
	return &domain.Flashcard{
		Subject:   subject,
		Question:  question,
		Answer:    "answer to " + question,
		NotesHash: domain.NotesHash("notes"),
		UserID:    domain.AnonymousUserID,
		CreatedAt: createdAt,
	}
}

// backends lists every database the store runs on. PostgreSQL cases skip
// unless STUDYBUDDY_TEST_DATABASE_URL or DATABASE_URL is set.
var backends = []struct {
	name string
	open func(t *testing.T) *sql.DB
}{
	{name: "sqlite", open: testdb.Open},
	{name: "postgres", open: func(t *testing.T) *sql.DB {
		db := testdb.OpenPostgres(t)
		testdb.Truncate(t, db)
		return db
	}},
}

func TestFlashcardStore(t *testing.T) {
	cases := []struct {
		name string
		run  func(t *testing.T, db *sql.DB)
	}{
		{name: "insert assigns id", run: testInsertAssignsID},
		{name: "round trip", run: testRoundTrip},
		{name: "list newest first", run: testListNewestFirst},
		{name: "list ties broken by id", run: testListTiesBrokenByID},
		{name: "list caps at limit", run: testListCapsAtLimit},
		{name: "list exact subject match", run: testListExactSubjectMatch},
		{name: "insert invalid", run: testInsertInvalid},
		{name: "closed database", run: testClosedDatabase},
		{name: "errors do not leak sql", run: testErrorsDoNotLeakSQL},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					tc.run(t, b.open(t))
				})
			}
		})
	}
}

func testInsertAssignsID(t *testing.T, db *sql.DB) {
	s := database.NewFlashcardStore(db, nil)
	ctx := context.Background()

	first := newCard("Biology", "What is a cell?", time.Now().UTC())
	second := newCard("Biology", "What is DNA?", time.Now().UTC())

	require.NoError(t, s.Insert(ctx, first))
	require.NoError(t, s.Insert(ctx, second))

	assert.Positive(t, first.ID)
	assert.Greater(t, second.ID, first.ID)
}

func testRoundTrip(t *testing.T, db *sql.DB) {
	s := database.NewFlashcardStore(db, nil)
	ctx := context.Background()

	created := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	card := newCard("Chemistry", "What is H2O?", created)
	card.Answer = ""
	require.NoError(t, s.Insert(ctx, card))

	cards, err := s.ListBySubject(ctx, "Chemistry", 0)
	require.NoError(t, err)
	require.Len(t, cards, 1)

	got := cards[0]
	assert.Equal(t, card.ID, got.ID)
	assert.Equal(t, "Chemistry", got.Subject)
	assert.Equal(t, "What is H2O?", got.Question)
	assert.Empty(t, got.Answer)
	assert.Equal(t, card.NotesHash, got.NotesHash)
	assert.Equal(t, domain.AnonymousUserID, got.UserID)
	assert.True(t, created.Equal(got.CreatedAt), "created_at should round-trip, got %v", got.CreatedAt)
}

func testListNewestFirst(t *testing.T, db *sql.DB) {
	s := database.NewFlashcardStore(db, nil)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Insert(ctx, newCard("Math", "oldest", base)))
	require.NoError(t, s.Insert(ctx, newCard("Math", "newest", base.Add(2*time.Hour))))
	require.NoError(t, s.Insert(ctx, newCard("Math", "middle", base.Add(time.Hour))))

	cards, err := s.ListBySubject(ctx, "Math", 20)
	require.NoError(t, err)

	questions := make([]string, 0, len(cards))
	for _, c := range cards {
		questions = append(questions, c.Question)
	}
	assert.Equal(t, []string{"newest", "middle", "oldest"}, questions)
}

func testListTiesBrokenByID(t *testing.T, db *sql.DB) {
	s := database.NewFlashcardStore(db, nil)
	ctx := context.Background()

	same := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, q := range []string{"first", "second", "third"} {
		require.NoError(t, s.Insert(ctx, newCard("Art", q, same)))
	}

	cards, err := s.ListBySubject(ctx, "Art", 0)
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, "third", cards[0].Question)
	assert.Equal(t, "first", cards[2].Question)
}

func testListCapsAtLimit(t *testing.T, db *sql.DB) {
	s := database.NewFlashcardStore(db, nil)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		card := newCard("Physics", fmt.Sprintf("question %02d", i), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, s.Insert(ctx, card))
	}

	cards, err := s.ListBySubject(ctx, "Physics", 0)
	require.NoError(t, err)
	require.Len(t, cards, store.DefaultListLimit)
	assert.Equal(t, "question 24", cards[0].Question)
	assert.Equal(t, "question 05", cards[19].Question)

	few, err := s.ListBySubject(ctx, "Physics", 3)
	require.NoError(t, err)
	assert.Len(t, few, 3)
}

func testListExactSubjectMatch(t *testing.T, db *sql.DB) {
	s := database.NewFlashcardStore(db, nil)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, s.Insert(ctx, newCard("History", "h", now)))
	require.NoError(t, s.Insert(ctx, newCard("Geography", "g", now)))

	cards, err := s.ListBySubject(ctx, "History", 0)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "h", cards[0].Question)

	none, err := s.ListBySubject(ctx, "history", 0)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func testInsertInvalid(t *testing.T, db *sql.DB) {
	s := database.NewFlashcardStore(db, nil)
	ctx := context.Background()

	err := s.Insert(ctx, newCard("", "q", time.Now()))
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = s.Insert(ctx, nil)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestFlashcardStore_Unavailable(t *testing.T) {
	s := database.NewFlashcardStore(nil, nil)
	ctx := context.Background()

	err := s.Insert(ctx, newCard("Biology", "q", time.Now()))
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)

	cards, err := s.ListBySubject(ctx, "Biology", 0)
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
	assert.Nil(t, cards)
}

func testClosedDatabase(t *testing.T, db *sql.DB) {
	s := database.NewFlashcardStore(db, nil)
	require.NoError(t, db.Close())

	_, err := s.ListBySubject(context.Background(), "Biology", 0)

	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}

func testErrorsDoNotLeakSQL(t *testing.T, db *sql.DB) {
	s := database.NewFlashcardStore(db, nil)

	card := newCard("Biology", "q", time.Now())
	card.NotesHash = ""
	err := s.Insert(context.Background(), card)

	require.Error(t, err)
	assert.False(t, strings.Contains(err.Error(), "INSERT INTO"), "error should not contain SQL: %v", err)
}
