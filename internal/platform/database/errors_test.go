package database

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/studybuddy-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "no rows",
			err:     sql.ErrNoRows,
			wantErr: store.ErrNotFound,
		},
		{
			name:    "unique violation",
			err:     &pgconn.PgError{Code: uniqueViolationCode},
			wantErr: store.ErrDuplicate,
		},
		{
			name:    "not null violation",
			err:     &pgconn.PgError{Code: notNullViolationCode, ColumnName: "question"},
			wantErr: store.ErrInvalidEntity,
		},
		{
			name:    "check violation",
			err:     &pgconn.PgError{Code: checkViolationCode, ConstraintName: "users_status_check"},
			wantErr: store.ErrInvalidEntity,
		},
		{
			name:    "foreign key violation",
			err:     &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "payments_user_id_fkey"},
			wantErr: store.ErrInvalidEntity,
		},
		{
			name:    "value too long",
			err:     fmt.Errorf("exec: %w", &pgconn.PgError{Code: stringTooLongCode}),
			wantErr: store.ErrInvalidEntity,
		},
		{
			name:    "bad connection",
			err:     driver.ErrBadConn,
			wantErr: store.ErrStorageUnavailable,
		},
		{
			name:    "connection done",
			err:     sql.ErrConnDone,
			wantErr: store.ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, MapError(tt.err), tt.wantErr)
		})
	}
}

func TestMapErrorPassthrough(t *testing.T) {
	t.Parallel()

	assert.NoError(t, MapError(nil))

	plain := errors.New("syntax error")
	assert.Equal(t, plain, MapError(plain))

	unmapped := &pgconn.PgError{Code: "42601"}
	assert.Equal(t, unmapped, MapError(unmapped))
}
