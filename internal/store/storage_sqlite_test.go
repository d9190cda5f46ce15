package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-pass-owl/internal/config"
	"github.com/MKhiriev/go-pass-owl/internal/logger"
	"github.com/MKhiriev/go-pass-owl/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStorage(t *testing.T) (*sqliteStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	s := &sqliteStorage{
		db:     &DB{DB: db, logger: l},
		now:    func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) },
		logger: l,
	}
	return s, mock
}

// ── sqlmock ─────────────────────────────────────────────────────────────────

func TestSQLiteStorage_Get(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM session_metadata WHERE key = ? LIMIT 1")).
		WithArgs(KeyToken).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("tok"))

	v, err := s.Get(context.Background(), KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok", v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorage_Get_NotFound(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectQuery("SELECT value FROM session_metadata").
		WithArgs(KeyToken).
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), KeyToken)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSQLiteStorage_Get_DBError(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectQuery("SELECT value FROM session_metadata").
		WillReturnError(errors.New("disk I/O error"))

	_, err := s.Get(context.Background(), KeyToken)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
}

func TestSQLiteStorage_Set(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT OR REPLACE INTO session_metadata")).
		WithArgs(KeyUsername, "alice", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), KeyUsername, "alice"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorage_Set_Error(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectExec("INSERT OR REPLACE").WillReturnError(errors.New("readonly database"))

	assert.ErrorIs(t, s.Set(context.Background(), KeyUsername, "alice"), ErrExecutingStatement)
}

func TestSQLiteStorage_Remove(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM session_metadata WHERE key = ?")).
		WithArgs(KeyToken).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Remove(context.Background(), KeyToken))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── real sqlite ─────────────────────────────────────────────────────────────

func TestNewClientStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "session.db")

	st, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)

	meta := models.SessionMetadata{Username: "alice", Token: "tok", EncryptionSalt: "ZW5j"}
	require.NoError(t, st.Session.Save(ctx, meta))
	require.NoError(t, st.Close())

	// a second process sees the same metadata
	st, err = NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer st.Close()

	got, err := st.Session.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, meta, got)

	require.NoError(t, st.Session.Clear(ctx))
	got, err = st.Session.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SessionMetadata{}, got)
}

func TestNewClientStorages_SelectsBackend(t *testing.T) {
	ctx := context.Background()

	mem, err := NewClientStorages(ctx, config.ClientStorage{}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, mem.Session.SetToken(ctx, "tok"))
	tok, err := mem.Session.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)
	assert.NoError(t, mem.Close())

	nop, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: NopDSN}}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, nop.Session.SetToken(ctx, "tok"))
	tok, err = nop.Session.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}
