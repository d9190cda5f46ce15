package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-owl/internal/logger"
)

type sqliteStorage struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewSQLiteStorage returns a [Storage] backed by the session_metadata table
// of db. The schema must already be migrated.
func NewSQLiteStorage(db *DB, log *logger.Logger) Storage {
	return &sqliteStorage{db: db, now: time.Now, logger: log}
}

func (s *sqliteStorage) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetValueQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteStorage.Get").Str("key", key).Msg("failed to read session metadata")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteStorage) Set(ctx context.Context, key, value string) error {
	query, args, err := buildSetValueQuery(key, value, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqliteStorage.Set").Str("key", key).Msg("failed to write session metadata")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteStorage) Remove(ctx context.Context, key string) error {
	query, args, err := buildRemoveValueQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqliteStorage.Remove").Str("key", key).Msg("failed to remove session metadata")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
