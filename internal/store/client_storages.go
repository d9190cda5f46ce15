package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-owl/internal/config"
	"github.com/MKhiriev/go-pass-owl/internal/logger"
)

// NopDSN selects the no-op store.
const NopDSN = "nop"

// ClientStorages groups the client-side storage used by the service layer.
type ClientStorages struct {
	// Session holds the non-secret session metadata.
	Session *SessionStore

	db *DB
}

// NewClientStorages selects the session metadata backend from cfg.DB.DSN:
//   - ""    in-memory map;
//   - "nop" no-op store;
//   - else  sqlite file, created and migrated if needed.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	dsn := strings.TrimSpace(cfg.DB.DSN)
	log = log.Component("store")

	switch dsn {
	case "":
		log.Debug().Msg("using in-memory session store")
		return &ClientStorages{Session: NewSessionStore(NewMemoryStorage())}, nil
	case NopDSN:
		log.Debug().Msg("using no-op session store")
		return &ClientStorages{Session: NewSessionStore(NewNopStorage())}, nil
	}

	db, err := NewConnectSQLite(ctx, config.ClientDB{DSN: dsn}, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Session: NewSessionStore(NewSQLiteStorage(db, log)),
		db:      db,
	}, nil
}

// Close releases the database connection, if any.
func (c *ClientStorages) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
