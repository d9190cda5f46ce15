package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-owl/models"
)

// Keys of the session metadata entries.
const (
	KeyUsername       = "username"
	KeyToken          = "token"
	KeyEncryptionSalt = "encryption_salt"
)

// SessionStore gives typed access to the session metadata kept in a
// [Storage]. Missing entries read as empty strings.
type SessionStore struct {
	storage Storage
}

func NewSessionStore(storage Storage) *SessionStore {
	return &SessionStore{storage: storage}
}

// Load reads all entries at once.
func (s *SessionStore) Load(ctx context.Context) (models.SessionMetadata, error) {
	var (
		meta models.SessionMetadata
		err  error
	)
	if meta.Username, err = s.get(ctx, KeyUsername); err != nil {
		return models.SessionMetadata{}, err
	}
	if meta.Token, err = s.get(ctx, KeyToken); err != nil {
		return models.SessionMetadata{}, err
	}
	if meta.EncryptionSalt, err = s.get(ctx, KeyEncryptionSalt); err != nil {
		return models.SessionMetadata{}, err
	}
	return meta, nil
}

// Save writes every entry of meta.
func (s *SessionStore) Save(ctx context.Context, meta models.SessionMetadata) error {
	entries := []struct{ key, value string }{
		{KeyUsername, meta.Username},
		{KeyToken, meta.Token},
		{KeyEncryptionSalt, meta.EncryptionSalt},
	}
	for _, e := range entries {
		if err := s.storage.Set(ctx, e.key, e.value); err != nil {
			return fmt.Errorf("save %s: %w", e.key, err)
		}
	}
	return nil
}

// Clear removes every entry. It attempts all removals and joins the errors.
func (s *SessionStore) Clear(ctx context.Context) error {
	var errs []error
	for _, key := range []string{KeyUsername, KeyToken, KeyEncryptionSalt} {
		if err := s.storage.Remove(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

func (s *SessionStore) Username(ctx context.Context) (string, error) {
	return s.get(ctx, KeyUsername)
}

func (s *SessionStore) Token(ctx context.Context) (string, error) {
	return s.get(ctx, KeyToken)
}

// EncryptionSalt returns the stored salt of the logged-in user.
func (s *SessionStore) EncryptionSalt(ctx context.Context) (string, error) {
	return s.get(ctx, KeyEncryptionSalt)
}

func (s *SessionStore) SetToken(ctx context.Context, token string) error {
	return s.storage.Set(ctx, KeyToken, token)
}

func (s *SessionStore) get(ctx context.Context, key string) (string, error) {
	v, err := s.storage.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return v, nil
}
