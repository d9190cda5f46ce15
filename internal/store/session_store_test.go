package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-pass-owl/internal/mock"
	"github.com/MKhiriev/go-pass-owl/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "k", "v1"))
	require.NoError(t, s.Set(ctx, "k", "v2"))
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", v)

	require.NoError(t, s.Remove(ctx, "k"))
	require.NoError(t, s.Remove(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestNopStorage(t *testing.T) {
	ctx := context.Background()
	s := NewNopStorage()

	require.NoError(t, s.Set(ctx, "k", "v"))
	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NoError(t, s.Remove(ctx, "k"))
}

func TestSessionStore_MissingReadsEmpty(t *testing.T) {
	s := NewSessionStore(NewMemoryStorage())

	salt, err := s.EncryptionSalt(context.Background())
	require.NoError(t, err)
	assert.Empty(t, salt)
}

func TestSessionStore_StorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockStorage(ctrl)
	s := NewSessionStore(storage)
	ctx := context.Background()
	boom := errors.New("boom")

	storage.EXPECT().Get(ctx, KeyUsername).Return("", boom)
	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, boom)

	storage.EXPECT().Set(ctx, KeyUsername, "alice").Return(nil)
	storage.EXPECT().Set(ctx, KeyToken, "tok").Return(boom)
	err = s.Save(ctx, models.SessionMetadata{Username: "alice", Token: "tok"})
	assert.ErrorIs(t, err, boom)

	// Clear attempts every key even after a failure
	storage.EXPECT().Remove(ctx, KeyUsername).Return(boom)
	storage.EXPECT().Remove(ctx, KeyToken).Return(nil)
	storage.EXPECT().Remove(ctx, KeyEncryptionSalt).Return(nil)
	assert.ErrorIs(t, s.Clear(ctx), boom)
}
