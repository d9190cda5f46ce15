package service

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-pass-owl/internal/crypto"
	"github.com/MKhiriev/go-pass-owl/internal/logger"
	"github.com/MKhiriev/go-pass-owl/internal/session"
	"github.com/MKhiriev/go-pass-owl/internal/store"
	"github.com/stretchr/testify/require"
)

// testIterations keeps PBKDF2 cheap in tests.
const testIterations = 1000

const (
	testPassword = "correct horse battery staple"
	testSalt     = "c2FsdHNhbHRzYWx0c2FsdHNhbHRzYWx0c2FsdHNhbHQ="
)

func newTestPrimitives() crypto.Primitives {
	return crypto.NewPrimitives(crypto.WithIterations(testIterations))
}

// newKeyedCustodian returns a custodian holding the key derived from
// testPassword and testSalt.
func newKeyedCustodian(t *testing.T, p crypto.Primitives) *session.Custodian {
	t.Helper()
	c := session.NewCustodian(p, nil, nil, logger.Nop(), session.WithIterations(testIterations))
	require.NoError(t, c.DeriveAndStore(context.Background(), testPassword, testSalt))
	return c
}

func newMemorySessionStore() *store.SessionStore {
	return store.NewSessionStore(store.NewMemoryStorage())
}

// spyMonitor records the calls the auth service makes.
type spyMonitor struct {
	succeeded atomic.Int32
	stopped   atomic.Int32
}

func (s *spyMonitor) ReauthSucceeded() { s.succeeded.Add(1) }
func (s *spyMonitor) Stop()            { s.stopped.Add(1) }
