package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-owl/internal/adapter"
	"github.com/MKhiriev/go-pass-owl/internal/session"
	"github.com/MKhiriev/go-pass-owl/internal/store"
)

// LocalSession is the client's view of one logged-in session: the custodied
// keys, the persisted metadata and the transport credential.
type LocalSession struct {
	custodian session.KeyCustodian
	store     *store.SessionStore
	transport adapter.CredentialSetter
}

func NewLocalSession(custodian session.KeyCustodian, sessionStore *store.SessionStore, transport adapter.CredentialSetter) *LocalSession {
	return &LocalSession{custodian: custodian, store: sessionStore, transport: transport}
}

// IsLoggedIn reports whether a bearer credential is held.
func (s *LocalSession) IsLoggedIn(_ context.Context) bool {
	return s.transport.Token() != ""
}

// End wipes the keys, drops the bearer credential and clears the stored
// metadata. The first two steps cannot fail.
func (s *LocalSession) End(ctx context.Context) error {
	s.custodian.Clear()
	s.transport.SetToken("")
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session store: %w", err)
	}
	return nil
}
