package session

import (
	"errors"
	"fmt"
)

// ErrKeyUnavailable is returned whenever a secret is absent or has expired.
var ErrKeyUnavailable = errors.New("key unavailable")

var (
	ErrEncryptionKeyUnavailable = fmt.Errorf("encryption %w", ErrKeyUnavailable)
	ErrPrivateKeyUnavailable    = fmt.Errorf("private %w", ErrKeyUnavailable)
	ErrNoSalt                   = errors.New("no encryption salt available")
	ErrSessionCleared           = errors.New("session cleared during key derivation")
)
