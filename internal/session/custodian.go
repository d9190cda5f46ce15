// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-owl/internal/crypto"
	"github.com/MKhiriev/go-pass-owl/internal/logger"
	"github.com/MKhiriev/go-pass-owl/models"
	"github.com/awnumar/memguard"
)

//go:generate mockgen -source=custodian.go -destination=../mock/custodian_mock.go -package=mock

// DefaultTTL is the sliding lifetime of both session secrets.
const DefaultTTL = 15 * time.Minute

// KeyCustodian is the single in-memory owner of the session secrets: the
// symmetric key derived from the master password and the decrypted RSA
// private key. Each secret moves through Empty → Valid → Expired → Empty on
// its own clock.
//
// Consumers borrow copies for one operation and must wipe them with
// memguard.WipeBytes when done.
type KeyCustodian interface {
	// DeriveAndStore derives the symmetric key and, when the user record
	// carries one, recovers the private key with it. An empty salt is
	// resolved from the stored session metadata. Private-key recovery
	// failure does not fail the call. A Clear that lands while the call
	// runs wins: nothing is stored and ErrSessionCleared is returned.
	DeriveAndStore(ctx context.Context, masterPassword, salt string) error

	// Key returns a copy of the symmetric key or ErrEncryptionKeyUnavailable.
	Key() ([]byte, error)

	// PrivateKey returns a copy of the PKCS#8 DER private key or
	// ErrPrivateKeyUnavailable.
	PrivateKey() ([]byte, error)

	// StorePrivateKey places a freshly generated private key under custody.
	// der is wiped.
	StorePrivateKey(der []byte)

	// RefreshLifetime restarts the clock of every Valid secret.
	RefreshLifetime()

	// Clear wipes both secrets. Safe to call any number of times.
	Clear()

	HasKey() bool
	HasPrivateKey() bool
}

// SaltSource resolves the non-secret encryption salt of the current user.
type SaltSource interface {
	EncryptionSalt(ctx context.Context) (string, error)
}

// UserSource fetches the current user record carrying the encrypted private
// key.
type UserSource interface {
	CurrentUser(ctx context.Context) (models.User, error)
}

// secret is one custodied value and the moment its lifetime started.
type secret struct {
	enclave   *memguard.Enclave
	derivedAt time.Time
}

func (s *secret) empty() bool { return s.enclave == nil }

// Custodian is the memguard-backed [KeyCustodian].
type Custodian struct {
	primitives crypto.Primitives
	salts      SaltSource
	users      UserSource
	logger     *logger.Logger

	iterations int
	ttl        time.Duration
	now        func() time.Time

	mu         sync.Mutex
	key        secret
	privateKey secret
	// generation is bumped by Clear; a derivation started in an older
	// generation must not store its result.
	generation uint64
}

// Option tunes a [Custodian].
type Option func(*Custodian)

// WithTTL overrides [DefaultTTL].
func WithTTL(ttl time.Duration) Option {
	return func(c *Custodian) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithIterations sets the PBKDF2 iteration count used for derivation.
func WithIterations(n int) Option {
	return func(c *Custodian) {
		if n > 0 {
			c.iterations = n
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Custodian) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCustodian constructs a Custodian. salts and users may be nil; without
// them DeriveAndStore needs an explicit salt and skips private-key recovery.
func NewCustodian(primitives crypto.Primitives, salts SaltSource, users UserSource, log *logger.Logger, opts ...Option) *Custodian {
	c := &Custodian{
		primitives: primitives,
		salts:      salts,
		users:      users,
		logger:     log.Component("custodian"),
		iterations: crypto.DefaultIterations,
		ttl:        DefaultTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Custodian) DeriveAndStore(ctx context.Context, masterPassword, salt string) error {
	gen := c.currentGeneration()

	if salt == "" {
		resolved, err := c.resolveSalt(ctx)
		if err != nil {
			c.Clear()
			return fmt.Errorf("%w: %w", crypto.ErrDerivationFailed, err)
		}
		salt = resolved
	}

	// derivation runs outside the lock
	derived, err := c.primitives.DeriveKey(masterPassword, salt, c.iterations)
	if err != nil {
		c.Clear()
		c.logger.Err(err).Msg("key derivation failed")
		return err
	}

	c.mu.Lock()
	if c.generation != gen {
		c.mu.Unlock()
		memguard.WipeBytes(derived)
		c.logger.Debug().Msg("cleared during derivation, key discarded")
		return ErrSessionCleared
	}
	c.key = secret{enclave: memguard.NewEnclave(derived), derivedAt: c.now()}
	c.privateKey = secret{}
	c.mu.Unlock()
	c.logger.Debug().Msg("symmetric key stored")

	if err = c.recoverPrivateKey(ctx, gen); err != nil {
		if errors.Is(err, ErrSessionCleared) || c.currentGeneration() != gen {
			return ErrSessionCleared
		}
		c.logger.Warn().Err(err).Msg("private key not recovered")
	}
	return nil
}

func (c *Custodian) currentGeneration() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

func (c *Custodian) resolveSalt(ctx context.Context) (string, error) {
	if c.salts == nil {
		return "", ErrNoSalt
	}
	salt, err := c.salts.EncryptionSalt(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoSalt, err)
	}
	if salt == "" {
		return "", ErrNoSalt
	}
	return salt, nil
}

// recoverPrivateKey decrypts the user's "<ct>:<iv>" private key blob with
// the symmetric key just stored. The result is kept only while the custodian
// is still in generation gen.
func (c *Custodian) recoverPrivateKey(ctx context.Context, gen uint64) error {
	if c.users == nil {
		return nil
	}
	user, err := c.users.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("fetch current user: %w", err)
	}
	if user.EncryptedPrivateKey == "" {
		return nil
	}

	wrapped, err := crypto.ParseWrappedKey(user.EncryptedPrivateKey)
	if err != nil {
		return err
	}

	key, err := c.Key()
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(key)

	encoded, err := c.primitives.DecryptData(wrapped.Ciphertext, wrapped.IV, key)
	if err != nil {
		return err
	}
	der, err := crypto.DecodePrivateKey(encoded)
	if err != nil {
		return err
	}

	if !c.storePrivateKey(gen, der) {
		return ErrSessionCleared
	}
	return nil
}

func (c *Custodian) Key() ([]byte, error) {
	return c.open(&c.key, ErrEncryptionKeyUnavailable)
}

func (c *Custodian) PrivateKey() ([]byte, error) {
	return c.open(&c.privateKey, ErrPrivateKeyUnavailable)
}

// open checks the TTL and copies the secret out under one lock hold, so a
// value read here was valid at the moment it was read.
func (c *Custodian) open(s *secret, unavailable error) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.validLocked(s) {
		return nil, unavailable
	}
	buf, err := s.enclave.Open()
	if err != nil {
		*s = secret{}
		return nil, fmt.Errorf("%w: %w", unavailable, err)
	}
	defer buf.Destroy()

	out := make([]byte, buf.Size())
	copy(out, buf.Bytes())
	return out, nil
}

// validLocked performs the lazy Valid → Expired → Empty transition.
func (c *Custodian) validLocked(s *secret) bool {
	if s.empty() {
		return false
	}
	if c.now().Sub(s.derivedAt) > c.ttl {
		*s = secret{}
		c.logger.Debug().Msg("session secret expired")
		return false
	}
	return true
}

func (c *Custodian) StorePrivateKey(der []byte) {
	c.storePrivateKey(c.currentGeneration(), der)
}

func (c *Custodian) storePrivateKey(gen uint64, der []byte) bool {
	if len(der) == 0 {
		return true
	}
	c.mu.Lock()
	if c.generation != gen {
		c.mu.Unlock()
		memguard.WipeBytes(der)
		return false
	}
	c.privateKey = secret{enclave: memguard.NewEnclave(der), derivedAt: c.now()}
	c.mu.Unlock()
	c.logger.Debug().Msg("private key stored")
	return true
}

func (c *Custodian) RefreshLifetime() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.validLocked(&c.key) {
		c.key.derivedAt = now
	}
	if c.validLocked(&c.privateKey) {
		c.privateKey.derivedAt = now
	}
}

func (c *Custodian) Clear() {
	c.mu.Lock()
	c.key = secret{}
	c.privateKey = secret{}
	c.generation++
	c.mu.Unlock()
}

func (c *Custodian) HasKey() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validLocked(&c.key)
}

func (c *Custodian) HasPrivateKey() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validLocked(&c.privateKey)
}
