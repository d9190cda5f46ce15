package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/MKhiriev/go-pass-owl/internal/adapter"
	"github.com/MKhiriev/go-pass-owl/internal/crypto"
	"github.com/MKhiriev/go-pass-owl/internal/logger"
	"github.com/MKhiriev/go-pass-owl/internal/session"
	"github.com/MKhiriev/go-pass-owl/internal/store"
	"github.com/MKhiriev/go-pass-owl/models"
	"github.com/awnumar/memguard"
)

type clientKeyService struct {
	adapter    adapter.ServerAdapter
	primitives crypto.Primitives
	custodian  session.KeyCustodian
	store      *store.SessionStore
	iterations int
	logger     *logger.Logger
}

func NewClientKeyService(
	serverAdapter adapter.ServerAdapter,
	primitives crypto.Primitives,
	custodian session.KeyCustodian,
	sessionStore *store.SessionStore,
	iterations int,
	log *logger.Logger,
) ClientKeyService {
	return &clientKeyService{
		adapter:    serverAdapter,
		primitives: primitives,
		custodian:  custodian,
		store:      sessionStore,
		iterations: iterations,
		logger:     log.Component("keys"),
	}
}

// GenerateAndStoreKeys refuses to replace an existing pair: envelopes sealed
// for the old public key would become unreadable. The master password must
// derive the key currently under custody.
func (k *clientKeyService) GenerateAndStoreKeys(ctx context.Context, masterPassword string) (string, error) {
	salt, err := k.store.EncryptionSalt(ctx)
	if err != nil {
		return "", fmt.Errorf("load encryption salt: %w", err)
	}
	if salt == "" {
		return "", ErrNotLoggedIn
	}

	user, err := k.adapter.CurrentUser(ctx)
	if err != nil {
		return "", mapAdapterError(err, ErrUserNotFound)
	}
	if user.HasKeys() {
		return "", ErrKeysAlreadyExist
	}

	key, err := k.primitives.DeriveKey(masterPassword, salt, k.iterations)
	if err != nil {
		return "", err
	}
	defer memguard.WipeBytes(key)

	current, err := k.custodian.Key()
	if err != nil {
		return "", err
	}
	match := subtle.ConstantTimeCompare(key, current) == 1
	memguard.WipeBytes(current)
	if !match {
		return "", ErrWrongPassword
	}

	pair, err := k.primitives.GenerateAsymmetricKeyPair()
	if err != nil {
		return "", fmt.Errorf("generate key pair: %w", err)
	}

	wrapped, err := k.primitives.EncryptData(pair.PrivateKey, key, "")
	if err != nil {
		return "", fmt.Errorf("wrap private key: %w", err)
	}

	err = k.adapter.UploadKeys(ctx, models.UserKeys{
		PublicKey:           pair.PublicKey,
		EncryptedPrivateKey: crypto.FormatWrappedKey(wrapped),
	})
	if err != nil {
		return "", mapAdapterError(err, ErrUserNotFound)
	}

	der, err := crypto.DecodePrivateKey(pair.PrivateKey)
	if err != nil {
		return "", err
	}
	k.custodian.StorePrivateKey(der)
	k.custodian.RefreshLifetime()

	k.logger.Info().Msg("key pair generated and uploaded")
	return pair.PublicKey, nil
}

func (k *clientKeyService) HasKeys(ctx context.Context) (bool, error) {
	user, err := k.adapter.CurrentUser(ctx)
	if err != nil {
		return false, mapAdapterError(err, ErrUserNotFound)
	}
	return user.HasKeys(), nil
}
