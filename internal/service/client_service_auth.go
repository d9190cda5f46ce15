package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-owl/internal/adapter"
	"github.com/MKhiriev/go-pass-owl/internal/crypto"
	"github.com/MKhiriev/go-pass-owl/internal/logger"
	"github.com/MKhiriev/go-pass-owl/internal/session"
	"github.com/MKhiriev/go-pass-owl/internal/store"
	"github.com/MKhiriev/go-pass-owl/models"
)

// MonitorControl is the part of the re-authentication monitor driven by
// authentication.
type MonitorControl interface {
	ReauthSucceeded()
	Stop()
}

type clientAuthService struct {
	adapter    adapter.ServerAdapter
	primitives crypto.Primitives
	custodian  session.KeyCustodian
	store      *store.SessionStore
	session    *LocalSession
	monitor    MonitorControl
	iterations int
	logger     *logger.Logger
}

// NewClientAuthService creates the auth service. monitor may be nil.
func NewClientAuthService(
	serverAdapter adapter.ServerAdapter,
	primitives crypto.Primitives,
	custodian session.KeyCustodian,
	sessionStore *store.SessionStore,
	monitor MonitorControl,
	iterations int,
	log *logger.Logger,
) ClientAuthService {
	return &clientAuthService{
		adapter:    serverAdapter,
		primitives: primitives,
		custodian:  custodian,
		store:      sessionStore,
		session:    NewLocalSession(custodian, sessionStore, serverAdapter),
		monitor:    monitor,
		iterations: iterations,
		logger:     log.Component("auth"),
	}
}

func (a *clientAuthService) Register(ctx context.Context, username, masterPassword string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || masterPassword == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	loginSalt, err := a.primitives.GenerateSalt()
	if err != nil {
		return models.User{}, fmt.Errorf("generate login salt: %w", err)
	}
	encryptionSalt, err := a.primitives.GenerateSalt()
	if err != nil {
		return models.User{}, fmt.Errorf("generate encryption salt: %w", err)
	}
	if loginSalt == encryptionSalt {
		return models.User{}, fmt.Errorf("%w: salts collided", crypto.ErrDerivationFailed)
	}

	loginHash, err := a.loginHash(masterPassword, loginSalt)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.adapter.Register(ctx, models.RegisterRequest{
		Username:          username,
		LoginPasswordHash: loginHash,
		LoginSalt:         loginSalt,
		EncryptionSalt:    encryptionSalt,
	})
	if err != nil {
		return models.User{}, mapAdapterError(err, nil)
	}

	a.logger.Info().Str("username", username).Msg("user registered")
	return user, nil
}

func (a *clientAuthService) Login(ctx context.Context, username, masterPassword string) error {
	username = strings.TrimSpace(username)
	if username == "" || masterPassword == "" {
		return ErrInvalidDataProvided
	}

	if err := a.exchange(ctx, username, masterPassword); err != nil {
		return err
	}

	a.logger.Info().Str("username", username).Msg("logged in")
	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if a.monitor != nil {
		a.monitor.Stop()
	}
	if err := a.session.End(ctx); err != nil {
		return err
	}
	a.logger.Info().Msg("logged out")
	return nil
}

func (a *clientAuthService) Reauthenticate(ctx context.Context, masterPassword string) error {
	username, err := a.store.Username(ctx)
	if err != nil {
		return fmt.Errorf("load username: %w", err)
	}
	if username == "" {
		return ErrNotLoggedIn
	}

	if err = a.exchange(ctx, username, masterPassword); err != nil {
		if errors.Is(err, ErrWrongPassword) {
			a.custodian.Clear()
		}
		return err
	}

	if a.monitor != nil {
		a.monitor.ReauthSucceeded()
	}
	a.logger.Info().Msg("re-authenticated")
	return nil
}

func (a *clientAuthService) Restore(ctx context.Context) (bool, error) {
	meta, err := a.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load session: %w", err)
	}
	if meta.Token == "" {
		return false, nil
	}
	a.adapter.SetToken(meta.Token)
	return true, nil
}

func (a *clientAuthService) IsLoggedIn(ctx context.Context) bool {
	return a.session.IsLoggedIn(ctx)
}

func (a *clientAuthService) Stats(ctx context.Context) (models.UserStats, error) {
	stats, err := a.adapter.UserStats(ctx)
	if err != nil {
		return models.UserStats{}, mapAdapterError(err, ErrUserNotFound)
	}
	return stats, nil
}

// exchange runs salts → login hash → token, persists the session metadata
// and derives the session keys.
func (a *clientAuthService) exchange(ctx context.Context, username, masterPassword string) error {
	salts, err := a.adapter.Salts(ctx, username)
	if err != nil {
		return mapAdapterError(err, ErrUserNotFound)
	}

	loginHash, err := a.loginHash(masterPassword, salts.LoginSalt)
	if err != nil {
		return err
	}

	token, err := a.adapter.Login(ctx, models.LoginRequest{Username: username, LoginPasswordHash: loginHash})
	if err != nil {
		return mapAdapterError(err, ErrUserNotFound)
	}

	err = a.store.Save(ctx, models.SessionMetadata{
		Username:       username,
		Token:          token.AccessToken,
		EncryptionSalt: salts.EncryptionSalt,
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	err = a.custodian.DeriveAndStore(ctx, masterPassword, salts.EncryptionSalt)
	if errors.Is(err, session.ErrSessionCleared) {
		// the session was ended meanwhile; drop the token stored above
		if endErr := a.session.End(context.WithoutCancel(ctx)); endErr != nil {
			a.logger.Err(endErr).Msg("session teardown incomplete")
		}
	}
	return err
}

func (a *clientAuthService) loginHash(masterPassword, loginSalt string) (string, error) {
	hash, err := a.primitives.DeriveKey(masterPassword, loginSalt, a.iterations)
	if err != nil {
		return "", err
	}
	return crypto.EncodeKey(hash), nil
}
