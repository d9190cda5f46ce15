// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-owl/internal/adapter"
	"github.com/MKhiriev/go-pass-owl/internal/crypto"
	"github.com/MKhiriev/go-pass-owl/internal/logger"
	"github.com/MKhiriev/go-pass-owl/internal/session"
	"github.com/MKhiriev/go-pass-owl/models"
	"github.com/awnumar/memguard"
)

// minSearchRunes is the shortest query sent to the user directory.
const minSearchRunes = 2

type clientSharingService struct {
	adapter    adapter.ServerAdapter
	primitives crypto.Primitives
	custodian  session.KeyCustodian
	codec      RecordCodec
	logger     *logger.Logger
}

func NewClientSharingService(
	serverAdapter adapter.ServerAdapter,
	primitives crypto.Primitives,
	custodian session.KeyCustodian,
	codec RecordCodec,
	log *logger.Logger,
) ClientSharingService {
	return &clientSharingService{
		adapter:    serverAdapter,
		primitives: primitives,
		custodian:  custodian,
		codec:      codec,
		logger:     log.Component("sharing"),
	}
}

func (s *clientSharingService) Share(ctx context.Context, credentialID, recipientID int64) (models.SharedCredential, error) {
	password, err := s.ownPassword(ctx, credentialID)
	if err != nil {
		return models.SharedCredential{}, err
	}

	envelope, err := s.sealFor(ctx, password, recipientID)
	if err != nil {
		return models.SharedCredential{}, err
	}

	shared, err := s.adapter.Share(ctx, models.SharedCredentialCreate{
		CredentialID:    credentialID,
		RecipientUserID: recipientID,
		SharingEnvelope: envelope,
	})
	if err != nil {
		return models.SharedCredential{}, mapAdapterError(err, nil)
	}

	s.logger.Info().Int64("credential_id", credentialID).Int64("recipient_id", recipientID).Msg("credential shared")
	return shared, nil
}

func (s *clientSharingService) Reshare(ctx context.Context, credentialID int64, recipientIDs []int64) ([]models.SharedCredential, error) {
	if len(recipientIDs) == 0 {
		users, err := s.adapter.SharedUsers(ctx, credentialID)
		if err != nil {
			return nil, mapAdapterError(err, nil)
		}
		for _, u := range users {
			recipientIDs = append(recipientIDs, u.UserID)
		}
	}
	if len(recipientIDs) == 0 {
		return nil, nil
	}

	password, err := s.ownPassword(ctx, credentialID)
	if err != nil {
		return nil, err
	}

	updated := make([]models.SharedCredential, 0, len(recipientIDs))
	for _, recipientID := range recipientIDs {
		envelope, err := s.sealFor(ctx, password, recipientID)
		if err != nil {
			s.logPartialReshare(credentialID, len(updated))
			return nil, fmt.Errorf("reshare to user %d: %w", recipientID, err)
		}
		shared, err := s.adapter.UpdateShare(ctx, credentialID, recipientID, envelope)
		if err != nil {
			s.logPartialReshare(credentialID, len(updated))
			return nil, fmt.Errorf("reshare to user %d: %w", recipientID, mapAdapterError(err, nil))
		}
		updated = append(updated, shared)
	}

	s.logger.Info().Int64("credential_id", credentialID).Int("recipients", len(updated)).Msg("credential reshared")
	return updated, nil
}

func (s *clientSharingService) logPartialReshare(credentialID int64, done int) {
	if done > 0 {
		s.logger.Warn().Int64("credential_id", credentialID).Int("recipients", done).Msg("reshare stopped partway")
	}
}

func (s *clientSharingService) DecryptReceived(shared models.SharedCredential) (models.SharedPassword, error) {
	privateKey, err := s.custodian.PrivateKey()
	if err != nil {
		return models.SharedPassword{}, err
	}
	defer memguard.WipeBytes(privateKey)

	password, err := OpenEnvelope(s.primitives, shared.SharingEnvelope, privateKey)
	if err != nil {
		s.logger.Debug().Int64("shared_id", shared.ID).Err(err).Msg("envelope not opened")
		return models.SharedPassword{}, err
	}
	s.custodian.RefreshLifetime()

	title := shared.Title
	if title == "" {
		title = shared.CredentialTitle
	}

	return models.SharedPassword{
		ID:              shared.ID,
		CredentialID:    shared.CredentialID,
		OwnerUserID:     shared.OwnerUserID,
		OwnerUsername:   shared.OwnerUsername,
		CredentialTitle: shared.CredentialTitle,
		Title:           title,
		Username:        shared.Username,
		Password:        password,
		URL:             shared.URL,
		CreatedAt:       shared.CreatedAt,
	}, nil
}

func (s *clientSharingService) ListReceived(ctx context.Context, params models.ListParams) (models.SharedCredentialList, error) {
	list, err := s.adapter.ListReceived(ctx, params)
	if err != nil {
		return models.SharedCredentialList{}, mapAdapterError(err, nil)
	}
	return list, nil
}

func (s *clientSharingService) ListOwned(ctx context.Context) ([]models.SharedCredential, error) {
	owned, err := s.adapter.ListOwned(ctx)
	if err != nil {
		return nil, mapAdapterError(err, nil)
	}
	return owned, nil
}

func (s *clientSharingService) Unshare(ctx context.Context, sharedID int64) error {
	if err := s.adapter.Unshare(ctx, sharedID); err != nil {
		return mapAdapterError(err, nil)
	}
	return nil
}

func (s *clientSharingService) RevokeRecipient(ctx context.Context, credentialID, recipientID int64) error {
	if err := s.adapter.RevokeRecipient(ctx, credentialID, recipientID); err != nil {
		return mapAdapterError(err, nil)
	}
	s.logger.Info().Int64("credential_id", credentialID).Int64("recipient_id", recipientID).Msg("recipient revoked")
	return nil
}

func (s *clientSharingService) SearchUsers(ctx context.Context, query string) ([]models.UserSearchResult, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSearchRunes {
		return []models.UserSearchResult{}, nil
	}

	users, err := s.adapter.SearchUsers(ctx, query)
	if err != nil {
		return nil, mapAdapterError(err, nil)
	}
	return users, nil
}

// ownPassword fetches and decrypts the password of one of the caller's
// credentials.
func (s *clientSharingService) ownPassword(ctx context.Context, credentialID int64) (string, error) {
	credential, err := s.adapter.GetCredential(ctx, credentialID)
	if err != nil {
		return "", mapAdapterError(err, nil)
	}

	fields, err := s.codec.DecryptRecord(models.EncryptedRecord{
		Ciphertexts: []string{credential.EncryptedData},
		IV:          credential.EncryptionIV,
	})
	if err != nil {
		return "", err
	}
	return fields[0], nil
}

func (s *clientSharingService) sealFor(ctx context.Context, password string, recipientID int64) (models.SharingEnvelope, error) {
	recipient, err := s.adapter.PublicKey(ctx, recipientID)
	if err != nil {
		return models.SharingEnvelope{}, mapAdapterError(err, ErrUserNotFound)
	}
	if recipient.PublicKey == "" {
		return models.SharingEnvelope{}, ErrRecipientHasNoKeys
	}
	return SealEnvelope(s.primitives, password, recipient.PublicKey)
}

// SealEnvelope encrypts plaintext under a fresh one-time sharing key and wraps
// that key for publicKey. The wrapped payload is the base64 text of the key.
func SealEnvelope(primitives crypto.Primitives, plaintext, publicKey string) (models.SharingEnvelope, error) {
	sharingKey, err := primitives.GenerateSymmetricKey()
	if err != nil {
		return models.SharingEnvelope{}, fmt.Errorf("generate sharing key: %w", err)
	}
	defer memguard.WipeBytes(sharingKey)

	data, err := primitives.EncryptData(plaintext, sharingKey, "")
	if err != nil {
		return models.SharingEnvelope{}, fmt.Errorf("encrypt shared data: %w", err)
	}

	encodedKey := []byte(crypto.EncodeKey(sharingKey))
	defer memguard.WipeBytes(encodedKey)

	wrapped, err := primitives.EncryptWithPublicKey(encodedKey, publicKey)
	if err != nil {
		return models.SharingEnvelope{}, fmt.Errorf("wrap sharing key: %w", err)
	}

	return models.SharingEnvelope{
		EncryptedSharingKey: wrapped,
		EncryptedSharedData: data.Ciphertext,
		SharingIV:           data.IV,
	}, nil
}

// OpenEnvelope reverses SealEnvelope with a PKCS#8 DER private key. Every
// failure is reported as ErrEnvelopeUnwrapFailed.
func OpenEnvelope(primitives crypto.Primitives, envelope models.SharingEnvelope, privateKey []byte) (string, error) {
	encodedKey, err := primitives.DecryptWithPrivateKey(envelope.EncryptedSharingKey, privateKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEnvelopeUnwrapFailed, err)
	}
	defer memguard.WipeBytes(encodedKey)

	sharingKey, err := crypto.DecodeKey(string(encodedKey))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEnvelopeUnwrapFailed, err)
	}
	defer memguard.WipeBytes(sharingKey)

	plaintext, err := primitives.DecryptData(envelope.EncryptedSharedData, envelope.SharingIV, sharingKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEnvelopeUnwrapFailed, err)
	}
	return plaintext, nil
}
