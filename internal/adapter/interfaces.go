// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to the go-pass-owl backend.
//
// The backend is zero-knowledge: everything crossing this boundary is either
// ciphertext or non-secret metadata. [ServerAdapter] decouples the service
// layer from the protocol; the package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-owl/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// CredentialSetter receives the bearer credential after a login exchange.
// The auth service depends on this narrow interface only.
type CredentialSetter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. An empty token drops it.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string
}

// AuthAdapter covers account endpoints.
type AuthAdapter interface {
	// Salts fetches the login and encryption salts of username.
	Salts(ctx context.Context, username string) (models.Salts, error)

	// Register creates an account. The request carries only the login hash
	// and the two salts.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login exchanges the login hash for a bearer token and stores it via
	// SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// CurrentUser returns the authenticated user's record, including the
	// encrypted private key.
	CurrentUser(ctx context.Context) (models.User, error)

	// UploadKeys stores the public key and the encrypted private key.
	UploadKeys(ctx context.Context, keys models.UserKeys) error

	// UserStats returns the record counts of the caller's vault.
	UserStats(ctx context.Context) (models.UserStats, error)
}

// VaultAdapter covers credential, secure note and category endpoints.
type VaultAdapter interface {
	CreateCredential(ctx context.Context, req models.CredentialCreate) (models.Credential, error)
	GetCredential(ctx context.Context, id int64) (models.Credential, error)
	ListCredentials(ctx context.Context, params models.ListParams) (models.CredentialList, error)
	UpdateCredential(ctx context.Context, id int64, req models.CredentialUpdate) (models.Credential, error)
	DeleteCredential(ctx context.Context, id int64) error

	CreateNote(ctx context.Context, req models.SecureNoteWrite) (models.SecureNote, error)
	GetNote(ctx context.Context, id int64) (models.SecureNote, error)
	ListNotes(ctx context.Context, params models.ListParams) (models.SecureNoteList, error)
	UpdateNote(ctx context.Context, id int64, req models.SecureNoteWrite) (models.SecureNote, error)
	DeleteNote(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, req models.CategoryWrite) (models.Category, error)
	UpdateCategory(ctx context.Context, id int64, req models.CategoryWrite) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// SharingAdapter covers envelope storage and the public-key directory.
type SharingAdapter interface {
	Share(ctx context.Context, req models.SharedCredentialCreate) (models.SharedCredential, error)
	ListReceived(ctx context.Context, params models.ListParams) (models.SharedCredentialList, error)
	ListOwned(ctx context.Context) ([]models.SharedCredential, error)
	Unshare(ctx context.Context, sharedID int64) error

	// SharedUsers lists the recipients of one of the caller's credentials.
	SharedUsers(ctx context.Context, credentialID int64) ([]models.SharedUser, error)

	// UpdateShare replaces the envelope stored for one recipient.
	UpdateShare(ctx context.Context, credentialID, recipientID int64, envelope models.SharingEnvelope) (models.SharedCredential, error)

	// RevokeRecipient drops the envelope of one recipient of a credential.
	RevokeRecipient(ctx context.Context, credentialID, recipientID int64) error

	PublicKey(ctx context.Context, userID int64) (models.UserPublicKey, error)
	SearchUsers(ctx context.Context, query string) ([]models.UserSearchResult, error)
}

// ServerAdapter defines transport-agnostic communication with the backend.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	CredentialSetter
	AuthAdapter
	VaultAdapter
	SharingAdapter
}
