// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the server-side account record as returned by GET /users/me.
// It never carries the master password or any key derived from it.
type User struct {
	// ID is the backend identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// PublicKey is the base64 SPKI encoding of the user's RSA-OAEP public key.
	// Empty until the user generates a key pair.
	PublicKey string `json:"public_key,omitempty"`

	// EncryptedPrivateKey is the wrapped private key in the
	// "<base64 ciphertext>:<base64 iv>" wire format.
	EncryptedPrivateKey string `json:"encrypted_private_key,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasKeys reports whether the user record carries a complete key pair.
func (u User) HasKeys() bool {
	return u.PublicKey != "" && u.EncryptedPrivateKey != ""
}

// Salts is the pair of non-secret per-user salts returned by GET /auth/salts.
// The two salts serve different purposes and must never be swapped.
type Salts struct {
	// LoginSalt feeds the login-hash derivation.
	LoginSalt string `json:"login_salt"`

	// EncryptionSalt feeds the encryption-key derivation.
	EncryptionSalt string `json:"encryption_salt"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username          string `json:"username"`
	LoginPasswordHash string `json:"login_password_hash"`
	LoginSalt         string `json:"login_salt"`
	EncryptionSalt    string `json:"encryption_salt"`
}

// LoginRequest is the body of POST /auth/login. LoginPasswordHash is derived
// from the master password and the login salt; the password itself never
// leaves the client.
type LoginRequest struct {
	Username          string `json:"username"`
	LoginPasswordHash string `json:"login_password_hash"`
}

// UserKeys is the body of PUT /users/keys.
type UserKeys struct {
	PublicKey           string `json:"public_key"`
	EncryptedPrivateKey string `json:"encrypted_private_key"`
}

// UserPublicKey is a public-key directory entry.
type UserPublicKey struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	PublicKey string `json:"public_key"`
}

// UserSearchResult is one hit of the recipient search endpoint.
type UserSearchResult struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// UserStats is the vault summary returned by GET /users/me/stats.
type UserStats struct {
	OwnCredentials    int `json:"own_credentials_count"`
	SharedCredentials int `json:"shared_credentials_count"`
	SecureNotes       int `json:"secure_notes_count"`
	Categories        int `json:"categories_count"`
}
