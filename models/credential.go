// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Category is a plaintext label attached to credentials.
type Category struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"user_id,omitempty"`
	Name     string  `json:"name"`
	ColorHex *string `json:"color_hex,omitempty"`
}

// CategoryWrite is the body of POST /categories/ and PUT /categories/{id}.
// On update a nil field is left untouched.
type CategoryWrite struct {
	Name     *string `json:"name,omitempty"`
	ColorHex *string `json:"color_hex,omitempty"`
}

// Credential is a stored login as the backend returns it. Title, Username and
// URL travel in plaintext; only the password is encrypted, as EncryptedData
// with EncryptionIV.
type Credential struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
	Title         string     `json:"title"`
	Username      string     `json:"username"`
	URL           *string    `json:"url,omitempty"`
	EncryptedData string     `json:"encrypted_data"`
	EncryptionIV  string     `json:"encryption_iv"`
	Categories    []Category `json:"categories,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// CredentialCreate is the body of POST /credentials/.
type CredentialCreate struct {
	Title         string  `json:"title"`
	Username      string  `json:"username"`
	URL           *string `json:"url,omitempty"`
	EncryptedData string  `json:"encrypted_data"`
	EncryptionIV  string  `json:"encryption_iv"`
	CategoryIDs   []int64 `json:"category_ids"`
}

// CredentialUpdate is the body of PUT /credentials/{id}. Nil fields are left
// untouched by the backend. EncryptedData and EncryptionIV are always sent
// together.
type CredentialUpdate struct {
	Title         *string `json:"title,omitempty"`
	Username      *string `json:"username,omitempty"`
	URL           *string `json:"url,omitempty"`
	EncryptedData *string `json:"encrypted_data,omitempty"`
	EncryptionIV  *string `json:"encryption_iv,omitempty"`
	CategoryIDs   []int64 `json:"category_ids,omitempty"`
}

// CredentialInput is what a caller supplies to create a credential.
type CredentialInput struct {
	Title       string
	Username    string
	Password    string
	URL         *string
	CategoryIDs []int64
}

// CredentialChanges is what a caller supplies to edit a credential. A nil
// Password keeps the stored ciphertext.
type CredentialChanges struct {
	Title       *string
	Username    *string
	Password    *string
	URL         *string
	CategoryIDs []int64
}

// DecryptedCredential is a credential with its password recovered.
type DecryptedCredential struct {
	ID         int64
	Title      string
	Username   string
	Password   string
	URL        *string
	Categories []Category
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ListParams carries pagination for list endpoints.
type ListParams struct {
	Skip  int
	Limit int
}

// CredentialList is the paginated response of GET /credentials/.
type CredentialList struct {
	Items []Credential `json:"items"`
	Total int          `json:"total"`
}
