// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SharingEnvelope is the hybrid-encrypted payload produced for one recipient.
//
//	EncryptedSharingKey = RSA-OAEP(recipient public key, sharing key)
//	EncryptedSharedData = AES-GCM(sharing key, SharingIV, password)
type SharingEnvelope struct {
	EncryptedSharingKey string `json:"encrypted_sharing_key"`
	EncryptedSharedData string `json:"encrypted_shared_data"`
	SharingIV           string `json:"sharing_iv"`
}

// SharedCredentialCreate is the body of POST /api/sharing/share.
type SharedCredentialCreate struct {
	CredentialID    int64 `json:"credential_id"`
	RecipientUserID int64 `json:"recipient_user_id"`
	SharingEnvelope
}

// SharedCredential is a stored envelope as the backend returns it, with the
// plaintext metadata the backend attaches outside the encryption boundary.
type SharedCredential struct {
	ID              int64     `json:"id"`
	CredentialID    int64     `json:"credential_id"`
	OwnerUserID     int64     `json:"owner_user_id"`
	RecipientUserID int64     `json:"recipient_user_id"`
	OwnerUsername   string    `json:"owner_username"`
	CredentialTitle string    `json:"credential_title"`
	Title           string    `json:"title,omitempty"`
	Username        string    `json:"username,omitempty"`
	URL             *string   `json:"url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	SharingEnvelope
}

// SharedCredentialList is the paginated response of GET /api/sharing/received.
type SharedCredentialList struct {
	Items []SharedCredential `json:"items"`
	Total int                `json:"total"`
}

// SharedPassword is a received credential after the envelope was opened.
type SharedPassword struct {
	ID              int64
	CredentialID    int64
	OwnerUserID     int64
	OwnerUsername   string
	CredentialTitle string
	Title           string
	Username        string
	Password        string
	URL             *string
	CreatedAt       time.Time
}

// SharedUser is one recipient a credential is currently shared with.
type SharedUser struct {
	UserID   int64     `json:"user_id"`
	Username string    `json:"username"`
	SharedAt time.Time `json:"shared_at"`
}
