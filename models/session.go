package models

// SessionMetadata is the non-secret part of a session that survives process
// restarts: who is logged in, the bearer credential and the encryption salt.
type SessionMetadata struct {
	Username       string
	Token          string
	EncryptionSalt string
}
