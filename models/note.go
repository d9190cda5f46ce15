package models

import "time"

// SecureNote is a stored note. Title and content are both encrypted and share
// EncryptionIV.
type SecureNote struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	EncryptedTitle   string    `json:"encrypted_title"`
	EncryptedContent string    `json:"encrypted_content"`
	EncryptionIV     string    `json:"encryption_iv"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SecureNoteWrite is the body of POST /secure-notes/ and PUT /secure-notes/{id}.
type SecureNoteWrite struct {
	EncryptedTitle   string `json:"encrypted_title"`
	EncryptedContent string `json:"encrypted_content"`
	EncryptionIV     string `json:"encryption_iv"`
}

// NoteInput is a plaintext note.
type NoteInput struct {
	Title   string
	Content string
}

// DecryptedNote is a note with title and content recovered.
type DecryptedNote struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SecureNoteList is the paginated response of GET /secure-notes/.
type SecureNoteList struct {
	Items []SecureNote `json:"items"`
	Total int          `json:"total"`
}
