package service

import (
	"context"

	"github.com/MKhiriev/go-pass-owl/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// RecordCodec encrypts and decrypts the secret fields of stored records
// under the session's symmetric key. Every successful call refreshes the
// custodian's lifetime; a missing key surfaces session.ErrKeyUnavailable.
type RecordCodec interface {
	// EncryptRecord encrypts fields in order. The first field gets a fresh
	// IV which every following field reuses.
	EncryptRecord(fields ...string) (models.EncryptedRecord, error)

	// DecryptRecord decrypts every ciphertext of record with its IV. One
	// failing field fails the whole record and no plaintext is returned.
	DecryptRecord(record models.EncryptedRecord) ([]string, error)
}

// ClientAuthService defines the client-side contract for registration and
// authentication. Only a login hash derived from the master password ever
// reaches the server.
type ClientAuthService interface {
	// Register creates an account with two fresh, distinct salts.
	Register(ctx context.Context, username, masterPassword string) (models.User, error)

	// Login runs the login exchange, persists the session metadata and
	// derives the session keys.
	Login(ctx context.Context, username, masterPassword string) error

	// Logout stops monitoring and wipes the session: keys, stored metadata
	// and the bearer credential.
	Logout(ctx context.Context) error

	// Reauthenticate proves possession of the master password for the stored
	// username and re-derives the session keys. A wrong password returns
	// ErrWrongPassword and leaves the custodian empty.
	Reauthenticate(ctx context.Context, masterPassword string) error

	// Restore loads the stored session metadata into the transport. It
	// reports whether a session was found. Keys are not restored.
	Restore(ctx context.Context) (bool, error)

	IsLoggedIn(ctx context.Context) bool

	// Stats returns the record counts of the caller's vault.
	Stats(ctx context.Context) (models.UserStats, error)
}

// ClientKeyService manages the user's RSA key pair.
type ClientKeyService interface {
	// GenerateAndStoreKeys creates a key pair, uploads the public key and
	// the wrapped private key, and puts the private key under custody.
	// It returns the base64 SPKI public key.
	GenerateAndStoreKeys(ctx context.Context, masterPassword string) (string, error)

	HasKeys(ctx context.Context) (bool, error)
}

// ClientCredentialService manages credentials. Title, username and URL are
// stored in plaintext; the password only as ciphertext.
type ClientCredentialService interface {
	Create(ctx context.Context, input models.CredentialInput) (models.DecryptedCredential, error)
	Get(ctx context.Context, id int64) (models.DecryptedCredential, error)

	// List returns stored credentials without decrypting passwords.
	List(ctx context.Context, params models.ListParams) (models.CredentialList, error)

	// Update applies changes. A new password is encrypted under a fresh IV.
	Update(ctx context.Context, id int64, changes models.CredentialChanges) (models.DecryptedCredential, error)
	Delete(ctx context.Context, id int64) error
}

// ClientNoteService manages secure notes. Title and content are encrypted
// together under one IV.
type ClientNoteService interface {
	Create(ctx context.Context, input models.NoteInput) (models.DecryptedNote, error)
	Get(ctx context.Context, id int64) (models.DecryptedNote, error)

	// List decrypts every note of the page. Any undecryptable note fails
	// the whole call.
	List(ctx context.Context, params models.ListParams) ([]models.DecryptedNote, int, error)
	Update(ctx context.Context, id int64, input models.NoteInput) (models.DecryptedNote, error)
	Delete(ctx context.Context, id int64) error
}

// ClientCategoryService manages the plaintext labels credentials are filed
// under. Colors are "#RRGGBB".
type ClientCategoryService interface {
	List(ctx context.Context) ([]models.Category, error)

	// Create stores a category. An empty color selects DefaultCategoryColor.
	Create(ctx context.Context, name, color string) (models.Category, error)

	// Update changes the non-nil fields of changes.
	Update(ctx context.Context, id int64, changes models.CategoryWrite) (models.Category, error)
	Delete(ctx context.Context, id int64) error
}

// ClientSharingService implements envelope sharing of credential passwords.
type ClientSharingService interface {
	// Share seals the password of credentialID for recipientID and stores
	// the envelope.
	Share(ctx context.Context, credentialID, recipientID int64) (models.SharedCredential, error)

	// Reshare builds a fresh envelope for every recipient after the owner
	// edited the credential. An empty recipientIDs re-seals for everyone the
	// credential is currently shared with. On error no results are returned,
	// although recipients handled before the failure keep their new envelope.
	Reshare(ctx context.Context, credentialID int64, recipientIDs []int64) ([]models.SharedCredential, error)

	// DecryptReceived opens an envelope with the custodied private key.
	DecryptReceived(shared models.SharedCredential) (models.SharedPassword, error)

	ListReceived(ctx context.Context, params models.ListParams) (models.SharedCredentialList, error)
	ListOwned(ctx context.Context) ([]models.SharedCredential, error)
	Unshare(ctx context.Context, sharedID int64) error

	// RevokeRecipient withdraws one recipient's envelope of credentialID.
	RevokeRecipient(ctx context.Context, credentialID, recipientID int64) error

	// SearchUsers finds possible recipients. Queries shorter than two runes
	// return nothing without contacting the server.
	SearchUsers(ctx context.Context, query string) ([]models.UserSearchResult, error)
}

// ReauthListener receives the monitor's external signals.
type ReauthListener interface {
	// ReauthRequired asks for master-password re-entry.
	ReauthRequired()

	// ReauthCleared withdraws a previous ReauthRequired.
	ReauthCleared()

	// LoggedOut reports a forced logout.
	LoggedOut()
}
