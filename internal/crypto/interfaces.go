package crypto

import "github.com/MKhiriev/go-pass-owl/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/primitives_mock.go -package=mock

// Primitives is the stateless client-side cryptography of the zero-knowledge
// scheme. It knows nothing about the network, storage or sessions; it only
// turns inputs into keys and ciphertexts.
//
// Scheme:
//
//	loginHash = DeriveKey(masterPassword, loginSalt)        (sent to the server)
//	key       = DeriveKey(masterPassword, encryptionSalt)   (never leaves memory)
//	field     = EncryptData(plaintext, key, iv)             (AES-256-GCM)
//	wrapped   = EncryptWithPublicKey(sharingKey, recipient) (RSA-OAEP-2048/SHA-256)
type Primitives interface {
	// GenerateSalt returns 32 random bytes, standard base64.
	GenerateSalt() (string, error)

	// GenerateIV returns 12 random bytes, standard base64.
	GenerateIV() (string, error)

	// DeriveKey runs PBKDF2-HMAC-SHA256 over password and salt and returns a
	// 256-bit AES key. It is deterministic: equal inputs give equal keys, so
	// login and encryption derivations must use different salts. A
	// non-positive iterations value selects the configured default.
	DeriveKey(password, salt string, iterations int) ([]byte, error)

	// GenerateSymmetricKey returns a fresh random 256-bit AES key.
	GenerateSymmetricKey() ([]byte, error)

	// EncryptData seals plaintext with AES-256-GCM. An empty iv generates a
	// fresh one; a non-empty iv is used verbatim so several fields of one
	// record can share it.
	EncryptData(plaintext string, key []byte, iv string) (models.EncryptedField, error)

	// DecryptData opens a ciphertext produced by EncryptData. Any
	// authentication failure yields ErrDecryptionFailed and no plaintext.
	DecryptData(ciphertext, iv string, key []byte) (string, error)

	// GenerateAsymmetricKeyPair creates an RSA-OAEP 2048-bit key pair.
	GenerateAsymmetricKeyPair() (models.KeyPair, error)

	// EncryptWithPublicKey wraps a short payload (a sharing key) for the owner
	// of the base64 SPKI publicKey.
	EncryptWithPublicKey(data []byte, publicKey string) (string, error)

	// DecryptWithPrivateKey unwraps a payload produced by EncryptWithPublicKey
	// using a PKCS#8 DER private key.
	DecryptWithPrivateKey(ciphertext string, privateKey []byte) ([]byte, error)
}
