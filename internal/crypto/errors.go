package crypto

import "errors"

var (
	// ErrDecryptionFailed is returned when an authenticated decryption does
	// not verify: wrong key, tampered ciphertext or mismatched IV. Retrying
	// with the same inputs cannot succeed.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrDerivationFailed is returned when a key cannot be derived, e.g. the
	// salt is missing.
	ErrDerivationFailed = errors.New("key derivation failed")

	// ErrInvalidKey is returned when a symmetric key is not 32 bytes long.
	ErrInvalidKey = errors.New("invalid key size")

	// ErrInvalidIV is returned when an IV does not decode to 12 bytes.
	ErrInvalidIV = errors.New("invalid iv")

	// ErrInvalidPublicKey is returned when a public key is not a base64 SPKI
	// encoded RSA key.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidPrivateKey is returned when a private key is not a PKCS#8
	// encoded RSA key.
	ErrInvalidPrivateKey = errors.New("invalid private key")
)
