// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-owl/models"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length of a raw salt in bytes.
	SaltSize = 32
	// IVSize is the AES-GCM nonce length in bytes.
	IVSize = 12
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// RSAKeyBits is the modulus length of generated key pairs.
	RSAKeyBits = 2048
	// DefaultIterations is the PBKDF2 iteration count used when none is given.
	DefaultIterations = 100_000
)

// primitives is the private implementation of [Primitives].
type primitives struct {
	iterations int
	random     io.Reader
}

// Option tunes a [Primitives] instance.
type Option func(*primitives)

// WithIterations overrides the default PBKDF2 iteration count.
func WithIterations(n int) Option {
	return func(p *primitives) {
		if n > 0 {
			p.iterations = n
		}
	}
}

// WithRandom replaces the CSPRNG. Only tests should need it.
func WithRandom(r io.Reader) Option {
	return func(p *primitives) {
		if r != nil {
			p.random = r
		}
	}
}

// NewPrimitives constructs [Primitives] backed by crypto/rand, PBKDF2 from
// golang.org/x/crypto and the standard AES-GCM and RSA-OAEP implementations.
func NewPrimitives(opts ...Option) Primitives {
	p := &primitives{
		iterations: DefaultIterations,
		random:     rand.Reader,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GenerateSalt implements [Primitives].
func (p *primitives) GenerateSalt() (string, error) {
	salt, err := p.randomBytes(SaltSize)
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

// GenerateIV implements [Primitives].
func (p *primitives) GenerateIV() (string, error) {
	iv, err := p.randomBytes(IVSize)
	if err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}
	return base64.StdEncoding.EncodeToString(iv), nil
}

// DeriveKey implements [Primitives]. The salt enters PBKDF2 as the UTF-8
// bytes of its base64 text, which keeps derived keys identical to the ones
// produced by the browser client for the same account.
func (p *primitives) DeriveKey(password, salt string, iterations int) ([]byte, error) {
	if salt == "" {
		return nil, fmt.Errorf("%w: empty salt", ErrDerivationFailed)
	}
	if iterations <= 0 {
		iterations = p.iterations
	}

	return pbkdf2.Key([]byte(password), []byte(salt), iterations, KeySize, sha256.New), nil
}

// GenerateSymmetricKey implements [Primitives].
func (p *primitives) GenerateSymmetricKey() ([]byte, error) {
	key, err := p.randomBytes(KeySize)
	if err != nil {
		return nil, fmt.Errorf("generate symmetric key: %w", err)
	}
	return key, nil
}

// EncryptData implements [Primitives]. The returned ciphertext carries the
// 16-byte GCM tag appended, the IV travels separately.
func (p *primitives) EncryptData(plaintext string, key []byte, iv string) (models.EncryptedField, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedField{}, err
	}

	var nonce []byte
	if iv == "" {
		nonce, err = p.randomBytes(IVSize)
		if err != nil {
			return models.EncryptedField{}, fmt.Errorf("generate iv: %w", err)
		}
		iv = base64.StdEncoding.EncodeToString(nonce)
	} else {
		nonce, err = decodeIV(iv)
		if err != nil {
			return models.EncryptedField{}, err
		}
	}

	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	return models.EncryptedField{
		Ciphertext: base64.StdEncoding.EncodeToString(sealed),
		IV:         iv,
	}, nil
}

// DecryptData implements [Primitives].
func (p *primitives) DecryptData(ciphertext, iv string, key []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	nonce, err := decodeIV(iv)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	sealed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode ciphertext: %v", ErrDecryptionFailed, err)
	}

	plain, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	return string(plain), nil
}

// GenerateAsymmetricKeyPair implements [Primitives].
func (p *primitives) GenerateAsymmetricKeyPair() (models.KeyPair, error) {
	priv, err := rsa.GenerateKey(p.random, RSAKeyBits)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("generate rsa key: %w", err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("marshal public key: %w", err)
	}
	privDER, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("marshal private key: %w", err)
	}

	return models.KeyPair{
		PublicKey:  base64.StdEncoding.EncodeToString(pubDER),
		PrivateKey: base64.StdEncoding.EncodeToString(privDER),
	}, nil
}

// EncryptWithPublicKey implements [Primitives].
func (p *primitives) EncryptWithPublicKey(data []byte, publicKey string) (string, error) {
	pub, err := ParsePublicKey(publicKey)
	if err != nil {
		return "", err
	}

	wrapped, err := rsa.EncryptOAEP(sha256.New(), p.random, pub, data, nil)
	if err != nil {
		return "", fmt.Errorf("rsa-oaep encrypt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(wrapped), nil
}

// DecryptWithPrivateKey implements [Primitives].
func (p *primitives) DecryptWithPrivateKey(ciphertext string, privateKey []byte) ([]byte, error) {
	priv, err := ParsePrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	wrapped, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: decode ciphertext: %v", ErrDecryptionFailed, err)
	}

	data, err := rsa.DecryptOAEP(sha256.New(), nil, priv, wrapped, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return data, nil
}

// ParsePublicKey decodes a base64 SPKI RSA public key.
func ParsePublicKey(publicKey string) (*rsa.PublicKey, error) {
	der, err := base64.StdEncoding.DecodeString(publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidPublicKey)
	}
	return pub, nil
}

// ParsePrivateKey decodes a PKCS#8 DER RSA private key.
func ParsePrivateKey(der []byte) (*rsa.PrivateKey, error) {
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}

	priv, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidPrivateKey)
	}
	return priv, nil
}

// EncodeKey returns the standard base64 form of raw key material.
func EncodeKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// DecodeKey parses the standard base64 form of a 256-bit key.
func DecodeKey(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKey, len(key), KeySize)
	}
	return key, nil
}

// DecodePrivateKey parses the base64 PKCS#8 form of a private key and returns
// the DER bytes.
func DecodePrivateKey(encoded string) ([]byte, error) {
	der, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	if _, err = ParsePrivateKey(der); err != nil {
		return nil, err
	}
	return der, nil
}

func (p *primitives) randomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(p.random, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKey, len(key), KeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

func decodeIV(iv string) ([]byte, error) {
	nonce, err := base64.StdEncoding.DecodeString(iv)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIV, err)
	}
	if len(nonce) != IVSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidIV, len(nonce), IVSize)
	}
	return nonce, nil
}
