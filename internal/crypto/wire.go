package crypto

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-owl/models"
)

// ErrInvalidWrappedKey is returned when an encrypted private key is not in
// the "<base64 ciphertext>:<base64 iv>" form.
var ErrInvalidWrappedKey = errors.New("invalid encrypted private key format")

const wrappedKeySeparator = ":"

// FormatWrappedKey renders an encrypted private key for storage on the user
// record. The base64 alphabet has no colon, so the separator is unambiguous.
func FormatWrappedKey(field models.EncryptedField) string {
	return field.Ciphertext + wrappedKeySeparator + field.IV
}

// ParseWrappedKey splits a stored encrypted private key into its ciphertext
// and IV. Exactly one separator and two non-empty base64 halves are required.
func ParseWrappedKey(wrapped string) (models.EncryptedField, error) {
	parts := strings.Split(wrapped, wrappedKeySeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return models.EncryptedField{}, ErrInvalidWrappedKey
	}

	for _, part := range parts {
		if _, err := base64.StdEncoding.DecodeString(part); err != nil {
			return models.EncryptedField{}, fmt.Errorf("%w: %v", ErrInvalidWrappedKey, err)
		}
	}

	return models.EncryptedField{Ciphertext: parts[0], IV: parts[1]}, nil
}
