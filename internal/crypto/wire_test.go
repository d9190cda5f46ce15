// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"testing"

	"github.com/MKhiriev/go-pass-owl/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrappedKey_FormatParseRoundTrip(t *testing.T) {
	field := models.EncryptedField{Ciphertext: "Y2lwaGVydGV4dA==", IV: "AAAAAAAAAAAAAAAA"}

	wrapped := FormatWrappedKey(field)
	assert.Equal(t, "Y2lwaGVydGV4dA==:AAAAAAAAAAAAAAAA", wrapped)

	got, err := ParseWrappedKey(wrapped)
	require.NoError(t, err)
	assert.Equal(t, field, got)
}

func TestParseWrappedKey_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		wrapped string
	}{
		{name: "empty", wrapped: ""},
		{name: "no separator", wrapped: "Y2lwaGVy"},
		{name: "two separators", wrapped: "YQ==:Yg==:Yw=="},
		{name: "empty ciphertext", wrapped: ":AAAAAAAAAAAAAAAA"},
		{name: "empty iv", wrapped: "Y2lwaGVy:"},
		{name: "not base64", wrapped: "not base64!:AAAAAAAAAAAAAAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWrappedKey(tt.wrapped)
			assert.ErrorIs(t, err, ErrInvalidWrappedKey)
		})
	}
}
