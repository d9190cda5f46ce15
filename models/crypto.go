// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptedField is the output of one AES-GCM encryption. Both values are
// standard base64; IV always decodes to exactly 12 bytes.
type EncryptedField struct {
	Ciphertext string `json:"ciphertext"`
	IV         string `json:"iv"`
}

// EncryptedRecord is a group of fields encrypted together under one key and
// one IV. Ciphertexts keep the order in which the plaintext fields were
// supplied.
type EncryptedRecord struct {
	Ciphertexts []string `json:"ciphertexts"`
	IV          string   `json:"iv"`
}

// KeyPair holds an RSA-OAEP key pair as base64 strings: PublicKey is SPKI
// (PKIX) DER, PrivateKey is PKCS#8 DER.
type KeyPair struct {
	PublicKey  string
	PrivateKey string
}
