// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-owl/internal/crypto"
	"github.com/MKhiriev/go-pass-owl/internal/logger"
	"github.com/MKhiriev/go-pass-owl/internal/session"
	"github.com/MKhiriev/go-pass-owl/models"
	"github.com/awnumar/memguard"
)

type recordCodec struct {
	primitives crypto.Primitives
	custodian  session.KeyCustodian
	logger     *logger.Logger
}

// NewRecordCodec creates a RecordCodec that borrows the symmetric key from
// custodian for each call.
func NewRecordCodec(primitives crypto.Primitives, custodian session.KeyCustodian, log *logger.Logger) RecordCodec {
	return &recordCodec{primitives: primitives, custodian: custodian, logger: log.Component("record-codec")}
}

func (r *recordCodec) EncryptRecord(fields ...string) (models.EncryptedRecord, error) {
	if len(fields) == 0 {
		return models.EncryptedRecord{}, ErrEmptyRecord
	}

	key, err := r.custodian.Key()
	if err != nil {
		return models.EncryptedRecord{}, err
	}
	defer memguard.WipeBytes(key)

	first, err := r.primitives.EncryptData(fields[0], key, "")
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("encrypt field 0: %w", err)
	}

	record := models.EncryptedRecord{
		Ciphertexts: make([]string, 0, len(fields)),
		IV:          first.IV,
	}
	record.Ciphertexts = append(record.Ciphertexts, first.Ciphertext)

	for i, field := range fields[1:] {
		enc, err := r.primitives.EncryptData(field, key, first.IV)
		if err != nil {
			return models.EncryptedRecord{}, fmt.Errorf("encrypt field %d: %w", i+1, err)
		}
		record.Ciphertexts = append(record.Ciphertexts, enc.Ciphertext)
	}

	r.custodian.RefreshLifetime()
	return record, nil
}

func (r *recordCodec) DecryptRecord(record models.EncryptedRecord) ([]string, error) {
	if len(record.Ciphertexts) == 0 {
		return nil, ErrEmptyRecord
	}

	key, err := r.custodian.Key()
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(key)

	fields := make([]string, len(record.Ciphertexts))
	for i, ct := range record.Ciphertexts {
		plain, err := r.primitives.DecryptData(ct, record.IV, key)
		if err != nil {
			r.logger.Debug().Int("field", i).Err(err).Msg("record decryption failed")
			return nil, err
		}
		fields[i] = plain
	}

	r.custodian.RefreshLifetime()
	return fields, nil
}
