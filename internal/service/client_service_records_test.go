package service

import (
	"testing"

	"github.com/MKhiriev/go-pass-owl/internal/crypto"
	"github.com/MKhiriev/go-pass-owl/internal/logger"
	"github.com/MKhiriev/go-pass-owl/internal/mock"
	"github.com/MKhiriev/go-pass-owl/internal/session"
	"github.com/MKhiriev/go-pass-owl/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRecordCodec_CompositeRecordSharesIV(t *testing.T) {
	p := newTestPrimitives()
	custodian := newKeyedCustodian(t, p)
	codec := NewRecordCodec(p, custodian, logger.Nop())

	record, err := codec.EncryptRecord("T", "C")
	require.NoError(t, err)
	require.Len(t, record.Ciphertexts, 2)
	assert.NotEqual(t, record.Ciphertexts[0], record.Ciphertexts[1])

	// both ciphertexts open with the single record IV
	key, err := custodian.Key()
	require.NoError(t, err)
	title, err := p.DecryptData(record.Ciphertexts[0], record.IV, key)
	require.NoError(t, err)
	content, err := p.DecryptData(record.Ciphertexts[1], record.IV, key)
	require.NoError(t, err)
	assert.Equal(t, "T", title)
	assert.Equal(t, "C", content)

	fields, err := codec.DecryptRecord(record)
	require.NoError(t, err)
	assert.Equal(t, []string{"T", "C"}, fields)
}

func TestRecordCodec_FreshIVPerRecord(t *testing.T) {
	p := newTestPrimitives()
	codec := NewRecordCodec(p, newKeyedCustodian(t, p), logger.Nop())

	a, err := codec.EncryptRecord("same")
	require.NoError(t, err)
	b, err := codec.EncryptRecord("same")
	require.NoError(t, err)

	assert.NotEqual(t, a.IV, b.IV)
	assert.NotEqual(t, a.Ciphertexts[0], b.Ciphertexts[0])
}

func TestRecordCodec_DecryptRecord_OneBadFieldFailsWholeRecord(t *testing.T) {
	p := newTestPrimitives()
	codec := NewRecordCodec(p, newKeyedCustodian(t, p), logger.Nop())

	record, err := codec.EncryptRecord("title", "content")
	require.NoError(t, err)

	other, err := codec.EncryptRecord("foreign")
	require.NoError(t, err)
	record.Ciphertexts[1] = other.Ciphertexts[0]

	fields, err := codec.DecryptRecord(record)
	require.ErrorIs(t, err, crypto.ErrDecryptionFailed)
	assert.Nil(t, fields)
}

func TestRecordCodec_KeyUnavailable(t *testing.T) {
	p := newTestPrimitives()
	empty := session.NewCustodian(p, nil, nil, logger.Nop())
	codec := NewRecordCodec(p, empty, logger.Nop())

	_, err := codec.EncryptRecord("x")
	assert.ErrorIs(t, err, session.ErrKeyUnavailable)
	assert.ErrorIs(t, err, session.ErrEncryptionKeyUnavailable)

	_, err = codec.DecryptRecord(models.EncryptedRecord{Ciphertexts: []string{"AAAA"}, IV: "AAAAAAAAAAAAAAAA"})
	assert.ErrorIs(t, err, session.ErrKeyUnavailable)
}

func TestRecordCodec_EmptyRecord(t *testing.T) {
	p := newTestPrimitives()
	codec := NewRecordCodec(p, newKeyedCustodian(t, p), logger.Nop())

	_, err := codec.EncryptRecord()
	assert.ErrorIs(t, err, ErrEmptyRecord)

	_, err = codec.DecryptRecord(models.EncryptedRecord{})
	assert.ErrorIs(t, err, ErrEmptyRecord)
}

func TestRecordCodec_RefreshesLifetimeOnSuccessOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := newTestPrimitives()
	custodian := mock.NewMockKeyCustodian(ctrl)
	codec := NewRecordCodec(p, custodian, logger.Nop())

	key, err := p.GenerateSymmetricKey()
	require.NoError(t, err)
	keyCopy := func() ([]byte, error) { return append([]byte(nil), key...), nil }

	custodian.EXPECT().Key().DoAndReturn(keyCopy).Times(3)
	custodian.EXPECT().RefreshLifetime().Times(2)

	record, err := codec.EncryptRecord("a", "b")
	require.NoError(t, err)
	_, err = codec.DecryptRecord(record)
	require.NoError(t, err)

	record.IV = "AAAAAAAAAAAAAAAA"
	_, err = codec.DecryptRecord(record)
	require.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}
