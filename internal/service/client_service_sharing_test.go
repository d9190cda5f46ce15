// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-pass-owl/internal/adapter"
	"github.com/MKhiriev/go-pass-owl/internal/crypto"
	"github.com/MKhiriev/go-pass-owl/internal/logger"
	"github.com/MKhiriev/go-pass-owl/internal/mock"
	"github.com/MKhiriev/go-pass-owl/internal/session"
	"github.com/MKhiriev/go-pass-owl/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recipient struct {
	id   int64
	pair models.KeyPair
	der  []byte
}

func newRecipient(t *testing.T, p crypto.Primitives, id int64) recipient {
	t.Helper()
	pair, err := p.GenerateAsymmetricKeyPair()
	require.NoError(t, err)
	der, err := crypto.DecodePrivateKey(pair.PrivateKey)
	require.NoError(t, err)
	return recipient{id: id, pair: pair, der: der}
}

// ── envelope ─────────────────────────────────────────────────────────────────

func TestEnvelope_RoundTrip(t *testing.T) {
	p := newTestPrimitives()
	bob := newRecipient(t, p, 2)

	envelope, err := SealEnvelope(p, "secret123", bob.pair.PublicKey)
	require.NoError(t, err)
	assert.NotEmpty(t, envelope.EncryptedSharingKey)
	assert.NotEmpty(t, envelope.EncryptedSharedData)
	assert.NotEmpty(t, envelope.SharingIV)

	got, err := OpenEnvelope(p, envelope, bob.der)
	require.NoError(t, err)
	assert.Equal(t, "secret123", got)
}

func TestEnvelope_WrongRecipientFails(t *testing.T) {
	p := newTestPrimitives()
	bob := newRecipient(t, p, 2)
	eve := newRecipient(t, p, 3)

	envelope, err := SealEnvelope(p, "secret123", bob.pair.PublicKey)
	require.NoError(t, err)

	got, err := OpenEnvelope(p, envelope, eve.der)
	require.ErrorIs(t, err, ErrEnvelopeUnwrapFailed)
	assert.Empty(t, got)
}

func TestEnvelope_TamperedDataFails(t *testing.T) {
	p := newTestPrimitives()
	bob := newRecipient(t, p, 2)

	envelope, err := SealEnvelope(p, "secret123", bob.pair.PublicKey)
	require.NoError(t, err)
	other, err := SealEnvelope(p, "secret124", bob.pair.PublicKey)
	require.NoError(t, err)

	envelope.EncryptedSharedData = other.EncryptedSharedData
	_, err = OpenEnvelope(p, envelope, bob.der)
	require.ErrorIs(t, err, ErrEnvelopeUnwrapFailed)
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}

func TestEnvelope_FreshSharingKeyEachTime(t *testing.T) {
	p := newTestPrimitives()
	bob := newRecipient(t, p, 2)

	a, err := SealEnvelope(p, "secret123", bob.pair.PublicKey)
	require.NoError(t, err)
	b, err := SealEnvelope(p, "secret123", bob.pair.PublicKey)
	require.NoError(t, err)

	assert.NotEqual(t, a.EncryptedSharingKey, b.EncryptedSharingKey)
	assert.NotEqual(t, a.EncryptedSharedData, b.EncryptedSharedData)
}

// ── sharing service ──────────────────────────────────────────────────────────

type sharingFixture struct {
	svc        ClientSharingService
	adapter    *mock.MockServerAdapter
	owner      *session.Custodian
	codec      RecordCodec
	p          crypto.Primitives
	credential models.Credential
}

func newSharingFixture(t *testing.T, password string) sharingFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	p := newTestPrimitives()
	owner := newKeyedCustodian(t, p)
	codec := NewRecordCodec(p, owner, logger.Nop())
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	record, err := codec.EncryptRecord(password)
	require.NoError(t, err)

	return sharingFixture{
		svc:     NewClientSharingService(serverAdapter, p, owner, codec, logger.Nop()),
		adapter: serverAdapter,
		owner:   owner,
		codec:   codec,
		p:       p,
		credential: models.Credential{
			ID:            10,
			Title:         "mail",
			Username:      "alice",
			EncryptedData: record.Ciphertexts[0],
			EncryptionIV:  record.IV,
		},
	}
}

func TestClientSharingService_Share_RecipientOpensPassword(t *testing.T) {
	f := newSharingFixture(t, "secret123")
	ctx := context.Background()
	bob := newRecipient(t, f.p, 2)

	var stored models.SharedCredentialCreate
	gomock.InOrder(
		f.adapter.EXPECT().GetCredential(ctx, int64(10)).Return(f.credential, nil),
		f.adapter.EXPECT().PublicKey(ctx, int64(2)).Return(models.UserPublicKey{UserID: 2, Username: "bob", PublicKey: bob.pair.PublicKey}, nil),
		f.adapter.EXPECT().Share(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, req models.SharedCredentialCreate) (models.SharedCredential, error) {
				stored = req
				return models.SharedCredential{
					ID:              7,
					CredentialID:    req.CredentialID,
					OwnerUserID:     1,
					RecipientUserID: req.RecipientUserID,
					OwnerUsername:   "alice",
					CredentialTitle: "mail",
					SharingEnvelope: req.SharingEnvelope,
				}, nil
			},
		),
	)

	shared, err := f.svc.Share(ctx, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stored.CredentialID)
	assert.Equal(t, int64(2), stored.RecipientUserID)
	assert.NotContains(t, stored.EncryptedSharedData, "secret123")

	// recipient side
	bobCustodian := session.NewCustodian(f.p, nil, nil, logger.Nop())
	bobCustodian.StorePrivateKey(append([]byte(nil), bob.der...))
	bobSvc := NewClientSharingService(f.adapter, f.p, bobCustodian, NewRecordCodec(f.p, bobCustodian, logger.Nop()), logger.Nop())

	got, err := bobSvc.DecryptReceived(shared)
	require.NoError(t, err)
	assert.Equal(t, "secret123", got.Password)
	assert.Equal(t, "alice", got.OwnerUsername)
	assert.Equal(t, "mail", got.Title)
	assert.Equal(t, int64(7), got.ID)
}

func TestClientSharingService_DecryptReceived_WrongPrivateKey(t *testing.T) {
	p := newTestPrimitives()
	bob := newRecipient(t, p, 2)
	eve := newRecipient(t, p, 3)

	envelope, err := SealEnvelope(p, "secret123", bob.pair.PublicKey)
	require.NoError(t, err)

	eveCustodian := session.NewCustodian(p, nil, nil, logger.Nop())
	eveCustodian.StorePrivateKey(eve.der)
	svc := NewClientSharingService(nil, p, eveCustodian, nil, logger.Nop())

	got, err := svc.DecryptReceived(models.SharedCredential{ID: 1, SharingEnvelope: envelope})
	require.ErrorIs(t, err, ErrEnvelopeUnwrapFailed)
	assert.Empty(t, got.Password)
}

func TestClientSharingService_DecryptReceived_NoPrivateKey(t *testing.T) {
	p := newTestPrimitives()
	// symmetric key present, private key absent
	custodian := newKeyedCustodian(t, p)
	svc := NewClientSharingService(nil, p, custodian, nil, logger.Nop())

	_, err := svc.DecryptReceived(models.SharedCredential{ID: 1})
	require.ErrorIs(t, err, session.ErrPrivateKeyUnavailable)
	assert.ErrorIs(t, err, session.ErrKeyUnavailable)
	assert.NotErrorIs(t, err, session.ErrEncryptionKeyUnavailable)
}

func TestClientSharingService_Share_RecipientWithoutKeys(t *testing.T) {
	f := newSharingFixture(t, "secret123")
	ctx := context.Background()

	f.adapter.EXPECT().GetCredential(ctx, int64(10)).Return(f.credential, nil)
	f.adapter.EXPECT().PublicKey(ctx, int64(2)).Return(models.UserPublicKey{UserID: 2}, nil)

	_, err := f.svc.Share(ctx, 10, 2)
	assert.ErrorIs(t, err, ErrRecipientHasNoKeys)
}

func TestClientSharingService_Share_OwnerKeyMissing(t *testing.T) {
	f := newSharingFixture(t, "secret123")
	ctx := context.Background()
	f.owner.Clear()

	f.adapter.EXPECT().GetCredential(ctx, int64(10)).Return(f.credential, nil)

	_, err := f.svc.Share(ctx, 10, 2)
	assert.ErrorIs(t, err, session.ErrKeyUnavailable)
}

func TestClientSharingService_Share_AlreadyShared(t *testing.T) {
	f := newSharingFixture(t, "secret123")
	ctx := context.Background()
	bob := newRecipient(t, f.p, 2)

	f.adapter.EXPECT().GetCredential(ctx, int64(10)).Return(f.credential, nil)
	f.adapter.EXPECT().PublicKey(ctx, int64(2)).Return(models.UserPublicKey{UserID: 2, PublicKey: bob.pair.PublicKey}, nil)
	f.adapter.EXPECT().Share(ctx, gomock.Any()).
		Return(models.SharedCredential{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, adapter.DetailAlreadyShared))

	_, err := f.svc.Share(ctx, 10, 2)
	assert.ErrorIs(t, err, ErrAlreadyShared)
}

func TestClientSharingService_Reshare_AllCurrentRecipients(t *testing.T) {
	f := newSharingFixture(t, "rotated-secret")
	ctx := context.Background()
	bob := newRecipient(t, f.p, 2)
	carol := newRecipient(t, f.p, 3)
	byID := map[int64]recipient{2: bob, 3: carol}

	f.adapter.EXPECT().SharedUsers(ctx, int64(10)).Return([]models.SharedUser{{UserID: 2}, {UserID: 3}}, nil)
	f.adapter.EXPECT().GetCredential(ctx, int64(10)).Return(f.credential, nil)
	f.adapter.EXPECT().PublicKey(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, id int64) (models.UserPublicKey, error) {
			return models.UserPublicKey{UserID: id, PublicKey: byID[id].pair.PublicKey}, nil
		},
	).Times(2)

	envelopes := map[int64]models.SharingEnvelope{}
	f.adapter.EXPECT().UpdateShare(ctx, int64(10), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, credentialID, recipientID int64, env models.SharingEnvelope) (models.SharedCredential, error) {
			envelopes[recipientID] = env
			return models.SharedCredential{CredentialID: credentialID, RecipientUserID: recipientID, SharingEnvelope: env}, nil
		},
	).Times(2)

	updated, err := f.svc.Reshare(ctx, 10, nil)
	require.NoError(t, err)
	require.Len(t, updated, 2)

	for id, env := range envelopes {
		got, err := OpenEnvelope(f.p, env, byID[id].der)
		require.NoError(t, err)
		assert.Equal(t, "rotated-secret", got)
	}
	assert.NotEqual(t, envelopes[2].EncryptedSharingKey, envelopes[3].EncryptedSharingKey)
}

func TestClientSharingService_Reshare_NobodyToReshare(t *testing.T) {
	f := newSharingFixture(t, "secret123")
	ctx := context.Background()

	f.adapter.EXPECT().SharedUsers(ctx, int64(10)).Return(nil, nil)

	updated, err := f.svc.Reshare(ctx, 10, nil)
	require.NoError(t, err)
	assert.Empty(t, updated)
}

func TestClientSharingService_Reshare_FailurePartwayReturnsNoResults(t *testing.T) {
	f := newSharingFixture(t, "rotated-secret")
	ctx := context.Background()
	bob := newRecipient(t, f.p, 2)

	gomock.InOrder(
		f.adapter.EXPECT().GetCredential(ctx, int64(10)).Return(f.credential, nil),
		f.adapter.EXPECT().PublicKey(ctx, int64(2)).Return(models.UserPublicKey{UserID: 2, PublicKey: bob.pair.PublicKey}, nil),
		f.adapter.EXPECT().UpdateShare(ctx, int64(10), int64(2), gomock.Any()).
			Return(models.SharedCredential{CredentialID: 10, RecipientUserID: 2}, nil),
		f.adapter.EXPECT().PublicKey(ctx, int64(3)).Return(models.UserPublicKey{UserID: 3}, nil),
	)

	updated, err := f.svc.Reshare(ctx, 10, []int64{2, 3})
	require.ErrorIs(t, err, ErrRecipientHasNoKeys)
	assert.Nil(t, updated)
}

func TestClientSharingService_RevokeRecipient(t *testing.T) {
	f := newSharingFixture(t, "x")
	ctx := context.Background()

	f.adapter.EXPECT().RevokeRecipient(ctx, int64(10), int64(2)).Return(nil)
	require.NoError(t, f.svc.RevokeRecipient(ctx, 10, 2))

	f.adapter.EXPECT().RevokeRecipient(ctx, int64(10), int64(3)).
		Return(fmt.Errorf("%w: %s", adapter.ErrNotFound, "Shared credential not found or you don't have permission to delete it"))
	assert.ErrorIs(t, f.svc.RevokeRecipient(ctx, 10, 3), ErrRecordNotFound)
}

func TestClientSharingService_SearchUsers(t *testing.T) {
	f := newSharingFixture(t, "x")
	ctx := context.Background()

	for _, q := range []string{"", " ", "a", " ж "} {
		got, err := f.svc.SearchUsers(ctx, q)
		require.NoError(t, err)
		assert.Empty(t, got, "query %q", q)
	}

	f.adapter.EXPECT().SearchUsers(ctx, "bo").Return([]models.UserSearchResult{{ID: 2, Username: "bob"}}, nil)
	got, err := f.svc.SearchUsers(ctx, " bo ")
	require.NoError(t, err)
	assert.Equal(t, []models.UserSearchResult{{ID: 2, Username: "bob"}}, got)
}

func TestClientSharingService_PassThrough(t *testing.T) {
	f := newSharingFixture(t, "x")
	ctx := context.Background()
	params := models.ListParams{Skip: 0, Limit: 20}

	f.adapter.EXPECT().ListReceived(ctx, params).Return(models.SharedCredentialList{Total: 1, Items: []models.SharedCredential{{ID: 1}}}, nil)
	f.adapter.EXPECT().ListOwned(ctx).Return([]models.SharedCredential{{ID: 2}}, nil)
	f.adapter.EXPECT().Unshare(ctx, int64(3)).Return(fmt.Errorf("%w: %s", adapter.ErrNotFound, "Shared credential not found"))

	received, err := f.svc.ListReceived(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, 1, received.Total)

	owned, err := f.svc.ListOwned(ctx)
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	err = f.svc.Unshare(ctx, 3)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
