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

type vaultFixture struct {
	credentials ClientCredentialService
	notes       ClientNoteService
	adapter     *mock.MockServerAdapter
	custodian   *session.Custodian
	codec       RecordCodec
}

func newVaultFixture(t *testing.T) vaultFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	p := newTestPrimitives()
	custodian := newKeyedCustodian(t, p)
	codec := NewRecordCodec(p, custodian, logger.Nop())
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	return vaultFixture{
		credentials: NewClientCredentialService(serverAdapter, codec, logger.Nop()),
		notes:       NewClientNoteService(serverAdapter, codec, logger.Nop()),
		adapter:     serverAdapter,
		custodian:   custodian,
		codec:       codec,
	}
}

func (f vaultFixture) sealedCredential(t *testing.T, id int64, password string) models.Credential {
	t.Helper()
	record, err := f.codec.EncryptRecord(password)
	require.NoError(t, err)
	return models.Credential{ID: id, Title: "mail", Username: "alice", EncryptedData: record.Ciphertexts[0], EncryptionIV: record.IV}
}

func (f vaultFixture) sealedNote(t *testing.T, id int64, title, content string) models.SecureNote {
	t.Helper()
	record, err := f.codec.EncryptRecord(title, content)
	require.NoError(t, err)
	return models.SecureNote{ID: id, EncryptedTitle: record.Ciphertexts[0], EncryptedContent: record.Ciphertexts[1], EncryptionIV: record.IV}
}

// ── credentials ──────────────────────────────────────────────────────────────

func TestClientCredentialService_Create(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()
	url := "https://mail.example"

	f.adapter.EXPECT().CreateCredential(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.CredentialCreate) (models.Credential, error) {
			assert.Equal(t, "mail", req.Title)
			assert.Equal(t, "alice", req.Username)
			assert.Equal(t, &url, req.URL)
			assert.NotEqual(t, "hunter2", req.EncryptedData)
			assert.NotNil(t, req.CategoryIDs)

			fields, err := f.codec.DecryptRecord(models.EncryptedRecord{Ciphertexts: []string{req.EncryptedData}, IV: req.EncryptionIV})
			assert.NoError(t, err)
			assert.Equal(t, []string{"hunter2"}, fields)

			return models.Credential{ID: 5, Title: req.Title, Username: req.Username, URL: req.URL, EncryptedData: req.EncryptedData, EncryptionIV: req.EncryptionIV}, nil
		},
	)

	got, err := f.credentials.Create(ctx, models.CredentialInput{Title: "mail", Username: "alice", Password: "hunter2", URL: &url})
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	assert.Equal(t, "hunter2", got.Password)
}

func TestClientCredentialService_Create_RequiresTitle(t *testing.T) {
	f := newVaultFixture(t)

	_, err := f.credentials.Create(context.Background(), models.CredentialInput{Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientCredentialService_Create_KeyUnavailable(t *testing.T) {
	f := newVaultFixture(t)
	f.custodian.Clear()

	_, err := f.credentials.Create(context.Background(), models.CredentialInput{Title: "mail", Password: "x"})
	assert.ErrorIs(t, err, session.ErrKeyUnavailable)
}

func TestClientCredentialService_Get(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	f.adapter.EXPECT().GetCredential(ctx, int64(5)).Return(f.sealedCredential(t, 5, "hunter2"), nil)

	got, err := f.credentials.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got.Password)
	assert.Equal(t, "mail", got.Title)
}

func TestClientCredentialService_Get_NotFound(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	f.adapter.EXPECT().GetCredential(ctx, int64(5)).
		Return(models.Credential{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, "Credential not found"))

	_, err := f.credentials.Get(ctx, 5)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestClientCredentialService_Get_TamperedPassword(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	stored := f.sealedCredential(t, 5, "hunter2")
	stored.EncryptionIV = f.sealedCredential(t, 6, "other").EncryptionIV
	f.adapter.EXPECT().GetCredential(ctx, int64(5)).Return(stored, nil)

	got, err := f.credentials.Get(ctx, 5)
	require.ErrorIs(t, err, crypto.ErrDecryptionFailed)
	assert.Empty(t, got.Password)
}

func TestClientCredentialService_Update_NewPasswordGetsFreshIV(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()
	old := f.sealedCredential(t, 5, "hunter2")
	password := "hunter3"

	f.adapter.EXPECT().UpdateCredential(ctx, int64(5), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, req models.CredentialUpdate) (models.Credential, error) {
			require.NotNil(t, req.EncryptedData)
			require.NotNil(t, req.EncryptionIV)
			assert.NotEqual(t, old.EncryptionIV, *req.EncryptionIV)

			updated := old
			updated.EncryptedData = *req.EncryptedData
			updated.EncryptionIV = *req.EncryptionIV
			return updated, nil
		},
	)

	got, err := f.credentials.Update(ctx, 5, models.CredentialChanges{Password: &password})
	require.NoError(t, err)
	assert.Equal(t, "hunter3", got.Password)
}

func TestClientCredentialService_Update_MetadataOnly(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()
	stored := f.sealedCredential(t, 5, "hunter2")
	title := "work mail"

	f.adapter.EXPECT().UpdateCredential(ctx, int64(5), models.CredentialUpdate{Title: &title}).DoAndReturn(
		func(_ context.Context, _ int64, _ models.CredentialUpdate) (models.Credential, error) {
			stored.Title = title
			return stored, nil
		},
	)

	got, err := f.credentials.Update(ctx, 5, models.CredentialChanges{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "work mail", got.Title)
	assert.Equal(t, "hunter2", got.Password)
}

func TestClientCredentialService_ListAndDelete(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()
	params := models.ListParams{Skip: 0, Limit: 10}

	f.adapter.EXPECT().ListCredentials(ctx, params).Return(models.CredentialList{Items: []models.Credential{{ID: 1}}, Total: 1}, nil)
	f.adapter.EXPECT().DeleteCredential(ctx, int64(1)).Return(nil)

	list, err := f.credentials.List(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	require.NoError(t, f.credentials.Delete(ctx, 1))
}

func TestClientCredentialService_Forbidden(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	f.adapter.EXPECT().DeleteCredential(ctx, int64(9)).
		Return(fmt.Errorf("%w: %s", adapter.ErrForbidden, adapter.DetailInsufficientPermissions))

	assert.ErrorIs(t, f.credentials.Delete(ctx, 9), ErrForbidden)
}

// ── notes ────────────────────────────────────────────────────────────────────

func TestClientNoteService_Create_TitleAndContentShareIV(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	f.adapter.EXPECT().CreateNote(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.SecureNoteWrite) (models.SecureNote, error) {
			fields, err := f.codec.DecryptRecord(models.EncryptedRecord{
				Ciphertexts: []string{req.EncryptedTitle, req.EncryptedContent},
				IV:          req.EncryptionIV,
			})
			assert.NoError(t, err)
			assert.Equal(t, []string{"T", "C"}, fields)
			return models.SecureNote{ID: 3, EncryptedTitle: req.EncryptedTitle, EncryptedContent: req.EncryptedContent, EncryptionIV: req.EncryptionIV}, nil
		},
	)

	got, err := f.notes.Create(ctx, models.NoteInput{Title: "T", Content: "C"})
	require.NoError(t, err)
	assert.Equal(t, models.DecryptedNote{ID: 3, Title: "T", Content: "C"}, got)
}

func TestClientNoteService_GetAndUpdate(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	f.adapter.EXPECT().GetNote(ctx, int64(3)).Return(f.sealedNote(t, 3, "T", "C"), nil)
	f.adapter.EXPECT().UpdateNote(ctx, int64(3), gomock.Any()).DoAndReturn(
		func(_ context.Context, id int64, req models.SecureNoteWrite) (models.SecureNote, error) {
			return models.SecureNote{ID: id, EncryptedTitle: req.EncryptedTitle, EncryptedContent: req.EncryptedContent, EncryptionIV: req.EncryptionIV}, nil
		},
	)

	got, err := f.notes.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "C", got.Content)

	updated, err := f.notes.Update(ctx, 3, models.NoteInput{Title: "T2", Content: "C2"})
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, "C2", updated.Content)
}

func TestClientNoteService_List(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()
	params := models.ListParams{Limit: 2}

	f.adapter.EXPECT().ListNotes(ctx, params).Return(models.SecureNoteList{
		Items: []models.SecureNote{f.sealedNote(t, 1, "a", "1"), f.sealedNote(t, 2, "b", "2")},
		Total: 7,
	}, nil)

	notes, total, err := f.notes.List(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	require.Len(t, notes, 2)
	assert.Equal(t, "b", notes[1].Title)
}

func TestClientNoteService_List_CorruptNoteFailsWholePage(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()
	params := models.ListParams{Limit: 2}

	bad := f.sealedNote(t, 2, "b", "2")
	bad.EncryptedContent = f.sealedNote(t, 9, "x", "y").EncryptedContent

	f.adapter.EXPECT().ListNotes(ctx, params).Return(models.SecureNoteList{
		Items: []models.SecureNote{f.sealedNote(t, 1, "a", "1"), bad},
		Total: 2,
	}, nil)

	notes, total, err := f.notes.List(ctx, params)
	require.ErrorIs(t, err, crypto.ErrDecryptionFailed)
	assert.Nil(t, notes)
	assert.Zero(t, total)
}

func TestClientNoteService_Delete(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	f.adapter.EXPECT().DeleteNote(ctx, int64(3)).Return(nil)
	require.NoError(t, f.notes.Delete(ctx, 3))
}
