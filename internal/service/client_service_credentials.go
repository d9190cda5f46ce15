package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-owl/internal/adapter"
	"github.com/MKhiriev/go-pass-owl/internal/logger"
	"github.com/MKhiriev/go-pass-owl/models"
)

type clientCredentialService struct {
	adapter adapter.VaultAdapter
	codec   RecordCodec
	logger  *logger.Logger
}

func NewClientCredentialService(vault adapter.VaultAdapter, codec RecordCodec, log *logger.Logger) ClientCredentialService {
	return &clientCredentialService{adapter: vault, codec: codec, logger: log.Component("credentials")}
}

func (c *clientCredentialService) Create(ctx context.Context, input models.CredentialInput) (models.DecryptedCredential, error) {
	if strings.TrimSpace(input.Title) == "" {
		return models.DecryptedCredential{}, ErrInvalidDataProvided
	}

	record, err := c.codec.EncryptRecord(input.Password)
	if err != nil {
		return models.DecryptedCredential{}, err
	}

	categoryIDs := input.CategoryIDs
	if categoryIDs == nil {
		categoryIDs = []int64{}
	}

	created, err := c.adapter.CreateCredential(ctx, models.CredentialCreate{
		Title:         input.Title,
		Username:      input.Username,
		URL:           input.URL,
		EncryptedData: record.Ciphertexts[0],
		EncryptionIV:  record.IV,
		CategoryIDs:   categoryIDs,
	})
	if err != nil {
		return models.DecryptedCredential{}, mapAdapterError(err, nil)
	}

	c.logger.Debug().Int64("credential_id", created.ID).Msg("credential created")
	return decryptedCredential(created, input.Password), nil
}

func (c *clientCredentialService) Get(ctx context.Context, id int64) (models.DecryptedCredential, error) {
	credential, err := c.adapter.GetCredential(ctx, id)
	if err != nil {
		return models.DecryptedCredential{}, mapAdapterError(err, nil)
	}
	return c.decrypt(credential)
}

func (c *clientCredentialService) List(ctx context.Context, params models.ListParams) (models.CredentialList, error) {
	list, err := c.adapter.ListCredentials(ctx, params)
	if err != nil {
		return models.CredentialList{}, mapAdapterError(err, nil)
	}
	return list, nil
}

func (c *clientCredentialService) Update(ctx context.Context, id int64, changes models.CredentialChanges) (models.DecryptedCredential, error) {
	req := models.CredentialUpdate{
		Title:       changes.Title,
		Username:    changes.Username,
		URL:         changes.URL,
		CategoryIDs: changes.CategoryIDs,
	}

	if changes.Password != nil {
		record, err := c.codec.EncryptRecord(*changes.Password)
		if err != nil {
			return models.DecryptedCredential{}, err
		}
		req.EncryptedData = &record.Ciphertexts[0]
		req.EncryptionIV = &record.IV
	}

	updated, err := c.adapter.UpdateCredential(ctx, id, req)
	if err != nil {
		return models.DecryptedCredential{}, mapAdapterError(err, nil)
	}

	if changes.Password != nil {
		return decryptedCredential(updated, *changes.Password), nil
	}
	return c.decrypt(updated)
}

func (c *clientCredentialService) Delete(ctx context.Context, id int64) error {
	if err := c.adapter.DeleteCredential(ctx, id); err != nil {
		return mapAdapterError(err, nil)
	}
	c.logger.Debug().Int64("credential_id", id).Msg("credential deleted")
	return nil
}

func (c *clientCredentialService) decrypt(credential models.Credential) (models.DecryptedCredential, error) {
	fields, err := c.codec.DecryptRecord(models.EncryptedRecord{
		Ciphertexts: []string{credential.EncryptedData},
		IV:          credential.EncryptionIV,
	})
	if err != nil {
		return models.DecryptedCredential{}, err
	}
	return decryptedCredential(credential, fields[0]), nil
}

func decryptedCredential(credential models.Credential, password string) models.DecryptedCredential {
	return models.DecryptedCredential{
		ID:         credential.ID,
		Title:      credential.Title,
		Username:   credential.Username,
		Password:   password,
		URL:        credential.URL,
		Categories: credential.Categories,
		CreatedAt:  credential.CreatedAt,
		UpdatedAt:  credential.UpdatedAt,
	}
}
