package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-owl/internal/adapter"
	"github.com/MKhiriev/go-pass-owl/internal/logger"
	"github.com/MKhiriev/go-pass-owl/models"
)

type clientNoteService struct {
	adapter adapter.VaultAdapter
	codec   RecordCodec
	logger  *logger.Logger
}

func NewClientNoteService(vault adapter.VaultAdapter, codec RecordCodec, log *logger.Logger) ClientNoteService {
	return &clientNoteService{adapter: vault, codec: codec, logger: log.Component("notes")}
}

func (n *clientNoteService) Create(ctx context.Context, input models.NoteInput) (models.DecryptedNote, error) {
	req, err := n.encrypt(input)
	if err != nil {
		return models.DecryptedNote{}, err
	}

	created, err := n.adapter.CreateNote(ctx, req)
	if err != nil {
		return models.DecryptedNote{}, mapAdapterError(err, nil)
	}

	n.logger.Debug().Int64("note_id", created.ID).Msg("note created")
	return decryptedNote(created, input), nil
}

func (n *clientNoteService) Get(ctx context.Context, id int64) (models.DecryptedNote, error) {
	note, err := n.adapter.GetNote(ctx, id)
	if err != nil {
		return models.DecryptedNote{}, mapAdapterError(err, nil)
	}
	return n.decrypt(note)
}

func (n *clientNoteService) List(ctx context.Context, params models.ListParams) ([]models.DecryptedNote, int, error) {
	list, err := n.adapter.ListNotes(ctx, params)
	if err != nil {
		return nil, 0, mapAdapterError(err, nil)
	}

	notes := make([]models.DecryptedNote, 0, len(list.Items))
	for _, item := range list.Items {
		note, err := n.decrypt(item)
		if err != nil {
			return nil, 0, fmt.Errorf("note %d: %w", item.ID, err)
		}
		notes = append(notes, note)
	}
	return notes, list.Total, nil
}

func (n *clientNoteService) Update(ctx context.Context, id int64, input models.NoteInput) (models.DecryptedNote, error) {
	req, err := n.encrypt(input)
	if err != nil {
		return models.DecryptedNote{}, err
	}

	updated, err := n.adapter.UpdateNote(ctx, id, req)
	if err != nil {
		return models.DecryptedNote{}, mapAdapterError(err, nil)
	}
	return decryptedNote(updated, input), nil
}

func (n *clientNoteService) Delete(ctx context.Context, id int64) error {
	if err := n.adapter.DeleteNote(ctx, id); err != nil {
		return mapAdapterError(err, nil)
	}
	n.logger.Debug().Int64("note_id", id).Msg("note deleted")
	return nil
}

// encrypt seals title and content under one IV.
func (n *clientNoteService) encrypt(input models.NoteInput) (models.SecureNoteWrite, error) {
	if input.Title == "" {
		return models.SecureNoteWrite{}, ErrInvalidDataProvided
	}

	record, err := n.codec.EncryptRecord(input.Title, input.Content)
	if err != nil {
		return models.SecureNoteWrite{}, err
	}
	return models.SecureNoteWrite{
		EncryptedTitle:   record.Ciphertexts[0],
		EncryptedContent: record.Ciphertexts[1],
		EncryptionIV:     record.IV,
	}, nil
}

func (n *clientNoteService) decrypt(note models.SecureNote) (models.DecryptedNote, error) {
	fields, err := n.codec.DecryptRecord(models.EncryptedRecord{
		Ciphertexts: []string{note.EncryptedTitle, note.EncryptedContent},
		IV:          note.EncryptionIV,
	})
	if err != nil {
		return models.DecryptedNote{}, err
	}
	return decryptedNote(note, models.NoteInput{Title: fields[0], Content: fields[1]}), nil
}

func decryptedNote(note models.SecureNote, plain models.NoteInput) models.DecryptedNote {
	return models.DecryptedNote{
		ID:        note.ID,
		Title:     plain.Title,
		Content:   plain.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
