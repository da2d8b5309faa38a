package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/megamind1212/notesmate-api/internal/domain"
	"github.com/megamind1212/notesmate-api/internal/repository/ports"
)

var (
	ErrNoteValidation = errors.New("note validation failed")
	ErrNoteNotFound   = errors.New("note not found")
)

type TranscriptionInput struct {
	OrgID             int64
	EmpID             int64
	ClientID          int64
	TranscriptionText string
	AudioBase64       string
}

type NoteService struct {
	notes   ports.NoteRepository
	clients ports.ClientRepository
	storage ports.ObjectStorage

	bucket string
	now    func() time.Time
}

// NewNoteService builds the notes service. storage may be nil, in which case
// saved audio lives only in the database.
func NewNoteService(notes ports.NoteRepository, clients ports.ClientRepository, storage ports.ObjectStorage, bucket string) *NoteService {
	return &NoteService{
		notes:   notes,
		clients: clients,
		storage: storage,
		bucket:  bucket,
		now:     time.Now,
	}
}

// SaveTranscription stores a note stamped with the server clock. Audio arrives
// base64-encoded and is kept as raw bytes; when object storage is configured
// the bytes are also archived there, and an archive failure never fails the
// save.
func (s *NoteService) SaveTranscription(ctx context.Context, input TranscriptionInput) error {
	if _, err := s.clients.FindClient(ctx, input.OrgID, input.ClientID); err != nil {
		if isNotFound(err) {
			return ErrClientNotFound
		}
		return err
	}

	var audio []byte
	if input.AudioBase64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(input.AudioBase64)
		if err != nil {
			return fmt.Errorf("%w: audioData is not valid base64", ErrNoteValidation)
		}
		audio = decoded
	}

	note := &domain.Note{
		OrgID:    input.OrgID,
		EmpID:    input.EmpID,
		ClientID: input.ClientID,
		// Second precision, so the stamp round-trips through fetch-notes
		// and back into update-note unchanged.
		DateTime:   s.now().UTC().Truncate(time.Second),
		AudioNotes: audio,
		TextNotes:  input.TranscriptionText,
	}
	if err := s.notes.Insert(ctx, note); err != nil {
		return err
	}

	if s.storage != nil && len(audio) > 0 {
		objectKey := fmt.Sprintf("notes/%d/%d/%s.webm", input.OrgID, input.ClientID, uuid.NewString())
		if _, err := s.storage.Put(ctx, s.bucket, objectKey, "audio/webm", audio); err != nil {
			log.Printf("archive audio for meeting %d failed: %v", note.MeetingID, err)
		}
	}
	return nil
}

// FetchNotes lists the notes for one client, newest first. day narrows the
// result to a single UTC calendar day.
func (s *NoteService) FetchNotes(ctx context.Context, orgID, empID, clientID int64, day *time.Time) ([]domain.Note, error) {
	return s.notes.ListByClient(ctx, orgID, empID, clientID, day)
}

// UpdateNoteText replaces the text of the note matching the exact timestamp.
func (s *NoteService) UpdateNoteText(ctx context.Context, orgID, empID, clientID int64, at time.Time, newText string) error {
	affected, err := s.notes.UpdateText(ctx, orgID, empID, clientID, at, newText)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoteNotFound
	}
	return nil
}
