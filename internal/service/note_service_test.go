package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/megamind1212/notesmate-api/internal/domain"
	"github.com/megamind1212/notesmate-api/internal/repository/ports"
)

type memoryNoteRepo struct {
	inserted []domain.Note
	listed   []domain.Note

	insertErr      error
	updateAffected int64
	updateErr      error

	lastListDay *time.Time
	lastUpdate  struct {
		orgID, empID, clientID int64
		at                     time.Time
		text                   string
	}
}

var _ ports.NoteRepository = (*memoryNoteRepo)(nil)

func (m *memoryNoteRepo) Insert(ctx context.Context, n *domain.Note) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	n.MeetingID = int64(len(m.inserted) + 1)
	m.inserted = append(m.inserted, *n)
	return nil
}

func (m *memoryNoteRepo) ListByClient(ctx context.Context, orgID, empID, clientID int64, day *time.Time) ([]domain.Note, error) {
	m.lastListDay = day
	return m.listed, nil
}

func (m *memoryNoteRepo) UpdateText(ctx context.Context, orgID, empID, clientID int64, at time.Time, newText string) (int64, error) {
	m.lastUpdate.orgID = orgID
	m.lastUpdate.empID = empID
	m.lastUpdate.clientID = clientID
	m.lastUpdate.at = at
	m.lastUpdate.text = newText
	return m.updateAffected, m.updateErr
}

type archiveCall struct {
	bucket      string
	objectName  string
	contentType string
	payload     []byte
}

type recordingArchive struct {
	calls []archiveCall
	err   error
}

var _ ports.ObjectStorage = (*recordingArchive)(nil)

func (a *recordingArchive) Put(ctx context.Context, bucket, objectName, contentType string, payload []byte) (string, error) {
	a.calls = append(a.calls, archiveCall{bucket: bucket, objectName: objectName, contentType: contentType, payload: payload})
	if a.err != nil {
		return "", a.err
	}
	return "https://storage.example/" + bucket + "/" + objectName, nil
}

func repoWithClient(orgID, clientID int64) *memoryClientRepo {
	repo := newMemoryClientRepo()
	repo.clients[clientKey(orgID, clientID)] = &domain.Client{OrgID: orgID, ClientID: clientID, Name: "Alex Moreno"}
	return repo
}

func TestNoteServiceSaveTranscription(t *testing.T) {
	ctx := context.Background()
	notes := &memoryNoteRepo{}
	archive := &recordingArchive{}
	svc := NewNoteService(notes, repoWithClient(300, 1), archive, "notesmate-notes")

	stamped := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return stamped }

	audio := []byte{0x1a, 0x45, 0xdf, 0xa3}
	err := svc.SaveTranscription(ctx, TranscriptionInput{
		OrgID:             300,
		EmpID:             7,
		ClientID:          1,
		TranscriptionText: "Reviewed the treatment plan.",
		AudioBase64:       base64.StdEncoding.EncodeToString(audio),
	})
	if err != nil {
		t.Fatalf("SaveTranscription returned error: %v", err)
	}

	if len(notes.inserted) != 1 {
		t.Fatalf("expected one note inserted, got %d", len(notes.inserted))
	}
	note := notes.inserted[0]
	if !note.DateTime.Equal(stamped) {
		t.Fatalf("expected server stamp %v, got %v", stamped, note.DateTime)
	}
	if string(note.AudioNotes) != string(audio) {
		t.Fatalf("expected decoded audio bytes stored")
	}
	if note.TextNotes != "Reviewed the treatment plan." {
		t.Fatalf("unexpected text: %q", note.TextNotes)
	}

	if len(archive.calls) != 1 {
		t.Fatalf("expected one archive upload, got %d", len(archive.calls))
	}
	call := archive.calls[0]
	if call.bucket != "notesmate-notes" || call.contentType != "audio/webm" {
		t.Fatalf("unexpected archive call: %+v", call)
	}
	if !strings.HasPrefix(call.objectName, "notes/300/1/") || !strings.HasSuffix(call.objectName, ".webm") {
		t.Fatalf("unexpected object name: %q", call.objectName)
	}
}

func TestNoteServiceSaveTranscriptionArchiveFailureIsSoft(t *testing.T) {
	ctx := context.Background()
	notes := &memoryNoteRepo{}
	archive := &recordingArchive{err: errors.New("bucket offline")}
	svc := NewNoteService(notes, repoWithClient(300, 1), archive, "notesmate-notes")

	err := svc.SaveTranscription(ctx, TranscriptionInput{
		OrgID:             300,
		EmpID:             7,
		ClientID:          1,
		TranscriptionText: "Short note.",
		AudioBase64:       base64.StdEncoding.EncodeToString([]byte("audio")),
	})
	if err != nil {
		t.Fatalf("expected save to succeed despite archive failure, got %v", err)
	}
	if len(notes.inserted) != 1 {
		t.Fatalf("expected note inserted, got %d", len(notes.inserted))
	}
}

func TestNoteServiceSaveTranscriptionWithoutStorage(t *testing.T) {
	ctx := context.Background()
	notes := &memoryNoteRepo{}
	svc := NewNoteService(notes, repoWithClient(300, 1), nil, "")

	err := svc.SaveTranscription(ctx, TranscriptionInput{
		OrgID:             300,
		EmpID:             7,
		ClientID:          1,
		TranscriptionText: "Text only.",
	})
	if err != nil {
		t.Fatalf("SaveTranscription returned error: %v", err)
	}
	if notes.inserted[0].AudioNotes != nil {
		t.Fatalf("expected no audio bytes for a text-only note")
	}
}

func TestNoteServiceSaveTranscriptionBadBase64(t *testing.T) {
	ctx := context.Background()
	notes := &memoryNoteRepo{}
	svc := NewNoteService(notes, repoWithClient(300, 1), nil, "")

	err := svc.SaveTranscription(ctx, TranscriptionInput{
		OrgID:             300,
		EmpID:             7,
		ClientID:          1,
		TranscriptionText: "Text.",
		AudioBase64:       "not-base64!!!",
	})
	if !errors.Is(err, ErrNoteValidation) {
		t.Fatalf("expected ErrNoteValidation, got %v", err)
	}
	if len(notes.inserted) != 0 {
		t.Fatalf("expected nothing inserted on invalid audio")
	}
}

func TestNoteServiceSaveTranscriptionUnknownClient(t *testing.T) {
	ctx := context.Background()
	svc := NewNoteService(&memoryNoteRepo{}, newMemoryClientRepo(), nil, "")

	err := svc.SaveTranscription(ctx, TranscriptionInput{OrgID: 300, EmpID: 7, ClientID: 99, TranscriptionText: "x"})
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestNoteServiceFetchNotesPassesDayFilter(t *testing.T) {
	ctx := context.Background()
	notes := &memoryNoteRepo{listed: []domain.Note{{MeetingID: 2}, {MeetingID: 1}}}
	svc := NewNoteService(notes, newMemoryClientRepo(), nil, "")

	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	got, err := svc.FetchNotes(ctx, 300, 7, 1, &day)
	if err != nil {
		t.Fatalf("FetchNotes returned error: %v", err)
	}
	if len(got) != 2 || got[0].MeetingID != 2 {
		t.Fatalf("unexpected notes: %+v", got)
	}
	if notes.lastListDay == nil || !notes.lastListDay.Equal(day) {
		t.Fatalf("expected day filter forwarded, got %v", notes.lastListDay)
	}
}

func TestNoteServiceUpdateNoteText(t *testing.T) {
	ctx := context.Background()
	notes := &memoryNoteRepo{updateAffected: 1}
	svc := NewNoteService(notes, newMemoryClientRepo(), nil, "")

	at := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	if err := svc.UpdateNoteText(ctx, 300, 7, 1, at, "Amended."); err != nil {
		t.Fatalf("UpdateNoteText returned error: %v", err)
	}
	if notes.lastUpdate.text != "Amended." || !notes.lastUpdate.at.Equal(at) {
		t.Fatalf("unexpected update args: %+v", notes.lastUpdate)
	}

	notes.updateAffected = 0
	if err := svc.UpdateNoteText(ctx, 300, 7, 1, at, "Amended."); !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}
