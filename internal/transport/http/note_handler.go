package http

import (
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/megamind1212/notesmate-api/internal/service"
	"github.com/megamind1212/notesmate-api/internal/util"
)

type NoteHandler struct {
	notes *service.NoteService
}

func RegisterNotes(e *echo.Echo, notes *service.NoteService) {
	handler := &NoteHandler{notes: notes}
	e.POST("/api/save-transcription", handler.saveTranscription)
	e.POST("/api/fetch-notes", handler.fetchNotes)
	e.POST("/api/update-note", handler.updateNote)
}

// saveTranscription handles POST /api/save-transcription
func (h *NoteHandler) saveTranscription(c echo.Context) error {
	var req SaveTranscriptionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if req.OrgID <= 0 || req.EmpID <= 0 || req.ClientID <= 0 || req.TranscriptionText == "" {
		return c.JSON(http.StatusBadRequest, util.Error("orgid, empid, clientid, and transcriptiontext are required"))
	}

	err := h.notes.SaveTranscription(c.Request().Context(), service.TranscriptionInput{
		OrgID:             req.OrgID,
		EmpID:             req.EmpID,
		ClientID:          req.ClientID,
		TranscriptionText: req.TranscriptionText,
		AudioBase64:       req.AudioData,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		case errors.Is(err, service.ErrNoteValidation):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		default:
			c.Logger().Errorf("save transcription: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("unable to save transcription"))
		}
	}
	return c.JSON(http.StatusOK, util.Message("Transcription saved successfully"))
}

// fetchNotes handles POST /api/fetch-notes
func (h *NoteHandler) fetchNotes(c echo.Context) error {
	var req FetchNotesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if req.OrgID <= 0 || req.EmpID <= 0 || req.ClientID <= 0 {
		return c.JSON(http.StatusBadRequest, util.Error("orgid, empid, and clientid are required"))
	}

	var day *time.Time
	if req.SelectedDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.SelectedDate, time.UTC)
		if err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("selectedDate must be formatted as YYYY-MM-DD"))
		}
		day = &parsed
	}

	notes, err := h.notes.FetchNotes(c.Request().Context(), req.OrgID, req.EmpID, req.ClientID, day)
	if err != nil {
		c.Logger().Errorf("fetch notes: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("unable to fetch notes"))
	}

	entries := make([]NoteEntry, 0, len(notes))
	for _, n := range notes {
		entry := NoteEntry{
			DateTime:  n.DateTime.UTC().Format(time.RFC3339),
			TextNotes: n.TextNotes,
		}
		if len(n.AudioNotes) > 0 {
			encoded := base64.StdEncoding.EncodeToString(n.AudioNotes)
			entry.AudioNotes = &encoded
		}
		entries = append(entries, entry)
	}
	return c.JSON(http.StatusOK, NotesResponse{Notes: entries})
}

// updateNote handles POST /api/update-note
func (h *NoteHandler) updateNote(c echo.Context) error {
	var req UpdateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if req.OrgID <= 0 || req.EmpID <= 0 || req.ClientID <= 0 || req.DateTime == "" || req.NewText == "" {
		return c.JSON(http.StatusBadRequest, util.Error("orgid, empid, clientid, dateTime, and newText are required"))
	}

	at, err := parseNoteTime(req.DateTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("dateTime must be an ISO 8601 timestamp"))
	}

	if err := h.notes.UpdateNoteText(c.Request().Context(), req.OrgID, req.EmpID, req.ClientID, at, req.NewText); err != nil {
		switch {
		case errors.Is(err, service.ErrNoteNotFound):
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		default:
			c.Logger().Errorf("update note: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("unable to update note"))
		}
	}
	return c.JSON(http.StatusOK, util.Message("Transcription updated successfully"))
}

// parseNoteTime accepts RFC 3339 timestamps and the zone-less variant older
// clients send back verbatim from fetch-notes. Zone-less values are read as
// UTC, matching how notes are stored.
func parseNoteTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05.999999", value, time.UTC)
}
