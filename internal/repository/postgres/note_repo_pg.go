package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/megamind1212/notesmate-api/internal/domain"
)

type NoteRepository struct {
	db *sqlx.DB
}

func NewNoteRepo(db *sqlx.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Insert(ctx context.Context, n *domain.Note) error {
	const query = `
        INSERT INTO notes (orgid, empid, clientid, meetingid, datetime, audionotes, textnotes)
        VALUES ($1, $2, $3, nextval('notes_seq'), $4, $5, $6)
        RETURNING meetingid
    `
	row := r.db.QueryRowxContext(ctx, query, n.OrgID, n.EmpID, n.ClientID, n.DateTime, n.AudioNotes, n.TextNotes)
	return row.Scan(&n.MeetingID)
}

func (r *NoteRepository) ListByClient(ctx context.Context, orgID, empID, clientID int64, day *time.Time) ([]domain.Note, error) {
	query := `
        SELECT orgid, empid, clientid, meetingid, datetime, audionotes, textnotes
        FROM notes
        WHERE orgid = $1 AND empid = $2 AND clientid = $3
    `
	args := []any{orgID, empID, clientID}
	if day != nil {
		query += ` AND datetime >= $4 AND datetime < $5`
		args = append(args, *day, day.Add(24*time.Hour))
	}
	query += ` ORDER BY datetime DESC`

	notes := []domain.Note{}
	if err := r.db.SelectContext(ctx, &notes, query, args...); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NoteRepository) UpdateText(ctx context.Context, orgID, empID, clientID int64, at time.Time, text string) (int64, error) {
	const query = `
        UPDATE notes
        SET textnotes = $5
        WHERE orgid = $1 AND empid = $2 AND clientid = $3 AND datetime = $4
    `
	res, err := r.db.ExecContext(ctx, query, orgID, empID, clientID, at, text)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
