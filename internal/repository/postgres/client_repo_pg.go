package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/megamind1212/notesmate-api/internal/domain"
)

type ClientRepository struct {
	db *sqlx.DB
}

func NewClientRepo(db *sqlx.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) CreateClient(ctx context.Context, c *domain.Client) error {
	const query = `
        INSERT INTO clients (clientid, orgid, clientname, clientshortname, clientphone, clientemail)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.ExecContext(ctx, query, c.ClientID, c.OrgID, c.Name, c.ShortName, c.Phone, c.Email)
	return err
}

func (r *ClientRepository) FindClient(ctx context.Context, orgID, clientID int64) (*domain.Client, error) {
	const query = `
        SELECT clientid, orgid, clientname, clientshortname, clientphone, clientemail, created_at
        FROM clients
        WHERE orgid = $1 AND clientid = $2
    `
	var client domain.Client
	if err := r.db.GetContext(ctx, &client, query, orgID, clientID); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) MaxClientID(ctx context.Context, orgID int64) (int64, error) {
	const query = `SELECT COALESCE(MAX(clientid), 0) FROM clients WHERE orgid = $1`
	var max int64
	if err := r.db.GetContext(ctx, &max, query, orgID); err != nil {
		return 0, err
	}
	return max, nil
}

func (r *ClientRepository) ListClients(ctx context.Context, orgID int64) ([]domain.Client, error) {
	const query = `
        SELECT clientid, orgid, clientname, clientshortname, clientphone, clientemail, created_at
        FROM clients
        WHERE orgid = $1
        ORDER BY clientid ASC
    `
	clients := []domain.Client{}
	if err := r.db.SelectContext(ctx, &clients, query, orgID); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientRepository) CountNotesByClient(ctx context.Context, orgID int64, clientIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(clientIDs))
	if len(clientIDs) == 0 {
		return counts, nil
	}

	const query = `
        SELECT clientid, COUNT(*) AS note_count
        FROM notes
        WHERE orgid = $1 AND clientid = ANY($2)
        GROUP BY clientid
    `
	rows := []struct {
		ClientID  int64 `db:"clientid"`
		NoteCount int64 `db:"note_count"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query, orgID, pq.Array(clientIDs)); err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.ClientID] = row.NoteCount
	}
	return counts, nil
}
