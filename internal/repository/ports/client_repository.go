package ports

import (
	"context"

	"github.com/megamind1212/notesmate-api/internal/domain"
)

type ClientRepository interface {
	CreateClient(ctx context.Context, c *domain.Client) error
	FindClient(ctx context.Context, orgID, clientID int64) (*domain.Client, error)
	MaxClientID(ctx context.Context, orgID int64) (int64, error)
	ListClients(ctx context.Context, orgID int64) ([]domain.Client, error)
	CountNotesByClient(ctx context.Context, orgID int64, clientIDs []int64) (map[int64]int64, error)
}
