package ports

import (
	"context"
	"time"

	"github.com/megamind1212/notesmate-api/internal/domain"
)

type NoteRepository interface {
	Insert(ctx context.Context, n *domain.Note) error
	ListByClient(ctx context.Context, orgID, empID, clientID int64, day *time.Time) ([]domain.Note, error)
	UpdateText(ctx context.Context, orgID, empID, clientID int64, at time.Time, text string) (int64, error)
}
