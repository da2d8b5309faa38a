package ports

import (
	"context"
	"time"

	"github.com/megamind1212/notesmate-api/internal/domain"
)

type OTPStore interface {
	Upsert(ctx context.Context, key, code string, createdAt time.Time) error
	Find(ctx context.Context, key string) (*domain.OTPRecord, error)
	Delete(ctx context.Context, key string) error
}
