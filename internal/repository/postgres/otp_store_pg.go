package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/megamind1212/notesmate-api/internal/domain"
)

type OTPStore struct {
	db *sqlx.DB
}

func NewOTPStore(db *sqlx.DB) *OTPStore {
	return &OTPStore{db: db}
}

func (s *OTPStore) Upsert(ctx context.Context, key, code string, createdAt time.Time) error {
	const query = `
        INSERT INTO otps (key, code, created_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (key)
        DO UPDATE SET code = EXCLUDED.code, created_at = EXCLUDED.created_at
    `
	_, err := s.db.ExecContext(ctx, query, key, code, createdAt)
	return err
}

func (s *OTPStore) Find(ctx context.Context, key string) (*domain.OTPRecord, error) {
	const query = `
        SELECT key, code, created_at
        FROM otps
        WHERE key = $1
    `
	var record domain.OTPRecord
	if err := s.db.GetContext(ctx, &record, query, key); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *OTPStore) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM otps WHERE key = $1`
	_, err := s.db.ExecContext(ctx, query, key)
	return err
}
