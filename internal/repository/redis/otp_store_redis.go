package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/megamind1212/notesmate-api/internal/domain"
)

// OTPStore keeps passcode records as redis hashes. Records carry their
// creation time and are judged expired at validation, not by key TTL, so
// the behavior matches the SQL-backed store exactly.
type OTPStore struct {
	client *redis.Client
}

func NewOTPStore(addr, password string) *OTPStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	return &OTPStore{client: client}
}

func (s *OTPStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *OTPStore) Upsert(ctx context.Context, key, code string, createdAt time.Time) error {
	return s.client.HSet(ctx, recordKey(key),
		"code", code,
		"created_at", createdAt.UTC().Format(time.RFC3339Nano),
	).Err()
}

func (s *OTPStore) Find(ctx context.Context, key string) (*domain.OTPRecord, error) {
	fields, err := s.client.HGetAll(ctx, recordKey(key)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, redis.Nil
	}
	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"])
	if err != nil {
		return nil, fmt.Errorf("parse created_at for %s: %w", key, err)
	}
	return &domain.OTPRecord{
		Key:       key,
		Code:      fields["code"],
		CreatedAt: createdAt,
	}, nil
}

func (s *OTPStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, recordKey(key)).Err()
}

func recordKey(key string) string {
	return "otp:" + key
}
