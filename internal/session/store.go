package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/construction-site/internal/auth"
)

const keyPrefix = "session:"

var ErrNotFound = errors.New("session not found")

type record struct {
	auth.Principal
	CreatedAt time.Time `json:"created_at"`
}

// Store keeps admin sessions in Redis. Each read slides the expiry. A set
// per admin indexes that admin's sessions so they can be revoked together.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}

func (s *Store) Create(ctx context.Context, p auth.Principal) (string, error) {
	id := uuid.NewString()

	b, err := json.Marshal(record{Principal: p, CreatedAt: time.Now().UTC()})
	if err != nil {
		return "", err
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, keyPrefix+id, b, s.ttl)
		pipe.SAdd(ctx, userKey(p.AdminID), id)
		pipe.Expire(ctx, userKey(p.AdminID), s.ttl)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("session: create: %w", err)
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, id string) (auth.Principal, error) {
	if _, err := uuid.Parse(id); err != nil {
		return auth.Principal{}, ErrNotFound
	}

	b, err := s.rdb.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return auth.Principal{}, ErrNotFound
	}
	if err != nil {
		return auth.Principal{}, fmt.Errorf("session: get: %w", err)
	}

	var rec record
	if err := json.Unmarshal(b, &rec); err != nil {
		return auth.Principal{}, ErrNotFound
	}

	_, _ = s.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Expire(ctx, keyPrefix+id, s.ttl)
		pipe.Expire(ctx, userKey(rec.AdminID), s.ttl)
		return nil
	})
	return rec.Principal, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("session: delete: %w", err)
	}
	return nil
}

// DeleteUser revokes every session of one admin.
func (s *Store) DeleteUser(ctx context.Context, adminID uint) error {
	ids, err := s.rdb.SMembers(ctx, userKey(adminID)).Result()
	if err != nil {
		return fmt.Errorf("session: list user sessions: %w", err)
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, keyPrefix+id)
	}
	keys = append(keys, userKey(adminID))

	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("session: delete user sessions: %w", err)
	}
	return nil
}

func userKey(adminID uint) string {
	return fmt.Sprintf("%suser:%d", keyPrefix, adminID)
}
