package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Vinaypunani/build-gaming/internal/domain"
)

const keyPrefix = "builder:session:"

// Store guarda cada armado como JSON bajo builder:session:<id>. Cada Save
// renueva el TTL.
type Store struct {
	client redis.Cmdable
	ttl    time.Duration
}

func New(client redis.Cmdable, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Open crea el cliente a partir de una URL redis:// y verifica la conexión.
func Open(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func Key(id string) string { return keyPrefix + id }

func (s *Store) Load(ctx context.Context, id string) (*domain.Build, error) {
	raw, err := s.client.Get(ctx, Key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.NewBuild(), nil
	}
	if err != nil {
		return nil, err
	}
	b := domain.NewBuild()
	if err := json.Unmarshal(raw, b); err != nil {
		return nil, fmt.Errorf("sesión %s corrupta: %w", id, err)
	}
	return b, nil
}

func (s *Store) Save(ctx context.Context, id string, b *domain.Build) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, Key(id), raw, s.ttl).Err()
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, Key(id)).Err()
}
