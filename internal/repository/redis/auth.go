package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/syamsf/dicoding-forum-api/domain"
)

const KeyRefreshToken = "refresh_token:%s"

type refreshTokenStore struct {
	client *redis.Client
}

var _ domain.RefreshTokenStore = (*refreshTokenStore)(nil)

func NewRefreshTokenStore(client *redis.Client) *refreshTokenStore {
	return &refreshTokenStore{
		client,
	}
}

func (s *refreshTokenStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	key := fmt.Sprintf(KeyRefreshToken, token)
	return s.client.Set(ctx, key, userID, ttl).Err()
}

func (s *refreshTokenStore) Verify(ctx context.Context, token string) (string, error) {
	key := fmt.Sprintf(KeyRefreshToken, token)
	userID, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: refresh token tidak ditemukan di database", domain.ErrBadParamInput)
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (s *refreshTokenStore) Delete(ctx context.Context, token string) error {
	key := fmt.Sprintf(KeyRefreshToken, token)
	deleted, err := s.client.Del(ctx, key).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: refresh token tidak ditemukan di database", domain.ErrBadParamInput)
	}
	return nil
}
