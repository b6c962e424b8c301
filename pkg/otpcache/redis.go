package otpcache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) StageData(ctx context.Context, email string, payload []byte, ttl time.Duration) error {
	return s.client.SetEx(ctx, dataKey(email), payload, ttl).Err()
}

func (s *RedisStore) StageOtp(ctx context.Context, email string, code string, ttl time.Duration) error {
	return s.client.SetEx(ctx, otpKey(email), code, ttl).Err()
}

func (s *RedisStore) Data(ctx context.Context, email string) ([]byte, bool, error) {
	payload, err := s.client.Get(ctx, dataKey(email)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (s *RedisStore) Otp(ctx context.Context, email string) (string, bool, error) {
	code, err := s.client.Get(ctx, otpKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return code, true, nil
}

func (s *RedisStore) Clear(ctx context.Context, email string) error {
	return s.client.Del(ctx, dataKey(email), otpKey(email)).Err()
}
