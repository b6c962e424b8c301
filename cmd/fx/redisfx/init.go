package redisfx

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"worknest/internal/infra"
	"worknest/pkg/otpcache"
)

var Module = fx.Provide(
	provideRedis, provideOtpStore)

func provideRedis() *redis.Client {
	client, err := infra.InitRedis(context.Background())
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	return client
}

func provideOtpStore(client *redis.Client) otpcache.Store {
	return otpcache.NewRedisStore(client)
}
