package storagefx

import (
	"context"
	"log"

	"go.uber.org/fx"

	"worknest/internal/infra"
	"worknest/internal/services"
)

var Module = fx.Provide(provideStorage)

func provideStorage() services.FileStorage {
	storage, err := infra.NewS3Storage(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}
	return storage
}
