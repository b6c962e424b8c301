package userfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"worknest/internal/repositories"
	"worknest/internal/services"
	"worknest/pkg/otpcache"
)

var Module = fx.Provide(
	provideUserService, provideUserRepo)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideUserService(
	userRepo repositories.UserRepository,
	companyRepo repositories.CompanyRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
	cache otpcache.Store,
	mailService services.IMailService,
	storage services.FileStorage,
	hub *services.NotificationHub,
) services.UserServiceInterface {
	return services.NewUserService(userRepo, companyRepo, jobRepo, applicationRepo, cache, mailService, storage, hub)
}
