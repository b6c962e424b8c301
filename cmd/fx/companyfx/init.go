package companyfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"worknest/internal/repositories"
	"worknest/internal/services"
	"worknest/pkg/otpcache"
)

var Module = fx.Provide(
	provideCompanyService, provideCompanyRepo, provideJobRepo, provideApplicationRepo)

func provideCompanyRepo(db *gorm.DB) repositories.CompanyRepository {
	return repositories.NewCompanyRepository(db)
}

func provideJobRepo(db *gorm.DB) repositories.JobRepository {
	return repositories.NewJobRepository(db)
}

func provideApplicationRepo(db *gorm.DB) repositories.ApplicationRepository {
	return repositories.NewApplicationRepository(db)
}

func provideCompanyService(
	companyRepo repositories.CompanyRepository,
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	cache otpcache.Store,
	mailService services.IMailService,
	storage services.FileStorage,
	hub *services.NotificationHub,
) services.CompanyServiceInterface {
	return services.NewCompanyService(companyRepo, userRepo, jobRepo, applicationRepo, subscriptionRepo, cache, mailService, storage, hub)
}
