package adminfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"worknest/internal/repositories"
	"worknest/internal/services"
)

var Module = fx.Provide(
	provideAdminService, provideAdminRepo)

func provideAdminRepo(db *gorm.DB) repositories.AdminRepository {
	return repositories.NewAdminRepository(db)
}

func provideAdminService(
	adminRepo repositories.AdminRepository,
	userRepo repositories.UserRepository,
	companyRepo repositories.CompanyRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) services.AdminServiceInterface {
	return services.NewAdminService(adminRepo, userRepo, companyRepo, subscriptionRepo)
}
