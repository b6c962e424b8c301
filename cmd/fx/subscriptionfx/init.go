package subscriptionfx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"worknest/internal/infra"
	"worknest/internal/repositories"
	"worknest/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionService, provideSubscriptionRepo, provideGateway)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideGateway() services.PaymentGateway {
	return infra.NewRazorpayGateway()
}

func provideSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	gateway services.PaymentGateway,
) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subscriptionRepo, gateway, os.Getenv("RAZORPAY_KEY_SECRET"))
}
