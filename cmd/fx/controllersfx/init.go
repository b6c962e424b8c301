package controllersfx

import (
	"go.uber.org/fx"

	"worknest/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewUserController,
	controllers.NewCompanyController,
	controllers.NewAdminController,
	controllers.NewSubscriptionController,
	controllers.NewNotificationController,
	controllers.NewChatController,
)
