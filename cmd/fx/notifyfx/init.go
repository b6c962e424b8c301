package notifyfx

import (
	"go.uber.org/fx"

	"worknest/internal/services"
)

var Module = fx.Provide(services.NewNotificationHub)
