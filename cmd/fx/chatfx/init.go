package chatfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"worknest/internal/repositories"
	"worknest/internal/services"
)

var Module = fx.Provide(
	provideChatRepo,
	provideChatService,
)

func provideChatRepo(db *gorm.DB) repositories.ChatRepository {
	return repositories.NewChatRepository(db)
}

func provideChatService(
	chatRepo repositories.ChatRepository,
	userRepo repositories.UserRepository,
	companyRepo repositories.CompanyRepository,
	hub *services.NotificationHub) services.ChatServiceInterface {
	return services.NewChatService(chatRepo, userRepo, companyRepo, hub)
}
