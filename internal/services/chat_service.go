package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"worknest/internal/models/db_models"
	"worknest/internal/repositories"
	"worknest/pkg/utils"
)

type ChatServiceInterface interface {
	// OpenChat returns the conversation between the pair, creating it on
	// first contact. Safe to call from either side.
	OpenChat(ctx context.Context, userID uuid.UUID, companyID uuid.UUID) (*db_models.Chat, error)
	UserChats(ctx context.Context, userID uuid.UUID) ([]db_models.Chat, error)
	CompanyChats(ctx context.Context, companyID uuid.UUID) ([]db_models.Chat, error)
	Messages(ctx context.Context, chatID uuid.UUID, requesterID uuid.UUID) ([]db_models.ChatMessage, error)
	SendMessage(ctx context.Context, chatID uuid.UUID, senderID uuid.UUID, senderRole string, content string) (*db_models.ChatMessage, error)
}

type ChatService struct {
	chatRepo    repositories.ChatRepository
	userRepo    repositories.UserRepository
	companyRepo repositories.CompanyRepository
	hub         *NotificationHub
}

func NewChatService(
	chatRepo repositories.ChatRepository,
	userRepo repositories.UserRepository,
	companyRepo repositories.CompanyRepository,
	hub *NotificationHub,
) ChatServiceInterface {
	return &ChatService{
		chatRepo:    chatRepo,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		hub:         hub,
	}
}

func (s *ChatService) OpenChat(ctx context.Context, userID uuid.UUID, companyID uuid.UUID) (*db_models.Chat, error) {
	existing, err := s.chatRepo.FindChatByPair(ctx, userID, companyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return existing, nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if company == nil {
		return nil, utils.ErrCompanyNotFound
	}

	chat := &db_models.Chat{
		UserID:      userID,
		CompanyID:   companyID,
		UserName:    user.FirstName + " " + user.LastName,
		CompanyName: company.Name,
	}
	if err := s.chatRepo.InsertChat(ctx, chat); err != nil {
		return nil, utils.ErrWriteFailed
	}
	return chat, nil
}

func (s *ChatService) UserChats(ctx context.Context, userID uuid.UUID) ([]db_models.Chat, error) {
	chats, err := s.chatRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return chats, nil
}

func (s *ChatService) CompanyChats(ctx context.Context, companyID uuid.UUID) ([]db_models.Chat, error) {
	chats, err := s.chatRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return chats, nil
}

func (s *ChatService) Messages(ctx context.Context, chatID uuid.UUID, requesterID uuid.UUID) ([]db_models.ChatMessage, error) {
	chat, err := s.chatRepo.FindChatByID(ctx, chatID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	// A conversation is visible to its two participants only; outsiders get
	// the same answer as for a chat that never existed.
	if chat == nil || (chat.UserID != requesterID && chat.CompanyID != requesterID) {
		return nil, utils.ErrChatNotFound
	}

	messages, err := s.chatRepo.ListMessages(ctx, chatID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return messages, nil
}

func (s *ChatService) SendMessage(ctx context.Context, chatID uuid.UUID, senderID uuid.UUID, senderRole string, content string) (*db_models.ChatMessage, error) {
	chat, err := s.chatRepo.FindChatByID(ctx, chatID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if chat == nil || (chat.UserID != senderID && chat.CompanyID != senderID) {
		return nil, utils.ErrChatNotFound
	}

	message := &db_models.ChatMessage{
		ChatID:     chatID,
		SenderID:   senderID,
		SenderRole: senderRole,
		Content:    content,
	}
	if err := s.chatRepo.InsertMessage(ctx, message); err != nil {
		return nil, utils.ErrWriteFailed
	}

	if err := s.chatRepo.TouchLastMessage(ctx, chatID, content, time.Now().Unix()); err != nil {
		log.Printf("Failed to update chat preview for %s: %v", chatID, err)
	}

	recipient := chat.CompanyID
	if senderID == chat.CompanyID {
		recipient = chat.UserID
	}
	s.hub.Publish(recipient.String(), Event{
		Type: EventChatMessage,
		Payload: map[string]interface{}{
			"chat_id":     chatID,
			"message_id":  message.ID,
			"sender_role": senderRole,
			"content":     content,
		},
	})

	return message, nil
}
