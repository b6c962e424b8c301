package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"worknest/internal/models/db_models"
)

type ChatRepository interface {
	InsertChat(ctx context.Context, chat *db_models.Chat) error
	FindChatByID(ctx context.Context, id uuid.UUID) (*db_models.Chat, error)
	FindChatByPair(ctx context.Context, userID uuid.UUID, companyID uuid.UUID) (*db_models.Chat, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Chat, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]db_models.Chat, error)

	InsertMessage(ctx context.Context, message *db_models.ChatMessage) error
	ListMessages(ctx context.Context, chatID uuid.UUID) ([]db_models.ChatMessage, error)
	TouchLastMessage(ctx context.Context, chatID uuid.UUID, content string, at int64) error
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) InsertChat(ctx context.Context, chat *db_models.Chat) error {
	return r.db.WithContext(ctx).Create(chat).Error
}

func (r *chatRepository) FindChatByID(ctx context.Context, id uuid.UUID) (*db_models.Chat, error) {
	var chat db_models.Chat
	err := r.db.WithContext(ctx).First(&chat, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chat, nil
}

func (r *chatRepository) FindChatByPair(ctx context.Context, userID uuid.UUID, companyID uuid.UUID) (*db_models.Chat, error) {
	var chat db_models.Chat
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND company_id = ?", userID, companyID).
		First(&chat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chat, nil
}

func (r *chatRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Chat, error) {
	var chats []db_models.Chat
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_message_at DESC").
		Find(&chats).Error
	if err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *chatRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]db_models.Chat, error) {
	var chats []db_models.Chat
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("last_message_at DESC").
		Find(&chats).Error
	if err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *chatRepository) InsertMessage(ctx context.Context, message *db_models.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *chatRepository) ListMessages(ctx context.Context, chatID uuid.UUID) ([]db_models.ChatMessage, error) {
	var messages []db_models.ChatMessage
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *chatRepository) TouchLastMessage(ctx context.Context, chatID uuid.UUID, content string, at int64) error {
	res := r.db.WithContext(ctx).Model(&db_models.Chat{}).
		Where("id = ?", chatID).
		Updates(map[string]interface{}{
			"last_message":    content,
			"last_message_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
