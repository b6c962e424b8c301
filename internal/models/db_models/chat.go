package db_models

import "github.com/google/uuid"

// Chat is one seeker-company conversation; at most one exists per pair.
type Chat struct {
	BaseModel
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_chat_pair"`
	CompanyID uuid.UUID `gorm:"uniqueIndex:idx_chat_pair"`

	// Denormalized for listing without joins, as the original schema does.
	UserName    string
	CompanyName string

	LastMessage   string
	LastMessageAt int64

	Messages []ChatMessage `gorm:"foreignKey:ChatID"`
}

type ChatMessage struct {
	BaseModel
	ChatID     uuid.UUID `gorm:"index"`
	SenderID   uuid.UUID
	SenderRole string // "user" or "company"
	Content    string
}
