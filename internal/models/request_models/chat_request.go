package request_models

import "github.com/google/uuid"

// OpenChatRequest starts (or resumes) a conversation. A seeker supplies the
// company id; a company supplies the user id.
type OpenChatRequest struct {
	CompanyID uuid.UUID `json:"company_id"`
	UserID    uuid.UUID `json:"user_id"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}
