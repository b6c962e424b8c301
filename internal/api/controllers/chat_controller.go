package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"worknest/internal/models/request_models"
	"worknest/internal/services"
	"worknest/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// OpenUserChat godoc
// @Summary Start or resume a conversation with a company
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.OpenChatRequest true "Chat payload (company_id)"
// @Success 200 {object} utils.APIResponse
// @Router /user/chats [post]
func (ch *ChatController) OpenUserChat(c *gin.Context) {
	userID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	var req request_models.OpenChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CompanyID == uuid.Nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	chat, err := ch.chatService.OpenChat(c.Request.Context(), userID, req.CompanyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, chat, "Chat ready")
}

// OpenCompanyChat godoc
// @Summary Start or resume a conversation with a job seeker
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.OpenChatRequest true "Chat payload (user_id)"
// @Success 200 {object} utils.APIResponse
// @Router /company/chats [post]
func (ch *ChatController) OpenCompanyChat(c *gin.Context) {
	companyID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	var req request_models.OpenChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == uuid.Nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	chat, err := ch.chatService.OpenChat(c.Request.Context(), req.UserID, companyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, chat, "Chat ready")
}

// UserChats godoc
// @Summary List the seeker's conversations
// @Tags Chat
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /user/chats [get]
func (ch *ChatController) UserChats(c *gin.Context) {
	userID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	chats, err := ch.chatService.UserChats(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, chats, "Chats fetched successfully")
}

// CompanyChats godoc
// @Summary List the company's conversations
// @Tags Chat
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /company/chats [get]
func (ch *ChatController) CompanyChats(c *gin.Context) {
	companyID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	chats, err := ch.chatService.CompanyChats(c.Request.Context(), companyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, chats, "Chats fetched successfully")
}

// Messages godoc
// @Summary Fetch a conversation's message history
// @Tags Chat
// @Produce json
// @Param id path string true "Chat id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /user/chats/{id}/messages [get]
func (ch *ChatController) Messages(c *gin.Context) {
	requesterID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	chatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid chat id")
		return
	}

	messages, err := ch.chatService.Messages(c.Request.Context(), chatID, requesterID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "Messages fetched successfully")
}

// SendMessage godoc
// @Summary Send a message in a conversation
// @Description Persists the message and pushes it to the other side in real time
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "Chat id"
// @Param request body request_models.SendMessageRequest true "Message payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /user/chats/{id}/messages [post]
func (ch *ChatController) SendMessage(c *gin.Context) {
	senderID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	chatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid chat id")
		return
	}

	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	message, err := ch.chatService.SendMessage(c.Request.Context(), chatID, senderID, c.GetString("role"), req.Content)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, message, "Message sent")
}
