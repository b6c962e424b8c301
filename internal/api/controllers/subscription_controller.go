package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worknest/internal/models/request_models"
	"worknest/internal/services"
	"worknest/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

// ListPlans godoc
// @Summary List purchasable plans
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /user/plans [get]
func (s *SubscriptionController) ListPlans(c *gin.Context) {
	plans, err := s.subscriptionService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

// CreateOrder godoc
// @Summary Create a payment order for a plan
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body request_models.CreateOrderRequest true "Order payload"
// @Success 200 {object} utils.APIResponse
// @Router /user/subscription/order [post]
func (s *SubscriptionController) CreateOrder(c *gin.Context) {
	userID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	var req request_models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	order, err := s.subscriptionService.CreateOrder(c.Request.Context(), userID, req.PlanID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, order, "Order created successfully")
}

// VerifyPayment godoc
// @Summary Verify a completed checkout and activate the subscription
// @Description Checks the gateway signature before recording anything
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body request_models.VerifyPaymentRequest true "Checkout payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /user/subscription/verify [post]
func (s *SubscriptionController) VerifyPayment(c *gin.Context) {
	userID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	var req request_models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sub, err := s.subscriptionService.VerifyPayment(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sub, "Subscription activated successfully")
}

// Current godoc
// @Summary Get the active subscription
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /user/subscription [get]
func (s *SubscriptionController) Current(c *gin.Context) {
	userID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	sub, err := s.subscriptionService.CurrentSubscription(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sub, "Subscription fetched successfully")
}

// History godoc
// @Summary List past subscription purchases
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /user/subscription/history [get]
func (s *SubscriptionController) History(c *gin.Context) {
	userID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	records, err := s.subscriptionService.History(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, records, "Subscription history fetched successfully")
}
