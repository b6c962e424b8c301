package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"worknest/internal/models/db_models"
	"worknest/internal/models/request_models"
	"worknest/internal/models/response_models"
	"worknest/internal/repositories"
	"worknest/pkg/utils"
)

// PaymentGateway creates provider-side orders. Signature verification is done
// locally against the shared secret, so only order creation crosses the wire.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency string, receipt string) (orderID string, err error)
}

type SubscriptionServiceInterface interface {
	ListPlans(ctx context.Context) ([]db_models.Plan, error)
	CreateOrder(ctx context.Context, userID uuid.UUID, planID uuid.UUID) (*response_models.OrderResponse, error)
	VerifyPayment(ctx context.Context, userID uuid.UUID, request request_models.VerifyPaymentRequest) (*db_models.Subscription, error)
	CurrentSubscription(ctx context.Context, userID uuid.UUID) (*db_models.Subscription, error)
	History(ctx context.Context, userID uuid.UUID) ([]db_models.SubscriptionHistory, error)
}

type SubscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	gateway          PaymentGateway
	signingSecret    string
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	gateway PaymentGateway,
	signingSecret string,
) SubscriptionServiceInterface {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		gateway:          gateway,
		signingSecret:    signingSecret,
	}
}

func (s *SubscriptionService) ListPlans(ctx context.Context) ([]db_models.Plan, error) {
	plans, err := s.subscriptionRepo.ListPlans(ctx, true)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plans, nil
}

func (s *SubscriptionService) CreateOrder(ctx context.Context, userID uuid.UUID, planID uuid.UUID) (*response_models.OrderResponse, error) {
	plan, err := s.subscriptionRepo.FindPlanByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil || !plan.IsActive {
		return nil, utils.ErrPlanNotFound
	}

	receipt := fmt.Sprintf("rec_%s_%s_%d", userID.String()[:6], planID.String()[:6], time.Now().Unix())
	orderID, err := s.gateway.CreateOrder(ctx, plan.PriceMinor, plan.Currency, receipt)
	if err != nil {
		log.Printf("Failed to create payment order for plan %s: %v", planID, err)
		return nil, err
	}

	return &response_models.OrderResponse{
		OrderID:  orderID,
		Amount:   plan.PriceMinor,
		Currency: plan.Currency,
		Receipt:  receipt,
	}, nil
}

func (s *SubscriptionService) VerifyPayment(ctx context.Context, userID uuid.UUID, request request_models.VerifyPaymentRequest) (*db_models.Subscription, error) {
	if !utils.VerifyPaymentSignature(s.signingSecret, request.OrderID, request.PaymentID, request.Signature) {
		return nil, utils.ErrInvalidSignature
	}

	plan, err := s.subscriptionRepo.FindPlanByID(ctx, request.PlanID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	// Deactivate-then-insert, best effort. A failure here leaves the old
	// subscription current and the payment unrecorded; the provider-side
	// payment id lets support reconcile manually.
	if err := s.subscriptionRepo.DeactivateCurrent(ctx, userID); err != nil {
		log.Printf("Failed to deactivate current subscription for user %s: %v", userID, err)
	}

	now := time.Now().Unix()
	sub := &db_models.Subscription{
		UserID:     userID,
		PlanID:     plan.ID,
		PlanName:   plan.Name,
		PriceMinor: plan.PriceMinor,
		Features:   plan.Features,
		StartsAt:   now,
		EndsAt:     now + int64(plan.DurationDays)*24*3600,
		PaymentID:  request.PaymentID,
		Status:     db_models.SubStatusActive,
		IsCurrent:  true,
	}
	if err := s.subscriptionRepo.InsertSubscription(ctx, sub); err != nil {
		return nil, utils.ErrWriteFailed
	}

	history := &db_models.SubscriptionHistory{
		UserID:     userID,
		PlanID:     plan.ID,
		PlanName:   plan.Name,
		PriceMinor: plan.PriceMinor,
		StartsAt:   sub.StartsAt,
		EndsAt:     sub.EndsAt,
	}
	if err := s.subscriptionRepo.InsertHistory(ctx, history); err != nil {
		log.Printf("Failed to record subscription history for user %s: %v", userID, err)
	}

	return sub, nil
}

func (s *SubscriptionService) CurrentSubscription(ctx context.Context, userID uuid.UUID) (*db_models.Subscription, error) {
	sub, err := s.subscriptionRepo.CurrentForUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubscriptionNotFound
	}
	if sub.EndsAt < time.Now().Unix() {
		return nil, utils.ErrSubscriptionNotFound
	}
	return sub, nil
}

func (s *SubscriptionService) History(ctx context.Context, userID uuid.UUID) ([]db_models.SubscriptionHistory, error) {
	records, err := s.subscriptionRepo.HistoryForUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return records, nil
}
