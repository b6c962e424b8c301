package request_models

import "github.com/google/uuid"

type CreateOrderRequest struct {
	PlanID uuid.UUID `json:"plan_id" binding:"required"`
}

type VerifyPaymentRequest struct {
	OrderID   string    `json:"razorpay_order_id" binding:"required"`
	PaymentID string    `json:"razorpay_payment_id" binding:"required"`
	Signature string    `json:"razorpay_signature" binding:"required"`
	PlanID    uuid.UUID `json:"plan_id" binding:"required"`
}
