package infra

import (
	"context"
	"fmt"
	"os"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayGateway creates orders against the Razorpay Orders API. The SDK does
// not thread a context through, so ctx is accepted only for interface shape.
type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway() *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(os.Getenv("RAZORPAY_KEY_ID"), os.Getenv("RAZORPAY_KEY_SECRET")),
	}
}

func (g *RazorpayGateway) CreateOrder(_ context.Context, amountMinor int64, currency string, receipt string) (string, error) {
	body := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}
	order, err := g.client.Order.Create(body, nil)
	if err != nil {
		return "", fmt.Errorf("create razorpay order: %w", err)
	}
	orderID, ok := order["id"].(string)
	if !ok {
		return "", fmt.Errorf("razorpay order response missing id")
	}
	return orderID, nil
}
