package domain

import (
	"context"
	"errors"
)

// ErrPaymentFailed is the single failure the payment gateway adapter reports.
// The adapter logs the underlying cause (non-2xx status, network error) and
// callers surface a generic failure to the user; payment calls are never
// retried automatically.
var ErrPaymentFailed = errors.New("payment request failed")

type Payment struct {
	Identifier string         `json:"identifier" bson:"identifier"`
	Amount     float64        `json:"amount" bson:"amount"`
	Memo       string         `json:"memo" bson:"memo"`
	Metadata   map[string]any `json:"metadata,omitempty" bson:"metadata,omitempty"`
	UserUID    string         `json:"user_uid,omitempty" bson:"user_uid,omitempty"`
}

type CreatePaymentParams struct {
	Amount   float64
	Memo     string
	Metadata map[string]any
	UserUID  string
}

// PaymentGateway wraps the Pi Network payment API. The pi-payment workflow
// node does not use it; only the payment endpoints do.
type PaymentGateway interface {
	CreatePayment(ctx context.Context, p CreatePaymentParams) (*Payment, error)
	CompletePayment(ctx context.Context, paymentID string, txid string) bool
}
