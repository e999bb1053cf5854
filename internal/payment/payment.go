package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type MobileMoneyRequest struct {
	OrderID string          `json:"orderId"`
	Phone   string          `json:"phone"`
	Amount  decimal.Decimal `json:"amount"`
}

// Initiation is the gateway's answer to a push request. The phone owner
// still has to approve it.
type Initiation struct {
	CheckoutReference string `json:"checkoutId"`
	Status            string `json:"status"`
	Message           string `json:"message,omitempty"`
}

type StatusResult struct {
	Status        string `json:"status"`
	TransactionID string `json:"transactionId,omitempty"`
	Message       string `json:"message,omitempty"`
}

func (s StatusResult) Completed() bool {
	return s.Status == StatusCompleted
}

//go:generate mockgen -source=payment.go -destination=../mock/payment/payment_mock.go -package=mock
type Service interface {
	InitiateMobileMoney(ctx context.Context, req MobileMoneyRequest) (Initiation, error)
	CheckStatus(ctx context.Context, checkoutReference string) (StatusResult, error)
}
