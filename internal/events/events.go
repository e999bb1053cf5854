package events

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeOrderPlaced = "ORDER_PLACED"
	AggregateOrder  = "ORDER"

	HeaderEventType     = "event_type"
	HeaderAggregateType = "aggregate_type"
)

type OrderPlaced struct {
	OrderID          string          `json:"order_id"`
	OrderNumber      string          `json:"order_number"`
	Owner            string          `json:"owner"`
	CustomerName     string          `json:"customer_name"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	ItemCount        int             `json:"item_count"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	Discount         decimal.Decimal `json:"discount"`
	DeliveryFee      decimal.Decimal `json:"delivery_fee"`
	Total            decimal.Decimal `json:"total"`
	PaymentMethod    string          `json:"payment_method"`
	PaymentReference string          `json:"payment_reference,omitempty"`
	DeliveryOption   string          `json:"delivery_option"`
	City             string          `json:"city"`
	PlacedAt         time.Time       `json:"placed_at"`
}

//go:generate mockgen -source=events.go -destination=../mock/events/events_mock.go -package=mock
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, e OrderPlaced) error
}

type noop struct{}

// NewNoop returns a publisher that drops everything, used when no broker
// is configured.
func NewNoop() Publisher {
	return noop{}
}

func (noop) PublishOrderPlaced(context.Context, OrderPlaced) error {
	return nil
}
