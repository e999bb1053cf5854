package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusConfirmed = "confirmed"

	PaymentMethodMpesa = "mpesa"
	PaymentMethodCard  = "card"
)

type Item struct {
	ProductID      string          `json:"id"`
	Name           string          `json:"name"`
	UnitPrice      decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	Image          string          `json:"image,omitempty"`
	Brand          string          `json:"brand,omitempty"`
	AlcoholContent float64         `json:"alcoholContent"`
}

type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type Delivery struct {
	Address      string `json:"address"`
	City         string `json:"city"`
	County       string `json:"county,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	Option       string `json:"option"`
}

type Payment struct {
	Method string          `json:"method"`
	Phone  string          `json:"phone,omitempty"`
	Amount decimal.Decimal `json:"amount"`
}

// Order is the snapshot sent to the order service when a checkout is
// submitted.
type Order struct {
	Items         []Item          `json:"items"`
	Customer      Customer        `json:"customer"`
	Delivery      Delivery        `json:"delivery"`
	Payment       Payment         `json:"payment"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	DeliveryFee   decimal.Decimal `json:"deliveryFee"`
	Total         decimal.Decimal `json:"totalAmount"`
	PromotionCode string          `json:"promotionCode,omitempty"`
}

// Placed is an order as recorded by the order service.
type Placed struct {
	Order
	ID                string    `json:"id"`
	Number            string    `json:"number"`
	Status            string    `json:"status"`
	PaymentStatus     string    `json:"paymentStatus,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	EstimatedDelivery time.Time `json:"estimatedDelivery,omitempty"`
}

//go:generate mockgen -source=order.go -destination=../mock/order/order_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, o Order) (Placed, error)
	Get(ctx context.Context, id string) (Placed, error)
}
