package checkout

import (
	"github.com/CodeWithFin/platypus-website/internal/cart"
	"github.com/CodeWithFin/platypus-website/internal/pricing"
	"github.com/CodeWithFin/platypus-website/internal/promotion"
)

// View is the checkout as the client renders it. Pricing is recomputed
// from the live cart on every read.
type View struct {
	Step   Step   `json:"step"`
	Steps  []Step `json:"steps"`
	Status Status `json:"status"`

	Customer CustomerInfo `json:"customer"`
	Delivery DeliveryInfo `json:"delivery"`
	Payment  PaymentInfo  `json:"payment"`

	Items          []cart.LineItem        `json:"items"`
	ItemCount      int                    `json:"itemCount"`
	DeliveryOption pricing.DeliveryOption `json:"deliveryOption"`
	Promotion      *promotion.Promotion   `json:"promotion,omitempty"`
	Quote          pricing.Quote          `json:"quote"`

	AgeCheckPending bool `json:"ageCheckPending"`
	AgeVerified     bool `json:"ageVerified"`

	CanGoBack bool `json:"canGoBack"`
	CanGoNext bool `json:"canGoNext"`
	CanSubmit bool `json:"canSubmit"`

	Errors    FieldErrors `json:"errors,omitempty"`
	LastError string      `json:"lastError,omitempty"`
	Receipt   *Receipt    `json:"receipt,omitempty"`
	Redirect  string      `json:"redirect,omitempty"`
}

type AgeVerificationRequest struct {
	Confirmed *bool `json:"confirmed" binding:"required"`
}

type PromotionRequest struct {
	Code string `json:"code" binding:"required"`
}
