package cart

import (
	"github.com/CodeWithFin/platypus-website/internal/pricing"
	"github.com/CodeWithFin/platypus-website/internal/promotion"

	"github.com/shopspring/decimal"
)

type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type UpdateQtyRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type ApplyPromotionRequest struct {
	Code string `json:"code"`
}

type LineItemResponse struct {
	LineItem
	LineTotal  decimal.Decimal `json:"lineTotal"`
	PriceLabel string          `json:"priceLabel"`
}

type CartResponse struct {
	Items                   []LineItemResponse `json:"items"`
	TotalItems              int                `json:"totalItems"`
	Subtotal                decimal.Decimal    `json:"subtotal"`
	SubtotalLabel           string             `json:"subtotalLabel"`
	RequiresAgeVerification bool               `json:"requiresAgeVerification"`
}

type SummaryResponse struct {
	pricing.Quote
	Promotion             *promotion.Promotion `json:"promotion"`
	FreeDeliveryThreshold decimal.Decimal      `json:"freeDeliveryThreshold"`
	TotalLabel            string               `json:"totalLabel"`
	DeliveryFeeLabel      string               `json:"deliveryFeeLabel"`
	DiscountLabel         string               `json:"discountLabel"`
}

func toCartResponse(s *Store) CartResponse {
	items := s.Items()
	out := make([]LineItemResponse, 0, len(items))
	for _, li := range items {
		out = append(out, LineItemResponse{
			LineItem:   li,
			LineTotal:  li.LineTotal(),
			PriceLabel: pricing.FormatPrice(li.UnitPrice),
		})
	}

	subtotal := s.TotalPrice()
	return CartResponse{
		Items:                   out,
		TotalItems:              s.TotalItems(),
		Subtotal:                subtotal,
		SubtotalLabel:           pricing.FormatPrice(subtotal),
		RequiresAgeVerification: s.RequiresAgeVerification(),
	}
}

// Summarize prices the cart page: standard delivery and the active promotion.
func Summarize(sess *Session, threshold decimal.Decimal) SummaryResponse {
	standard, _ := pricing.LookupDeliveryOption(pricing.DefaultDeliveryOption)
	promo := sess.Promotion.Active()

	q := pricing.Compute(pricing.QuoteInput{
		Subtotal:        sess.Cart.TotalPrice(),
		Delivery:        standard,
		DiscountPercent: promotion.PercentOf(promo),
		Threshold:       threshold,
	})

	return SummaryResponse{
		Quote:                 q,
		Promotion:             promo,
		FreeDeliveryThreshold: threshold,
		TotalLabel:            pricing.FormatPrice(q.Total),
		DeliveryFeeLabel:      pricing.FormatPrice(q.DeliveryFee),
		DiscountLabel:         pricing.FormatPrice(q.Discount),
	}
}
