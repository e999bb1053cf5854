package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

type QuoteInput struct {
	Subtotal        decimal.Decimal
	Delivery        DeliveryOption
	DiscountPercent decimal.Decimal
	Threshold       decimal.Decimal
}

type Quote struct {
	Subtotal             decimal.Decimal `json:"subtotal"`
	Discount             decimal.Decimal `json:"discount"`
	DeliveryFee          decimal.Decimal `json:"deliveryFee"`
	Total                decimal.Decimal `json:"total"`
	FreeDelivery         bool            `json:"freeDelivery"`
	AmountToFreeDelivery decimal.Decimal `json:"amountToFreeDelivery"`
}

// Discount is subtotal * percent / 100, rounded to cents.
func Discount(subtotal, percent decimal.Decimal) decimal.Decimal {
	if percent.IsZero() || subtotal.IsZero() {
		return decimal.Zero
	}
	return subtotal.Mul(percent).Div(hundred).Round(2)
}

// Compute prices an order: the discount applies to the subtotal only,
// delivery is added after it.
func Compute(in QuoteInput) Quote {
	fee := DeliveryFee(in.Delivery, in.Subtotal, in.Threshold)
	discount := Discount(in.Subtotal, in.DiscountPercent)

	q := Quote{
		Subtotal:     in.Subtotal,
		Discount:     discount,
		DeliveryFee:  fee,
		Total:        in.Subtotal.Sub(discount).Add(fee),
		FreeDelivery: in.Delivery.ID == DeliveryStandard && fee.IsZero(),
	}
	if in.Subtotal.LessThan(in.Threshold) {
		q.AmountToFreeDelivery = in.Threshold.Sub(in.Subtotal)
	}
	return q
}
