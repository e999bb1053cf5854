package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DeliveryStandard = "standard"
	DeliveryExpress  = "express"
	DeliverySameDay  = "same-day"

	DefaultDeliveryOption = DeliveryStandard
)

// DefaultFreeDeliveryThreshold applies when configuration does not override it.
var DefaultFreeDeliveryThreshold = decimal.NewFromInt(3000)

type DeliveryOption struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Fee         decimal.Decimal `json:"fee"`
}

var deliveryOptions = []DeliveryOption{
	{ID: DeliveryStandard, Name: "Standard Delivery", Description: "2-3 business days", Fee: decimal.NewFromInt(200)},
	{ID: DeliveryExpress, Name: "Express Delivery", Description: "Next business day", Fee: decimal.NewFromInt(500)},
	{ID: DeliverySameDay, Name: "Same-Day Delivery", Description: "Within 4-6 hours (Nairobi only)", Fee: decimal.NewFromInt(800)},
}

// DeliveryOptions lists the options cheapest first.
func DeliveryOptions() []DeliveryOption {
	out := make([]DeliveryOption, len(deliveryOptions))
	copy(out, deliveryOptions)
	return out
}

func LookupDeliveryOption(id string) (DeliveryOption, bool) {
	for _, o := range deliveryOptions {
		if o.ID == id {
			return o, true
		}
	}
	return DeliveryOption{}, false
}

// DeliveryFee charges the option's fee except for standard delivery on a
// subtotal at or above the threshold.
func DeliveryFee(option DeliveryOption, subtotal, threshold decimal.Decimal) decimal.Decimal {
	if option.ID == DeliveryStandard && subtotal.GreaterThanOrEqual(threshold) {
		return decimal.Zero
	}
	return option.Fee
}

var locationFees = map[string]int64{
	"nakuru":  200,
	"nairobi": 300,
	"mombasa": 400,
	"kisumu":  350,
	"eldoret": 300,
}

const defaultLocationFee = 250

// LocationDeliveryFee is the per-town table used for delivery estimates.
// Nakuru orders at or above the threshold ship free.
func LocationDeliveryFee(subtotal decimal.Decimal, location string, threshold decimal.Decimal) decimal.Decimal {
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" {
		loc = "nakuru"
	}
	if loc == "nakuru" && subtotal.GreaterThanOrEqual(threshold) {
		return decimal.Zero
	}
	if fee, ok := locationFees[loc]; ok {
		return decimal.NewFromInt(fee)
	}
	return decimal.NewFromInt(defaultLocationFee)
}
