package promotion

import (
	"context"
	"strings"

	"github.com/CodeWithFin/platypus-website/internal/pricing"

	"github.com/shopspring/decimal"
)

type Promotion struct {
	Code            string          `json:"code"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	Description     string          `json:"description"`
}

//go:generate mockgen -source=promotion.go -destination=../mock/promotion/promotion_mock.go -package=mock
type Registry interface {
	// Lookup resolves a normalized code. Unknown codes yield ErrInvalidPromoCode.
	Lookup(ctx context.Context, code string) (Promotion, error)
}

// Normalize is the registry key for user input: trimmed, upper case.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ComputeDiscount applies p to subtotal. Delivery is never discounted, so
// callers pass the item subtotal only.
func ComputeDiscount(subtotal decimal.Decimal, p *Promotion) decimal.Decimal {
	return pricing.Discount(subtotal, PercentOf(p))
}

var maxPercent = decimal.NewFromInt(100)

// ValidPercent reports whether pct lies in (0, 100].
func ValidPercent(pct decimal.Decimal) bool {
	return pct.IsPositive() && pct.LessThanOrEqual(maxPercent)
}

// PercentOf is zero for a nil promotion.
func PercentOf(p *Promotion) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return p.DiscountPercent
}
