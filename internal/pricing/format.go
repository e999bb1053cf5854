package pricing

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const Currency = "KES"

var printer = message.NewPrinter(language.English)

// FormatNumber groups thousands: 12345 -> "12,345".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatPrice renders a KES amount without fraction digits when whole,
// with two otherwise: "KES 1,850", "KES 1,665.50".
func FormatPrice(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	whole := amount.Truncate(0)
	out := Currency + " " + sign + FormatNumber(whole.IntPart())

	frac := amount.Sub(whole).Round(2)
	if frac.IsZero() {
		return out
	}
	// "0.50" -> ".50"
	return out + frac.StringFixed(2)[1:]
}

// DiscountPercent is the rounded percentage saved against the original
// price, 0 when there is no real markdown.
func DiscountPercent(original, current decimal.Decimal) int {
	if original.IsZero() || original.LessThanOrEqual(current) {
		return 0
	}
	pct := original.Sub(current).Div(original).Mul(decimal.NewFromInt(100)).Round(0)
	return int(pct.IntPart())
}
