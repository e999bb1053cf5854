package pricing

import "github.com/shopspring/decimal"

// VATRate is Kenyan VAT.
var VATRate = decimal.NewFromFloat(0.16)

// VAT returns the tax on amount rounded to whole shillings.
func VAT(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(VATRate).Round(0)
}
