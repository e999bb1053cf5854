package catalog

import (
	"github.com/CodeWithFin/platypus-website/internal/pricing"

	"github.com/shopspring/decimal"
)

func toResponse(p Product) ProductResponse {
	original := decimal.Zero
	if p.OriginalPrice != nil {
		original = *p.OriginalPrice
	}
	return ProductResponse{
		Product:         p,
		DiscountPercent: pricing.DiscountPercent(original, p.Price),
		PriceLabel:      pricing.FormatPrice(p.Price),
	}
}
