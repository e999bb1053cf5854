package catalog

import (
	"context"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Category       string           `json:"category"`
	Brand          string           `json:"brand"`
	Price          decimal.Decimal  `json:"price"`
	OriginalPrice  *decimal.Decimal `json:"originalPrice,omitempty"`
	Image          string           `json:"image"`
	Description    string           `json:"description,omitempty"`
	AlcoholContent string           `json:"alcoholContent"`
	Size           string           `json:"size,omitempty"`
	Origin         string           `json:"origin,omitempty"`
	InStock        bool             `json:"inStock"`
	StockCount     int              `json:"stockCount"`
	Featured       bool             `json:"featured"`
	SKU            string           `json:"sku,omitempty"`
}

// ABV parses AlcoholContent ("40%", "37.5") into a percentage. Unparseable
// values count as zero.
func (p Product) ABV() float64 {
	v := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(p.AlcoholContent), "%"))
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

type ListParams struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Featured bool   `form:"featured"`
}

//go:generate mockgen -source=catalog.go -destination=../mock/catalog/catalog_mock.go -package=mock
type Catalog interface {
	List(ctx context.Context, params ListParams) ([]Product, error)
	Get(ctx context.Context, id string) (Product, error)
}
