package wishlist

import (
	"github.com/shopspring/decimal"
)

// ==================== REQUEST STRUCTS ====================

type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type ListQuery struct {
	Category string `form:"category"`
	InStock  *bool  `form:"inStock"`
	MinPrice string `form:"minPrice"`
	MaxPrice string `form:"maxPrice"`
	Search   string `form:"search"`
	SortBy   string `form:"sortBy"`
	Order    string `form:"order" binding:"omitempty,oneof=asc desc"`
}

var maxPrice = decimal.New(1, 12)

func (q ListQuery) toFilter() (Filter, error) {
	f := Filter{
		Category: q.Category,
		InStock:  q.InStock,
		Search:   q.Search,
	}
	if q.MinPrice == "" && q.MaxPrice == "" {
		return f, nil
	}

	pr := &PriceRange{Min: decimal.Zero, Max: maxPrice}
	if q.MinPrice != "" {
		v, err := decimal.NewFromString(q.MinPrice)
		if err != nil {
			return Filter{}, ErrInvalidPriceRange.WithCause(err)
		}
		pr.Min = v
	}
	if q.MaxPrice != "" {
		v, err := decimal.NewFromString(q.MaxPrice)
		if err != nil {
			return Filter{}, ErrInvalidPriceRange.WithCause(err)
		}
		pr.Max = v
	}
	f.PriceRange = pr
	return f, nil
}

// ==================== RESPONSE STRUCTS ====================

type WishlistResponse struct {
	Items     []Entry `json:"items"`
	ItemCount int     `json:"itemCount"`
}
