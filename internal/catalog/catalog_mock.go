package catalog

import (
	"context"
	"strings"
)

// Mock serves the built-in catalogue.
type Mock struct {
	products []Product
}

func NewMock() *Mock {
	return &Mock{products: seedProducts()}
}

// NewMockWith serves the given products instead of the seed data.
func NewMockWith(products []Product) *Mock {
	return &Mock{products: products}
}

func (m *Mock) List(_ context.Context, params ListParams) ([]Product, error) {
	search := strings.ToLower(strings.TrimSpace(params.Search))

	out := make([]Product, 0, len(m.products))
	for _, p := range m.products {
		if params.Category != "" && p.Category != params.Category {
			continue
		}
		if params.Featured && !p.Featured {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Brand), search) &&
			!strings.Contains(strings.ToLower(p.Category), search) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *Mock) Get(_ context.Context, id string) (Product, error) {
	if strings.TrimSpace(id) == "" {
		return Product{}, ErrInvalidProductID
	}
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}
