package cart

import (
	"context"

	"github.com/CodeWithFin/platypus-website/internal/catalog"
)

// Adder puts single units into a visitor's cart on behalf of other
// features, such as moving an item over from the wishlist.
type Adder struct {
	Registry *Registry
	Catalog  catalog.Catalog
}

func (a Adder) AddToCart(ctx context.Context, owner, productID string) error {
	p, err := a.Catalog.Get(ctx, productID)
	if err != nil {
		return err
	}
	if !p.InStock {
		return ErrOutOfStock
	}

	a.Registry.For(owner).Cart.AddItem(p, 1)
	return nil
}
