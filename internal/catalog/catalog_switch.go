package catalog

import (
	"context"

	"github.com/CodeWithFin/platypus-website/internal/backend"
)

type switched struct {
	pair *backend.Pair[Catalog]
}

// NewSwitch returns a Catalog that asks mode on every call whether to
// serve mock data or the live API.
func NewSwitch(mode backend.Mode, mock, remote Catalog) Catalog {
	return &switched{pair: backend.NewPair(mode, mock, remote)}
}

func (s *switched) List(ctx context.Context, params ListParams) ([]Product, error) {
	return s.pair.Pick().List(ctx, params)
}

func (s *switched) Get(ctx context.Context, id string) (Product, error) {
	return s.pair.Pick().Get(ctx, id)
}
