package order

import (
	"context"

	"github.com/CodeWithFin/platypus-website/internal/backend"
)

type switched struct {
	pair *backend.Pair[Service]
}

func NewSwitch(mode backend.Mode, mock, remote Service) Service {
	return &switched{pair: backend.NewPair(mode, mock, remote)}
}

func (s *switched) Create(ctx context.Context, o Order) (Placed, error) {
	return s.pair.Pick().Create(ctx, o)
}

func (s *switched) Get(ctx context.Context, id string) (Placed, error) {
	return s.pair.Pick().Get(ctx, id)
}
