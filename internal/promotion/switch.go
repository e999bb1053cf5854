package promotion

import (
	"context"

	"github.com/CodeWithFin/platypus-website/internal/backend"
)

type switched struct {
	pair *backend.Pair[Registry]
}

func NewSwitch(mode backend.Mode, mock, remote Registry) Registry {
	return &switched{pair: backend.NewPair(mode, mock, remote)}
}

func (s *switched) Lookup(ctx context.Context, code string) (Promotion, error) {
	return s.pair.Pick().Lookup(ctx, code)
}
