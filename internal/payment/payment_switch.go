package payment

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

func (s *switched) InitiateMobileMoney(ctx context.Context, req MobileMoneyRequest) (Initiation, error) {
	return s.pair.Pick().InitiateMobileMoney(ctx, req)
}

func (s *switched) CheckStatus(ctx context.Context, ref string) (StatusResult, error) {
	return s.pair.Pick().CheckStatus(ctx, ref)
}
