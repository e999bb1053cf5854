package payment

import (
	"context"
	"strings"

	"github.com/CodeWithFin/platypus-website/internal/httpclient"
	"github.com/CodeWithFin/platypus-website/internal/pkg/validation"
)

// Remote talks to the payments API.
type Remote struct {
	client *httpclient.Client
}

func NewRemote(c *httpclient.Client) *Remote {
	return &Remote{client: c}
}

func (r *Remote) InitiateMobileMoney(ctx context.Context, req MobileMoneyRequest) (Initiation, error) {
	if req.OrderID == "" || !req.Amount.IsPositive() {
		return Initiation{}, ErrInvalidRequest
	}
	if !validation.ValidKenyanPhone(req.Phone) {
		return Initiation{}, ErrInvalidRequest
	}
	// the gateway wants 2547XXXXXXXX
	req.Phone = strings.TrimPrefix(validation.FormatKenyanPhone(req.Phone), "+")

	var out Initiation
	if err := r.client.Post(ctx, "/payments/mpesa/initiate", req, &out); err != nil {
		return Initiation{}, err
	}
	return out, nil
}

func (r *Remote) CheckStatus(ctx context.Context, ref string) (StatusResult, error) {
	if strings.TrimSpace(ref) == "" {
		return StatusResult{}, ErrInvalidReference
	}

	var out StatusResult
	if err := r.client.Get(ctx, "/payments/mpesa/status/"+ref, nil, &out); err != nil {
		return StatusResult{}, err
	}
	return out, nil
}
