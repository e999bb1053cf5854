package order

import (
	"context"
	"strings"

	"github.com/CodeWithFin/platypus-website/internal/httpclient"
)

// Remote talks to the order service.
type Remote struct {
	client *httpclient.Client
}

func NewRemote(c *httpclient.Client) *Remote {
	return &Remote{client: c}
}

func (r *Remote) Create(ctx context.Context, o Order) (Placed, error) {
	if len(o.Items) == 0 {
		return Placed{}, ErrEmptyOrder
	}

	var out Placed
	if err := r.client.Post(ctx, "/orders", o, &out); err != nil {
		return Placed{}, err
	}
	if out.ID == "" {
		return Placed{}, ErrOrderFailed
	}
	return out, nil
}

func (r *Remote) Get(ctx context.Context, id string) (Placed, error) {
	if strings.TrimSpace(id) == "" {
		return Placed{}, ErrInvalidOrderID
	}

	var out Placed
	if err := r.client.Get(ctx, "/orders/"+id, nil, &out); err != nil {
		if httpclient.IsNotFound(err) {
			return Placed{}, ErrOrderNotFound.WithCause(err)
		}
		return Placed{}, err
	}
	return out, nil
}
