package catalog

import (
	"context"
	"net/url"
	"strings"

	"github.com/CodeWithFin/platypus-website/internal/httpclient"
)

// Remote reads products from the storefront API.
type Remote struct {
	client *httpclient.Client
}

func NewRemote(c *httpclient.Client) *Remote {
	return &Remote{client: c}
}

func (r *Remote) List(ctx context.Context, params ListParams) ([]Product, error) {
	q := url.Values{}
	if params.Category != "" {
		q.Set("category", params.Category)
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Featured {
		q.Set("featured", "true")
	}

	var out []Product
	if err := r.client.Get(ctx, "/products", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Remote) Get(ctx context.Context, id string) (Product, error) {
	if strings.TrimSpace(id) == "" {
		return Product{}, ErrInvalidProductID
	}

	var out Product
	if err := r.client.Get(ctx, "/products/"+id, nil, &out); err != nil {
		if httpclient.IsNotFound(err) {
			return Product{}, ErrProductNotFound.WithCause(err)
		}
		return Product{}, err
	}
	return out, nil
}
