package promotion

import (
	"context"
	"errors"
	"net/http"

	"github.com/CodeWithFin/platypus-website/internal/httpclient"
)

type applyCouponRequest struct {
	Code string `json:"code"`
}

// Remote resolves codes against the promotions service.
type Remote struct {
	client *httpclient.Client
}

func NewRemote(c *httpclient.Client) *Remote {
	return &Remote{client: c}
}

func (r *Remote) Lookup(ctx context.Context, code string) (Promotion, error) {
	var out Promotion
	err := r.client.Post(ctx, "/promotions/apply-coupon", applyCouponRequest{Code: Normalize(code)}, &out)
	if err != nil {
		var se *httpclient.StatusError
		if errors.As(err, &se) && se.Status >= http.StatusBadRequest && se.Status < http.StatusInternalServerError {
			return Promotion{}, ErrInvalidPromoCode.WithCause(err)
		}
		return Promotion{}, err
	}
	if out.Code == "" || !ValidPercent(out.DiscountPercent) {
		return Promotion{}, ErrInvalidPromoCode
	}
	out.Code = Normalize(out.Code)
	return out, nil
}
