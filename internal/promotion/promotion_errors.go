package promotion

import (
	"net/http"

	"github.com/CodeWithFin/platypus-website/internal/pkg/apperror"
)

var (
	ErrPromoCodeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Please enter a promo code",
		http.StatusBadRequest,
	)

	ErrInvalidPromoCode = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid promo code",
		http.StatusBadRequest,
	)

	ErrNoActivePromotion = apperror.New(
		apperror.CodeNotFound,
		"No promotion applied",
		http.StatusNotFound,
	)
)
