package cart

import (
	"net/http"

	"github.com/CodeWithFin/platypus-website/internal/pkg/apperror"
)

var (
	ErrOutOfStock = apperror.New(
		apperror.CodeInvalidState,
		"Product is out of stock",
		http.StatusUnprocessableEntity,
	)

	ErrCartItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Item not found in cart",
		http.StatusNotFound,
	)
)
