package wishlist

import (
	"net/http"

	"github.com/CodeWithFin/platypus-website/internal/pkg/apperror"
)

var (
	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid product ID",
		http.StatusBadRequest,
	)

	ErrItemAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Item is already in your wishlist",
		http.StatusConflict,
	)

	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Item not found in wishlist",
		http.StatusNotFound,
	)

	ErrOutOfStock = apperror.New(
		apperror.CodeInvalidState,
		"Item is currently out of stock",
		http.StatusUnprocessableEntity,
	)

	ErrMoveToCartFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to move item to cart",
		http.StatusInternalServerError,
	)

	ErrWishlistFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process wishlist operation",
		http.StatusInternalServerError,
	)

	ErrInvalidPriceRange = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid price range",
		http.StatusBadRequest,
	)

	ErrInvalidSort = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid sort field",
		http.StatusBadRequest,
	)
)
