package order

import (
	"net/http"

	"github.com/CodeWithFin/platypus-website/internal/pkg/apperror"
)

var (
	ErrEmptyOrder = apperror.New(
		apperror.CodeInvalidInput,
		"Order has no items",
		http.StatusBadRequest,
	)

	ErrInvalidOrderID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid order ID",
		http.StatusBadRequest,
	)

	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Order not found",
		http.StatusNotFound,
	)

	ErrOrderFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to create order",
		http.StatusInternalServerError,
	)

	ErrNoReceipt = apperror.New(
		apperror.CodeNotFound,
		"No recent order to show",
		http.StatusNotFound,
	)
)
