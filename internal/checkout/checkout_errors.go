package checkout

import (
	"net/http"

	"github.com/CodeWithFin/platypus-website/internal/pkg/apperror"
)

const (
	msgOrderPlaced   = "Order placed successfully!"
	msgOrderFailed   = "Failed to process order. Please try again."
	msgMpesaSent     = "M-Pesa payment request sent to your phone!"
	msgAgeRequired   = "Age verification is required to purchase alcoholic beverages"
	msgPaymentFailed = "Payment was not completed"
)

var (
	ErrValidation = apperror.New(
		apperror.CodeInvalidInput,
		"Please correct the highlighted fields",
		http.StatusBadRequest,
	)

	ErrCartEmpty = apperror.New(
		apperror.CodeInvalidState,
		"Your cart is empty",
		http.StatusUnprocessableEntity,
	)

	ErrNoSession = apperror.New(
		apperror.CodeNotFound,
		"No checkout in progress",
		http.StatusNotFound,
	)

	ErrSessionClosed = apperror.New(
		apperror.CodeConflict,
		"This checkout is no longer active",
		http.StatusConflict,
	)

	ErrSubmitting = apperror.New(
		apperror.CodeConflict,
		"Your order is being processed",
		http.StatusConflict,
	)

	ErrNotAtReview = apperror.New(
		apperror.CodeInvalidState,
		"Complete every step before placing the order",
		http.StatusUnprocessableEntity,
	)

	ErrAgeVerificationRequired = apperror.New(
		apperror.CodeForbidden,
		msgAgeRequired,
		http.StatusForbidden,
	)

	ErrSubmitFailed = apperror.New(
		apperror.CodeUpstream,
		msgOrderFailed,
		http.StatusBadGateway,
	)

	ErrSubmitTimeout = apperror.New(
		apperror.CodeTimeout,
		msgOrderFailed,
		http.StatusGatewayTimeout,
	)
)

// FieldErrors maps a form field to its message. It unwraps to
// ErrValidation so handlers render it like any other AppError.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	return ErrValidation.Message
}

func (f FieldErrors) Unwrap() error {
	return ErrValidation
}
