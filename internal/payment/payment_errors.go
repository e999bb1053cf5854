package payment

import (
	"net/http"

	"github.com/CodeWithFin/platypus-website/internal/pkg/apperror"
)

var (
	ErrInvalidRequest = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payment request",
		http.StatusBadRequest,
	)

	ErrInvalidReference = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid checkout reference",
		http.StatusBadRequest,
	)

	ErrPaymentNotCompleted = apperror.New(
		apperror.CodeInvalidState,
		"Payment was not completed",
		http.StatusPaymentRequired,
	)
)
