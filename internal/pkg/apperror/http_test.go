package apperror_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/CodeWithFin/platypus-website/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	errNotFound := apperror.New(apperror.CodeNotFound, "thing not found", http.StatusNotFound)

	t.Run("nil_error", func(t *testing.T) {
		res := apperror.ToHTTP(nil)
		assert.Equal(t, http.StatusOK, res.Status)
	})

	t.Run("app_error_in_chain", func(t *testing.T) {
		res := apperror.ToHTTP(fmt.Errorf("outer: %w", errNotFound))
		assert.Equal(t, http.StatusNotFound, res.Status)
		assert.Equal(t, apperror.CodeNotFound, res.Code)
		assert.Equal(t, "thing not found", res.Message)
	})

	t.Run("deadline_exceeded", func(t *testing.T) {
		res := apperror.ToHTTP(fmt.Errorf("call: %w", context.DeadlineExceeded))
		assert.Equal(t, http.StatusGatewayTimeout, res.Status)
		assert.Equal(t, apperror.CodeTimeout, res.Code)
	})

	t.Run("unknown_error", func(t *testing.T) {
		res := apperror.ToHTTP(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, res.Status)
		assert.Equal(t, apperror.CodeInternalError, res.Code)
	})
}

func TestAppError_WithCause(t *testing.T) {
	sentinel := apperror.New(apperror.CodeUpstream, "order service unavailable", http.StatusBadGateway)
	cause := errors.New("connection refused")

	err := sentinel.WithCause(cause)

	assert.ErrorIs(t, err, sentinel)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}
