package checkout

import (
	"errors"
	"net/http"

	"github.com/CodeWithFin/platypus-website/internal/metrics"
	"github.com/CodeWithFin/platypus-website/internal/middleware"
	"github.com/CodeWithFin/platypus-website/internal/pkg/response"
	"github.com/CodeWithFin/platypus-website/internal/pricing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	manager *Manager
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewHandler(m *Manager, mt *metrics.Metrics, logger *zap.Logger) *Handler {
	if m == nil {
		panic("checkout manager cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{manager: m, metrics: mt, logger: logger.Named("checkout.handler")}
}

// Start
// POST /checkout
func (h *Handler) Start(c *gin.Context) {
	s, err := h.manager.Start(middleware.OwnerID(c))
	if err != nil {
		response.FromError(c, err, nil)
		return
	}
	response.Success(c, http.StatusCreated, "Checkout started", s.View())
}

// Detail
// GET /checkout
func (h *Handler) Detail(c *gin.Context) {
	s, err := h.manager.Get(middleware.OwnerID(c))
	if err != nil {
		response.FromError(c, err, nil)
		return
	}
	response.Success(c, http.StatusOK, "", s.View())
}

// Abandon
// DELETE /checkout
func (h *Handler) Abandon(c *gin.Context) {
	if err := h.manager.Abandon(middleware.OwnerID(c)); err != nil {
		response.FromError(c, err, nil)
		return
	}
	response.Success(c, http.StatusOK, "Checkout cancelled", nil)
}

// UpdateCustomer
// PUT /checkout/customer
func (h *Handler) UpdateCustomer(c *gin.Context) {
	var req CustomerInfo
	if !bind(c, &req) {
		return
	}
	h.withSession(c, func(s *Session) (View, error) { return s.UpdateCustomer(req) })
}

// UpdateDelivery
// PUT /checkout/delivery
func (h *Handler) UpdateDelivery(c *gin.Context) {
	var req DeliveryInfo
	if !bind(c, &req) {
		return
	}
	h.withSession(c, func(s *Session) (View, error) { return s.UpdateDelivery(req) })
}

// UpdatePayment
// PUT /checkout/payment
func (h *Handler) UpdatePayment(c *gin.Context) {
	var req PaymentInfo
	if !bind(c, &req) {
		return
	}
	h.withSession(c, func(s *Session) (View, error) { return s.UpdatePayment(req) })
}

// Next
// POST /checkout/next
func (h *Handler) Next(c *gin.Context) {
	h.withSession(c, func(s *Session) (View, error) { return s.Next() })
}

// Back
// POST /checkout/back
func (h *Handler) Back(c *gin.Context) {
	h.withSession(c, func(s *Session) (View, error) { return s.Back() })
}

// ConfirmAge
// POST /checkout/age-verification
func (h *Handler) ConfirmAge(c *gin.Context) {
	var req AgeVerificationRequest
	if !bind(c, &req) {
		return
	}

	v, err := h.manager.ConfirmAge(middleware.OwnerID(c), *req.Confirmed)
	if err != nil {
		response.FromError(c, err, nil)
		return
	}
	if !*req.Confirmed {
		response.Success(c, http.StatusOK, msgAgeRequired, v)
		return
	}
	response.Success(c, http.StatusOK, "Age verified", v)
}

// ApplyPromotion
// POST /checkout/promotion
func (h *Handler) ApplyPromotion(c *gin.Context) {
	var req PromotionRequest
	if !bind(c, &req) {
		return
	}

	s, err := h.manager.Get(middleware.OwnerID(c))
	if err != nil {
		response.FromError(c, err, nil)
		return
	}

	p, v, err := s.ApplyPromotion(c.Request.Context(), req.Code)
	h.metrics.PromotionAttempt(err == nil)
	if err != nil {
		response.FromError(c, err, nil)
		return
	}
	response.Success(c, http.StatusOK, "Promo code applied! "+p.Description, v)
}

// RemovePromotion
// DELETE /checkout/promotion
func (h *Handler) RemovePromotion(c *gin.Context) {
	h.withSession(c, func(s *Session) (View, error) { return s.RemovePromotion() })
}

// Submit
// POST /checkout/submit
func (h *Handler) Submit(c *gin.Context) {
	receipt, err := h.manager.Submit(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, msgOrderPlaced, receipt)
}

// DeliveryOptions
// GET /checkout/delivery-options
func (h *Handler) DeliveryOptions(c *gin.Context) {
	response.Success(c, http.StatusOK, "", pricing.DeliveryOptions())
}

func (h *Handler) withSession(c *gin.Context, fn func(*Session) (View, error)) {
	s, err := h.manager.Get(middleware.OwnerID(c))
	if err != nil {
		response.FromError(c, err, nil)
		return
	}
	v, err := fn(s)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", v)
}

// writeError puts per-field messages in the error details.
func writeError(c *gin.Context, err error) {
	var fields FieldErrors
	if errors.As(err, &fields) {
		response.FromError(c, err, fields)
		return
	}
	response.FromError(c, err, nil)
}

func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return false
	}
	return true
}
