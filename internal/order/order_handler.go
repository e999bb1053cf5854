package order

import (
	"net/http"

	"github.com/CodeWithFin/platypus-website/internal/middleware"
	"github.com/CodeWithFin/platypus-website/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	handoff *Handoff
	logger  *zap.Logger
}

func NewHandler(svc Service, handoff *Handoff, logger ...*zap.Logger) *Handler {
	l := zap.NewNop().Named("order.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("order.handler")
	}
	return &Handler{service: svc, handoff: handoff, logger: l}
}

// Detail
// GET /orders/:id
func (h *Handler) Detail(c *gin.Context) {
	orderID := c.Param("id")

	res, err := h.service.Get(c.Request.Context(), orderID)
	if err != nil {
		h.logger.Warn("http get order failed", zap.String("order_id", orderID), zap.Error(err))
		response.FromError(c, err, nil)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}

// Receipt returns the hand-off of the visitor's last order and clears it,
// so a reload shows nothing.
// GET /orders/receipt
func (h *Handler) Receipt(c *gin.Context) {
	res, err := h.handoff.Take(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		response.FromError(c, err, nil)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}
