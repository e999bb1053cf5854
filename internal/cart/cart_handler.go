package cart

import (
	"fmt"
	"net/http"

	"github.com/CodeWithFin/platypus-website/internal/catalog"
	"github.com/CodeWithFin/platypus-website/internal/metrics"
	"github.com/CodeWithFin/platypus-website/internal/middleware"
	"github.com/CodeWithFin/platypus-website/internal/pkg/response"
	"github.com/CodeWithFin/platypus-website/internal/promotion"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Deps struct {
	Registry   *Registry
	Catalog    catalog.Catalog
	Promotions promotion.Registry
	Threshold  decimal.Decimal
	Metrics    *metrics.Metrics
	Logger     *zap.Logger
}

type Handler struct {
	registry   *Registry
	catalog    catalog.Catalog
	promotions promotion.Registry
	threshold  decimal.Decimal
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

func NewHandler(deps Deps) *Handler {
	if deps.Registry == nil {
		panic("cart registry cannot be nil")
	}
	if deps.Catalog == nil {
		panic("catalog cannot be nil")
	}
	if deps.Promotions == nil {
		panic("promotion registry cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &Handler{
		registry:   deps.Registry,
		catalog:    deps.Catalog,
		promotions: deps.Promotions,
		threshold:  deps.Threshold,
		metrics:    deps.Metrics,
		logger:     deps.Logger.Named("cart.handler"),
	}
}

// Detail
// GET /cart
func (h *Handler) Detail(c *gin.Context) {
	sess := h.registry.For(middleware.OwnerID(c))
	response.Success(c, http.StatusOK, "", toCartResponse(sess.Cart))
}

// Summary
// GET /cart/summary
func (h *Handler) Summary(c *gin.Context) {
	sess := h.registry.For(middleware.OwnerID(c))
	response.Success(c, http.StatusOK, "", Summarize(sess, h.threshold))
}

// AddItem prices the line from the catalogue, never from the request.
// POST /cart/items
func (h *Handler) AddItem(c *gin.Context) {
	owner := middleware.OwnerID(c)

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	p, err := h.catalog.Get(c.Request.Context(), req.ProductID)
	if err != nil {
		h.logger.Warn("add to cart lookup failed",
			zap.String("owner", owner),
			zap.String("product_id", req.ProductID),
			zap.Error(err),
		)
		response.FromError(c, err, nil)
		return
	}
	if !p.InStock {
		response.FromError(c, ErrOutOfStock, nil)
		return
	}

	sess := h.registry.For(owner)
	sess.Cart.AddItem(p, req.Quantity)

	response.Success(c, http.StatusCreated, fmt.Sprintf("%s added to cart!", p.Name), toCartResponse(sess.Cart))
}

// UpdateQty sets a line's quantity; 0 removes it.
// PATCH /cart/items/:productId
func (h *Handler) UpdateQty(c *gin.Context) {
	var req UpdateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	sess := h.registry.For(middleware.OwnerID(c))
	productID := c.Param("productId")
	if !sess.Cart.Contains(productID) {
		response.FromError(c, ErrCartItemNotFound, nil)
		return
	}

	sess.Cart.UpdateQuantity(productID, *req.Quantity)

	msg := ""
	if *req.Quantity < 1 {
		msg = "Item removed from cart"
	}
	response.Success(c, http.StatusOK, msg, toCartResponse(sess.Cart))
}

// DeleteItem
// DELETE /cart/items/:productId
func (h *Handler) DeleteItem(c *gin.Context) {
	sess := h.registry.For(middleware.OwnerID(c))
	productID := c.Param("productId")
	if !sess.Cart.Contains(productID) {
		response.FromError(c, ErrCartItemNotFound, nil)
		return
	}

	sess.Cart.RemoveItem(productID)
	response.Success(c, http.StatusOK, "Item removed from cart", toCartResponse(sess.Cart))
}

// Clear
// DELETE /cart
func (h *Handler) Clear(c *gin.Context) {
	sess := h.registry.For(middleware.OwnerID(c))
	sess.Cart.Clear()
	response.Success(c, http.StatusOK, "Cart cleared", toCartResponse(sess.Cart))
}

// ApplyPromotion
// POST /cart/promotion
func (h *Handler) ApplyPromotion(c *gin.Context) {
	owner := middleware.OwnerID(c)

	var req ApplyPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	sess := h.registry.For(owner)
	p, err := sess.Promotion.Apply(c.Request.Context(), h.promotions, req.Code)
	h.metrics.PromotionAttempt(err == nil)
	if err != nil {
		h.logger.Info("promo code rejected",
			zap.String("owner", owner),
			zap.String("code", promotion.Normalize(req.Code)),
			zap.Error(err),
		)
		response.FromError(c, err, nil)
		return
	}

	response.Success(c, http.StatusOK, "Promo code applied! "+p.Description, Summarize(sess, h.threshold))
}

// RemovePromotion
// DELETE /cart/promotion
func (h *Handler) RemovePromotion(c *gin.Context) {
	sess := h.registry.For(middleware.OwnerID(c))
	if !sess.Promotion.Remove() {
		response.FromError(c, promotion.ErrNoActivePromotion, nil)
		return
	}
	response.Success(c, http.StatusOK, "Promo code removed", Summarize(sess, h.threshold))
}
