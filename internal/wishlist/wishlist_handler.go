package wishlist

import (
	"fmt"
	"net/http"

	"github.com/CodeWithFin/platypus-website/internal/middleware"
	"github.com/CodeWithFin/platypus-website/internal/pkg/apperror"
	"github.com/CodeWithFin/platypus-website/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc}
}

// GET /wishlist?category=&inStock=&minPrice=&maxPrice=&search=&sortBy=&order=
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		appErr := apperror.Wrap(
			err,
			apperror.CodeInvalidInput,
			"Invalid query",
			http.StatusBadRequest,
		)
		response.FromError(c, appErr, err.Error())
		return
	}

	res, err := h.service.List(c.Request.Context(), middleware.OwnerID(c), q)
	if err != nil {
		response.FromError(c, err, nil)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}

// GET /wishlist/stats
func (h *Handler) Stats(c *gin.Context) {
	res, err := h.service.Stats(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		response.FromError(c, err, nil)
		return
	}
	response.Success(c, http.StatusOK, "", res)
}

// GET /wishlist/:productId
func (h *Handler) Get(c *gin.Context) {
	res, err := h.service.Get(c.Request.Context(), middleware.OwnerID(c), c.Param("productId"))
	if err != nil {
		response.FromError(c, err, nil)
		return
	}
	response.Success(c, http.StatusOK, "", res)
}

// POST /wishlist
func (h *Handler) Create(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.Wrap(
			err,
			apperror.CodeInvalidInput,
			"Invalid request body",
			http.StatusBadRequest,
		)
		response.FromError(c, appErr, err.Error())
		return
	}

	res, err := h.service.Add(c.Request.Context(), middleware.OwnerID(c), req.ProductID)
	if err != nil {
		response.FromError(c, err, nil)
		return
	}

	response.Success(c, http.StatusCreated, fmt.Sprintf("%s added to wishlist!", res.Name), res)
}

// DELETE /wishlist/:productId
func (h *Handler) Delete(c *gin.Context) {
	res, err := h.service.Remove(c.Request.Context(), middleware.OwnerID(c), c.Param("productId"))
	if err != nil {
		response.FromError(c, err, nil)
		return
	}

	response.Success(c, http.StatusOK, fmt.Sprintf("%s removed from wishlist", res.Name), res)
}

// DELETE /wishlist
func (h *Handler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), middleware.OwnerID(c)); err != nil {
		response.FromError(c, err, nil)
		return
	}
	response.Success(c, http.StatusOK, "Wishlist cleared successfully", nil)
}

// POST /wishlist/:productId/move-to-cart
func (h *Handler) MoveToCart(c *gin.Context) {
	res, err := h.service.MoveToCart(c.Request.Context(), middleware.OwnerID(c), c.Param("productId"))
	if err != nil {
		response.FromError(c, err, nil)
		return
	}
	response.Success(c, http.StatusOK, fmt.Sprintf("%s moved to cart!", res.Name), res)
}
