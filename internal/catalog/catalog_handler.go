package catalog

import (
	"net/http"

	"github.com/CodeWithFin/platypus-website/internal/middleware"
	"github.com/CodeWithFin/platypus-website/internal/notify"
	"github.com/CodeWithFin/platypus-website/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductResponse struct {
	Product
	DiscountPercent int    `json:"discountPercent"`
	PriceLabel      string `json:"priceLabel"`
}

const msgOffline = "Connection error. Using offline data."

type Handler struct {
	catalog Catalog
	notes   *notify.Recorder
	logger  *zap.Logger
}

// NewHandler serves the product pages. notes may be nil; it receives a
// notice whenever offline data stood in for the live catalog.
func NewHandler(c Catalog, notes *notify.Recorder, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{catalog: c, notes: notes, logger: logger.Named("catalog.handler")}
}

// List
// GET /products?category=gin&search=gordon&featured=true
func (h *Handler) List(c *gin.Context) {
	var q ListParams
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "Invalid query", err.Error())
		return
	}

	ctx, offline := TrackOffline(c.Request.Context())
	products, err := h.catalog.List(ctx, q)
	if err != nil {
		h.logger.Error("list products failed", zap.Error(err))
		response.FromError(c, err, nil)
		return
	}

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toResponse(p))
	}
	response.Success(c, http.StatusOK, h.offlineMessage(c, offline()), out)
}

// Detail
// GET /products/:id
func (h *Handler) Detail(c *gin.Context) {
	ctx, offline := TrackOffline(c.Request.Context())
	p, err := h.catalog.Get(ctx, c.Param("id"))
	if err != nil {
		response.FromError(c, err, nil)
		return
	}
	response.Success(c, http.StatusOK, h.offlineMessage(c, offline()), toResponse(p))
}

func (h *Handler) offlineMessage(c *gin.Context, offline bool) string {
	if !offline {
		return ""
	}
	if h.notes != nil {
		if owner := middleware.OwnerID(c); owner != "" {
			h.notes.Error(owner, msgOffline)
		}
	}
	return msgOffline
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	products := r.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/:id", h.Detail)
	}
}
