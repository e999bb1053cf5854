package config

import (
	"net/http"

	"github.com/CodeWithFin/platypus-website/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=mock remote"`
}

type APIModeResponse struct {
	Mode    string `json:"mode"`
	UseMock bool   `json:"useMock"`
}

type Handler struct {
	toggle *Toggle
	logger *zap.Logger
}

func NewHandler(t *Toggle, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{toggle: t, logger: logger.Named("config.handler")}
}

// GetAPIMode
// GET /config/api-mode
func (h *Handler) GetAPIMode(c *gin.Context) {
	response.Success(c, http.StatusOK, "", APIModeResponse{Mode: h.toggle.Mode(), UseMock: h.toggle.UseMock()})
}

// SetAPIMode switches between mock data and the live API.
// PUT /config/api-mode
func (h *Handler) SetAPIMode(c *gin.Context) {
	var req APIModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	h.toggle.Set(req.Mode == ModeMock)
	h.logger.Info("api mode changed", zap.String("mode", req.Mode))

	msg := "Switched to live API"
	if req.Mode == ModeMock {
		msg = "Switched to mock data"
	}
	response.Success(c, http.StatusOK, msg, APIModeResponse{Mode: h.toggle.Mode(), UseMock: h.toggle.UseMock()})
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	cfg := r.Group("/config")
	{
		cfg.GET("/api-mode", h.GetAPIMode)
		cfg.PUT("/api-mode", h.SetAPIMode)
	}
}
