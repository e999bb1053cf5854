package order

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	orders := r.Group("/orders")
	{
		orders.GET("/receipt", handler.Receipt)
		orders.GET("/:id", handler.Detail)
	}
}
