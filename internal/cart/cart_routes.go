package cart

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	{
		carts.GET("", handler.Detail)
		carts.GET("/summary", handler.Summary)
		carts.DELETE("", handler.Clear)

		carts.POST("/items", handler.AddItem)
		items := carts.Group("/items/:productId")
		{
			items.PATCH("", handler.UpdateQty)
			items.DELETE("", handler.DeleteItem)
		}

		carts.POST("/promotion", handler.ApplyPromotion)
		carts.DELETE("/promotion", handler.RemovePromotion)
	}
}
