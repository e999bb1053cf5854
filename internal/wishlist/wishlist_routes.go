package wishlist

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	wishlists := r.Group("/wishlist")
	{
		wishlists.GET("", handler.List)
		wishlists.GET("/stats", handler.Stats)
		wishlists.POST("", handler.Create)
		wishlists.DELETE("", handler.Clear)

		wishlists.GET("/:productId", handler.Get)
		wishlists.DELETE("/:productId", handler.Delete)
		wishlists.POST("/:productId/move-to-cart", handler.MoveToCart)
	}
}
