package checkout

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	checkout := r.Group("/checkout")
	{
		checkout.POST("", handler.Start)
		checkout.GET("", handler.Detail)
		checkout.DELETE("", handler.Abandon)

		checkout.GET("/delivery-options", handler.DeliveryOptions)

		checkout.PUT("/customer", handler.UpdateCustomer)
		checkout.PUT("/delivery", handler.UpdateDelivery)
		checkout.PUT("/payment", handler.UpdatePayment)

		checkout.POST("/next", handler.Next)
		checkout.POST("/back", handler.Back)
		checkout.POST("/age-verification", handler.ConfirmAge)

		checkout.POST("/promotion", handler.ApplyPromotion)
		checkout.DELETE("/promotion", handler.RemovePromotion)

		checkout.POST("/submit", handler.Submit)
	}
}
