package routes

import (
	controller "quickbite-pos/controllers"

	"github.com/gin-gonic/gin"
)

func CartRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/cart", controller.GetCart())
	incomingRoutes.POST("/cart/items", controller.AddCartItem())
	incomingRoutes.PATCH("/cart/items/:item_id", controller.UpdateCartItem())
	incomingRoutes.DELETE("/cart/items/:item_id", controller.RemoveCartItem())
	incomingRoutes.DELETE("/cart", controller.ClearCart())
}
