package routes

import (
	controller "quickbite-pos/controllers"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/order/mode", controller.SetOrderMode())
	incomingRoutes.PUT("/order/details/dinein", controller.UpdateDineInDetails())
	incomingRoutes.PUT("/order/details/takeaway", controller.UpdateTakeAwayDetails())
	incomingRoutes.PUT("/order/rates", controller.UpdateRates())
	incomingRoutes.POST("/order/place", controller.PlaceOrder())
	incomingRoutes.GET("/order/channels", controller.ListChannels())
	incomingRoutes.POST("/order/share", controller.ShareOrder())
	incomingRoutes.POST("/order/share/skip", controller.SkipShare())
	incomingRoutes.POST("/order/cancel", controller.CancelOrder())
}
