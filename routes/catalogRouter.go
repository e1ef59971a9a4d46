package routes

import (
	controller "quickbite-pos/controllers"

	"github.com/gin-gonic/gin"
)

func CatalogRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/menu", controller.GetMenuItems())
	incomingRoutes.GET("/menu/:item_id", controller.GetMenuItem())
	incomingRoutes.GET("/categories", controller.GetCategories())
	incomingRoutes.GET("/tables", controller.GetTables())
	incomingRoutes.GET("/staff", controller.GetStaffUsers())
}
