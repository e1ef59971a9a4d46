package routes

import (
	controller "quickbite-pos/controllers"
	"quickbite-pos/middleware"

	"github.com/gin-gonic/gin"
)

func HistoryRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/admin/login", controller.AdminLogin())

	gated := incomingRoutes.Group("/history")
	gated.Use(middleware.AdminOnly())
	gated.GET("", controller.GetHistory())
	gated.GET("/export", controller.ExportHistory())
}
