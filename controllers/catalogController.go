package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickbite-pos/catalog"
)

func GetMenuItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.DefaultQuery("category", "All")
		search := c.Query("search")
		items := catalog.Filter(category, search)
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Menu items fetched successfully",
			"data":    items,
		})
	}
}

func GetMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		item, ok := catalog.ByID(c.Param("item_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": catalog.Categories()})
	}
}

func GetTables() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Table items fetched successfully",
			"data":    catalog.Tables(),
		})
	}
}

func GetStaffUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": catalog.StaffUsers()})
	}
}
