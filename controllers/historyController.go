package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickbite-pos/store"
)

var history = store.NewHistoryStore(store.DefaultHistoryCapacity)

// GetHistory lists the archived order log, newest first. Reachable only
// through the admin gate.
func GetHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := history.List()
		c.JSON(http.StatusOK, gin.H{
			"count":  len(orders),
			"orders": orders,
		})
	}
}

// ExportHistory streams the headerless CSV export.
func ExportHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", `attachment; filename="order_history.csv"`)
		if err := history.WriteCSV(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while exporting history"})
		}
	}
}
