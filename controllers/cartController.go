package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickbite-pos/apperr"
	"quickbite-pos/catalog"
	"quickbite-pos/store"
)

var cart = store.NewCartStore()

// cartView is what every cart read returns: the lines plus a breakdown
// recomputed under the current mode and rates.
func cartView() gin.H {
	lines := cart.Lines()
	return gin.H{
		"lines":     lines,
		"breakdown": session.Breakdown(lines),
		"mode":      session.Mode(),
		"status":    session.Status(),
	}
}

func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartView())
	}
}

type addItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

func AddCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		item, ok := catalog.ByID(req.ItemID)
		if !ok {
			respondError(c, apperr.ErrItemNotFound)
			return
		}
		cart.Add(item)
		c.JSON(http.StatusOK, cartView())
	}
}

type quantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

func UpdateCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req quantityRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !cart.UpdateQuantity(c.Param("item_id"), req.Delta) {
			respondError(c, apperr.ErrItemNotFound)
			return
		}
		c.JSON(http.StatusOK, cartView())
	}
}

func RemoveCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.Remove(c.Param("item_id"))
		c.JSON(http.StatusOK, cartView())
	}
}

func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.Clear()
		session.Reset()
		c.JSON(http.StatusOK, cartView())
	}
}
