package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"

	"quickbite-pos/apperr"
	"quickbite-pos/helpers"
	"quickbite-pos/models"
	"quickbite-pos/store"
)

var (
	session  = store.NewOrderSession()
	validate = validator.New()
)

// Printer renders a finalized dine-in order on the outlet printer.
// Fire-and-forget: the engine assumes success and never retries.
type Printer interface {
	Print(order models.ArchivedOrder)
}

type logPrinter struct{}

func (logPrinter) Print(order models.ArchivedOrder) {
	log.Printf("print requested for order %d (total %s)", order.ID, order.Breakdown.GrandTotal.StringFixed(2))
}

var printer Printer = logPrinter{}

func respondError(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error(), "kind": apperr.Kind(err)})
}

type modeRequest struct {
	Mode models.OrderMode `json:"mode" validate:"required"`
}

func SetOrderMode() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req modeRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := session.SetMode(req.Mode); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cartView())
	}
}

func UpdateDineInDetails() gin.HandlerFunc {
	return func(c *gin.Context) {
		var details models.DineInDetails
		if err := c.BindJSON(&details); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&details); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		session.SetDineInDetails(details)
		c.JSON(http.StatusOK, gin.H{"details": session.DineInDetails()})
	}
}

func UpdateTakeAwayDetails() gin.HandlerFunc {
	return func(c *gin.Context) {
		var details models.TakeAwayDetails
		if err := c.BindJSON(&details); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&details); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		session.SetTakeAwayDetails(details)
		c.JSON(http.StatusOK, gin.H{"details": session.TakeAwayDetails()})
	}
}

func UpdateRates() gin.HandlerFunc {
	return func(c *gin.Context) {
		var rates models.RateConfig
		if err := c.BindJSON(&rates); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := session.SetRates(rates); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"rates": session.Rates()})
	}
}

// PlaceOrder runs the submit transition. The archive write always precedes
// the print or share side effect; a downstream failure never unwinds it.
func PlaceOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := session.Submit(cart.Lines())
		if err != nil {
			respondError(c, err)
			return
		}

		history.Append(result.Order)

		if result.Print {
			printer.Print(result.Order)
			cart.Clear()
			c.JSON(http.StatusOK, gin.H{
				"status":    "PRINTED",
				"order_id":  result.Order.ID,
				"breakdown": result.Order.Breakdown,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   models.StatusAwaitingChannel,
			"order_id": result.Order.ID,
			"ticket":   result.Ticket,
			"channels": helpers.Channels(),
		})
	}
}

func ListChannels() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"channels": helpers.Channels()})
	}
}

type shareRequest struct {
	Channel models.ShareChannel `json:"channel" validate:"required"`
}

func ShareOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req shareRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ticket, orderID, err := session.PendingTicket()
		if err != nil {
			respondError(c, err)
			return
		}
		link, err := helpers.ShareLink(req.Channel, ticket, orderID)
		if err != nil {
			respondError(c, err)
			return
		}
		if err := session.FinishDispatch(); err != nil {
			respondError(c, err)
			return
		}
		cart.Clear()
		c.JSON(http.StatusOK, gin.H{
			"status":   models.StatusDispatched,
			"order_id": orderID,
			"link":     link,
		})
	}
}

func SkipShare() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := session.SkipDispatch(); err != nil {
			respondError(c, err)
			return
		}
		cart.Clear()
		c.JSON(http.StatusOK, gin.H{"status": models.StatusSkipped})
	}
}

// CancelOrder discards the in-progress order unconditionally.
func CancelOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		session.Reset()
		cart.Clear()
		c.JSON(http.StatusOK, cartView())
	}
}
