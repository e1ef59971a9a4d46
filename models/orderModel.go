package models

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type OrderMode string

const (
	DineIn   OrderMode = "Dine-in"
	TakeAway OrderMode = "Take-away"
)

// CartLine snapshots the item name and price at add time. Later catalog
// changes never alter an open basket.
type CartLine struct {
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type DineInDetails struct {
	CustomerName  string `json:"customer_name"`
	StaffUser     string `json:"staff_user" validate:"required"`
	TableID       string `json:"table_id" validate:"required"`
	VIPGuestCount int    `json:"vip_guest_count"`
}

type TakeAwayDetails struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone" validate:"required"`
	Address     string `json:"address"`
	BookingDate string `json:"booking_date"`
	BookingTime string `json:"booking_time"`
}

// RateConfig is the process-wide charge configuration. Take-away orders
// never carry VAT, service or VIP charges regardless of these values.
type RateConfig struct {
	VATPercent           decimal.Decimal `json:"vat_percent"`
	ServicePercent       decimal.Decimal `json:"service_percent"`
	VIPSurchargePerGuest decimal.Decimal `json:"vip_surcharge_per_guest"`
}

// ChargeBreakdown is derived from a basket and never stored on its own.
// GrandTotal = Subtotal + VATAmount + ServiceAmount + VIPAmount.
type ChargeBreakdown struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	VATAmount     decimal.Decimal `json:"vat_amount"`
	ServiceAmount decimal.Decimal `json:"service_amount"`
	VIPAmount     decimal.Decimal `json:"vip_amount"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
}

// ArchivedOrder is written once at submit time and never mutated.
type ArchivedOrder struct {
	ID        int64            `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Mode      OrderMode        `json:"mode"`
	Lines     []CartLine       `json:"lines"`
	Breakdown ChargeBreakdown  `json:"breakdown"`
	Rates     RateConfig       `json:"rates"`
	DineIn    *DineInDetails   `json:"dine_in,omitempty"`
	TakeAway  *TakeAwayDetails `json:"take_away,omitempty"`
}

// CustomerLabel is the customer-or-name column of the history export.
func (o ArchivedOrder) CustomerLabel() string {
	if o.Mode == TakeAway && o.TakeAway != nil {
		if o.TakeAway.LastName == "" {
			return o.TakeAway.FirstName
		}
		return o.TakeAway.FirstName + " " + o.TakeAway.LastName
	}
	if o.DineIn != nil {
		return o.DineIn.CustomerName
	}
	return ""
}

func (o ArchivedOrder) StaffLabel() string {
	if o.Mode == DineIn && o.DineIn != nil {
		return o.DineIn.StaffUser
	}
	return "N/A"
}

func (o ArchivedOrder) TableLabel() string {
	if o.Mode == DineIn && o.DineIn != nil {
		return o.DineIn.TableID
	}
	return "Takeaway"
}

func (o ArchivedOrder) VIPLabel() string {
	if o.Mode == DineIn && o.DineIn != nil {
		return strconv.Itoa(o.DineIn.VIPGuestCount)
	}
	return "0"
}

type OrderStatus string

const (
	StatusBuilding        OrderStatus = "BUILDING"
	StatusAwaitingChannel OrderStatus = "AWAITING_CHANNEL"
	StatusDispatched      OrderStatus = "DISPATCHED"
	StatusSkipped         OrderStatus = "SKIPPED"
)

type ShareChannel string

const (
	ChannelWhatsApp ShareChannel = "whatsapp"
	ChannelTelegram ShareChannel = "telegram"
	ChannelViber    ShareChannel = "viber"
	ChannelEmail    ShareChannel = "email"
)
