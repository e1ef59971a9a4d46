package helpers

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"quickbite-pos/models"
)

const ticketDivider = "------------------------------\n"

// CodeFunc produces a 4-digit ticket verification code. Injectable so the
// lifecycle stays deterministic under test.
type CodeFunc func() int

// NewVerificationCode returns a uniformly random code in [1000, 9999].
// A fresh code is drawn per formatting call and never persisted.
func NewVerificationCode() int {
	return 1000 + rand.Intn(9000)
}

func CurrencySymbol() string {
	if s := os.Getenv("CURRENCY_SYMBOL"); s != "" {
		return s
	}
	return "$"
}

// Location is the display timezone for tickets, exports and the clock feed.
func Location() *time.Location {
	name := os.Getenv("POS_TIMEZONE")
	if name == "" {
		name = "Europe/London"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// FormatTicket renders the shareable order ticket. The layout is fixed:
// header, optional booking block, customer block, items, subtotal,
// conditional charge lines (emitted only when the amount is positive),
// total, verification code.
func FormatTicket(order models.ArchivedOrder, code int) string {
	cur := CurrencySymbol()
	at := order.CreatedAt.In(Location())

	var b strings.Builder
	b.WriteString("🍔 *QUICKBITE ORDER TICKET*\n")
	b.WriteString(ticketDivider)
	fmt.Fprintf(&b, "🎟️ Order ID: %d\n", order.ID)
	fmt.Fprintf(&b, "📅 Ordered On: %s\n", at.Format("02/01/2006"))
	fmt.Fprintf(&b, "⏰ Ordered At: %s\n", at.Format("15:04:05"))

	if order.Mode == models.TakeAway && order.TakeAway != nil && order.TakeAway.BookingDate != "" {
		b.WriteString("📢 *BOOKING SCHEDULE:*\n")
		fmt.Fprintf(&b, "📅 Date: %s\n", order.TakeAway.BookingDate)
		bookingTime := order.TakeAway.BookingTime
		if bookingTime == "" {
			bookingTime = "N/A"
		}
		fmt.Fprintf(&b, "⏰ Time: %s\n", bookingTime)
	}

	b.WriteString(ticketDivider)
	if order.Mode == models.TakeAway && order.TakeAway != nil {
		fmt.Fprintf(&b, "👤 Customer: %s %s\n", order.TakeAway.FirstName, order.TakeAway.LastName)
		fmt.Fprintf(&b, "📍 Address: %s\n", order.TakeAway.Address)
		fmt.Fprintf(&b, "📞 Phone: %s\n", order.TakeAway.Phone)
	} else if order.DineIn != nil {
		fmt.Fprintf(&b, "🪑 Table: %s | 👤 User: %s\n", order.DineIn.TableID, order.DineIn.StaffUser)
		fmt.Fprintf(&b, "👥 VIP Guests: %d\n", order.DineIn.VIPGuestCount)
	}

	b.WriteString(ticketDivider)
	b.WriteString("📝 *ITEMS:*\n")
	for _, line := range order.Lines {
		fmt.Fprintf(&b, "• %s [x%d] - %s%s\n", line.Name, line.Quantity, cur, line.LineTotal().StringFixed(2))
	}

	b.WriteString(ticketDivider)
	fmt.Fprintf(&b, "💵 Subtotal: %s%s\n", cur, order.Breakdown.Subtotal.StringFixed(2))
	if order.Mode == models.DineIn {
		if order.Breakdown.VATAmount.IsPositive() {
			fmt.Fprintf(&b, "⚖️ VAT (%s%%): %s%s\n", order.Rates.VATPercent.String(), cur, order.Breakdown.VATAmount.StringFixed(2))
		}
		if order.Breakdown.ServiceAmount.IsPositive() {
			fmt.Fprintf(&b, "🛎️ Service (%s%%): %s%s\n", order.Rates.ServicePercent.String(), cur, order.Breakdown.ServiceAmount.StringFixed(2))
		}
		if order.Breakdown.VIPAmount.IsPositive() {
			fmt.Fprintf(&b, "💎 VIP Charge: %s%s\n", cur, order.Breakdown.VIPAmount.StringFixed(2))
		}
	}
	fmt.Fprintf(&b, "💰 *TOTAL: %s%s*\n", cur, order.Breakdown.GrandTotal.StringFixed(2))
	b.WriteString(ticketDivider)
	fmt.Fprintf(&b, "✅ *Fastfood Verification Code: %d*", code)

	return b.String()
}
