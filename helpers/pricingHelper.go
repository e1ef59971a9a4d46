package helpers

import (
	"github.com/shopspring/decimal"

	"quickbite-pos/models"
)

var hundred = decimal.NewFromInt(100)

// ClampRate silently corrects a negative rate to zero so a bad input can
// never produce a negative charge.
func ClampRate(rate decimal.Decimal) decimal.Decimal {
	if rate.IsNegative() {
		return decimal.Zero
	}
	return rate
}

func ClampGuestCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func Subtotal(lines []models.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

// ComputeBreakdown prices a basket. Take-away orders carry no VAT, service
// or VIP charge for any configuration. VIP is a flat per-guest surcharge
// added after the percentage charges and is never itself taxed. No rounding
// happens here; two-decimal rounding is applied at presentation only.
func ComputeBreakdown(lines []models.CartLine, mode models.OrderMode, rates models.RateConfig, vipGuests int) models.ChargeBreakdown {
	b := models.ChargeBreakdown{
		Subtotal:      Subtotal(lines),
		VATAmount:     decimal.Zero,
		ServiceAmount: decimal.Zero,
		VIPAmount:     decimal.Zero,
	}
	if mode == models.DineIn {
		b.VATAmount = b.Subtotal.Mul(ClampRate(rates.VATPercent)).Div(hundred)
		b.ServiceAmount = b.Subtotal.Mul(ClampRate(rates.ServicePercent)).Div(hundred)
		b.VIPAmount = ClampRate(rates.VIPSurchargePerGuest).Mul(decimal.NewFromInt(int64(ClampGuestCount(vipGuests))))
	}
	b.GrandTotal = b.Subtotal.Add(b.VATAmount).Add(b.ServiceAmount).Add(b.VIPAmount)
	return b
}
