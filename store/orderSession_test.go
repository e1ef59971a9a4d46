package store

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"quickbite-pos/apperr"
	"quickbite-pos/models"
)

func frozenClock() func() time.Time {
	at := time.Date(2024, time.May, 12, 14, 45, 7, 0, time.UTC)
	return func() time.Time { return at }
}

func sequentialCodes() func() int {
	next := 1000
	return func() int {
		next++
		return next
	}
}

func testSession() *OrderSession {
	return NewOrderSession().WithClock(frozenClock(), sequentialCodes())
}

func testLines() []models.CartLine {
	return []models.CartLine{
		{ItemID: "s1", Name: "Beef Shawarma", UnitPrice: decimal.RequireFromString("6.50"), Quantity: 2},
		{ItemID: "d1", Name: "Coca Cola", UnitPrice: decimal.RequireFromString("1.50"), Quantity: 1},
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	s := testSession()
	_, err := s.Submit(nil)
	if !errors.Is(err, apperr.ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}
	if s.Status() != models.StatusBuilding {
		t.Errorf("status = %s, want BUILDING", s.Status())
	}
}

func TestSubmitDineInRequestsPrint(t *testing.T) {
	s := testSession()
	s.SetDineInDetails(models.DineInDetails{CustomerName: "Omar", StaffUser: "user2", TableID: "T5", VIPGuestCount: 1})

	result, err := s.Submit(testLines())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Print {
		t.Error("dine-in submit must request a print")
	}
	if result.Ticket != "" {
		t.Error("dine-in submit must not produce a ticket")
	}
	if s.Status() != models.StatusBuilding {
		t.Errorf("status = %s, want BUILDING after dine-in submit", s.Status())
	}
	if result.Order.Mode != models.DineIn || result.Order.DineIn == nil {
		t.Fatalf("order = %+v, want dine-in details", result.Order)
	}

	// the archived record must be a snapshot
	s.SetDineInDetails(models.DineInDetails{StaffUser: "user3", TableID: "T9"})
	if result.Order.DineIn.TableID != "T5" {
		t.Error("archived details must not track later edits")
	}
}

func TestSubmitTakeAwayAwaitsChannel(t *testing.T) {
	s := testSession()
	if err := s.SetMode(models.TakeAway); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.SetTakeAwayDetails(models.TakeAwayDetails{FirstName: "Sara", Phone: "0750"})

	result, err := s.Submit(testLines())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Print {
		t.Error("take-away submit must not request a print")
	}
	if !strings.Contains(result.Ticket, "Verification Code: 1001") {
		t.Errorf("ticket should carry the injected code:\n%s", result.Ticket)
	}
	if s.Status() != models.StatusAwaitingChannel {
		t.Errorf("status = %s, want AWAITING_CHANNEL", s.Status())
	}

	ticket, orderID, err := s.PendingTicket()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ticket != result.Ticket || orderID != result.Order.ID {
		t.Error("pending ticket must match the submit result")
	}
}

func TestResubmitWhileTicketPending(t *testing.T) {
	s := testSession()
	s.SetMode(models.TakeAway)
	s.SetTakeAwayDetails(models.TakeAwayDetails{FirstName: "Sara", Phone: "0750"})

	first, err := s.Submit(testLines())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the held ticket must be dispatched or skipped before the next submit
	if _, err := s.Submit(testLines()); !errors.Is(err, apperr.ErrOrderPending) {
		t.Fatalf("second submit err = %v, want ErrOrderPending", err)
	}

	ticket, orderID, err := s.PendingTicket()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ticket != first.Ticket || orderID != first.Order.ID {
		t.Error("rejected submit must not replace the pending ticket")
	}

	if err := s.SkipDispatch(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	next, err := s.Submit(testLines())
	if err != nil {
		t.Fatalf("submit after skip: %v", err)
	}
	if next.Order.ID <= first.Order.ID {
		t.Errorf("order id %d not greater than %d", next.Order.ID, first.Order.ID)
	}
}

func TestDispatchResetsSession(t *testing.T) {
	s := testSession()
	s.SetMode(models.TakeAway)
	s.SetTakeAwayDetails(models.TakeAwayDetails{FirstName: "Sara", Phone: "0750"})
	if _, err := s.Submit(testLines()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.FinishDispatch(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Status() != models.StatusBuilding {
		t.Errorf("status = %s, want BUILDING after dispatch", s.Status())
	}
	if s.TakeAwayDetails() != (models.TakeAwayDetails{}) {
		t.Error("take-away details must be cleared after dispatch")
	}
	if err := s.FinishDispatch(); !errors.Is(err, apperr.ErrNotAwaitingChannel) {
		t.Errorf("second dispatch err = %v, want ErrNotAwaitingChannel", err)
	}
}

func TestSkipResetsSession(t *testing.T) {
	s := testSession()
	s.SetMode(models.TakeAway)
	if _, err := s.Submit(testLines()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.SkipDispatch(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Status() != models.StatusBuilding {
		t.Errorf("status = %s, want BUILDING after skip", s.Status())
	}
	if _, _, err := s.PendingTicket(); !errors.Is(err, apperr.ErrNotAwaitingChannel) {
		t.Errorf("pending ticket err = %v, want ErrNotAwaitingChannel", err)
	}
}

func TestOrderIDsStrictlyIncrease(t *testing.T) {
	s := testSession() // frozen clock: every submit lands in the same millisecond

	var last int64
	for i := 0; i < 5; i++ {
		result, err := s.Submit(testLines())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Order.ID <= last {
			t.Fatalf("id %d not greater than %d", result.Order.ID, last)
		}
		last = result.Order.ID
	}
}

func TestRatesLockedOutsideDineIn(t *testing.T) {
	s := testSession()
	s.SetMode(models.TakeAway)

	err := s.SetRates(models.RateConfig{VATPercent: decimal.RequireFromString("5")})
	if !errors.Is(err, apperr.ErrRatesLocked) {
		t.Fatalf("err = %v, want ErrRatesLocked", err)
	}
}

func TestSetRatesClampsNegatives(t *testing.T) {
	s := testSession()
	err := s.SetRates(models.RateConfig{
		VATPercent:           decimal.RequireFromString("-4"),
		ServicePercent:       decimal.RequireFromString("12.5"),
		VIPSurchargePerGuest: decimal.RequireFromString("-1"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rates := s.Rates()
	if !rates.VATPercent.IsZero() || !rates.VIPSurchargePerGuest.IsZero() {
		t.Errorf("negative rates not clamped: %+v", rates)
	}
	if !rates.ServicePercent.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("valid rate altered: %+v", rates)
	}
}

func TestSetModeUnknown(t *testing.T) {
	s := testSession()
	if err := s.SetMode(models.OrderMode("Delivery")); !errors.Is(err, apperr.ErrUnknownMode) {
		t.Fatalf("err = %v, want ErrUnknownMode", err)
	}
}

func TestNegativeGuestCountClamped(t *testing.T) {
	s := testSession()
	s.SetDineInDetails(models.DineInDetails{StaffUser: "user1", TableID: "T1", VIPGuestCount: -4})
	if got := s.DineInDetails().VIPGuestCount; got != 0 {
		t.Errorf("guest count = %d, want 0", got)
	}
}
