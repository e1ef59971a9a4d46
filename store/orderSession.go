package store

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"quickbite-pos/apperr"
	"quickbite-pos/helpers"
	"quickbite-pos/models"
)

// OrderSession holds the single in-progress order: its mode, customer
// details, rate configuration and lifecycle status. Exactly one session
// exists at a time; all transitions are synchronous.
type OrderSession struct {
	mu       sync.Mutex
	mode     models.OrderMode
	status   models.OrderStatus
	dineIn   models.DineInDetails
	takeAway models.TakeAwayDetails
	rates    models.RateConfig

	pendingTicket  string
	pendingOrderID int64
	lastOrderID    int64

	now     func() time.Time
	newCode helpers.CodeFunc
}

// SubmitResult lists the side effects the caller must run, in order:
// archive the order, then print or hand the ticket to the channel selector.
type SubmitResult struct {
	Order  models.ArchivedOrder
	Print  bool
	Ticket string
}

func NewOrderSession() *OrderSession {
	return &OrderSession{
		mode:   models.DineIn,
		status: models.StatusBuilding,
		dineIn: models.DineInDetails{StaffUser: "user0", TableID: "table0"},
		rates: models.RateConfig{
			VIPSurchargePerGuest: decimal.NewFromInt(10),
		},
		now:     time.Now,
		newCode: helpers.NewVerificationCode,
	}
}

// WithClock injects the time and code sources. Test hook.
func (s *OrderSession) WithClock(now func() time.Time, newCode helpers.CodeFunc) *OrderSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	s.newCode = newCode
	return s
}

func (s *OrderSession) Mode() models.OrderMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode switches the service mode. Switching while a ticket awaits a
// channel abandons that ticket and returns to building. The basket itself
// survives the toggle: the cart empties on dispatch, skip, cancel, or an
// explicit clear, never here, so a cashier can flip Dine-in to Take-away
// without re-keying the items.
func (s *OrderSession) SetMode(mode models.OrderMode) error {
	if mode != models.DineIn && mode != models.TakeAway {
		return apperr.ErrUnknownMode
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	s.resetLocked()
	return nil
}

func (s *OrderSession) Status() models.OrderStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *OrderSession) Rates() models.RateConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rates
}

// SetRates updates the charge configuration. Only permitted in dine-in
// mode; take-away orders never carry these charges. Negative rates are
// clamped to zero, not rejected.
func (s *OrderSession) SetRates(rates models.RateConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != models.DineIn {
		return apperr.ErrRatesLocked
	}
	s.rates = models.RateConfig{
		VATPercent:           helpers.ClampRate(rates.VATPercent),
		ServicePercent:       helpers.ClampRate(rates.ServicePercent),
		VIPSurchargePerGuest: helpers.ClampRate(rates.VIPSurchargePerGuest),
	}
	return nil
}

func (s *OrderSession) DineInDetails() models.DineInDetails {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dineIn
}

func (s *OrderSession) SetDineInDetails(d models.DineInDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.VIPGuestCount = helpers.ClampGuestCount(d.VIPGuestCount)
	s.dineIn = d
}

func (s *OrderSession) TakeAwayDetails() models.TakeAwayDetails {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.takeAway
}

func (s *OrderSession) SetTakeAwayDetails(d models.TakeAwayDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.takeAway = d
}

// Breakdown prices the given basket under the current mode, rates and
// guest count. Recomputed on every read, never cached.
func (s *OrderSession) Breakdown(lines []models.CartLine) models.ChargeBreakdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return helpers.ComputeBreakdown(lines, s.mode, s.rates, s.dineIn.VIPGuestCount)
}

// Submit validates the basket and builds the immutable archive record.
// Rejects an empty cart; that is the only validation gate on the basket.
// The caller must append the order to history before running any requested
// side effect. Dine-in requests a print and stays in building; take-away
// produces the ticket and moves to awaiting-channel. A held ticket must be
// dispatched or skipped before the next submit; resubmitting while one is
// pending would archive the same basket twice.
func (s *OrderSession) Submit(lines []models.CartLine) (SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != models.StatusBuilding {
		return SubmitResult{}, apperr.ErrOrderPending
	}
	if len(lines) == 0 {
		return SubmitResult{}, apperr.ErrEmptyCart
	}

	at := s.now()
	order := models.ArchivedOrder{
		ID:        s.nextOrderIDLocked(at),
		CreatedAt: at,
		Mode:      s.mode,
		Lines:     append([]models.CartLine(nil), lines...),
		Rates:     s.rates,
	}

	result := SubmitResult{}
	if s.mode == models.DineIn {
		details := s.dineIn
		order.DineIn = &details
		order.Breakdown = helpers.ComputeBreakdown(lines, s.mode, s.rates, details.VIPGuestCount)
		result.Print = true
	} else {
		details := s.takeAway
		order.TakeAway = &details
		order.Breakdown = helpers.ComputeBreakdown(lines, s.mode, s.rates, 0)
		result.Ticket = helpers.FormatTicket(order, s.newCode())
		s.pendingTicket = result.Ticket
		s.pendingOrderID = order.ID
		s.status = models.StatusAwaitingChannel
	}
	result.Order = order
	return result, nil
}

// PendingTicket returns the ticket held for channel selection.
func (s *OrderSession) PendingTicket() (string, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != models.StatusAwaitingChannel {
		return "", 0, apperr.ErrNotAwaitingChannel
	}
	return s.pendingTicket, s.pendingOrderID, nil
}

// FinishDispatch closes the awaiting-channel state after the ticket was
// handed to a channel. Take-away details are cleared for the next order.
func (s *OrderSession) FinishDispatch() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != models.StatusAwaitingChannel {
		return apperr.ErrNotAwaitingChannel
	}
	s.takeAway = models.TakeAwayDetails{}
	s.resetLocked()
	return nil
}

// SkipDispatch dismisses the channel selector without sharing.
func (s *OrderSession) SkipDispatch() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != models.StatusAwaitingChannel {
		return apperr.ErrNotAwaitingChannel
	}
	s.resetLocked()
	return nil
}

// Reset discards any in-progress state unconditionally (cancel, new order).
func (s *OrderSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *OrderSession) resetLocked() {
	s.status = models.StatusBuilding
	s.pendingTicket = ""
	s.pendingOrderID = 0
}

// nextOrderIDLocked derives a time-based id and forces it strictly
// monotonic when two submits land in the same millisecond.
func (s *OrderSession) nextOrderIDLocked(at time.Time) int64 {
	id := at.UnixNano() / int64(time.Millisecond)
	if id <= s.lastOrderID {
		id = s.lastOrderID + 1
	}
	s.lastOrderID = id
	return id
}
