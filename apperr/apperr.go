// Package apperr defines the error taxonomy of the order engine. Every
// error here is recoverable by the operator; none is fatal to the process.
package apperr

import (
	"errors"
	"net/http"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrItemNotFound       = errors.New("item not found")
	ErrAdminAuth          = errors.New("invalid admin password")
	ErrRatesLocked        = errors.New("rates are editable only in dine-in mode")
	ErrNotAwaitingChannel = errors.New("no ticket is awaiting a channel")
	ErrOrderPending       = errors.New("a ticket is already awaiting a channel")
	ErrUnknownChannel     = errors.New("unknown share channel")
	ErrUnknownMode        = errors.New("unknown order mode")
)

func Kind(err error) string {
	switch {
	case err == nil:
		return ""

	case errors.Is(err, ErrEmptyCart):
		return "empty_cart"

	case errors.Is(err, ErrItemNotFound):
		return "item_not_found"

	case errors.Is(err, ErrAdminAuth):
		return "admin_auth"

	case errors.Is(err, ErrRatesLocked):
		return "rates_locked"

	case errors.Is(err, ErrNotAwaitingChannel):
		return "not_awaiting_channel"

	case errors.Is(err, ErrOrderPending):
		return "order_pending"

	case errors.Is(err, ErrUnknownChannel):
		return "unknown_channel"

	case errors.Is(err, ErrUnknownMode):
		return "unknown_mode"

	default:
		return "internal"
	}
}

func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, ErrEmptyCart),
		errors.Is(err, ErrUnknownChannel),
		errors.Is(err, ErrUnknownMode):
		return http.StatusBadRequest

	case errors.Is(err, ErrItemNotFound):
		return http.StatusNotFound

	case errors.Is(err, ErrAdminAuth):
		return http.StatusUnauthorized

	case errors.Is(err, ErrRatesLocked),
		errors.Is(err, ErrNotAwaitingChannel),
		errors.Is(err, ErrOrderPending):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
