// Package booking holds the pricing and consistency rules for creating a
// rental transaction. Everything here is pure; persistence stays in db.
package booking

import (
	"errors"
	"fmt"
	"math"
	"time"

	"rentora/models"
)

var (
	ErrDateOrder     = errors.New("dateOut must be after dateIn")
	ErrBankForbidden = errors.New("bank should not be provided when payment method is cash")
	ErrBankRequired  = errors.New("bank must be provided when payment method is transfer")
)

const dateLayout = "2006-01-02"

// Quote is the derived part of a booking: normalized dates and rental
// duration. Price comes later, once the category row has been read.
type Quote struct {
	DateIn   string
	DateOut  string
	DayTotal int
}

// ParseDate accepts a plain calendar date or a full RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// NewQuote normalizes the date range and computes the rental duration:
// dayTotal = ceil((dateOut - dateIn) / 1 day), which must be positive.
func NewQuote(dateIn, dateOut string) (Quote, error) {
	in, err := ParseDate(dateIn)
	if err != nil {
		return Quote{}, err
	}
	out, err := ParseDate(dateOut)
	if err != nil {
		return Quote{}, err
	}

	dayTotal := int(math.Ceil(out.Sub(in).Hours() / 24))
	if dayTotal <= 0 {
		return Quote{}, ErrDateOrder
	}

	return Quote{
		DateIn:   in.Format(dateLayout),
		DateOut:  out.Format(dateLayout),
		DayTotal: dayTotal,
	}, nil
}

// Total prices the quote: unitPrice * dayTotal * quantity.
func (q Quote) Total(unitPrice int64, quantity int) int64 {
	return unitPrice * int64(q.DayTotal) * int64(quantity)
}

// ValidatePayment enforces that a bank is given if and only if the payment
// method is transfer.
func ValidatePayment(method, bank string) error {
	if method == models.PaymentCash && bank != "" {
		return ErrBankForbidden
	}
	if method == models.PaymentTransfer && bank == "" {
		return ErrBankRequired
	}
	return nil
}
