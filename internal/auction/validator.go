package auction

import (
	"errors"
	"fmt"
	"time"

	db "github.com/katatrina/procurement-BE/internal/db/sqlc"
	"github.com/katatrina/procurement-BE/internal/util"
	"github.com/shopspring/decimal"
)

type RejectionReason string

const (
	ReasonInvalidAmount             RejectionReason = "invalid_amount"
	ReasonAuctionNotLive            RejectionReason = "auction_not_live"
	ReasonAmountNotLowerThanCurrent RejectionReason = "amount_not_lower_than_current"
)

var (
	ErrInvalidAmount             = errors.New("bid amount must be a positive decimal")
	ErrAuctionNotLive            = errors.New("auction is not live for bidding")
	ErrAmountNotLowerThanCurrent = errors.New("bid amount must be lower than the current price")
)

// RejectionError is returned when a bid is refused by the validator.
// It unwraps to the sentinel matching Reason.
type RejectionError struct {
	Reason       RejectionReason
	CurrentPrice decimal.NullDecimal
}

func (e *RejectionError) Error() string {
	if e.Reason == ReasonAmountNotLowerThanCurrent && e.CurrentPrice.Valid {
		return fmt.Sprintf("%s (current price: %s)", e.Unwrap(), util.FormatMoney(e.CurrentPrice.Decimal))
	}
	return e.Unwrap().Error()
}

func (e *RejectionError) Unwrap() error {
	switch e.Reason {
	case ReasonInvalidAmount:
		return ErrInvalidAmount
	case ReasonAuctionNotLive:
		return ErrAuctionNotLive
	default:
		return ErrAmountNotLowerThanCurrent
	}
}

func reject(reason RejectionReason) *RejectionError {
	return &RejectionError{Reason: reason}
}

// ValidateAmount rejects zero and negative amounts. It needs no auction state.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return reject(ReasonInvalidAmount)
	}
	return nil
}

// Validate decides whether amount may be accepted against a as seen at now.
// Checks run in order and stop at the first failure: amount, liveness, price.
// It has no side effects; only a call made under the auction's critical section
// against a freshly read row may gate a write.
func Validate(a db.Auction, amount decimal.Decimal, now time.Time) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}

	if !IsLive(a, now) {
		return reject(ReasonAuctionNotLive)
	}

	if a.CurrentPrice.Valid && !amount.LessThan(a.CurrentPrice.Decimal) {
		return &RejectionError{
			Reason:       ReasonAmountNotLowerThanCurrent,
			CurrentPrice: a.CurrentPrice,
		}
	}

	return nil
}
