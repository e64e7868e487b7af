package validator

import (
	"fmt"
	"time"

	"github.com/katatrina/procurement-BE/internal/util"
	"github.com/shopspring/decimal"
)

const MaxAuctionDuration = 30 * 24 * time.Hour

// ValidateAuctionWindow checks the bidding window of a new auction.
func ValidateAuctionWindow(startTime, endTime, now time.Time) error {
	if startTime.IsZero() || endTime.IsZero() {
		return fmt.Errorf("start_time and end_time are required")
	}

	if !endTime.After(startTime) {
		return fmt.Errorf("end_time must be after start_time, start_time: %s, end_time: %s",
			startTime.Format(time.RFC3339), endTime.Format(time.RFC3339))
	}

	if !endTime.After(now) {
		return fmt.Errorf("end_time must be in the future, provided: %s", endTime.Format(time.RFC3339))
	}

	if duration := endTime.Sub(startTime); duration > MaxAuctionDuration {
		return fmt.Errorf("auction duration cannot exceed %.0f days, provided: %.1f days",
			MaxAuctionDuration.Hours()/24, duration.Hours()/24)
	}

	return nil
}

// ValidateSeedPrice checks the optional opening price set by the buyer.
func ValidateSeedPrice(price *decimal.Decimal) error {
	if price != nil && price.IsNegative() {
		return fmt.Errorf("current_price must not be negative, provided: %s", util.FormatMoney(*price))
	}
	return nil
}
