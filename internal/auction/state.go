package auction

import (
	"time"

	"github.com/google/uuid"
	db "github.com/katatrina/procurement-BE/internal/db/sqlc"
	"github.com/shopspring/decimal"
)

// IsLive reports whether a accepts bids at now. Status alone is not enough:
// an active auction whose window has passed is no longer live even before the
// sweeper marks it completed.
func IsLive(a db.Auction, now time.Time) bool {
	return a.Status == db.AuctionStatusActive &&
		!now.Before(a.StartTime) &&
		now.Before(a.EndTime)
}

// TimeRemaining is end_time - now while the auction is live, zero otherwise.
func TimeRemaining(a db.Auction, now time.Time) time.Duration {
	if !IsLive(a, now) {
		return 0
	}
	return a.EndTime.Sub(now)
}

// State is a read-only snapshot of an auction for display and late-joiner catch-up.
// CurrentPrice may already be stale when the caller reads it.
type State struct {
	AuctionID     uuid.UUID           `json:"auction_id"`
	RfqID         uuid.UUID           `json:"rfq_id"`
	Status        db.AuctionStatus    `json:"status"`
	CurrentPrice  decimal.NullDecimal `json:"current_price"`
	StartTime     time.Time           `json:"start_time"`
	EndTime       time.Time           `json:"end_time"`
	IsLive        bool                `json:"is_live"`
	TimeRemaining int64               `json:"time_remaining"`
}

func NewState(a db.Auction, now time.Time) State {
	return State{
		AuctionID:     a.ID,
		RfqID:         a.RfqID,
		Status:        a.Status,
		CurrentPrice:  a.CurrentPrice,
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		IsLive:        IsLive(a, now),
		TimeRemaining: int64(TimeRemaining(a, now) / time.Second),
	}
}
