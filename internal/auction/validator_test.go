package auction

import (
	"errors"
	"testing"
	"time"

	db "github.com/katatrina/procurement-BE/internal/db/sqlc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func liveAuction(price string) db.Auction {
	a := db.Auction{
		Status:    db.AuctionStatusActive,
		StartTime: testNow.Add(-time.Hour),
		EndTime:   testNow.Add(time.Hour),
	}
	if price != "" {
		a.CurrentPrice = decimal.NewNullDecimal(decimal.RequireFromString(price))
	}
	return a
}

func TestValidate(t *testing.T) {
	ended := liveAuction("1000")
	ended.EndTime = testNow

	pending := liveAuction("1000")
	pending.Status = db.AuctionStatusPending

	tests := []struct {
		name      string
		auction   db.Auction
		amount    string
		wantErr   error
		wantPrice string
	}{
		{name: "lower than current", auction: liveAuction("1000"), amount: "999.99"},
		{name: "first bid without price", auction: liveAuction(""), amount: "1000000"},
		{name: "seed price zero rejects everything", auction: liveAuction("0"), amount: "0.01", wantErr: ErrAmountNotLowerThanCurrent, wantPrice: "0"},
		{name: "equal to current", auction: liveAuction("1000"), amount: "1000", wantErr: ErrAmountNotLowerThanCurrent, wantPrice: "1000"},
		{name: "higher than current", auction: liveAuction("1000"), amount: "1500", wantErr: ErrAmountNotLowerThanCurrent, wantPrice: "1000"},
		{name: "zero amount", auction: liveAuction("1000"), amount: "0", wantErr: ErrInvalidAmount},
		{name: "negative amount", auction: liveAuction("1000"), amount: "-5", wantErr: ErrInvalidAmount},
		{name: "invalid amount checked before liveness", auction: ended, amount: "0", wantErr: ErrInvalidAmount},
		{name: "liveness checked before price", auction: ended, amount: "5000", wantErr: ErrAuctionNotLive},
		{name: "pending auction", auction: pending, amount: "1", wantErr: ErrAuctionNotLive},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.auction, decimal.RequireFromString(tc.amount), testNow)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tc.wantErr)

			var rejection *RejectionError
			require.True(t, errors.As(err, &rejection))
			if tc.wantPrice != "" {
				require.True(t, rejection.CurrentPrice.Valid)
				assert.True(t, rejection.CurrentPrice.Decimal.Equal(decimal.RequireFromString(tc.wantPrice)))
			} else {
				assert.False(t, rejection.CurrentPrice.Valid)
			}
		})
	}
}

func TestRejectionError_Message(t *testing.T) {
	err := Validate(liveAuction("1250000"), decimal.NewFromInt(1300000), testNow)
	require.EqualError(t, err, "bid amount must be lower than the current price (current price: 1,250,000)")

	err = ValidateAmount(decimal.Zero)
	require.EqualError(t, err, ErrInvalidAmount.Error())
}
