package auction

import (
	"testing"
	"time"

	db "github.com/katatrina/procurement-BE/internal/db/sqlc"
	"github.com/stretchr/testify/assert"
)

func TestIsLive(t *testing.T) {
	start := testNow
	end := testNow.Add(10 * time.Minute)

	tests := []struct {
		name   string
		status db.AuctionStatus
		now    time.Time
		want   bool
	}{
		{"before start", db.AuctionStatusActive, start.Add(-time.Nanosecond), false},
		{"at start", db.AuctionStatusActive, start, true},
		{"inside window", db.AuctionStatusActive, start.Add(5 * time.Minute), true},
		{"at end", db.AuctionStatusActive, end, false},
		{"after end", db.AuctionStatusActive, end.Add(time.Second), false},
		{"pending inside window", db.AuctionStatusPending, start.Add(time.Minute), false},
		{"completed inside window", db.AuctionStatusCompleted, start.Add(time.Minute), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := db.Auction{Status: tc.status, StartTime: start, EndTime: end}
			assert.Equal(t, tc.want, IsLive(a, tc.now))
		})
	}
}

func TestTimeRemaining(t *testing.T) {
	a := liveAuction("1000")

	assert.Equal(t, time.Hour, TimeRemaining(a, testNow))
	assert.Zero(t, TimeRemaining(a, a.EndTime))
	assert.Zero(t, TimeRemaining(a, a.StartTime.Add(-time.Minute)))

	a.Status = db.AuctionStatusCompleted
	assert.Zero(t, TimeRemaining(a, testNow))
}

func TestNewState(t *testing.T) {
	a := liveAuction("1000")

	state := NewState(a, testNow.Add(1500*time.Millisecond))
	assert.True(t, state.IsLive)
	assert.Equal(t, int64(3598), state.TimeRemaining)
	assert.Equal(t, db.AuctionStatusActive, state.Status)
	assert.Equal(t, "1000", state.CurrentPrice.Decimal.String())

	state = NewState(a, a.EndTime.Add(time.Minute))
	assert.False(t, state.IsLive)
	assert.Zero(t, state.TimeRemaining)
}
