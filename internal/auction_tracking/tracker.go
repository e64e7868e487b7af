package auctiontracking

import (
	"context"
	"errors"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// Store lists the auctions whose scheduled transition is overdue.
type Store interface {
	ListDuePendingAuctionIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error)
	ListExpiredAuctionIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

// Transitioner runs the actual start and end of an auction.
type Transitioner interface {
	StartAuction(ctx context.Context, auctionID uuid.UUID) error
	EndAuction(ctx context.Context, auctionID uuid.UUID) error
}

// AuctionTracker periodically catches auctions whose start or end task was lost,
// for example because Redis was flushed or the task exhausted its retries.
type AuctionTracker struct {
	store        Store
	transitioner Transitioner
	scheduler    gocron.Scheduler
	interval     time.Duration
	now          func() time.Time
}

// NewAuctionTracker creates a tracker that sweeps every interval.
func NewAuctionTracker(store Store, transitioner Transitioner, interval time.Duration) (*AuctionTracker, error) {
	if interval <= 0 {
		return nil, errors.New("sweep interval must be positive")
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &AuctionTracker{
		store:        store,
		transitioner: transitioner,
		scheduler:    scheduler,
		interval:     interval,
		now:          time.Now,
	}, nil
}

// Start registers the sweep job and starts the scheduler.
func (t *AuctionTracker) Start() error {
	_, err := t.scheduler.NewJob(
		gocron.DurationJob(t.interval),
		gocron.NewTask(
			func() {
				t.Sweep(context.Background())
			},
		),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	t.scheduler.Start()
	return nil
}

func (t *AuctionTracker) Stop() error {
	return t.scheduler.Shutdown()
}
