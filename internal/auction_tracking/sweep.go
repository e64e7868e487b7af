package auctiontracking

import (
	"context"

	"github.com/rs/zerolog/log"
)

// SweepResult counts what a single sweep did.
type SweepResult struct {
	Started int
	Ended   int
	Failed  int
}

// Sweep starts every pending auction whose window has opened and ends every
// auction whose window has closed, including pending ones that were never started.
// Errors on one auction do not stop the rest.
func (t *AuctionTracker) Sweep(ctx context.Context) SweepResult {
	var result SweepResult
	now := t.now()

	due, err := t.store.ListDuePendingAuctionIDs(ctx, now)
	if err != nil {
		log.Error().Err(err).Msg("failed to list due pending auctions")
	}
	for _, id := range due {
		if err := t.transitioner.StartAuction(ctx, id); err != nil {
			log.Error().
				Err(err).
				Str("auction_id", id.String()).
				Msg("failed to start auction")
			result.Failed++
			continue
		}
		result.Started++
	}

	expired, err := t.store.ListExpiredAuctionIDs(ctx, now)
	if err != nil {
		log.Error().Err(err).Msg("failed to list expired auctions")
	}
	for _, id := range expired {
		if err := t.transitioner.EndAuction(ctx, id); err != nil {
			log.Error().
				Err(err).
				Str("auction_id", id.String()).
				Msg("failed to end auction")
			result.Failed++
			continue
		}
		result.Ended++
	}

	if len(due) > 0 || len(expired) > 0 {
		log.Info().
			Int("started", result.Started).
			Int("ended", result.Ended).
			Int("failed", result.Failed).
			Msg("auction sweep finished")
	}

	return result
}
