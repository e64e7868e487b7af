package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type CompleteAuctionTxParams struct {
	AuctionID uuid.UUID
	Now       time.Time
	// AfterCommit is called once the auction is completed, while bid writers are
	// still held off.
	AfterCommit func(result CompleteAuctionTxResult)
}

type CompleteAuctionTxResult struct {
	Auction      Auction          `json:"auction"`
	Winner       *GetLowestBidRow `json:"winner,omitempty"`
	Participants []User           `json:"participants"`
	// Sequence follows the last accepted bid, so the completion is ordered after every bid.
	Sequence int64 `json:"sequence"`
	// WasPending is set when the auction expired before it was ever activated.
	WasPending bool `json:"was_pending"`
}

// CompleteAuctionTx closes an expired auction and resolves its winner, the supplier
// holding the lowest bid. A pending auction whose window already passed is closed too.
func (store *SQLStore) CompleteAuctionTx(ctx context.Context, arg CompleteAuctionTxParams) (CompleteAuctionTxResult, error) {
	var result CompleteAuctionTxResult

	afterCommit := func() {
		if arg.AfterCommit != nil {
			arg.AfterCommit(result)
		}
	}

	err := store.execAuctionTx(ctx, arg.AuctionID, func(qTx *Queries) error {
		auction, err := qTx.GetAuctionByIDForUpdate(ctx, arg.AuctionID)
		if err != nil {
			return err
		}

		if auction.Status != AuctionStatusActive && auction.Status != AuctionStatusPending {
			return ErrAuctionNotActive
		}
		result.WasPending = auction.Status == AuctionStatusPending

		if arg.Now.Before(auction.EndTime) {
			return ErrAuctionNotExpired
		}

		completedAuction, err := qTx.CompleteAuction(ctx, arg.AuctionID)
		if err != nil {
			return fmt.Errorf("failed to complete auction: %w", err)
		}
		result.Auction = completedAuction

		winner, err := qTx.GetLowestBid(ctx, arg.AuctionID)
		switch {
		case err == nil:
			result.Winner = &winner
		case errors.Is(err, ErrRecordNotFound):
		default:
			return fmt.Errorf("failed to get lowest bid: %w", err)
		}

		participants, err := qTx.ListAuctionParticipants(ctx, arg.AuctionID)
		if err != nil {
			return fmt.Errorf("failed to list auction participants: %w", err)
		}
		result.Participants = participants

		bidCount, err := qTx.CountBidsByAuctionID(ctx, arg.AuctionID)
		if err != nil {
			return fmt.Errorf("failed to count bids: %w", err)
		}
		result.Sequence = bidCount + 1

		return nil
	}, afterCommit)

	return result, err
}
