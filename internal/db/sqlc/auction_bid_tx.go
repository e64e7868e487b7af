package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlaceBidTxParams struct {
	AuctionID uuid.UUID
	BidderID  string
	Amount    decimal.Decimal
	// CheckFunc is called with the row-locked auction before anything is written.
	// A non-nil error aborts the transaction and is returned unchanged.
	CheckFunc func(auction Auction) error
	// AfterCommit is called once the bid is committed, while other writers of the
	// same auction are still held off.
	AfterCommit func(result PlaceBidTxResult)
}

type PlaceBidTxResult struct {
	Bid     Bid     `json:"bid"`
	Auction Auction `json:"updated_auction"`
	// Sequence is the bid's position in the auction's acceptance order, starting at 1.
	Sequence int64 `json:"sequence"`
}

// PlaceBidTx records a bid and lowers the auction's current price to the bid amount
// in a single transaction. Either both writes are visible or neither is.
func (store *SQLStore) PlaceBidTx(ctx context.Context, arg PlaceBidTxParams) (PlaceBidTxResult, error) {
	var result PlaceBidTxResult

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

		if arg.CheckFunc != nil {
			if err = arg.CheckFunc(auction); err != nil {
				return err
			}
		}

		bidID, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate bid ID: %w", err)
		}

		bid, err := qTx.CreateBid(ctx, CreateBidParams{
			ID:        bidID,
			AuctionID: arg.AuctionID,
			BidderID:  arg.BidderID,
			Amount:    arg.Amount,
		})
		if err != nil {
			return fmt.Errorf("failed to create bid: %w", err)
		}
		result.Bid = bid

		updatedAuction, err := qTx.UpdateAuctionCurrentPrice(ctx, UpdateAuctionCurrentPriceParams{
			ID:           arg.AuctionID,
			CurrentPrice: decimal.NewNullDecimal(arg.Amount),
		})
		if err != nil {
			return fmt.Errorf("failed to update auction current price: %w", err)
		}
		result.Auction = updatedAuction

		sequence, err := qTx.CountBidsByAuctionID(ctx, arg.AuctionID)
		if err != nil {
			return fmt.Errorf("failed to count bids: %w", err)
		}
		result.Sequence = sequence

		return nil
	}, afterCommit)

	return result, err
}
