package auction

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	db "github.com/katatrina/procurement-BE/internal/db/sqlc"
	"github.com/katatrina/procurement-BE/internal/event"
	"github.com/shopspring/decimal"
)

// Publisher enqueues an event for fan-out. Broadcast must not drop the event
// once it returns nil, and must not wait on subscribers reading it.
type Publisher interface {
	Broadcast(event event.Event) error
}

// AuctionTopic is the channel name viewers of one auction subscribe to.
func AuctionTopic(auctionID uuid.UUID) string {
	return fmt.Sprintf("auction:%s", auctionID)
}

type BidView struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	BidderLabel string          `json:"bidder_label"`
	AcceptedAt  time.Time       `json:"accepted_at"`
}

// BidAcceptedEvent is the payload of a new_bid event.
type BidAcceptedEvent struct {
	Action    string          `json:"action"`
	AuctionID uuid.UUID       `json:"auction_id"`
	Price     decimal.Decimal `json:"price"`
	Bid       BidView         `json:"bid"`
}

type AuctionStartedEvent struct {
	Action    string    `json:"action"`
	AuctionID uuid.UUID `json:"auction_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type AuctionEndedEvent struct {
	Action     string              `json:"action"`
	AuctionID  uuid.UUID           `json:"auction_id"`
	FinalPrice decimal.NullDecimal `json:"final_price"`
	Winner     *BidView            `json:"winner"`
	EndedAt    time.Time           `json:"ended_at"`
}

func newBidAcceptedEvent(auction db.Auction, bid BidView, seq int64) event.Event {
	return event.Event{
		Topic: AuctionTopic(auction.ID),
		Type:  event.EventTypeNewBid,
		Seq:   seq,
		Data: BidAcceptedEvent{
			Action:    event.EventTypeNewBid,
			AuctionID: auction.ID,
			Price:     auction.CurrentPrice.Decimal,
			Bid:       bid,
		},
	}
}

func newAuctionStartedEvent(auction db.Auction) event.Event {
	return event.Event{
		Topic: AuctionTopic(auction.ID),
		Type:  event.EventTypeAuctionStarted,
		Data: AuctionStartedEvent{
			Action:    event.EventTypeAuctionStarted,
			AuctionID: auction.ID,
			StartTime: auction.StartTime,
			EndTime:   auction.EndTime,
		},
	}
}

func newAuctionEndedEvent(result db.CompleteAuctionTxResult) event.Event {
	data := AuctionEndedEvent{
		Action:     event.EventTypeAuctionEnded,
		AuctionID:  result.Auction.ID,
		FinalPrice: result.Auction.CurrentPrice,
		EndedAt:    result.Auction.UpdatedAt,
	}
	if result.Winner != nil {
		data.Winner = &BidView{
			ID:          result.Winner.ID,
			Amount:      result.Winner.Amount,
			BidderLabel: result.Winner.BidderLabel,
			AcceptedAt:  result.Winner.CreatedAt,
		}
	}

	return event.Event{
		Topic: AuctionTopic(result.Auction.ID),
		Type:  event.EventTypeAuctionEnded,
		Seq:   result.Sequence,
		Data:  data,
	}
}
