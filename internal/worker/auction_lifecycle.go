package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/katatrina/procurement-BE/internal/auction"
	db "github.com/katatrina/procurement-BE/internal/db/sqlc"
	"github.com/katatrina/procurement-BE/internal/mailer"
	"github.com/rs/zerolog/log"
)

// AuctionLifecycle performs the status transitions an auction goes through outside of bidding.
type AuctionLifecycle interface {
	ActivateAuction(ctx context.Context, auctionID uuid.UUID) (db.Auction, error)
	CompleteAuction(ctx context.Context, auctionID uuid.UUID) (db.CompleteAuctionTxResult, error)
}

// AuctionLifecycleHandler starts and ends auctions and fans out the resulting emails.
// Both the asynq tasks and the periodic sweeper go through it, so running a transition
// twice is harmless: the second run finds nothing to do.
type AuctionLifecycleHandler struct {
	store       db.Store
	lifecycle   AuctionLifecycle
	distributor TaskDistributor
}

func NewAuctionLifecycleHandler(store db.Store, lifecycle AuctionLifecycle, distributor TaskDistributor) *AuctionLifecycleHandler {
	return &AuctionLifecycleHandler{
		store:       store,
		lifecycle:   lifecycle,
		distributor: distributor,
	}
}

func (h *AuctionLifecycleHandler) StartAuction(ctx context.Context, auctionID uuid.UUID) error {
	activated, err := h.lifecycle.ActivateAuction(ctx, auctionID)
	if err != nil {
		if errors.Is(err, auction.ErrAuctionNotFound) || errors.Is(err, auction.ErrAuctionNotPending) {
			log.Info().
				Err(err).
				Str("auction_id", auctionID.String()).
				Msg("auction cannot be started, skipping")
			return nil
		}
		return fmt.Errorf("failed to activate auction: %w", err)
	}

	// The transition is committed; notification failures are logged, never retried through here.
	rfq, err := h.store.GetRfqByID(ctx, activated.RfqID)
	if err != nil {
		log.Warn().Err(err).Str("auction_id", auctionID.String()).Msg("failed to get rfq for auction started emails")
		return nil
	}

	suppliers, err := h.store.ListSuppliers(ctx)
	if err != nil {
		log.Warn().Err(err).Str("auction_id", auctionID.String()).Msg("failed to list suppliers for auction started emails")
		return nil
	}

	subject, body := mailer.AuctionStartedEmail(mailer.AuctionStartedData{
		RfqTitle: rfq.Title,
		EndTime:  activated.EndTime,
		Price:    activated.CurrentPrice,
	})

	for _, supplier := range suppliers {
		h.notify(ctx, &PayloadSendNotification{
			RecipientID: supplier.ID,
			Email:       supplier.Email,
			Subject:     subject,
			Body:        body,
			Type:        "auction_started",
			ReferenceID: auctionID.String(),
		})
	}

	return nil
}

func (h *AuctionLifecycleHandler) EndAuction(ctx context.Context, auctionID uuid.UUID) error {
	result, err := h.lifecycle.CompleteAuction(ctx, auctionID)
	if err != nil {
		switch {
		case errors.Is(err, auction.ErrAuctionNotFound), errors.Is(err, db.ErrAuctionNotActive):
			log.Info().
				Err(err).
				Str("auction_id", auctionID.String()).
				Msg("auction cannot be ended, skipping")
			return nil
		case errors.Is(err, db.ErrAuctionNotExpired):
			return fmt.Errorf("auction %s ended too early: %w", auctionID, err)
		default:
			return fmt.Errorf("failed to complete auction: %w", err)
		}
	}

	rfq, err := h.store.GetRfqByID(ctx, result.Auction.RfqID)
	if err != nil {
		log.Warn().Err(err).Str("auction_id", auctionID.String()).Msg("failed to get rfq for auction ended emails")
		return nil
	}

	data := mailer.AuctionEndedData{
		RfqTitle:   rfq.Title,
		FinalPrice: result.Auction.CurrentPrice,
	}
	if result.Winner != nil {
		data.WinnerLabel = result.Winner.BidderLabel
	}

	for _, participant := range result.Participants {
		participantData := data
		participantData.IsWinner = result.Winner != nil && result.Winner.BidderID == participant.ID

		subject, body := mailer.AuctionEndedEmail(participantData)
		h.notify(ctx, &PayloadSendNotification{
			RecipientID: participant.ID,
			Email:       participant.Email,
			Subject:     subject,
			Body:        body,
			Type:        "auction_ended",
			ReferenceID: auctionID.String(),
		})
	}

	buyer, err := h.store.GetUserByID(ctx, rfq.BuyerID)
	if err != nil {
		log.Warn().Err(err).Str("buyer_id", rfq.BuyerID).Msg("failed to get buyer for auction ended email")
		return nil
	}

	subject, body := mailer.AuctionEndedEmail(data)
	h.notify(ctx, &PayloadSendNotification{
		RecipientID: buyer.ID,
		Email:       buyer.Email,
		Subject:     subject,
		Body:        body,
		Type:        "auction_ended",
		ReferenceID: auctionID.String(),
	})

	return nil
}

func (h *AuctionLifecycleHandler) notify(ctx context.Context, payload *PayloadSendNotification) {
	err := h.distributor.DistributeTaskSendNotification(ctx, payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueDefault),
	)
	if err != nil {
		log.Err(err).
			Str("recipient_id", payload.RecipientID).
			Str("reference_id", payload.ReferenceID).
			Msg("failed to enqueue notification")
	}
}
