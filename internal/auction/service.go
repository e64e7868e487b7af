package auction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	db "github.com/katatrina/procurement-BE/internal/db/sqlc"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrAuctionNotFound    = errors.New("auction not found")
	ErrAuctionNotPending  = errors.New("auction is not pending")
	ErrNotSupplier        = errors.New("only suppliers can place bids")
	ErrPersistenceFailure = errors.New("failed to persist bid")
	ErrAuctionBusy        = errors.New("auction is busy, try again")
)

// Store is the part of db.Store the bidding core depends on.
type Store interface {
	GetAuctionByID(ctx context.Context, id uuid.UUID) (db.Auction, error)
	GetUserByID(ctx context.Context, id string) (db.User, error)
	ActivateAuction(ctx context.Context, id uuid.UUID) (db.Auction, error)
	PlaceBidTx(ctx context.Context, arg db.PlaceBidTxParams) (db.PlaceBidTxResult, error)
	CompleteAuctionTx(ctx context.Context, arg db.CompleteAuctionTxParams) (db.CompleteAuctionTxResult, error)
}

type Option func(*Service)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLockWaitTimeout bounds how long a submission may queue for an auction's
// critical section before failing with ErrAuctionBusy. Zero waits forever.
func WithLockWaitTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		s.lockWaitTimeout = timeout
	}
}

// Service accepts bids. Submissions for the same auction are serialized in
// arrival order; submissions for different auctions run independently.
type Service struct {
	store           Store
	publisher       Publisher
	locks           *keyedLocker
	now             func() time.Time
	lockWaitTimeout time.Duration
}

func NewService(store Store, publisher Publisher, opts ...Option) *Service {
	s := &Service{
		store:     store,
		publisher: publisher,
		locks:     newKeyedLocker(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Accepted describes a committed bid.
type Accepted struct {
	BidID           uuid.UUID       `json:"bid_id"`
	NewCurrentPrice decimal.Decimal `json:"new_current_price"`
	Bid             BidView         `json:"bid"`
	Auction         db.Auction      `json:"auction"`
}

// SubmitBid is the only way a bid is placed. It returns a *RejectionError when the
// validator refuses the bid, in which case nothing was written or broadcast.
func (s *Service) SubmitBid(ctx context.Context, auctionID uuid.UUID, userID string, amount decimal.Decimal) (Accepted, error) {
	logger := log.With().
		Str("auction_id", auctionID.String()).
		Str("user_id", userID).
		Str("amount", amount.String()).
		Logger()

	if err := ValidateAmount(amount); err != nil {
		logger.Info().Str("reason", string(ReasonInvalidAmount)).Msg("bid rejected")
		return Accepted{}, err
	}

	bidder, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return Accepted{}, ErrNotSupplier
		}
		return Accepted{}, fmt.Errorf("failed to get bidder: %w", err)
	}
	if bidder.Role != db.UserRoleSupplier {
		return Accepted{}, ErrNotSupplier
	}

	if _, err = s.store.GetAuctionByID(ctx, auctionID); err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return Accepted{}, ErrAuctionNotFound
		}
		return Accepted{}, fmt.Errorf("failed to get auction: %w", err)
	}

	unlock, err := s.acquire(ctx, auctionID)
	if err != nil {
		logger.Info().Err(err).Msg("bid abandoned before entering critical section")
		return Accepted{}, err
	}
	defer unlock()

	// Once inside the critical section the submission runs to completion.
	txCtx := context.WithoutCancel(ctx)

	result, err := s.store.PlaceBidTx(txCtx, db.PlaceBidTxParams{
		AuctionID: auctionID,
		BidderID:  userID,
		Amount:    amount,
		CheckFunc: func(current db.Auction) error {
			return Validate(current, amount, s.now())
		},
		// Runs before any other instance can commit a bid on this auction, so
		// events are published in acceptance order.
		AfterCommit: func(result db.PlaceBidTxResult) {
			evt := newBidAcceptedEvent(result.Auction, newBidView(result.Bid, bidder), result.Sequence)
			if err := s.publisher.Broadcast(evt); err != nil {
				logger.Error().Err(err).Str("bid_id", result.Bid.ID.String()).Msg("failed to enqueue bid broadcast")
			}
		},
	})
	if err != nil {
		var rejection *RejectionError
		switch {
		case errors.As(err, &rejection):
			logger.Info().Str("reason", string(rejection.Reason)).Msg("bid rejected")
			return Accepted{}, rejection
		case errors.Is(err, db.ErrRecordNotFound):
			return Accepted{}, ErrAuctionNotFound
		default:
			logger.Error().Err(err).Msg("failed to persist bid")
			return Accepted{}, fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
		}
	}

	bid := newBidView(result.Bid, bidder)

	logger.Info().
		Str("bid_id", bid.ID.String()).
		Str("current_price", result.Auction.CurrentPrice.Decimal.String()).
		Msg("bid accepted")

	return Accepted{
		BidID:           bid.ID,
		NewCurrentPrice: result.Auction.CurrentPrice.Decimal,
		Bid:             bid,
		Auction:         result.Auction,
	}, nil
}

func (s *Service) acquire(ctx context.Context, auctionID uuid.UUID) (func(), error) {
	if s.lockWaitTimeout <= 0 {
		return s.locks.Lock(ctx, auctionID)
	}

	lockCtx, cancel := context.WithTimeoutCause(ctx, s.lockWaitTimeout, ErrAuctionBusy)
	defer cancel()

	unlock, err := s.locks.Lock(lockCtx, auctionID)
	if err != nil && errors.Is(context.Cause(lockCtx), ErrAuctionBusy) {
		return nil, ErrAuctionBusy
	}

	return unlock, err
}

// GetState returns a possibly stale snapshot of the auction.
func (s *Service) GetState(ctx context.Context, auctionID uuid.UUID) (State, error) {
	auction, err := s.store.GetAuctionByID(ctx, auctionID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return State{}, ErrAuctionNotFound
		}
		return State{}, fmt.Errorf("failed to get auction: %w", err)
	}

	return NewState(auction, s.now()), nil
}

// ActivateAuction moves a pending auction to active and announces it.
func (s *Service) ActivateAuction(ctx context.Context, auctionID uuid.UUID) (db.Auction, error) {
	auction, err := s.store.ActivateAuction(ctx, auctionID)
	if err != nil {
		if !errors.Is(err, db.ErrRecordNotFound) {
			return db.Auction{}, fmt.Errorf("failed to activate auction: %w", err)
		}

		if _, err = s.store.GetAuctionByID(ctx, auctionID); err != nil {
			if errors.Is(err, db.ErrRecordNotFound) {
				return db.Auction{}, ErrAuctionNotFound
			}
			return db.Auction{}, fmt.Errorf("failed to get auction: %w", err)
		}
		return db.Auction{}, ErrAuctionNotPending
	}

	if err = s.publisher.Broadcast(newAuctionStartedEvent(auction)); err != nil {
		log.Error().Err(err).Str("auction_id", auctionID.String()).Msg("failed to enqueue auction started broadcast")
	}

	log.Info().Str("auction_id", auctionID.String()).Msg("auction activated")

	return auction, nil
}

// CompleteAuction closes an auction whose end time has passed, including a pending
// one that was never activated.
// It returns db.ErrAuctionNotActive or db.ErrAuctionNotExpired when there is nothing to do.
func (s *Service) CompleteAuction(ctx context.Context, auctionID uuid.UUID) (db.CompleteAuctionTxResult, error) {
	unlock, err := s.acquire(ctx, auctionID)
	if err != nil {
		return db.CompleteAuctionTxResult{}, err
	}
	defer unlock()

	result, err := s.store.CompleteAuctionTx(context.WithoutCancel(ctx), db.CompleteAuctionTxParams{
		AuctionID: auctionID,
		Now:       s.now(),
		AfterCommit: func(result db.CompleteAuctionTxResult) {
			if err := s.publisher.Broadcast(newAuctionEndedEvent(result)); err != nil {
				log.Error().Err(err).Str("auction_id", auctionID.String()).Msg("failed to enqueue auction ended broadcast")
			}
		},
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return db.CompleteAuctionTxResult{}, ErrAuctionNotFound
		}
		return db.CompleteAuctionTxResult{}, err
	}

	if result.WasPending {
		log.Warn().Str("auction_id", auctionID.String()).Msg("auction expired before it was activated")
	}

	logEvent := log.Info().
		Str("auction_id", auctionID.String()).
		Int("participants", len(result.Participants))
	if result.Winner != nil {
		logEvent = logEvent.Str("winner_id", result.Winner.BidderID).Str("final_price", result.Winner.Amount.String())
	}
	logEvent.Msg("auction completed")

	return result, nil
}

func newBidView(bid db.Bid, bidder db.User) BidView {
	return BidView{
		ID:          bid.ID,
		Amount:      bid.Amount,
		BidderLabel: bidderLabel(bidder),
		AcceptedAt:  bid.CreatedAt,
	}
}

func bidderLabel(user db.User) string {
	if user.CompanyName != "" {
		return user.CompanyName
	}
	return user.FullName
}
