package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/katatrina/procurement-BE/internal/auction"
	db "github.com/katatrina/procurement-BE/internal/db/sqlc"
	"github.com/katatrina/procurement-BE/internal/token"
	"github.com/katatrina/procurement-BE/internal/validator"
	"github.com/katatrina/procurement-BE/internal/worker"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type createAuctionRequest struct {
	StartTime    time.Time         `json:"start_time" binding:"required"`
	EndTime      time.Time         `json:"end_time" binding:"required"`
	CurrentPrice *decimal.Decimal  `json:"current_price"`
	Status       *db.AuctionStatus `json:"status"`
}

func validateCreateAuctionRequest(req *createAuctionRequest, now time.Time) (violations []*FieldViolation) {
	if err := validator.ValidateAuctionWindow(req.StartTime, req.EndTime, now); err != nil {
		violations = append(violations, fieldViolation("end_time", err))
	}

	if err := validator.ValidateSeedPrice(req.CurrentPrice); err != nil {
		violations = append(violations, fieldViolation("current_price", err))
	}

	if req.Status != nil && *req.Status != db.AuctionStatusPending && *req.Status != db.AuctionStatusActive {
		violations = append(violations, fieldViolation("status", fmt.Errorf("must be one of: %s, %s", db.AuctionStatusPending, db.AuctionStatusActive)))
	}

	return violations
}

//	@Summary		Open the reverse auction of an rfq
//	@Description	Only the buyer owning a published rfq may open its auction. Start and end transitions are scheduled.
//	@Tags			auctions
//	@Accept			json
//	@Produce		json
//	@Param			rfqID	path		string					true	"RFQ ID"
//	@Param			request	body		createAuctionRequest	true	"Auction window and seed price"
//	@Success		201		{object}	auction.State			"Auction opened"
//	@Failure		403		{object}	object					"Caller does not own the rfq"
//	@Failure		409		{object}	object					"The rfq already has an auction"
//	@Failure		422		{object}	FailedValidationResponse	"Invalid window or rfq not published"
//	@Security		accessToken
//	@Router			/rfqs/{rfqID}/auction [post]
func (server *Server) createAuction(c *gin.Context) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	rfqID, err := uuid.Parse(c.Param("rfqID"))
	if err != nil {
		err = fmt.Errorf("invalid rfq ID: %w", err)
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	req := new(createAuctionRequest)
	if err = c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	now := time.Now()
	violations := validateCreateAuctionRequest(req, now)
	if violations != nil {
		c.JSON(http.StatusUnprocessableEntity, failedValidationError(violations))
		return
	}

	rfq, err := server.dbStore.GetRfqByID(c, rfqID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("rfq ID %s not found", rfqID)
			c.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Str("rfq_id", rfqID.String()).Msg("failed to get rfq")
		c.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	if rfq.BuyerID != authPayload.Subject {
		c.JSON(http.StatusForbidden, errorResponse(ErrNotRfqOwner))
		return
	}

	if rfq.Status != db.RfqStatusPublished {
		err = fmt.Errorf("rfq ID %s is not published, current status: %s", rfqID, rfq.Status)
		c.JSON(http.StatusUnprocessableEntity, errorResponse(err))
		return
	}

	status := db.AuctionStatusPending
	if req.Status != nil {
		status = *req.Status
	}

	var currentPrice decimal.NullDecimal
	if req.CurrentPrice != nil {
		currentPrice = decimal.NewNullDecimal(*req.CurrentPrice)
	}

	auctionID, err := uuid.NewV7()
	if err != nil {
		log.Err(err).Msg("failed to generate auction id")
		c.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	created, err := server.dbStore.CreateAuction(c, db.CreateAuctionParams{
		ID:           auctionID,
		RfqID:        rfqID,
		Status:       status,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		CurrentPrice: currentPrice,
	})
	if err != nil {
		errCode, constraintName := db.ErrorDescription(err)
		if errCode == db.UniqueViolationCode && constraintName == db.UniqueAuctionRfqConstraint {
			err = fmt.Errorf("rfq ID %s already has an auction", rfqID)
			c.JSON(http.StatusConflict, errorResponse(err))
			return
		}

		log.Err(err).Str("rfq_id", rfqID.String()).Msg("failed to create auction")
		c.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	server.scheduleAuctionTransitions(c, created)

	c.JSON(http.StatusCreated, auction.NewState(created, now))
}

// scheduleAuctionTransitions enqueues the start and end tasks of a new auction.
// A failure here is not fatal: the auction tracker picks up overdue transitions.
func (server *Server) scheduleAuctionTransitions(c *gin.Context, created db.Auction) {
	if created.Status == db.AuctionStatusPending {
		err := server.taskDistributor.DistributeTaskStartAuction(c, &worker.PayloadStartAuction{
			AuctionID: created.ID,
		}, asynq.ProcessAt(created.StartTime), asynq.Queue(worker.QueueCritical), asynq.MaxRetry(5))
		if err != nil {
			log.Err(err).Str("auction_id", created.ID.String()).Msg("failed to schedule auction start")
		}
	}

	err := server.taskDistributor.DistributeTaskEndAuction(c, &worker.PayloadEndAuction{
		AuctionID: created.ID,
	}, asynq.ProcessAt(created.EndTime), asynq.Queue(worker.QueueCritical), asynq.MaxRetry(5))
	if err != nil {
		log.Err(err).Str("auction_id", created.ID.String()).Msg("failed to schedule auction end")
	}
}

//	@Summary		List auctions
//	@Tags			auctions
//	@Produce		json
//	@Param			status	query	string			false	"Filter by status"	Enums(pending, active, completed)
//	@Success		200		{array}	auction.State	"Auctions, newest first"
//	@Router			/auctions [get]
func (server *Server) listAuctions(c *gin.Context) {
	status := db.AuctionStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		err := fmt.Errorf("invalid status: %s, allowed statuses: [pending, active, completed]", status)
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	auctions, err := server.dbStore.ListAuctions(c, db.NullAuctionStatus{
		AuctionStatus: status,
		Valid:         status != "",
	})
	if err != nil {
		log.Err(err).Msg("failed to list auctions")
		c.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	now := time.Now()
	states := make([]auction.State, 0, len(auctions))
	for _, a := range auctions {
		states = append(states, auction.NewState(a, now))
	}

	c.JSON(http.StatusOK, states)
}

//	@Summary		Get auction state
//	@Description	Returns the state a late joiner needs before subscribing to the stream.
//	@Tags			auctions
//	@Produce		json
//	@Param			auctionID	path		string			true	"Auction ID"
//	@Success		200			{object}	auction.State	"Current auction state"
//	@Failure		404			{object}	object			"Auction not found"
//	@Router			/auctions/{auctionID} [get]
func (server *Server) getAuction(c *gin.Context) {
	auctionID, err := uuid.Parse(c.Param("auctionID"))
	if err != nil {
		err = fmt.Errorf("invalid auction ID: %w", err)
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	state, err := server.biddingService.GetState(c, auctionID)
	if err != nil {
		if errors.Is(err, auction.ErrAuctionNotFound) {
			err = fmt.Errorf("auction ID %s not found", auctionID)
			c.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Str("auction_id", auctionID.String()).Msg("failed to get auction state")
		c.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	c.JSON(http.StatusOK, state)
}

//	@Summary		Get the auction of an rfq
//	@Tags			auctions
//	@Produce		json
//	@Param			rfqID	path		string			true	"RFQ ID"
//	@Success		200		{object}	auction.State	"Current auction state"
//	@Failure		404		{object}	object			"The rfq has no auction"
//	@Router			/rfqs/{rfqID}/auction [get]
func (server *Server) getAuctionByRfq(c *gin.Context) {
	rfqID, err := uuid.Parse(c.Param("rfqID"))
	if err != nil {
		err = fmt.Errorf("invalid rfq ID: %w", err)
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	a, err := server.dbStore.GetAuctionByRfqID(c, rfqID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("rfq ID %s has no auction", rfqID)
			c.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Str("rfq_id", rfqID.String()).Msg("failed to get auction by rfq")
		c.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	c.JSON(http.StatusOK, auction.NewState(a, time.Now()))
}
