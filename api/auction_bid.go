package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/katatrina/procurement-BE/internal/auction"
	db "github.com/katatrina/procurement-BE/internal/db/sqlc"
	"github.com/katatrina/procurement-BE/internal/token"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// nginx convention for a request the client abandoned.
const statusClientClosedRequest = 499

type submitBidRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

type submitBidResponse struct {
	BidID           uuid.UUID       `json:"bid_id"`
	NewCurrentPrice decimal.Decimal `json:"new_current_price"`
	Bid             auction.BidView `json:"bid"`
}

//	@Summary		Place a bid in an auction
//	@Description	Supplier places a bid lower than the current price of a live auction. The amount may be sent as a JSON number or a string.
//	@Tags			auctions
//	@Accept			json
//	@Produce		json
//	@Param			auctionID	path		string				true	"Auction ID"
//	@Param			request		body		submitBidRequest	true	"Request body containing bid amount"
//	@Success		201			{object}	submitBidResponse	"Bid accepted"
//	@Failure		400			{object}	object				"Invalid amount"
//	@Failure		403			{object}	object				"Caller is not a supplier"
//	@Failure		404			{object}	object				"Auction not found"
//	@Failure		409			{object}	object				"Auction busy"
//	@Failure		422			{object}	object				"Auction not live or amount not lower than current price"
//	@Security		accessToken
//	@Router			/auctions/{auctionID}/bids [post]
func (server *Server) submitBid(c *gin.Context) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	auctionID, err := uuid.Parse(c.Param("auctionID"))
	if err != nil {
		err = fmt.Errorf("invalid auction ID: %w", err)
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	req := new(submitBidRequest)
	if err = c.ShouldBindJSON(req); err != nil {
		err = fmt.Errorf("invalid request body: %w", err)
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	accepted, err := server.biddingService.SubmitBid(c, auctionID, authPayload.Subject, *req.Amount)
	if err != nil {
		var rejection *auction.RejectionError
		switch {
		case errors.As(err, &rejection):
			status := http.StatusUnprocessableEntity
			if rejection.Reason == auction.ReasonInvalidAmount {
				status = http.StatusBadRequest
			}
			c.JSON(status, rejectionResponse(rejection))
		case errors.Is(err, auction.ErrNotSupplier):
			c.JSON(http.StatusForbidden, errorResponse(err))
		case errors.Is(err, auction.ErrAuctionNotFound):
			err = fmt.Errorf("auction ID %s not found", auctionID)
			c.JSON(http.StatusNotFound, errorResponse(err))
		case errors.Is(err, auction.ErrAuctionBusy):
			c.JSON(http.StatusConflict, errorResponse(err))
		case c.Request.Context().Err() != nil:
			// Client went away while queued; nothing was written.
			c.Status(statusClientClosedRequest)
		default:
			log.Err(err).Str("auction_id", auctionID.String()).Msg("failed to submit bid")
			c.JSON(http.StatusInternalServerError, errorResponse(auction.ErrPersistenceFailure))
		}
		return
	}

	c.JSON(http.StatusCreated, submitBidResponse{
		BidID:           accepted.BidID,
		NewCurrentPrice: accepted.NewCurrentPrice,
		Bid:             accepted.Bid,
	})
}

//	@Summary		List the bids of an auction
//	@Description	Returns the bid history, newest first.
//	@Tags			auctions
//	@Produce		json
//	@Param			auctionID	path		string			true	"Auction ID"
//	@Success		200			{array}		auction.BidView	"Bids"
//	@Failure		404			{object}	object			"Auction not found"
//	@Router			/auctions/{auctionID}/bids [get]
func (server *Server) listAuctionBids(c *gin.Context) {
	auctionID, err := uuid.Parse(c.Param("auctionID"))
	if err != nil {
		err = fmt.Errorf("invalid auction ID: %w", err)
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if _, err = server.dbStore.GetAuctionByID(c, auctionID); err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("auction ID %s not found", auctionID)
			c.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Str("auction_id", auctionID.String()).Msg("failed to get auction")
		c.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	rows, err := server.dbStore.ListBidsByAuctionID(c, auctionID)
	if err != nil {
		log.Err(err).Str("auction_id", auctionID.String()).Msg("failed to list bids")
		c.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	bids := make([]auction.BidView, 0, len(rows))
	for _, row := range rows {
		bids = append(bids, auction.BidView{
			ID:          row.ID,
			Amount:      row.Amount,
			BidderLabel: row.BidderLabel,
			AcceptedAt:  row.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, bids)
}
