package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	db "github.com/katatrina/procurement-BE/internal/db/sqlc"
	"github.com/katatrina/procurement-BE/internal/token"
	"github.com/katatrina/procurement-BE/internal/validator"
	"github.com/rs/zerolog/log"
)

type createRfqRequest struct {
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description"`
	Deadline    time.Time     `json:"deadline" binding:"required"`
	Status      *db.RfqStatus `json:"status"`
}

func validateCreateRfqRequest(req *createRfqRequest, now time.Time) (violations []*FieldViolation) {
	if err := validator.ValidateString(req.Title, 5, 200); err != nil {
		violations = append(violations, fieldViolation("title", err))
	}

	if err := validator.ValidateString(req.Description, 0, 5000); err != nil {
		violations = append(violations, fieldViolation("description", err))
	}

	if !req.Deadline.After(now) {
		violations = append(violations, fieldViolation("deadline", fmt.Errorf("must be in the future, provided: %s", req.Deadline.Format(time.RFC3339))))
	}

	if req.Status != nil && *req.Status != db.RfqStatusDraft && *req.Status != db.RfqStatusPublished {
		violations = append(violations, fieldViolation("status", fmt.Errorf("must be one of: %s, %s", db.RfqStatusDraft, db.RfqStatusPublished)))
	}

	return violations
}

//	@Summary		Create an rfq
//	@Tags			rfqs
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createRfqRequest			true	"RFQ details"
//	@Success		201		{object}	db.Rfq						"RFQ created"
//	@Failure		422		{object}	FailedValidationResponse	"Invalid request"
//	@Security		accessToken
//	@Router			/rfqs [post]
func (server *Server) createRfq(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	req := new(createRfqRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	violations := validateCreateRfqRequest(req, time.Now())
	if violations != nil {
		ctx.JSON(http.StatusUnprocessableEntity, failedValidationError(violations))
		return
	}

	status := db.RfqStatusPublished
	if req.Status != nil {
		status = *req.Status
	}

	rfqID, err := uuid.NewV7()
	if err != nil {
		log.Err(err).Msg("failed to generate rfq id")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	rfq, err := server.dbStore.CreateRfq(ctx, db.CreateRfqParams{
		ID:          rfqID,
		BuyerID:     authPayload.Subject,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Deadline:    req.Deadline,
	})
	if err != nil {
		log.Err(err).Str("buyer_id", authPayload.Subject).Msg("failed to create rfq")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusCreated, rfq)
}

//	@Summary		Get an rfq
//	@Tags			rfqs
//	@Produce		json
//	@Param			rfqID	path		string	true	"RFQ ID"
//	@Success		200		{object}	db.Rfq	"RFQ"
//	@Failure		404		{object}	object	"RFQ not found"
//	@Router			/rfqs/{rfqID} [get]
func (server *Server) getRfq(ctx *gin.Context) {
	rfqID, err := uuid.Parse(ctx.Param("rfqID"))
	if err != nil {
		err = fmt.Errorf("invalid rfq ID: %w", err)
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	rfq, err := server.dbStore.GetRfqByID(ctx, rfqID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("rfq ID %s not found", rfqID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Str("rfq_id", rfqID.String()).Msg("failed to get rfq")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, rfq)
}
