package api

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/katatrina/procurement-BE/internal/auction"
)

var (
	ErrInternalServer = errors.New("internal server error")
	ErrNotRfqOwner    = errors.New("only the buyer who owns the rfq can open its auction")
)

type FailedValidationResponse struct {
	Message         string            `json:"message"`
	FieldViolations []*FieldViolation `json:"field_violations"`
}

type FieldViolation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func fieldViolation(field string, err error) *FieldViolation {
	return &FieldViolation{
		Field:       field,
		Description: err.Error(),
	}
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// rejectionResponse adds the machine readable reason, and the price the bid lost
// against when there is one, so clients can refresh without another request.
func rejectionResponse(rejection *auction.RejectionError) gin.H {
	resp := gin.H{
		"error":  rejection.Error(),
		"reason": rejection.Reason,
	}
	if rejection.CurrentPrice.Valid {
		resp["current_price"] = rejection.CurrentPrice.Decimal
	}

	return resp
}

func failedValidationError(violations []*FieldViolation) *FailedValidationResponse {
	return &FailedValidationResponse{
		Message:         "Invalid request parameters",
		FieldViolations: violations,
	}
}
