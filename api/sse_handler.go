package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/katatrina/procurement-BE/internal/auction"
	db "github.com/katatrina/procurement-BE/internal/db/sqlc"
	"github.com/rs/zerolog/log"
)

const sseKeepAliveInterval = 15 * time.Second

//	@Summary		Stream auction events via Server-Sent Events
//	@Description	Subscribes the client to the auction's channel. Events accepted before the connection was registered are not replayed, so clients read the auction state first.
//	@Tags			auctions
//	@Produce		text/event-stream
//	@Param			auctionID	path		string	true	"Auction ID"
//	@Success		200			{string}	string	"Event stream with format: 'event: {eventType}\ndata: {jsonData}'"
//	@Failure		404			{object}	object	"Auction not found"
//	@Router			/auctions/{auctionID}/stream [get]
func (server *Server) streamAuctionEvents(c *gin.Context) {
	auctionID, err := uuid.Parse(c.Param("auctionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("invalid auction ID format")))
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

	sub := server.eventSender.Register(auction.AuctionTopic(auctionID))
	defer server.eventSender.Unregister(sub)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	keepAlive := time.NewTicker(sseKeepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case evt := <-sub.Events():
			data, err := json.Marshal(evt.Data)
			if err != nil {
				log.Err(err).Str("topic", evt.Topic).Msg("failed to marshal event")
				continue
			}
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", evt.Type, data)
			c.Writer.Flush()
		case <-keepAlive.C:
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			c.Writer.Flush()
		case <-sub.Done():
			// Evicted for falling behind, or the server is shutting down.
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}
