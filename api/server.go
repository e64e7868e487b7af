package api

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/katatrina/procurement-BE/internal/auction"
	db "github.com/katatrina/procurement-BE/internal/db/sqlc"
	"github.com/katatrina/procurement-BE/internal/event"
	"github.com/katatrina/procurement-BE/internal/token"
	"github.com/katatrina/procurement-BE/internal/util"
	"github.com/katatrina/procurement-BE/internal/worker"
	"github.com/rs/zerolog/log"
)

type Server struct {
	router          *gin.Engine
	dbStore         db.Store
	tokenMaker      token.Maker
	config          util.Config
	taskDistributor worker.TaskDistributor
	eventSender     event.EventSender
	biddingService  *auction.Service
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(
	config util.Config,
	store db.Store,
	taskDistributor worker.TaskDistributor,
	eventSender event.EventSender,
	biddingService *auction.Service,
) (*Server, error) {
	tokenMaker, err := token.NewJWTMaker(config.TokenSecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create token maker: %w", err)
	}
	log.Info().Msg("Token maker created successfully ✅")

	server := &Server{
		dbStore:         store,
		tokenMaker:      tokenMaker,
		config:          config,
		taskDistributor: taskDistributor,
		eventSender:     eventSender,
		biddingService:  biddingService,
	}

	server.setupRouter()
	return server, nil
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := router.Group("/v1")

	v1.GET("/health", server.healthCheck)
	v1.POST("/tokens/verify", server.verifyAccessToken)
	v1.POST("/auth/login", server.loginUser)
	v1.POST("/users", server.createUser)

	authGroup := v1.Group("", authMiddleware(server.tokenMaker))
	authGroup.GET("/users/me", server.getAuthenticatedUser)

	rfqGroup := authGroup.Group("/rfqs")
	{
		rfqGroup.POST("", requiredRole(db.UserRoleBuyer), server.createRfq)
		rfqGroup.GET(":rfqID", server.getRfq)
		rfqGroup.POST(":rfqID/auction", requiredRole(db.UserRoleBuyer), server.createAuction)
		rfqGroup.GET(":rfqID/auction", server.getAuctionByRfq)
	}

	// Reads and the event stream are public: browsers cannot attach headers to EventSource.
	auctionGroup := v1.Group("/auctions")
	{
		auctionGroup.GET("", server.listAuctions)
		auctionGroup.GET(":auctionID", server.getAuction)
		auctionGroup.GET(":auctionID/bids", server.listAuctionBids)
		auctionGroup.GET(":auctionID/stream", server.streamAuctionEvents)
		auctionGroup.POST(":auctionID/bids",
			authMiddleware(server.tokenMaker),
			requiredRole(db.UserRoleSupplier),
			server.submitBid,
		)
	}

	server.router = router
}

// Handler exposes the router so it can be mounted on an http.Server.
func (server *Server) Handler() *gin.Engine {
	return server.router
}

//	@Summary		Health check
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	object	"Service is healthy"
//	@Failure		503	{object}	object	"Database unreachable"
//	@Router			/health [get]
func (server *Server) healthCheck(ctx *gin.Context) {
	if err := server.dbStore.Ping(ctx); err != nil {
		log.Err(err).Msg("database ping failed")
		ctx.JSON(http.StatusServiceUnavailable, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
