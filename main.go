package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/katatrina/procurement-BE/api"
	"github.com/katatrina/procurement-BE/internal/auction"
	auctiontracking "github.com/katatrina/procurement-BE/internal/auction_tracking"
	db "github.com/katatrina/procurement-BE/internal/db/sqlc"
	"github.com/katatrina/procurement-BE/internal/event"
	"github.com/katatrina/procurement-BE/internal/mailer"
	"github.com/katatrina/procurement-BE/internal/util"
	"github.com/katatrina/procurement-BE/internal/worker"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

//	@title			Procurement Auction API
//	@version		1.0.0
//	@description	Reverse auctions for RFQ procurement.

//	@host		localhost:8080
//	@BasePath	/v1
//	@schemes	http https

//	@securityDefinitions.apikey	accessToken
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}

	if !config.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	log.Info().Msg("configurations loaded successfully ✅")

	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	// Create connection pool
	connPool, err := pgxpool.New(ctx, config.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to validate db connection string 😣")
	}
	defer connPool.Close()

	if err = connPool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to db 😣")
	}
	log.Info().Msg("connected to db ✅")

	runDBMigration(config.MigrationURL, config.DatabaseURL)

	store := db.NewStore(connPool)

	redisClient := redis.NewClient(&redis.Options{
		Addr: config.RedisServerAddress,
	})
	defer redisClient.Close()

	if err = redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis 😣")
	}
	log.Info().Msg("connected to redis ✅")

	redisOpt := asynq.RedisClientOpt{
		Addr: config.RedisServerAddress,
	}

	taskDistributor := worker.NewTaskDistributor(redisOpt)
	defer taskDistributor.Close()

	emailSender := newEmailSender(config)

	// Bid events fan out through the in-process registry, relayed over Redis when
	// several API instances serve the same auctions.
	eventServer := event.NewSSEServer(event.WithBufferSize(config.BroadcastBufferSize))

	var publisher auction.Publisher = eventServer
	if config.BroadcastRelayEnabled {
		relay := event.NewRedisRelay(redisClient, "", eventServer)
		if err = relay.Start(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to start broadcast relay 😣")
		}
		defer relay.Close()

		publisher = relay
		log.Info().Msg("broadcast relay started ✅")
	}

	biddingService := auction.NewService(store, publisher,
		auction.WithLockWaitTimeout(config.BidLockWaitTimeout),
	)

	lifecycleHandler := worker.NewAuctionLifecycleHandler(store, biddingService, taskDistributor)

	tracker, err := auctiontracking.NewAuctionTracker(store, lifecycleHandler, config.AuctionSweepInterval)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create auction tracker 😣")
	}

	server, err := api.NewServer(config, store, taskDistributor, eventServer, biddingService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP server 😣")
	}

	waitGroup, ctx := errgroup.WithContext(ctx)

	runTaskProcessor(ctx, waitGroup, redisOpt, emailSender, lifecycleHandler)
	runAuctionTracker(ctx, waitGroup, tracker)
	runHTTPServer(ctx, waitGroup, config, server, eventServer)

	if err = waitGroup.Wait(); err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

func runDBMigration(migrationURL string, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create new migrate instance 😣")
	}
	defer migration.Close()

	if err = migration.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal().Err(err).Msg("failed to run migrate up 😣")
	}

	log.Info().Msg("db migrated successfully ✅")
}

func newEmailSender(config util.Config) mailer.EmailSender {
	if config.SMTPHost == "" {
		log.Warn().Msg("SMTP_HOST is not set, emails will only be logged")
		return mailer.LogSender{}
	}

	sender, err := mailer.NewSMTPSender(mailer.SMTPConfig{
		Host:        config.SMTPHost,
		Port:        config.SMTPPort,
		Username:    config.SMTPUsername,
		Password:    config.SMTPPassword,
		FromAddress: config.MailFromAddress,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create mailer 😣")
	}

	return sender
}

func runTaskProcessor(
	ctx context.Context,
	waitGroup *errgroup.Group,
	redisOpt asynq.RedisClientOpt,
	emailSender mailer.EmailSender,
	lifecycleHandler *worker.AuctionLifecycleHandler,
) {
	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, emailSender, lifecycleHandler)

	log.Info().Msg("start task processor")
	if err := taskProcessor.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start task processor 😣")
	}

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown task processor")

		taskProcessor.Shutdown()
		log.Info().Msg("task processor is stopped")

		return nil
	})
}

func runAuctionTracker(ctx context.Context, waitGroup *errgroup.Group, tracker *auctiontracking.AuctionTracker) {
	if err := tracker.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start auction tracker 😣")
	}
	log.Info().Msg("auction tracker started ✅")

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown auction tracker")

		return tracker.Stop()
	})
}

func runHTTPServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	server *api.Server,
	eventServer *event.SSEServer,
) {
	httpServer := &http.Server{
		Addr:              config.HTTPServerAddress,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	waitGroup.Go(func() error {
		log.Info().Msgf("start HTTP server at %s", httpServer.Addr)

		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("HTTP server failed to serve")
			return err
		}

		return nil
	})

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown HTTP server")

		// Streams only end once their subscriptions are closed.
		eventServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shutdown HTTP server")
			return err
		}

		log.Info().Msg("HTTP server is stopped")
		return nil
	})
}
