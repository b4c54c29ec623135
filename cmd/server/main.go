package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Rory34/retail-rewards/internal/config"
	"github.com/Rory34/retail-rewards/internal/database"
	"github.com/Rory34/retail-rewards/internal/handler"
	"github.com/Rory34/retail-rewards/internal/messages"
	"github.com/Rory34/retail-rewards/internal/middleware"
	"github.com/Rory34/retail-rewards/internal/repository"
	"github.com/Rory34/retail-rewards/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)
	gin.SetMode(cfg.GinMode)

	msgs, err := messages.Load(cfg.MessagesFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.MessagesFile).Msg("failed to load messages")
	}

	var (
		ledger   handler.Pinger
		runs     *service.RunService
		recorder service.RunRecorder = service.NopRecorder
	)

	if cfg.LedgerEnabled {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pool, err := database.NewPool(ctx, cfg.DatabaseURL())
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()

		if cfg.AutoMigrate {
			if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
				log.Fatal().Err(err).Msg("failed to run migrations")
			}
		}

		runs = service.NewRunService(repository.NewRunRepository(pool), cfg.RunsLimit)
		recorder = runs
		ledger = pool
		log.Info().Str("host", cfg.DBHost).Str("db", cfg.DBName).Msg("calculation ledger enabled")
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := handler.NewHealthHandler(ledger)
	router.GET("/health", healthHandler.Health)

	handler.SetupSwagger(router)
	setupAPIRoutes(router, service.NewRewardsService(msgs, recorder), runs, msgs)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Int("messages", msgs.Len()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func setupAPIRoutes(router *gin.Engine, rewardsService *service.RewardsService, runs *service.RunService, msgs *messages.Catalog) {
	rewardsHandler := handler.NewRewardsHandler(rewardsService, msgs)
	runHandler := handler.NewRunHandler(runs)

	router.POST("/calculate-rewards", rewardsHandler.Calculate)

	api := router.Group("/api/v1")
	{
		api.POST("/calculate-rewards", rewardsHandler.Calculate)
		api.GET("/runs", runHandler.List)
	}
}
