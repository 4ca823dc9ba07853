// @title           Snow On Ice Venue API
// @version         1.0
// @description     Back-office API for a seasonal ice-rink venue: staff auth with role-based access, point-of-sale, event tickets, and the rink check-in countdown board.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/snowonice/venue-api/internal/api"
	apimetrics "github.com/snowonice/venue-api/internal/api/metrics"
	"github.com/snowonice/venue-api/internal/core/ports"
	"github.com/snowonice/venue-api/internal/core/service"
	mongodb "github.com/snowonice/venue-api/internal/infrastructure/db/mongo"
	redisdb "github.com/snowonice/venue-api/internal/infrastructure/db/redis"
	"github.com/snowonice/venue-api/internal/pkg/config"
	"github.com/snowonice/venue-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Backing stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	adminHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("admin password hash failed")
	}
	accountStore := redisdb.NewAccountStore(rdb, string(adminHash), log)
	if err := accountStore.Bootstrap(ctx); err != nil {
		log.Fatal().Err(err).Msg("account directory bootstrap failed")
	}
	sessionStore := redisdb.NewSessionStore(rdb)
	rinkStore := redisdb.NewRinkStore(rdb, log)

	productRepo := mongodb.NewProductRepository(db)
	customerRepo := mongodb.NewCustomerRepository(db)
	saleRepo := mongodb.NewSaleRepository(db)
	ticketSaleRepo := mongodb.NewTicketSaleRepository(db)

	// --- Services ---
	authService := service.NewAuthService(accountStore, sessionStore, cfg.JWTSecret, log)
	rinkService := service.NewRinkService(rinkStore, log)
	catalogService := service.NewCatalogService(productRepo, customerRepo, log)
	salesService := service.NewSalesService(saleRepo, ticketSaleRepo, productRepo, customerRepo, log)

	if err := rinkService.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("rink state restore failed")
	}

	// The refresh loop keeps the occupancy gauges live and logs expiries.
	go rinkService.Run(ctx, func(snaps []ports.RinkSnapshot) {
		var paused int
		for _, s := range snaps {
			if s.Paused {
				paused++
			}
		}
		apimetrics.RinkOccupancy.Set(float64(len(snaps)))
		apimetrics.RinkPaused.Set(float64(paused))
	})

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		AuthService:    authService,
		RinkService:    rinkService,
		CatalogService: catalogService,
		SalesService:   salesService,
		DB:             db,
		Redis:          rdb,
		Log:            log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	// --- Graceful shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	cancel() // stops the rink refresh loop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
