package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/globetrotter/internal/config"
	"github.com/iliyamo/globetrotter/internal/database"
	"github.com/iliyamo/globetrotter/internal/handler"
	"github.com/iliyamo/globetrotter/internal/middleware"
	"github.com/iliyamo/globetrotter/internal/queue"
	"github.com/iliyamo/globetrotter/internal/repository"
	"github.com/iliyamo/globetrotter/internal/router"
	"github.com/iliyamo/globetrotter/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(ctx, db); err != nil {
		cancel()
		log.Fatalf("db migrate failed: %v", err)
	}
	cancel()

	// Repositories
	users := repository.NewUserRepo(db)
	trips := repository.NewTripRepo(db)
	cities := repository.NewCityRepo(db)
	activities := repository.NewActivityRepo(db)
	stops := repository.NewTripStopRepo(db)
	stopActs := repository.NewStopActivityRepo(db)
	budgets := repository.NewBudgetRepo(db)
	integrity := repository.NewIntegrityRepo(db)

	// Services
	itinerary := service.NewItineraryService(integrity, trips, stops, stopActs)
	budget := service.NewBudgetService(integrity, budgets)

	// Handlers
	authH := handler.NewAuthHandler(cfg, users, integrity)
	catalogH := handler.NewCatalogHandler(cities, activities)
	tripH := handler.NewTripHandler(itinerary)
	budgetH := handler.NewBudgetHandler(budget)

	// Redis is optional: a nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limit disabled")
	}
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	e.Use(limiter)
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterCatalog(e, catalogH, cfg.JWTSecret, cache)
	router.RegisterItinerary(e, tripH, budgetH, cfg.JWTSecret)

	// Consume trip.deleted events in the background; the consumer keeps
	// its own reconnect loop.
	go func() {
		if err := queue.StartTripConsumer(); err != nil {
			log.Printf("trip consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
