package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/jgec-alumni/kanchenjunga-booking/internal/config"
	"github.com/jgec-alumni/kanchenjunga-booking/internal/database"
	"github.com/jgec-alumni/kanchenjunga-booking/internal/handler"
	"github.com/jgec-alumni/kanchenjunga-booking/internal/middleware"
	"github.com/jgec-alumni/kanchenjunga-booking/internal/queue"
	"github.com/jgec-alumni/kanchenjunga-booking/internal/repository"
	"github.com/jgec-alumni/kanchenjunga-booking/internal/router"
)

func main() {
	// .env is a local-development convenience; deployments set real
	// environment variables and have no file.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	rooms := repository.NewRoomRepo(db)
	bookings := repository.NewBookingRepo(db)
	reviews := repository.NewReviewRepo(db)

	h := router.Handlers{
		Auth:    handler.NewAuthHandler(cfg, users, tokens, bookings),
		Rooms:   handler.NewRoomHandler(rooms, reviews),
		Booking: handler.NewBookingHandler(rooms, bookings),
		Reviews: handler.NewReviewHandler(reviews, rooms),
		Admin:   handler.NewAdminHandler(rooms, bookings, users, middleware.NewInvalidator(config.LoadCacheConfig(), rdb)),
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, h, cfg, rdb)

	// Drain booking.confirmed into logs/booking.log in the background.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
