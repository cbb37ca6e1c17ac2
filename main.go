package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"railway-reservation/config"
	"railway-reservation/database"
	"railway-reservation/handlers"
	"railway-reservation/middleware"
	"railway-reservation/payment"
	"railway-reservation/router"
	"railway-reservation/service"
)

func main() {
	rand.Seed(time.Now().UnixNano())

	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.Connect(ctx, cfg.MongoURI, config.DatabaseName)
	if err != nil {
		cancel()
		log.Fatalf("database: %v", err)
	}
	if err := database.EnsureIndexes(ctx, db); err != nil {
		cancel()
		log.Fatalf("database indexes: %v", err)
	}
	cancel()
	log.Info("database connected")

	trains := database.NewTrainCollection(db)
	tickets := database.NewTicketCollection(db)

	registry := service.NewTrainRegistry(trains, log)
	reservation := service.NewReservation(trains, tickets, log)
	gateway := payment.NewStripeGateway(cfg.StripeSecretKey)

	h := handlers.New(registry, reservation, gateway)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	router.SetupRoutes(app, h)

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatalf("server: %v", err)
		}
	}()
	log.Infof("server is running on %v", cfg.ListenAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	if err := app.Shutdown(); err != nil {
		log.Errorf("server shutdown: %v", err)
	}

	disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer disconnectCancel()
	if err := db.Client().Disconnect(disconnectCtx); err != nil {
		log.Errorf("database disconnect: %v", err)
	}

	log.Info("app stopped")
}
