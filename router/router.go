package router

import (
	"railway-reservation/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/", logger.New())
	api.Get("/health", h.GetHealth)

	//Trains
	trains := api.Group("/trains")
	trains.Get("/", h.GetTrains)
	trains.Get("/:number", h.GetTrain)
	trains.Post("/", h.CreateTrain)

	//Tickets
	tickets := api.Group("/tickets")
	tickets.Post("/reserve", h.ReserveTicket)
	tickets.Get("/:pnr", h.GetTicket)
	tickets.Delete("/:pnr", h.CancelTicket)

	//Payment
	payment := api.Group("/payment")
	payment.Post("/create", h.CreatePaymentIntent)
}
