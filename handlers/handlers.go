package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"railway-reservation/service"
)

var validate = validator.New()

type Handler struct {
	registry    *service.TrainRegistry
	reservation *service.Reservation
	payments    service.PaymentGateway
}

func New(registry *service.TrainRegistry, reservation *service.Reservation, payments service.PaymentGateway) *Handler {
	return &Handler{
		registry:    registry,
		reservation: reservation,
		payments:    payments,
	}
}

func (h *Handler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
