package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	apierrors "railway-reservation/errors"
	"railway-reservation/model"
)

func (h *Handler) ReserveTicket(c *fiber.Ctx) error {
	req := new(model.ReserveTicketRequest)
	if err := c.BodyParser(req); err != nil {
		return apierrors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable reservation parameters: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return apierrors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for reservation parameters: %v", err))
	}

	ticket, err := h.reservation.Reserve(c.Context(), *req)
	if errors.Is(err, model.ErrTrainNotFound) || errors.Is(err, model.ErrNoSeatsAvailable) {
		return apierrors.RaiseBadRequestError(c, "no seats available or invalid train number")
	}
	if errors.Is(err, model.ErrInvalidInput) {
		return apierrors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for reservation parameters: %v", err))
	}
	if err != nil {
		return apierrors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(fiber.Map{
		"message": "Ticket booked!",
		"pnr":     ticket.PNR,
		"ticket":  ticket})
}

func (h *Handler) GetTicket(c *fiber.Ctx) error {
	ticket, err := h.reservation.CheckStatus(c.Context(), c.Params("pnr"))
	if errors.Is(err, model.ErrTicketNotFound) {
		return apierrors.RaiseNotFoundError(c, fmt.Sprintf("ticket %v not found", c.Params("pnr")))
	}
	if err != nil {
		return apierrors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(fiber.Map{
		"pnr":    ticket.PNR,
		"ticket": ticket})
}

func (h *Handler) CancelTicket(c *fiber.Ctx) error {
	err := h.reservation.Cancel(c.Context(), c.Params("pnr"))
	if errors.Is(err, model.ErrTicketNotFound) {
		return apierrors.RaiseNotFoundError(c, fmt.Sprintf("ticket %v not found", c.Params("pnr")))
	}
	if err != nil {
		return apierrors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(fiber.Map{"message": "Ticket cancelled successfully."})
}
