package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	apierrors "railway-reservation/errors"
	"railway-reservation/model"
)

func (h *Handler) CreateTrain(c *fiber.Ctx) error {
	req := new(model.CreateTrainRequest)
	if err := c.BodyParser(req); err != nil {
		return apierrors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable train parameters: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return apierrors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for train parameters: %v", err))
	}

	train, err := h.registry.Register(c.Context(), *req)
	if errors.Is(err, model.ErrDuplicateTrain) {
		return apierrors.RaiseBadRequestError(c, fmt.Sprintf("train with number %v already exists", req.Number))
	}
	if errors.Is(err, model.ErrInvalidInput) {
		return apierrors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for train parameters: %v", err))
	}
	if err != nil {
		return apierrors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(fiber.Map{
		"message": "Train added successfully!",
		"train":   train})
}

func (h *Handler) GetTrain(c *fiber.Ctx) error {
	train, err := h.registry.Find(c.Context(), c.Params("number"))
	if errors.Is(err, model.ErrTrainNotFound) {
		return apierrors.RaiseNotFoundError(c, fmt.Sprintf("train %v not found", c.Params("number")))
	}
	if err != nil {
		return apierrors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(train)
}

func (h *Handler) GetTrains(c *fiber.Ctx) error {
	trains, err := h.registry.List(c.Context())
	if err != nil {
		return apierrors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(trains)
}
