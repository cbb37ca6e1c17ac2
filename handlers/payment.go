package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	apierrors "railway-reservation/errors"
	"railway-reservation/model"
)

func (h *Handler) CreatePaymentIntent(c *fiber.Ctx) error {
	req := new(model.CreatePaymentRequest)
	if err := c.BodyParser(req); err != nil {
		return apierrors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable payment parameters: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return apierrors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for payment parameters: %v", err))
	}

	clientSecret, err := h.payments.CreateIntent(c.Context(), *req.Amount, req.Currency)
	if err != nil {
		return apierrors.RaiseInternalServerError(c, fmt.Sprintf("payment creation failed: %v", err))
	}

	return c.JSON(fiber.Map{
		"clientSecret": clientSecret,
		"message":      "Payment intent created successfully."})
}
