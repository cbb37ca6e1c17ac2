package errors

import (
	"github.com/gofiber/fiber/v2"
)

// RaiseError writes the uniform error envelope every failing endpoint
// returns; the UI displays the data string verbatim.
func RaiseError(c *fiber.Ctx, status int, message string, data string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"data":    data})
}

func RaiseInternalServerError(c *fiber.Ctx, data string) error {
	return RaiseError(c, fiber.StatusInternalServerError, "internal error", data)
}

func RaiseBadRequestError(c *fiber.Ctx, data string) error {
	return RaiseError(c, fiber.StatusBadRequest, "bad request", data)
}

func RaiseNotFoundError(c *fiber.Ctx, data string) error {
	return RaiseError(c, fiber.StatusNotFound, "resource not found", data)
}
