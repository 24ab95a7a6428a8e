package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the uniform failure body. It carries a short message only:
// storage-driver details never reach the client.
type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}
