package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/block-mentor/block_mentor/internal/gate"
)

// RegisterNavigationRoutes wires the auth gate decision endpoint.
func RegisterNavigationRoutes(r fiber.Router, h *gate.Handler) {
	r.Post("/navigate", h.Navigate)
}
