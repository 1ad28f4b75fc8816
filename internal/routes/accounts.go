package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/block-mentor/block_mentor/internal/accounts"
)

// RegisterAccountRoutes wires learner onboarding endpoints.
func RegisterAccountRoutes(r fiber.Router, h *accounts.Handler) {
	group := r.Group("/accounts")
	group.Post("/register", h.Register)
}
