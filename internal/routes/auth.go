package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/block-mentor/block_mentor/internal/auth"
)

// RegisterAuthRoutes wires session endpoints. The optional middlewares guard
// the login endpoint only; logout and session reads are never throttled.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, rateLimiter, loginGuard fiber.Handler) {
	group := r.Group("/auth")

	loginHandlers := make([]fiber.Handler, 0, 3)
	if rateLimiter != nil {
		loginHandlers = append(loginHandlers, rateLimiter)
	}
	if loginGuard != nil {
		loginHandlers = append(loginHandlers, loginGuard)
	}
	loginHandlers = append(loginHandlers, h.Login)

	group.Post("/login", loginHandlers...)
	group.Post("/logout", h.Logout)
	group.Get("/session", h.Session)
}
