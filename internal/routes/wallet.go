package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/block-mentor/block_mentor/internal/wallet"
)

// RegisterWalletRoutes wires wallet link endpoints.
func RegisterWalletRoutes(r fiber.Router, h *wallet.Handler) {
	group := r.Group("/wallet")
	group.Post("/connect", h.Connect)
	group.Post("/disconnect", h.Disconnect)
	group.Get("/status", h.Status)
}
