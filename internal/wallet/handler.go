package wallet

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes wallet link HTTP endpoints.
type Handler struct {
	links Registry
}

// NewHandler builds a wallet HTTP handler.
func NewHandler(links Registry) *Handler {
	return &Handler{links: links}
}

type connectRequest struct {
	Address string `json:"address"`
}

type statusResponse struct {
	Connected bool   `json:"connected"`
	Address   string `json:"address,omitempty"`
}

// Connect attaches the client's wallet address to its link.
func (h *Handler) Connect(c *fiber.Ctx) error {
	var req connectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	link := h.links.LinkFor(clientScope(c))
	if err := link.Connect(c.UserContext(), req.Address); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusOK).JSON(statusResponse{Connected: true, Address: req.Address})
}

// Disconnect releases the client's wallet connection.
func (h *Handler) Disconnect(c *fiber.Ctx) error {
	link := h.links.LinkFor(clientScope(c))
	if err := link.Disconnect(c.UserContext()); err != nil {
		return fiber.NewError(http.StatusBadGateway, err.Error())
	}
	return c.Status(http.StatusOK).JSON(statusResponse{Connected: false})
}

// Status reports the current connection state.
func (h *Handler) Status(c *fiber.Ctx) error {
	conn, err := h.links.LinkFor(clientScope(c)).Connection(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusBadGateway, err.Error())
	}
	return c.Status(http.StatusOK).JSON(statusResponse{Connected: conn.Connected, Address: conn.Address})
}

func clientScope(c *fiber.Ctx) string {
	scope, _ := c.Locals("client_id").(string)
	return scope
}
