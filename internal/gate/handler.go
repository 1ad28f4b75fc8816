package gate

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the navigation decision endpoint the front end consults on
// every route change.
type Handler struct {
	gate *Gate
}

// NewHandler builds a gate HTTP handler.
func NewHandler(gate *Gate) *Handler {
	return &Handler{gate: gate}
}

type navigateRequest struct {
	Path string `json:"path"`
}

type navigateResponse struct {
	Action Action `json:"action"`
	Target string `json:"target,omitempty"`
}

// Navigate evaluates one attempted navigation.
func (h *Handler) Navigate(c *fiber.Ctx) error {
	var req navigateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Path == "" {
		return fiber.NewError(http.StatusBadRequest, "path is required")
	}

	scope, _ := c.Locals("client_id").(string)
	decision, err := h.gate.Evaluate(c.UserContext(), scope, req.Path)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(navigateResponse{Action: decision.Action, Target: decision.Target})
}
