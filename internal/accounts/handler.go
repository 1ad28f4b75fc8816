package accounts

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes account endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs an accounts HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type registerResponse struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
}

// Register handles learner onboarding.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	account, err := h.service.Register(c.UserContext(), Credentials{Email: req.Email, Password: req.Password, Name: req.Name})
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(registerResponse{AccountID: account.ID, Email: account.Email, Name: account.Name})
}
