package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/block-mentor/block_mentor/internal/accounts"
)

// Handler exposes the session endpoints consumed by the front end.
type Handler struct {
	svc *Service
}

// NewHandler builds an auth HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Email      string `json:"email"`
	Name       string `json:"name,omitempty"`
	RedirectTo string `json:"redirect_to"`
}

// Login runs the credential login flow for the requesting client.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	outcome, err := h.svc.Login(c.UserContext(), clientScope(c), accounts.Credentials{Email: req.Email, Password: req.Password})
	switch {
	case errors.Is(err, ErrMissingFields):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrLoginInFlight):
		return fiber.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return fiber.NewError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrVerifyUnavailable):
		return fiber.NewError(http.StatusServiceUnavailable, err.Error())
	case err != nil:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(loginResponse{Email: outcome.User.Email, Name: outcome.User.Name, RedirectTo: outcome.RedirectTo})
}

// Logout tears down both identity sources. A wallet disconnect failure is
// non-fatal: the credential session is already gone, so the client is still
// told it is logged out, with a warning attached.
func (h *Handler) Logout(c *fiber.Ctx) error {
	err := h.svc.Logout(c.UserContext(), clientScope(c))
	if errors.Is(err, ErrWalletDisconnect) {
		return c.Status(http.StatusOK).JSON(fiber.Map{"status": "logged_out", "warning": ErrWalletDisconnect.Error()})
	}
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "logged_out"})
}

// Session reports the effective identity for the requesting client.
func (h *Handler) Session(c *fiber.Ctx) error {
	id, err := h.svc.Session(c.UserContext(), clientScope(c))
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"authenticated": id.Authenticated, "display_label": id.DisplayLabel})
}

func clientScope(c *fiber.Ctx) string {
	scope, _ := c.Locals("client_id").(string)
	return scope
}
