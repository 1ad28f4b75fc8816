package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/block-mentor/block_mentor/internal/logging"
)

func setupGuardApp(t *testing.T) (*fiber.App, *miniredis.Miniredis, func()) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	app := fiber.New()
	app.Use(ClientID())
	app.Post("/login", SingleSubmission(cache, time.Minute, logging.Discard()), func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
	})

	cleanup := func() {
		cache.Close()
		mr.Close()
	}
	return app, mr, cleanup
}

func TestSingleSubmissionAllowsSequentialLogins(t *testing.T) {
	app, mr, cleanup := setupGuardApp(t)
	defer cleanup()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(fiber.MethodPost, "/login", strings.NewReader("{}"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(clientIDHeader, "client-1")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("request %d: expected %d got %d", i, fiber.StatusOK, resp.StatusCode)
		}
	}

	// the guard marker is released after each completed request
	if mr.Exists(loginGuardPrefix + "client-1") {
		t.Fatalf("expected guard marker to be cleaned up")
	}
}

func TestSingleSubmissionRejectsOutstandingLogin(t *testing.T) {
	app, mr, cleanup := setupGuardApp(t)
	defer cleanup()

	// simulate an outstanding submission holding the marker
	if err := mr.Set(loginGuardPrefix+"client-1", "1"); err != nil {
		t.Fatalf("seed marker: %v", err)
	}

	req := httptest.NewRequest(fiber.MethodPost, "/login", strings.NewReader("{}"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(clientIDHeader, "client-1")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected %d got %d", fiber.StatusConflict, resp.StatusCode)
	}

	// a different client is unaffected
	req2 := httptest.NewRequest(fiber.MethodPost, "/login", strings.NewReader("{}"))
	req2.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req2.Header.Set(clientIDHeader, "client-2")

	resp2, err := app.Test(req2)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected %d got %d", fiber.StatusOK, resp2.StatusCode)
	}
}

func TestClientIDAssignedWhenMissing(t *testing.T) {
	app := fiber.New()
	app.Use(ClientID())
	app.Get("/ping", func(c *fiber.Ctx) error {
		id, _ := c.Locals("client_id").(string)
		return c.SendString(id)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.Header.Get(clientIDHeader) == "" {
		t.Fatalf("expected assigned client id header")
	}
}
