package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/block-mentor/block_mentor/internal/accounts"
	"github.com/block-mentor/block_mentor/internal/auth"
	"github.com/block-mentor/block_mentor/internal/config"
	"github.com/block-mentor/block_mentor/internal/gate"
	"github.com/block-mentor/block_mentor/internal/middleware"
	"github.com/block-mentor/block_mentor/internal/notification"
	"github.com/block-mentor/block_mentor/internal/storage"
	"github.com/block-mentor/block_mentor/internal/wallet"
)

// Deps aggregates shared dependencies required to wire routes. DB and Cache
// may be nil in dev mode; memory fallbacks stand in.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.DevMode() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.ClientID())
	app.Use(middleware.Audit(d.Logger))

	// Health
	RegisterHealthRoutes(app, d)

	// Services and handlers
	var kv storage.KV
	if d.Cache != nil {
		kv = storage.NewRedis(d.Cache, "bm", d.Cfg.SessionTTL)
	} else {
		kv = storage.NewMemory()
	}

	var accountRepo accounts.Repository
	if d.DB != nil {
		accountRepo = accounts.NewPostgresRepository(d.DB)
	} else {
		accountRepo = accounts.NewMemoryRepository()
	}
	accountSvc := accounts.NewService(accountRepo)
	accountHandler := accounts.NewHandler(accountSvc)

	links := wallet.NewMemoryRegistry()
	walletHandler := wallet.NewHandler(links)

	notifier := notification.NewLoggerNotifier(d.Logger)
	authSvc := auth.NewService(kv, links, accountSvc, notifier, d.Logger, d.Cfg.VerifyTimeout)
	authHandler := auth.NewHandler(authSvc)

	gateHandler := gate.NewHandler(gate.New(kv, links, d.Logger))

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		clientID, _ := c.Locals("client_id").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":    "ok",
			"client_id": clientID,
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterAccountRoutes(api, accountHandler)

	var rateLimiter, loginGuard fiber.Handler
	if d.Cache != nil {
		rateLimiter = middleware.LoginRateLimit(d.Cache, d.Cfg.LoginRateLimit)
		loginGuard = middleware.SingleSubmission(d.Cache, d.Cfg.VerifyTimeout, d.Logger)
	}
	RegisterAuthRoutes(api, authHandler, rateLimiter, loginGuard)
	RegisterWalletRoutes(api, walletHandler)
	RegisterNavigationRoutes(api, gateHandler)

	return nil
}
