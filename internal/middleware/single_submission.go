package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const loginGuardPrefix = "login:inflight:v1:"

// SingleSubmission rejects a login request from a client while an earlier one
// is still outstanding, by reserving an in-progress marker in Redis keyed by
// the client scope. It is the HTTP-level companion of the in-process guard in
// the auth service, covering clients that resubmit over a separate
// connection. The marker expires with ttl in case cleanup never runs.
func SingleSubmission(cache *redis.Client, ttl time.Duration, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scope, _ := c.Locals("client_id").(string)
		if scope == "" {
			return c.Next()
		}

		key := loginGuardPrefix + scope
		reserved, err := cache.SetNX(c.UserContext(), key, "1", ttl).Result()
		if err != nil {
			logger.Warn("login guard reservation failed", slog.String("client_id", scope), slog.Any("error", err))
			return c.Next() // fail-open on cache errors
		}
		if !reserved {
			return fiber.NewError(fiber.StatusConflict, "a login attempt is already in progress")
		}

		err = c.Next()

		cleanupCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if delErr := cache.Del(cleanupCtx, key).Err(); delErr != nil {
			logger.Warn("login guard cleanup failed", slog.String("client_id", scope), slog.Any("error", delErr))
		}

		return err
	}
}
