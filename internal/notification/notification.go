package notification

import (
	"context"
	"log/slog"
)

const (
	// KindLoginSucceeded indicates a completed credential login.
	KindLoginSucceeded = "login_succeeded"
	// KindLoginFailed indicates a rejected or failed login attempt.
	KindLoginFailed = "login_failed"
	// KindLoggedOut indicates a completed logout.
	KindLoggedOut = "logged_out"
)

const (
	CategorySuccess = "success"
	CategoryError   = "error"
	CategoryWarning = "warning"
)

// Message describes a transient user-facing notification. The core decides
// when to notify and with what category; rendering belongs to the front end.
type Message struct {
	Kind     string
	Category string
	Body     string
}

// Notifier delivers notifications to the presentation surface.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// LoggerNotifier is a stub implementation that writes notifications to the
// logger.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier stub.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the message to the structured logger.
func (n *LoggerNotifier) Send(_ context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.Info("notification", "kind", message.Kind, "category", message.Category, "body", message.Body)
	return nil
}
