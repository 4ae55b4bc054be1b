package bootstrap

import (
	"log/slog"

	"hotel-booking-core/internal/handler/middleware"
	"hotel-booking-core/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
	// Build the logger before anything else logs through slog.
	fx.Invoke(func(*slog.Logger) {}),
)

// NewLogger also installs the logger as the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
