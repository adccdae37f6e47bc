package bootstrap

import (
	"log/slog"

	"royal-stay/internal/pkg/config"
	"royal-stay/internal/pkg/logger"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	l := logger.New(cfg.Log)
	l.SetDefault()
	return l.GetSlogLogger()
}
