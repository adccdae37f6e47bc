package main

import (
	"context"
	"log/slog"
	"os"

	"royal-stay/cmd/bootstrap"
	"royal-stay/internal/demo"
	"royal-stay/internal/pkg/config"
	"royal-stay/internal/pkg/errs"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func runDemo(lc fx.Lifecycle, shutdowner fx.Shutdowner, runner *demo.Runner, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Front desk open", "hotel", cfg.Hotel.Name, "timezone", cfg.Hotel.TimeZone)
			if err := runner.Seed(ctx); err != nil {
				return err
			}
			report, err := runner.Run(ctx)
			if err != nil {
				return err
			}
			logger.Info("Demonstration completed",
				"bookings", []int{report.RegularBookingID, report.VIPBookingID},
				"notifications", len(report.Notifications),
			)
			return shutdowner.Shutdown()
		},
		OnStop: func(_ context.Context) error {
			logger.Info("Front desk closed")
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(demo.NewRunner),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Invoke(
			runDemo,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("Failed to start application", "error", err, "stack", errs.ExtractStackLines(err, 12))
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("Failed to stop application", "error", err)
	}
}
