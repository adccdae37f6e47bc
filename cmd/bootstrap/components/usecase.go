package components

import (
	"royal-stay/internal/pkg/clock"
	"royal-stay/internal/pkg/config"
	"royal-stay/internal/usecase/commands"
	"royal-stay/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) (clock.Clock, error) {
		loc, err := cfg.Hotel.Location()
		if err != nil {
			return nil, err
		}
		return clock.NewRealClockIn(loc), nil
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewInvoiceCommands,
		commands.NewLoyaltyCommands,
		commands.NewServiceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewGuestQueries,
		queries.NewBookingQueries,
	),
)
