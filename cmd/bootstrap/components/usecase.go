package components

import (
	"experience-booking/internal/domain/booking"
	"experience-booking/internal/pkg/clock"
	"experience-booking/internal/usecase/commands"
	"experience-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewPerGuestPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	func(clock clock.Clock, calc booking.PriceCalculator) *booking.Services {
		return &booking.Services{
			Clock:           clock,
			PriceCalculator: calc,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewExperienceCommands,
		commands.NewBookingCommands,
		commands.NewUserCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewExperienceQueries,
		queries.NewBookingQueries,
		queries.NewUserQueries,
	),
)
