package components

import (
	"experience-booking/internal/infra/memstore"
	"experience-booking/internal/usecase/commands"
	"experience-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// Experience
		fx.Annotate(
			memstore.NewExperienceStore,
			fx.As(new(queries.ExperienceReadStore)),
			fx.As(new(commands.ExperienceRepository)),
		),
		// Booking
		fx.Annotate(
			memstore.NewBookingStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(commands.BookingRepository)),
		),
		// User
		fx.Annotate(
			memstore.NewUserStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(commands.UserRepository)),
		),
	),
)
