package components

import (
	"experience-booking/internal/handler"
	"experience-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewExperienceHandler,
		api.NewBookingHandler,
		api.NewUserHandler,
		func(e *api.ExperienceHandler, b *api.BookingHandler, u *api.UserHandler) handler.Handlers {
			return handler.Handlers{Experience: e, Booking: b, User: u}
		},
	),
	fx.Invoke(handler.NewRouter),
)
