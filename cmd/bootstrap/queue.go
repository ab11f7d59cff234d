package bootstrap

import (
	"context"
	"log/slog"

	"experience-booking/internal/infra/queue"
	"experience-booking/internal/pkg/config"
	"experience-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		NewBookingEventPublisher,
	),
)

// NewBookingEventPublisher falls back to logging events when the broker is
// disabled or unreachable; bookings never depend on the broker.
func NewBookingEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) commands.BookingEventPublisher {
	if !cfg.Queue.Enabled {
		return queue.NewLogPublisher(logger)
	}

	pub, err := queue.DialAMQP(cfg.Queue, logger)
	if err != nil {
		logger.Warn("AMQP unavailable, logging booking events instead", "error", err)
		return queue.NewLogPublisher(logger)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	logger.Info("Publishing booking events", "queue", cfg.Queue.BookingCreatedQueue)
	return pub
}
