package bootstrap

import (
	"context"
	"log/slog"

	"experience-booking/internal/infra/cache"
	"experience-booking/internal/pkg/config"
	"experience-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCacheStore,
		func(s cache.Store) commands.ListCacheInvalidator {
			return s
		},
	),
)

func NewCacheStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) cache.Store {
	store, client := cache.NewStore(context.Background(), cfg.Cache, logger)
	if client != nil {
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
	}
	return store
}
