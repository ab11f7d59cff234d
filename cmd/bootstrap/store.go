package bootstrap

import (
	"context"
	"log/slog"

	"experience-booking/internal/infra/memstore"
	"experience-booking/internal/infra/seed"
	"experience-booking/internal/pkg/config"
	"experience-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		memstore.NewDB,
	),
)

// SeedModule fills the catalog before the server starts accepting requests.
var SeedModule = fx.Module("seed",
	fx.Invoke(SeedCatalog),
)

func SeedCatalog(lc fx.Lifecycle, cfg config.Config, cmds commands.ExperienceCommands, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return seed.SeedCatalog(ctx, cfg.Catalog, cmds, logger)
		},
	})
}
