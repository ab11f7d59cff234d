package bootstrap

import (
	"experience-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module is the whole application graph except the HTTP listener.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	CacheModule,
	QueueModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	SeedModule,
)
