package bootstrap

import (
	"estate-marketplace/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.CacheModule,
	components.NotifyModule,
	components.UseCaseModule,
	components.SchedulerModule,
	components.HandlerModule,
)
