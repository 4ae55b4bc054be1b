package bootstrap

import (
	"hotel-booking-core/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.LockModule,
	components.EventsModule,
	components.AdapterModule,
	components.UseCaseModule,
	components.HandlerModule,
)
