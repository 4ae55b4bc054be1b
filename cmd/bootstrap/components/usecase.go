package components

import (
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/pkg/config"
	"hotel-booking-core/internal/usecase/adapter"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/queries"
	"hotel-booking-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(uow shared.UnitOfWork, locker shared.RangeLocker, clock clock.Clock, cfg config.Config) commands.InventoryCommands {
			return commands.NewReservationManager(uow, locker, clock, cfg.Inventory.LockTimeout)
		},
		func(
			uow shared.UnitOfWork,
			registry *adapter.Registry,
			publisher shared.EventPublisher,
			clock clock.Clock,
			cfg config.Config,
		) commands.BookingCommands {
			return commands.NewBookingOrchestrator(uow, registry, publisher, clock, cfg.Inventory.DraftTTL)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
	),
)
