package components

import (
	"context"

	"hotel-booking-core/internal/infra/events"
	"hotel-booking-core/internal/pkg/config"
	"hotel-booking-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) shared.EventPublisher {
	if !cfg.Broker.Enabled {
		return events.NewLogPublisher()
	}

	publisher := events.NewAMQPPublisher(cfg.Broker.URL, cfg.Broker.Exchange)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}
