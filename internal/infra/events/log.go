package events

import (
	"context"
	"log/slog"

	"hotel-booking-core/internal/usecase/shared"
)

// LogPublisher records events in the application log. Used when no broker is configured.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (LogPublisher) Publish(ctx context.Context, event shared.BookingEvent) error {
	slog.DebugContext(ctx, "booking event",
		"type", event.Type,
		"booking_id", event.BookingID,
		"status", event.Status)
	return nil
}
