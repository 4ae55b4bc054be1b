package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	// GetBooking returns a Conflict when actor does not own the booking.
	GetBooking(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBookingQueries(uow shared.UnitOfWork) BookingQueries {
	return &bookingQueriesImpl{uow: uow}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error) {
	var b *booking.Booking
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		found, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return err
		}
		b = found
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.NotFound(id)
		}
		return nil, errs.Wrap(err, "get booking")
	}

	if err := b.EnsureOwnedBy(actor); err != nil {
		return nil, err
	}
	return NewBookingView(b), nil
}
