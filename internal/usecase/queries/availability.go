package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

import (
	"context"

	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/shared"
)

type AvailabilityQueries interface {
	// MinAvailable is the bookable room count across every night of r.
	MinAvailable(ctx context.Context, key inventory.RoomKey, r stay.Range) (int, error)
	IsBookable(ctx context.Context, key inventory.RoomKey, r stay.Range, rooms int) (bool, error)
	Availability(ctx context.Context, key inventory.RoomKey, r stay.Range, rooms int) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewAvailabilityQueries(uow shared.UnitOfWork) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow}
}

func (q *availabilityQueriesImpl) MinAvailable(ctx context.Context, key inventory.RoomKey, r stay.Range) (int, error) {
	allotments, active, err := q.load(ctx, key, r)
	if err != nil {
		return 0, err
	}
	return inventory.MinAvailable(r, allotments, active), nil
}

func (q *availabilityQueriesImpl) IsBookable(ctx context.Context, key inventory.RoomKey, r stay.Range, rooms int) (bool, error) {
	allotments, active, err := q.load(ctx, key, r)
	if err != nil {
		return false, err
	}
	return inventory.IsBookable(r, rooms, allotments, active), nil
}

func (q *availabilityQueriesImpl) Availability(ctx context.Context, key inventory.RoomKey, r stay.Range, rooms int) (*AvailabilityView, error) {
	allotments, active, err := q.load(ctx, key, r)
	if err != nil {
		return nil, err
	}
	return &AvailabilityView{
		HotelID:        key.HotelID,
		RoomTypeID:     key.RoomTypeID,
		CheckIn:        r.CheckIn().Format(stay.DateLayout),
		CheckOut:       r.CheckOut().Format(stay.DateLayout),
		RoomsAvailable: inventory.MinAvailable(r, allotments, active),
		Bookable:       inventory.IsBookable(r, rooms, allotments, active),
		Nights:         newNightViews(inventory.Breakdown(r, allotments, active)),
	}, nil
}

func (q *availabilityQueriesImpl) load(ctx context.Context, key inventory.RoomKey, r stay.Range) ([]inventory.Allotment, []*inventory.Reservation, error) {
	if err := key.Validate(); err != nil {
		return nil, nil, err
	}

	var (
		allotments []inventory.Allotment
		active     []*inventory.Reservation
	)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		var err error
		if allotments, err = tx.Inventory().FindAllotments(ctx, key, r); err != nil {
			return err
		}
		active, err = tx.Inventory().FindActiveReservations(ctx, key, r)
		return err
	})
	if err != nil {
		return nil, nil, errs.Wrap(err, "load availability")
	}
	return allotments, active, nil
}
