package adapter

import (
	"context"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/queries"
	"hotel-booking-core/internal/usecase/shared"
)

const ownerReferencePrefix = "OWN-RES-"

// OwnerInventoryAdapter sells rooms from the hotel's own allotments.
type OwnerInventoryAdapter struct {
	availability queries.AvailabilityQueries
	inventory    commands.InventoryCommands
}

func NewOwnerInventoryAdapter(availability queries.AvailabilityQueries, inventory commands.InventoryCommands) *OwnerInventoryAdapter {
	return &OwnerInventoryAdapter{
		availability: availability,
		inventory:    inventory,
	}
}

func (a *OwnerInventoryAdapter) Recheck(ctx context.Context, b *booking.Booking) (shared.RecheckResult, error) {
	if b.HotelID() == "" || b.RoomTypeID() == "" || b.Stay().IsZero() {
		return shared.RecheckResult{Status: shared.RecheckSoldOut, Message: "booking has no room type or stay"}, nil
	}

	bookable, err := a.availability.IsBookable(ctx, b.RoomKey(), b.Stay(), b.RoomsCount())
	if err != nil {
		return shared.RecheckResult{}, shared.AdapterUnavailable("owner inventory", err)
	}
	if !bookable {
		return shared.RecheckResult{
			Status:  shared.RecheckSoldOut,
			Message: "no availability for " + b.Stay().String(),
		}, nil
	}
	return shared.RecheckResult{Status: shared.RecheckOK}, nil
}

// ReserveAndConfirm joins the caller's transaction through ctx.
func (a *OwnerInventoryAdapter) ReserveAndConfirm(ctx context.Context, b *booking.Booking) (string, error) {
	res, err := a.inventory.Reserve(ctx, commands.ReserveParams{
		BookingID:  b.ID(),
		Key:        b.RoomKey(),
		Stay:       b.Stay(),
		RoomsCount: b.RoomsCount(),
	})
	if err != nil {
		return "", err
	}
	return ownerReferencePrefix + res.ID().String(), nil
}

func (a *OwnerInventoryAdapter) Release(ctx context.Context, b *booking.Booking) error {
	_, err := a.inventory.ReleaseByBookingID(ctx, b.ID())
	return err
}
