package converter

import (
	"fmt"
	"math"

	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra/query"
	"hotel-booking-core/internal/pkg/pgconv"
)

func AllotmentFromInfra(row query.InventoryAllotment) inventory.Allotment {
	return inventory.Allotment{
		Key:      inventory.RoomKey{HotelID: row.HotelID, RoomTypeID: row.RoomTypeID},
		Date:     pgconv.DateFromPgtype(row.StayDate),
		Quantity: int(row.Quantity),
		StopSell: row.StopSell,
	}
}

func AllotmentsFromInfra(rows []query.InventoryAllotment) []inventory.Allotment {
	out := make([]inventory.Allotment, 0, len(rows))
	for _, row := range rows {
		out = append(out, AllotmentFromInfra(row))
	}
	return out
}

func AllotmentToInfra(a inventory.Allotment) (query.UpsertAllotmentParams, error) {
	if a.Quantity > math.MaxInt32 {
		return query.UpsertAllotmentParams{}, fmt.Errorf("allotment quantity out of int32 range: %d", a.Quantity)
	}
	return query.UpsertAllotmentParams{
		HotelID:    a.Key.HotelID,
		RoomTypeID: a.Key.RoomTypeID,
		StayDate:   pgconv.DateToPgtype(a.Date),
		Quantity:   int32(a.Quantity), // #nosec G115 -- range checked above
		StopSell:   a.StopSell,
	}, nil
}

func RangeToInfra(key inventory.RoomKey, r stay.Range) query.ListAllotmentsParams {
	return query.ListAllotmentsParams{
		HotelID:    key.HotelID,
		RoomTypeID: key.RoomTypeID,
		FromDate:   pgconv.DateToPgtype(r.CheckIn()),
		ToDate:     pgconv.DateToPgtype(r.CheckOut()),
	}
}

func ReservationToInfra(res *inventory.Reservation) (query.InventoryReservation, error) {
	if res.RoomsCount() > math.MaxInt32 {
		return query.InventoryReservation{}, fmt.Errorf("rooms count out of int32 range: %d", res.RoomsCount())
	}
	return query.InventoryReservation{
		ID:         pgconv.UUIDToPgtype(res.ID()),
		BookingID:  pgconv.UUIDToPgtype(res.BookingID()),
		HotelID:    res.Key().HotelID,
		RoomTypeID: res.Key().RoomTypeID,
		CheckIn:    pgconv.DateToPgtype(res.Stay().CheckIn()),
		CheckOut:   pgconv.DateToPgtype(res.Stay().CheckOut()),
		RoomsCount: int32(res.RoomsCount()), // #nosec G115 -- range checked above
		Status:     res.Status().String(),
		CreatedAt:  pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(res.UpdatedAt()),
	}, nil
}

func ReservationFromInfra(row query.InventoryReservation) (*inventory.Reservation, error) {
	r, err := stay.NewRange(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
	if err != nil {
		return nil, fmt.Errorf("reservation %s has an invalid stay: %w", pgconv.UUIDFromPgtype(row.ID), err)
	}
	status := inventory.ReservationStatus(row.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("reservation %s has an unknown status %q", pgconv.UUIDFromPgtype(row.ID), row.Status)
	}
	return inventory.ReconstructReservation(
		pgconv.UUIDFromPgtype(row.ID),
		pgconv.UUIDFromPgtype(row.BookingID),
		inventory.RoomKey{HotelID: row.HotelID, RoomTypeID: row.RoomTypeID},
		r,
		int(row.RoomsCount),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ReservationsFromInfra(rows []query.InventoryReservation) ([]*inventory.Reservation, error) {
	out := make([]*inventory.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := ReservationFromInfra(row)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}
