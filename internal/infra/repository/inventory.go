package repository

//go:generate mockgen -source=inventory.go -destination=../../../tests/mock/repository/inventory.go -package=repositorymock

import (
	"context"

	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/query"
	"hotel-booking-core/internal/infra/repository/converter"
	"hotel-booking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type InventoryQueries interface {
	ListAllotments(ctx context.Context, db query.DBTX, arg query.ListAllotmentsParams) ([]query.InventoryAllotment, error)
	LockAllotments(ctx context.Context, db query.DBTX, arg query.ListAllotmentsParams) ([]query.InventoryAllotment, error)
	UpsertAllotment(ctx context.Context, db query.DBTX, arg query.UpsertAllotmentParams) error
	ListActiveReservations(ctx context.Context, db query.DBTX, arg query.ListActiveReservationsParams) ([]query.InventoryReservation, error)
	ListReservationsByBooking(ctx context.Context, db query.DBTX, bookingID pgtype.UUID) ([]query.InventoryReservation, error)
	CreateReservation(ctx context.Context, db query.DBTX, arg query.InventoryReservation) error
	UpdateReservationStatus(ctx context.Context, db query.DBTX, arg query.UpdateReservationStatusParams) (int64, error)
}

type InventoryRepository struct {
	queries InventoryQueries
	db      query.DBTX
}

func NewInventoryRepository(queries InventoryQueries, db query.DBTX) *InventoryRepository {
	return &InventoryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *InventoryRepository) FindAllotments(ctx context.Context, key inventory.RoomKey, rng stay.Range) ([]inventory.Allotment, error) {
	rows, err := r.queries.ListAllotments(ctx, r.db, converter.RangeToInfra(key, rng))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list allotments", err)
	}
	return converter.AllotmentsFromInfra(rows), nil
}

// LockAllotments must run inside a transaction; the row locks are held until it ends.
func (r *InventoryRepository) LockAllotments(ctx context.Context, key inventory.RoomKey, rng stay.Range) ([]inventory.Allotment, error) {
	rows, err := r.queries.LockAllotments(ctx, r.db, converter.RangeToInfra(key, rng))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock allotments", err)
	}
	return converter.AllotmentsFromInfra(rows), nil
}

func (r *InventoryRepository) UpsertAllotments(ctx context.Context, allotments []inventory.Allotment) error {
	for _, a := range allotments {
		params, err := converter.AllotmentToInfra(a)
		if err != nil {
			return infra.WrapRepoErr("failed to convert allotment", err)
		}
		if err := r.queries.UpsertAllotment(ctx, r.db, params); err != nil {
			return infra.WrapRepoErr("failed to upsert allotment", err)
		}
	}
	return nil
}

func (r *InventoryRepository) FindActiveReservations(ctx context.Context, key inventory.RoomKey, rng stay.Range) ([]*inventory.Reservation, error) {
	rows, err := r.queries.ListActiveReservations(ctx, r.db, query.ListActiveReservationsParams{
		HotelID:    key.HotelID,
		RoomTypeID: key.RoomTypeID,
		CheckIn:    pgconv.DateToPgtype(rng.CheckIn()),
		CheckOut:   pgconv.DateToPgtype(rng.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations", err)
	}
	return r.toDomain(rows)
}

func (r *InventoryRepository) FindReservationsByBooking(ctx context.Context, bookingID uuid.UUID) ([]*inventory.Reservation, error) {
	rows, err := r.queries.ListReservationsByBooking(ctx, r.db, pgconv.UUIDToPgtype(bookingID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by booking", err)
	}
	return r.toDomain(rows)
}

func (r *InventoryRepository) InsertReservation(ctx context.Context, res *inventory.Reservation) error {
	params, err := converter.ReservationToInfra(res)
	if err != nil {
		return infra.WrapRepoErr("failed to convert reservation", err)
	}
	if err := r.queries.CreateReservation(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *InventoryRepository) UpdateReservationStatus(ctx context.Context, res *inventory.Reservation) error {
	affected, err := r.queries.UpdateReservationStatus(ctx, r.db, query.UpdateReservationStatusParams{
		ID:        pgconv.UUIDToPgtype(res.ID()),
		Status:    res.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return nil
}

func (r *InventoryRepository) toDomain(rows []query.InventoryReservation) ([]*inventory.Reservation, error) {
	out, err := converter.ReservationsFromInfra(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation rows", err)
	}
	return out, nil
}
