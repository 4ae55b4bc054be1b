package repository

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking.go -package=repositorymock

import (
	"context"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/query"
	"hotel-booking-core/internal/infra/repository/converter"
	"hotel-booking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingQueries interface {
	CreateBooking(ctx context.Context, db query.DBTX, arg query.Booking) error
	UpdateBooking(ctx context.Context, db query.DBTX, arg query.UpdateBookingParams) (int64, error)
	GetBooking(ctx context.Context, db query.DBTX, id pgtype.UUID) (query.Booking, error)
	GetBookingForUpdate(ctx context.Context, db query.DBTX, id pgtype.UUID) (query.Booking, error)
	GetBookingByIdempotencyKey(ctx context.Context, db query.DBTX, arg query.GetBookingByIdempotencyKeyParams) (query.Booking, error)
}

type BookingRepository struct {
	queries BookingQueries
	db      query.DBTX
}

func NewBookingRepository(queries BookingQueries, db query.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	params, err := converter.BookingToInfra(b)
	if err != nil {
		return infra.WrapRepoErr("failed to convert booking", err)
	}
	if err := r.queries.CreateBooking(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	params, err := converter.BookingUpdateToInfra(b)
	if err != nil {
		return infra.WrapRepoErr("failed to convert booking", err)
	}
	affected, err := r.queries.UpdateBooking(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBooking(ctx, r.db, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	return r.toDomain(row)
}

// FindByIDForUpdate holds the row lock until the transaction ends.
func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, r.db, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return r.toDomain(row)
}

func (r *BookingRepository) FindByUserAndIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIdempotencyKey(ctx, r.db, query.GetBookingByIdempotencyKeyParams{
		UserID:         pgconv.UUIDToPgtype(userID),
		IdempotencyKey: pgconv.StringToPgtype(key),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking by idempotency key", err)
	}
	return r.toDomain(row)
}

func (r *BookingRepository) toDomain(row query.Booking) (*booking.Booking, error) {
	b, err := converter.BookingFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking row", err)
	}
	return b, nil
}
