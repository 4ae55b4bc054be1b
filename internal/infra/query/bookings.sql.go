package query

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, user_id, hotel_id, room_type_id, check_in, check_out, status, source,
    supplier_code, confirmation_ref, idempotency_key, rooms_count, failure_reason, expires_at,
    guests, lead_guest, special_requests, occupancy, children_ages, offer_id, supplier_rate_key,
    offer_payload, price_snapshot, policy_snapshot, next_actions, created_at, updated_at`

func scanBooking(row pgx.Row) (Booking, error) {
	var i Booking
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.HotelID,
		&i.RoomTypeID,
		&i.CheckIn,
		&i.CheckOut,
		&i.Status,
		&i.Source,
		&i.SupplierCode,
		&i.ConfirmationRef,
		&i.IdempotencyKey,
		&i.RoomsCount,
		&i.FailureReason,
		&i.ExpiresAt,
		&i.Guests,
		&i.LeadGuest,
		&i.SpecialRequests,
		&i.Occupancy,
		&i.ChildrenAges,
		&i.OfferID,
		&i.SupplierRateKey,
		&i.OfferPayload,
		&i.PriceSnapshot,
		&i.PolicySnapshot,
		&i.NextActions,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createBooking = `-- name: CreateBooking :exec
INSERT INTO bookings_core (` + bookingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
`

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg Booking) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID,
		arg.UserID,
		arg.HotelID,
		arg.RoomTypeID,
		arg.CheckIn,
		arg.CheckOut,
		arg.Status,
		arg.Source,
		arg.SupplierCode,
		arg.ConfirmationRef,
		arg.IdempotencyKey,
		arg.RoomsCount,
		arg.FailureReason,
		arg.ExpiresAt,
		arg.Guests,
		arg.LeadGuest,
		arg.SpecialRequests,
		arg.Occupancy,
		arg.ChildrenAges,
		arg.OfferID,
		arg.SupplierRateKey,
		arg.OfferPayload,
		arg.PriceSnapshot,
		arg.PolicySnapshot,
		arg.NextActions,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

// Only lifecycle fields change after creation.
const updateBooking = `-- name: UpdateBooking :execrows
UPDATE bookings_core
SET status           = $2,
    confirmation_ref = $3,
    failure_reason   = $4,
    next_actions     = $5,
    updated_at       = $6
WHERE id = $1
`

type UpdateBookingParams struct {
	ID              pgtype.UUID
	Status          string
	ConfirmationRef pgtype.Text
	FailureReason   pgtype.Text
	NextActions     []byte
	UpdatedAt       pgtype.Timestamptz
}

func (q *Queries) UpdateBooking(ctx context.Context, db DBTX, arg UpdateBookingParams) (int64, error) {
	result, err := db.Exec(ctx, updateBooking,
		arg.ID,
		arg.Status,
		arg.ConfirmationRef,
		arg.FailureReason,
		arg.NextActions,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getBooking = `-- name: GetBooking :one
SELECT ` + bookingColumns + `
FROM bookings_core
WHERE id = $1
`

func (q *Queries) GetBooking(ctx context.Context, db DBTX, id pgtype.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBooking, id))
}

const getBookingForUpdate = `-- name: GetBookingForUpdate :one
SELECT ` + bookingColumns + `
FROM bookings_core
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetBookingForUpdate(ctx context.Context, db DBTX, id pgtype.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBookingForUpdate, id))
}

const getBookingByIdempotencyKey = `-- name: GetBookingByIdempotencyKey :one
SELECT ` + bookingColumns + `
FROM bookings_core
WHERE user_id = $1 AND idempotency_key = $2
`

type GetBookingByIdempotencyKeyParams struct {
	UserID         pgtype.UUID
	IdempotencyKey pgtype.Text
}

func (q *Queries) GetBookingByIdempotencyKey(ctx context.Context, db DBTX, arg GetBookingByIdempotencyKeyParams) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByIdempotencyKey, arg.UserID, arg.IdempotencyKey))
}
