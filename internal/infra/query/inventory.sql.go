package query

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const setLockTimeout = `-- name: SetLockTimeout :exec
SELECT set_config('lock_timeout', $1, true)
`

// SetLockTimeout applies to the current transaction only.
func (q *Queries) SetLockTimeout(ctx context.Context, db DBTX, timeout string) error {
	_, err := db.Exec(ctx, setLockTimeout, timeout)
	return err
}

type ListAllotmentsParams struct {
	HotelID    string
	RoomTypeID string
	FromDate   pgtype.Date
	ToDate     pgtype.Date
}

const listAllotments = `-- name: ListAllotments :many
SELECT hotel_id, room_type_id, stay_date, quantity, stop_sell, updated_at
FROM inventory_allotments
WHERE hotel_id = $1 AND room_type_id = $2 AND stay_date >= $3 AND stay_date < $4
ORDER BY stay_date
`

func (q *Queries) ListAllotments(ctx context.Context, db DBTX, arg ListAllotmentsParams) ([]InventoryAllotment, error) {
	return q.queryAllotments(ctx, db, listAllotments, arg)
}

// Rows are locked in ascending date order so concurrent writers on
// overlapping ranges cannot deadlock.
const lockAllotments = `-- name: LockAllotments :many
SELECT hotel_id, room_type_id, stay_date, quantity, stop_sell, updated_at
FROM inventory_allotments
WHERE hotel_id = $1 AND room_type_id = $2 AND stay_date >= $3 AND stay_date < $4
ORDER BY stay_date
FOR UPDATE
`

func (q *Queries) LockAllotments(ctx context.Context, db DBTX, arg ListAllotmentsParams) ([]InventoryAllotment, error) {
	return q.queryAllotments(ctx, db, lockAllotments, arg)
}

func (q *Queries) queryAllotments(ctx context.Context, db DBTX, sql string, arg ListAllotmentsParams) ([]InventoryAllotment, error) {
	rows, err := db.Query(ctx, sql, arg.HotelID, arg.RoomTypeID, arg.FromDate, arg.ToDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []InventoryAllotment{}
	for rows.Next() {
		var i InventoryAllotment
		if err := rows.Scan(
			&i.HotelID,
			&i.RoomTypeID,
			&i.StayDate,
			&i.Quantity,
			&i.StopSell,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertAllotment = `-- name: UpsertAllotment :exec
INSERT INTO inventory_allotments (hotel_id, room_type_id, stay_date, quantity, stop_sell, updated_at)
VALUES ($1, $2, $3, $4, $5, now())
ON CONFLICT (hotel_id, room_type_id, stay_date)
DO UPDATE SET quantity = EXCLUDED.quantity, stop_sell = EXCLUDED.stop_sell, updated_at = now()
`

type UpsertAllotmentParams struct {
	HotelID    string
	RoomTypeID string
	StayDate   pgtype.Date
	Quantity   int32
	StopSell   bool
}

func (q *Queries) UpsertAllotment(ctx context.Context, db DBTX, arg UpsertAllotmentParams) error {
	_, err := db.Exec(ctx, upsertAllotment,
		arg.HotelID,
		arg.RoomTypeID,
		arg.StayDate,
		arg.Quantity,
		arg.StopSell,
	)
	return err
}

const reservationColumns = `id, booking_id, hotel_id, room_type_id, check_in, check_out, rooms_count, status, created_at, updated_at`

const listActiveReservations = `-- name: ListActiveReservations :many
SELECT ` + reservationColumns + `
FROM inventory_reservations
WHERE hotel_id = $1 AND room_type_id = $2
  AND status = 'RESERVED'
  AND check_in < $4 AND check_out > $3
ORDER BY created_at
`

type ListActiveReservationsParams struct {
	HotelID    string
	RoomTypeID string
	CheckIn    pgtype.Date
	CheckOut   pgtype.Date
}

func (q *Queries) ListActiveReservations(ctx context.Context, db DBTX, arg ListActiveReservationsParams) ([]InventoryReservation, error) {
	rows, err := db.Query(ctx, listActiveReservations, arg.HotelID, arg.RoomTypeID, arg.CheckIn, arg.CheckOut)
	if err != nil {
		return nil, err
	}
	return collectReservations(rows)
}

const listReservationsByBooking = `-- name: ListReservationsByBooking :many
SELECT ` + reservationColumns + `
FROM inventory_reservations
WHERE booking_id = $1
ORDER BY created_at
`

func (q *Queries) ListReservationsByBooking(ctx context.Context, db DBTX, bookingID pgtype.UUID) ([]InventoryReservation, error) {
	rows, err := db.Query(ctx, listReservationsByBooking, bookingID)
	if err != nil {
		return nil, err
	}
	return collectReservations(rows)
}

func collectReservations(rows pgx.Rows) ([]InventoryReservation, error) {
	defer rows.Close()
	items := []InventoryReservation{}
	for rows.Next() {
		var i InventoryReservation
		if err := rows.Scan(
			&i.ID,
			&i.BookingID,
			&i.HotelID,
			&i.RoomTypeID,
			&i.CheckIn,
			&i.CheckOut,
			&i.RoomsCount,
			&i.Status,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createReservation = `-- name: CreateReservation :exec
INSERT INTO inventory_reservations (` + reservationColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg InventoryReservation) error {
	_, err := db.Exec(ctx, createReservation,
		arg.ID,
		arg.BookingID,
		arg.HotelID,
		arg.RoomTypeID,
		arg.CheckIn,
		arg.CheckOut,
		arg.RoomsCount,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateReservationStatus = `-- name: UpdateReservationStatus :execrows
UPDATE inventory_reservations
SET status = $2, updated_at = $3
WHERE id = $1
`

type UpdateReservationStatusParams struct {
	ID        pgtype.UUID
	Status    string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateReservationStatus(ctx context.Context, db DBTX, arg UpdateReservationStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateReservationStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
