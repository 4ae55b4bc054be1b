//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedAllotments sets qty rooms on each of nights consecutive nights from start.
func SeedAllotments(t *testing.T, db DBLike, hotelID, roomTypeID string, start time.Time, nights, qty int) {
	t.Helper()

	ctx := context.Background()
	for i := range nights {
		_, err := db.Exec(ctx, `
			INSERT INTO inventory_allotments (hotel_id, room_type_id, stay_date, quantity, stop_sell)
			VALUES ($1, $2, $3, $4, false)
			ON CONFLICT (hotel_id, room_type_id, stay_date) DO UPDATE SET quantity = EXCLUDED.quantity`,
			hotelID, roomTypeID, start.AddDate(0, 0, i), qty)
		require.NoError(t, err)
	}
}

func CountActiveReservations(t *testing.T, db DBLike, bookingID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM inventory_reservations WHERE booking_id = $1 AND status = 'RESERVED'", bookingID).Scan(&n)
	require.NoError(t, err)
	return n
}

func SumReservedRooms(t *testing.T, db DBLike, hotelID, roomTypeID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(rooms_count), 0) FROM inventory_reservations
		WHERE hotel_id = $1 AND room_type_id = $2 AND status = 'RESERVED'`, hotelID, roomTypeID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every application table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
