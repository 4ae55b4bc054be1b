//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra/memstore"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/queries"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roomKey = inventory.RoomKey{HotelID: "H1", RoomTypeID: "DBL"}

func seed(t *testing.T, store *memstore.Store, allotments map[string]int, stopSell string, reservations ...*inventory.Reservation) {
	t.Helper()
	list := make([]inventory.Allotment, 0, len(allotments))
	for d, qty := range allotments {
		date, err := stay.ParseDate(d)
		require.NoError(t, err)
		a, err := inventory.NewAllotment(roomKey, date, qty, d == stopSell)
		require.NoError(t, err)
		list = append(list, a)
	}
	err := store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Inventory().UpsertAllotments(ctx, list); err != nil {
			return err
		}
		for _, r := range reservations {
			if err := tx.Inventory().InsertReservation(ctx, r); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestAvailabilityQueries(t *testing.T) {
	ctx := context.Background()
	r := stay.MustRange("2030-01-10", "2030-01-13")
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	held, err := inventory.NewReservation(uuid.New(), roomKey, stay.MustRange("2030-01-11", "2030-01-12"), 2, now)
	require.NoError(t, err)
	released, err := inventory.NewReservation(uuid.New(), roomKey, r, 3, now)
	require.NoError(t, err)
	released.Release(now)

	t.Run("success: minimum across nights", func(t *testing.T) {
		store := memstore.New()
		seed(t, store, map[string]int{"2030-01-10": 5, "2030-01-11": 3, "2030-01-12": 4}, "", held, released)
		sut := queries.NewAvailabilityQueries(store)

		n, err := sut.MinAvailable(ctx, roomKey, r)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		ok, err := sut.IsBookable(ctx, roomKey, r, 1)
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = sut.IsBookable(ctx, roomKey, r, 2)
		require.NoError(t, err)
		assert.False(t, ok)

		view, err := sut.Availability(ctx, roomKey, r, 2)
		require.NoError(t, err)
		assert.Equal(t, "2030-01-10", view.CheckIn)
		assert.Equal(t, "2030-01-13", view.CheckOut)
		assert.Equal(t, 1, view.RoomsAvailable)
		assert.False(t, view.Bookable)
		require.Len(t, view.Nights, 3)
		assert.Equal(t, queries.NightAvailabilityView{Date: "2030-01-11", Quantity: 3, Reserved: 2, Available: 1}, view.Nights[1])
	})

	t.Run("success: missing and stop-sell nights report zero", func(t *testing.T) {
		store := memstore.New()
		seed(t, store, map[string]int{"2030-01-10": 5, "2030-01-11": 5}, "2030-01-11")
		sut := queries.NewAvailabilityQueries(store)

		view, err := sut.Availability(ctx, roomKey, r, 1)
		require.NoError(t, err)
		assert.Zero(t, view.RoomsAvailable)
		assert.True(t, view.Nights[1].StopSell)
		assert.Zero(t, view.Nights[1].Available)
		assert.True(t, view.Nights[2].Missing)
	})

	t.Run("error: room key is required", func(t *testing.T) {
		sut := queries.NewAvailabilityQueries(memstore.New())

		_, err := sut.MinAvailable(ctx, inventory.RoomKey{HotelID: "H1"}, r)
		assert.True(t, errs.IsValidation(err))
	})
}
