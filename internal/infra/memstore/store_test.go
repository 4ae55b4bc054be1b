//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/memstore"
	"hotel-booking-core/internal/usecase/shared"
	"hotel-booking-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	key     = inventory.RoomKey{HotelID: "H1", RoomTypeID: "DBL"}
	now     = time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	errBoom = errors.New("boom")
)

func seedAllotments(t *testing.T, s *memstore.Store, qty int, dates ...string) {
	t.Helper()
	list := make([]inventory.Allotment, 0, len(dates))
	for _, d := range dates {
		date, err := stay.ParseDate(d)
		require.NoError(t, err)
		a, err := inventory.NewAllotment(key, date, qty, false)
		require.NoError(t, err)
		list = append(list, a)
	}
	err := s.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Inventory().UpsertAllotments(ctx, list)
	})
	require.NoError(t, err)
}

func TestStore_Bookings(t *testing.T) {
	ctx := context.Background()

	t.Run("success: create then read back a copy", func(t *testing.T) {
		s := memstore.New()
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		err = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Bookings().Create(ctx, b)
		})
		require.NoError(t, err)

		var found *booking.Booking
		err = s.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
			found, err = tx.Bookings().FindByID(ctx, b.ID())
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, b.ID(), found.ID())
		assert.NotSame(t, b, found)
	})

	t.Run("error: idempotency key is unique per user", func(t *testing.T) {
		s := memstore.New()
		bb := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.IdempotencyKey = "k-1" })
		first, err := bb.BuildDomain()
		require.NoError(t, err)
		second, err := bb.BuildDomain()
		require.NoError(t, err)
		other, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.IdempotencyKey = "k-1" }).BuildDomain()
		require.NoError(t, err)

		create := func(b *booking.Booking) error {
			return s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				return tx.Bookings().Create(ctx, b)
			})
		}
		require.NoError(t, create(first))
		err = create(second)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.NoError(t, create(other), "same key for a different user is allowed")

		var found *booking.Booking
		err = s.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
			found, err = tx.Bookings().FindByUserAndIdempotencyKey(ctx, bb.UserID, "k-1")
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID(), found.ID())
	})

	t.Run("error: unknown booking", func(t *testing.T) {
		s := memstore.New()
		err := s.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
			_, err := tx.Bookings().FindByID(ctx, uuid.New())
			return err
		})
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("success: locked read sees the latest committed status", func(t *testing.T) {
		s := memstore.New()
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		stale := b.Clone()

		err = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Bookings().Create(ctx, b); err != nil {
				return err
			}
			require.NoError(t, b.TransitionTo(booking.StatusRechecking, now))
			return tx.Bookings().Save(ctx, b)
		})
		require.NoError(t, err)

		var locked *booking.Booking
		err = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			locked, err = tx.Bookings().FindByIDForUpdate(ctx, stale.ID())
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, booking.StatusDraft, stale.Status())
		assert.Equal(t, booking.StatusRechecking, locked.Status())
	})
}

func TestStore_Rollback(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	seedAllotments(t, s, 5, "2030-01-10")

	b, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.IdempotencyKey = "k-1" }).BuildDomain()
	require.NoError(t, err)
	r := stay.MustRange("2030-01-10", "2030-01-11")
	res, err := inventory.NewReservation(b.ID(), key, r, 2, now)
	require.NoError(t, err)

	var afterEnd int
	err = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tx.AfterEnd(func() { afterEnd++ })
		require.NoError(t, tx.Bookings().Create(ctx, b))
		require.NoError(t, tx.Inventory().InsertReservation(ctx, res))
		d, _ := stay.ParseDate("2030-01-10")
		a, _ := inventory.NewAllotment(key, d, 0, true)
		require.NoError(t, tx.Inventory().UpsertAllotments(ctx, []inventory.Allotment{a}))
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, afterEnd)

	err = s.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		_, err := tx.Bookings().FindByID(ctx, b.ID())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		_, err = tx.Bookings().FindByUserAndIdempotencyKey(ctx, b.UserID(), "k-1")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))

		active, err := tx.Inventory().FindActiveReservations(ctx, key, r)
		require.NoError(t, err)
		assert.Empty(t, active)

		allotments, err := tx.Inventory().FindAllotments(ctx, key, r)
		require.NoError(t, err)
		require.Len(t, allotments, 1)
		assert.Equal(t, 5, allotments[0].Quantity)
		assert.False(t, allotments[0].StopSell)
		return nil
	})
	require.NoError(t, err)
}

func TestStore_NestedWithinJoinsOuterTransaction(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	var order []string
	err = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tx.AfterEnd(func() { order = append(order, "outer") })
		inner := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			tx.AfterEnd(func() { order = append(order, "inner") })
			return tx.Bookings().Create(ctx, b)
		})
		require.NoError(t, inner)
		assert.Empty(t, order, "after-end hooks wait for the outermost transaction")

		// Reads inside the transaction see its own writes.
		return s.WithinReadOnly(ctx, func(ctx context.Context, rtx shared.ReadTx) error {
			_, err := rtx.Bookings().FindByID(ctx, b.ID())
			return err
		})
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"inner", "outer"}, order)
}

func TestStore_Reservations(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	bookingID := uuid.New()

	first, err := inventory.NewReservation(bookingID, key, stay.MustRange("2030-01-10", "2030-01-12"), 1, now)
	require.NoError(t, err)
	second, err := inventory.NewReservation(bookingID, key, stay.MustRange("2030-01-12", "2030-01-13"), 1, now.Add(time.Second))
	require.NoError(t, err)
	otherRoom, err := inventory.NewReservation(uuid.New(), inventory.RoomKey{HotelID: "H1", RoomTypeID: "TWN"}, stay.MustRange("2030-01-10", "2030-01-12"), 1, now)
	require.NoError(t, err)

	err = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, r := range []*inventory.Reservation{first, second, otherRoom} {
			if err := tx.Inventory().InsertReservation(ctx, r); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	err = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		list, err := tx.Inventory().FindReservationsByBooking(ctx, bookingID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, first.ID(), list[0].ID())

		list[0].Release(now)
		return tx.Inventory().UpdateReservationStatus(ctx, list[0])
	})
	require.NoError(t, err)

	err = s.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		active, err := tx.Inventory().FindActiveReservations(ctx, key, stay.MustRange("2030-01-11", "2030-01-13"))
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, second.ID(), active[0].ID())
		return nil
	})
	require.NoError(t, err)
}

func TestStore_CancelledContext(t *testing.T) {
	s := memstore.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := s.Within(ctx, func(context.Context, shared.Tx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
