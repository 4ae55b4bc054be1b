//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra/lock"
	"hotel-booking-core/internal/infra/memstore"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/queries"
	"hotel-booking-core/internal/usecase/shared"
	sharedmock "hotel-booking-core/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var roomKey = inventory.RoomKey{HotelID: "H1", RoomTypeID: "DBL"}

func allotmentInputs(t *testing.T, key inventory.RoomKey, qty int, r stay.Range) []commands.AllotmentInput {
	t.Helper()
	in := make([]commands.AllotmentInput, 0, r.NightCount())
	for _, night := range r.Nights() {
		in = append(in, commands.AllotmentInput{
			HotelID:    key.HotelID,
			RoomTypeID: key.RoomTypeID,
			Date:       night,
			Quantity:   qty,
		})
	}
	return in
}

func newReservationManager(t *testing.T, qty int, r stay.Range) (commands.InventoryCommands, queries.AvailabilityQueries) {
	t.Helper()
	store := memstore.New()
	mgr := commands.NewReservationManager(store, lock.NewMemoryLocker(), clock.NewMockClock(time.Now()), time.Second)
	if qty >= 0 {
		_, err := mgr.UpsertAllotments(context.Background(), allotmentInputs(t, roomKey, qty, r))
		require.NoError(t, err)
	}
	return mgr, queries.NewAvailabilityQueries(store)
}

func TestReservationManager_Reserve(t *testing.T) {
	ctx := context.Background()
	r := stay.MustRange("2030-01-10", "2030-01-13")

	t.Run("success: reserves every night of the stay", func(t *testing.T) {
		mgr, avail := newReservationManager(t, 5, r)
		bookingID := uuid.New()

		res, err := mgr.Reserve(ctx, commands.ReserveParams{BookingID: bookingID, Key: roomKey, Stay: r, RoomsCount: 2})
		require.NoError(t, err)
		assert.Equal(t, bookingID, res.BookingID())
		assert.Equal(t, inventory.ReservationReserved, res.Status())

		left, err := avail.MinAvailable(ctx, roomKey, r)
		require.NoError(t, err)
		assert.Equal(t, 3, left)
	})

	t.Run("error: insufficient inventory writes nothing", func(t *testing.T) {
		mgr, avail := newReservationManager(t, 2, r)

		_, err := mgr.Reserve(ctx, commands.ReserveParams{BookingID: uuid.New(), Key: roomKey, Stay: r, RoomsCount: 3})
		require.Error(t, err)
		assert.True(t, errs.IsConflict(err))
		assert.True(t, errs.Is(err, inventory.ErrInsufficientInventory))

		left, err := avail.MinAvailable(ctx, roomKey, r)
		require.NoError(t, err)
		assert.Equal(t, 2, left)
	})

	t.Run("error: a missing night is not bookable", func(t *testing.T) {
		mgr, _ := newReservationManager(t, 5, stay.MustRange("2030-01-10", "2030-01-12"))

		_, err := mgr.Reserve(ctx, commands.ReserveParams{BookingID: uuid.New(), Key: roomKey, Stay: r, RoomsCount: 1})
		assert.True(t, errs.Is(err, inventory.ErrInsufficientInventory))
	})

	t.Run("error: validation", func(t *testing.T) {
		mgr, _ := newReservationManager(t, 5, r)

		testCases := []struct {
			name   string
			params commands.ReserveParams
		}{
			{name: "missing room type", params: commands.ReserveParams{BookingID: uuid.New(), Key: inventory.RoomKey{HotelID: "H1"}, Stay: r, RoomsCount: 1}},
			{name: "zero rooms", params: commands.ReserveParams{BookingID: uuid.New(), Key: roomKey, Stay: r, RoomsCount: 0}},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := mgr.Reserve(ctx, tc.params)
				assert.True(t, errs.IsValidation(err), "got %v", err)
			})
		}
	})

	t.Run("error: lock timeout is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locker := sharedmock.NewMockRangeLocker(ctrl)
		locker.EXPECT().Acquire(gomock.Any(), roomKey.LockKey(), time.Second).
			Return(nil, errs.Mark(context.DeadlineExceeded, shared.ErrLockNotAcquired)).Times(1)

		mgr := commands.NewReservationManager(memstore.New(), locker, clock.NewMockClock(time.Now()), time.Second)
		_, err := mgr.Reserve(ctx, commands.ReserveParams{BookingID: uuid.New(), Key: roomKey, Stay: r, RoomsCount: 1})

		require.Error(t, err)
		assert.True(t, errs.IsConflict(err))
		assert.True(t, errs.Is(err, inventory.ErrLockTimeout))
		assert.Equal(t, "inventory for H1/DBL is busy, retry later", errs.Message(err))
	})
}

func TestReservationManager_ConcurrentReserveNeverOversells(t *testing.T) {
	ctx := context.Background()
	r := stay.MustRange("2030-01-10", "2030-01-12")
	const allotment = 5
	mgr, avail := newReservationManager(t, allotment, r)

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		conflicts atomic.Int32
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := mgr.Reserve(ctx, commands.ReserveParams{BookingID: uuid.New(), Key: roomKey, Stay: r, RoomsCount: 1})
			switch {
			case err == nil:
				succeeded.Add(1)
			case errs.IsConflict(err):
				conflicts.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(allotment), succeeded.Load())
	assert.Equal(t, int32(20-allotment), conflicts.Load())

	left, err := avail.MinAvailable(ctx, roomKey, r)
	require.NoError(t, err)
	assert.Equal(t, 0, left)
}

func TestReservationManager_ReleaseByBookingID(t *testing.T) {
	ctx := context.Background()
	r := stay.MustRange("2030-01-10", "2030-01-12")
	mgr, avail := newReservationManager(t, 3, r)
	bookingID := uuid.New()

	_, err := mgr.Reserve(ctx, commands.ReserveParams{BookingID: bookingID, Key: roomKey, Stay: r, RoomsCount: 3})
	require.NoError(t, err)

	released, err := mgr.ReleaseByBookingID(ctx, bookingID)
	require.NoError(t, err)
	assert.Equal(t, 1, released)

	left, err := avail.MinAvailable(ctx, roomKey, r)
	require.NoError(t, err)
	assert.Equal(t, 3, left)

	t.Run("success: repeated release is a no-op", func(t *testing.T) {
		released, err := mgr.ReleaseByBookingID(ctx, bookingID)
		require.NoError(t, err)
		assert.Zero(t, released)
	})

	t.Run("success: unknown booking releases nothing", func(t *testing.T) {
		released, err := mgr.ReleaseByBookingID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Zero(t, released)
	})
}

func TestReservationManager_ReleaseFreesRoomsForTheNextBooking(t *testing.T) {
	ctx := context.Background()
	r := stay.MustRange("2030-01-10", "2030-01-12")
	mgr, avail := newReservationManager(t, 2, r)
	first, second := uuid.New(), uuid.New()

	_, err := mgr.Reserve(ctx, commands.ReserveParams{BookingID: first, Key: roomKey, Stay: r, RoomsCount: 1})
	require.NoError(t, err)

	_, err = mgr.Reserve(ctx, commands.ReserveParams{BookingID: second, Key: roomKey, Stay: r, RoomsCount: 2})
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))
	assert.True(t, errs.Is(err, inventory.ErrInsufficientInventory))

	left, err := avail.MinAvailable(ctx, roomKey, r)
	require.NoError(t, err)
	assert.Equal(t, 1, left)

	released, err := mgr.ReleaseByBookingID(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, 1, released)

	res, err := mgr.Reserve(ctx, commands.ReserveParams{BookingID: second, Key: roomKey, Stay: r, RoomsCount: 2})
	require.NoError(t, err)
	assert.Equal(t, second, res.BookingID())
	assert.Equal(t, 2, res.RoomsCount())

	left, err = avail.MinAvailable(ctx, roomKey, r)
	require.NoError(t, err)
	assert.Zero(t, left)
}

func TestReservationManager_UpsertAllotments(t *testing.T) {
	ctx := context.Background()
	r := stay.MustRange("2030-01-10", "2030-01-12")

	t.Run("success: later upsert overwrites quantity and stop-sell", func(t *testing.T) {
		mgr, avail := newReservationManager(t, 5, r)

		in := allotmentInputs(t, roomKey, 2, r)
		in[1].StopSell = true
		out, err := mgr.UpsertAllotments(ctx, in)
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.True(t, out[1].StopSell)

		view, err := avail.Availability(ctx, roomKey, r, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, view.RoomsAvailable)
		assert.False(t, view.Bookable)
		assert.Equal(t, 2, view.Nights[0].Available)
	})

	testCases := []struct {
		name string
		in   []commands.AllotmentInput
	}{
		{name: "empty input", in: nil},
		{name: "negative quantity", in: []commands.AllotmentInput{{HotelID: "H1", RoomTypeID: "DBL", Date: r.CheckIn(), Quantity: -1}}},
		{name: "missing hotel", in: []commands.AllotmentInput{{RoomTypeID: "DBL", Date: r.CheckIn(), Quantity: 1}}},
	}
	for _, tc := range testCases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			mgr, _ := newReservationManager(t, -1, r)
			_, err := mgr.UpsertAllotments(ctx, tc.in)
			assert.True(t, errs.IsValidation(err), "got %v", err)
		})
	}

	t.Run("error: store failure is marked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		tx := sharedmock.NewMockTx(ctrl)
		repo := sharedmock.NewMockInventoryRepository(ctrl)

		uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, tx)
			}).Times(1)
		tx.EXPECT().Inventory().Return(repo).Times(1)
		repo.EXPECT().UpsertAllotments(gomock.Any(), gomock.Len(2)).Return(errors.New("disk full")).Times(1)

		mgr := commands.NewReservationManager(uow, lock.NewMemoryLocker(), clock.NewMockClock(time.Now()), time.Second)
		_, err := mgr.UpsertAllotments(ctx, allotmentInputs(t, roomKey, 1, r))
		assert.True(t, errs.Is(err, commands.ErrInventoryOperationFailed))
	})
}
