//go:build unit

package adapter_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/infra/adapter"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/shared"
	"hotel-booking-core/tests/common/builder"
	commandsmock "hotel-booking-core/tests/mock/commands"
	queriesmock "hotel-booking-core/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOwnerInventoryAdapter_Recheck(t *testing.T) {
	ctx := context.Background()
	b, err := builder.NewBookingBuilder().WithRooms(2).BuildDomain()
	require.NoError(t, err)

	testCases := []struct {
		name      string
		setupMock func(q *queriesmock.MockAvailabilityQueries)
		expected  shared.RecheckStatus
		wantErr   bool
	}{
		{
			name: "success: bookable",
			setupMock: func(q *queriesmock.MockAvailabilityQueries) {
				q.EXPECT().IsBookable(ctx, b.RoomKey(), b.Stay(), 2).Return(true, nil)
			},
			expected: shared.RecheckOK,
		},
		{
			name: "success: sold out",
			setupMock: func(q *queriesmock.MockAvailabilityQueries) {
				q.EXPECT().IsBookable(ctx, b.RoomKey(), b.Stay(), 2).Return(false, nil)
			},
			expected: shared.RecheckSoldOut,
		},
		{
			name: "error: store unavailable",
			setupMock: func(q *queriesmock.MockAvailabilityQueries) {
				q.EXPECT().IsBookable(ctx, b.RoomKey(), b.Stay(), 2).Return(false, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := queriesmock.NewMockAvailabilityQueries(ctrl)
			tc.setupMock(q)

			result, err := adapter.NewOwnerInventoryAdapter(q, commandsmock.NewMockInventoryCommands(ctrl)).Recheck(ctx, b)

			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errs.Is(err, shared.ErrAdapterUnavailable))
				assert.True(t, errs.IsConflict(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result.Status)
		})
	}
}

func TestOwnerInventoryAdapter_ReserveAndRelease(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockAvailabilityQueries(ctrl)
	inv := commandsmock.NewMockInventoryCommands(ctrl)
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	res, err := inventory.NewReservation(b.ID(), b.RoomKey(), b.Stay(), 1, b.CreatedAt())
	require.NoError(t, err)
	inv.EXPECT().Reserve(ctx, commands.ReserveParams{
		BookingID:  b.ID(),
		Key:        b.RoomKey(),
		Stay:       b.Stay(),
		RoomsCount: 1,
	}).Return(res, nil).Times(1)
	inv.EXPECT().ReleaseByBookingID(ctx, b.ID()).Return(1, nil).Times(1)

	sut := adapter.NewOwnerInventoryAdapter(q, inv)

	ref, err := sut.ReserveAndConfirm(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, "OWN-RES-"+res.ID().String(), ref)

	require.NoError(t, sut.Release(ctx, b))
}

func TestStubSupplierAdapter(t *testing.T) {
	ctx := context.Background()

	withPayload := func(payload map[string]any) *booking.Booking {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		bb := builder.NewBookingBuilder().WithSupplier(booking.SupplierHotelbeds)
		intent := bb.BuildIntent()
		intent.OfferPayload = raw
		b, err := booking.NewDraft(uuid.New(), intent, bb.Now, booking.DefaultDraftTTL)
		require.NoError(t, err)
		return b
	}

	testCases := []struct {
		name     string
		payload  map[string]any
		expected shared.RecheckStatus
	}{
		{name: "success: plain payload", payload: map[string]any{"rate": "BAR"}, expected: shared.RecheckOK},
		{name: "success: forced sold out", payload: map[string]any{"forceSoldOut": true}, expected: shared.RecheckSoldOut},
		{name: "success: forced price change", payload: map[string]any{"forcePriceChange": true}, expected: shared.RecheckPriceChanged},
	}
	sut := adapter.NewHotelbedsAdapter()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := sut.Recheck(ctx, withPayload(tc.payload))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result.Status)
		})
	}

	t.Run("success: create and cancel", func(t *testing.T) {
		b := withPayload(nil)
		ref, err := sut.CreateBooking(ctx, b)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(ref, "SUP-"))
		assert.NoError(t, sut.CancelBooking(ctx, b))
	})

	t.Run("success: codes", func(t *testing.T) {
		assert.Equal(t, booking.SupplierHotelbeds, adapter.NewHotelbedsAdapter().Code())
		assert.Equal(t, booking.SupplierTravellanda, adapter.NewTravellandaAdapter().Code())
	})
}
