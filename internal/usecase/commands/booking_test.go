//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra"
	infraadapter "hotel-booking-core/internal/infra/adapter"
	"hotel-booking-core/internal/infra/lock"
	"hotel-booking-core/internal/infra/memstore"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/adapter"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/queries"
	"hotel-booking-core/internal/usecase/shared"
	"hotel-booking-core/tests/common/builder"
	sharedmock "hotel-booking-core/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingOrchestratorTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	store     *memstore.Store
	clock     *clock.MockClock
	inventory commands.InventoryCommands
	avail     queries.AvailabilityQueries
	supplier  *sharedmock.MockSupplierBookingAdapter
	publisher *sharedmock.MockEventPublisher
	sut       commands.BookingCommands
	bb        *builder.BookingBuilder
}

func (s *BookingOrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.bb = builder.NewBookingBuilder()
	s.store = memstore.New()
	s.clock = clock.NewMockClock(s.bb.Now)

	s.inventory = commands.NewReservationManager(s.store, lock.NewMemoryLocker(), s.clock, time.Second)
	s.avail = queries.NewAvailabilityQueries(s.store)

	s.supplier = sharedmock.NewMockSupplierBookingAdapter(s.mockCtrl)
	s.supplier.EXPECT().Code().Return(booking.SupplierHotelbeds).AnyTimes()
	s.publisher = sharedmock.NewMockEventPublisher(s.mockCtrl)

	registry := adapter.NewRegistry(infraadapter.NewOwnerInventoryAdapter(s.avail, s.inventory), s.supplier)
	s.sut = commands.NewBookingOrchestrator(s.store, registry, s.publisher, s.clock, 15*time.Minute)
}

func (s *BookingOrchestratorTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(BookingOrchestratorTestSuite))
}

func (s *BookingOrchestratorTestSuite) seedAllotment(qty int) {
	r := s.stay()
	_, err := s.inventory.UpsertAllotments(s.ctx, allotmentInputs(s.T(), s.roomKey(), qty, r))
	s.Require().NoError(err)
}

func (s *BookingOrchestratorTestSuite) roomKey() inventory.RoomKey {
	return inventory.RoomKey{HotelID: s.bb.HotelID, RoomTypeID: s.bb.RoomTypeID}
}

func (s *BookingOrchestratorTestSuite) stay() stay.Range {
	r, err := s.bb.BuildIntent().ValidateDates(s.bb.Now)
	s.Require().NoError(err)
	return r
}

func (s *BookingOrchestratorTestSuite) createDraft(bb *builder.BookingBuilder) *booking.Booking {
	b, err := s.sut.CreateBooking(s.ctx, bb.UserID, bb.BuildIntent())
	s.Require().NoError(err)
	s.Require().Equal(booking.StatusDraft, b.Status())
	return b
}

func (s *BookingOrchestratorTestSuite) expectEvents(types ...string) {
	for _, typ := range types {
		s.publisher.EXPECT().Publish(gomock.Any(), eventOfType(typ)).Return(nil).Times(1)
	}
}

func (s *BookingOrchestratorTestSuite) stored(id uuid.UUID) *booking.Booking {
	var b *booking.Booking
	err := s.store.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.ReadTx) error {
		var err error
		b, err = tx.Bookings().FindByID(ctx, id)
		return err
	})
	s.Require().NoError(err)
	return b
}

// ================================================================================
// CreateBooking
// ================================================================================

func (s *BookingOrchestratorTestSuite) TestCreateBooking() {
	s.Run("success: replaying an idempotency key returns the same draft", func() {
		bb := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.IdempotencyKey = "create-1" })

		first := s.createDraft(bb)
		again := s.createDraft(bb)

		s.Equal(first.ID(), again.ID())
	})

	s.Run("success: without a key every call creates a draft", func() {
		bb := builder.NewBookingBuilder()

		first := s.createDraft(bb)
		second := s.createDraft(bb)

		s.NotEqual(first.ID(), second.ID())
	})

	s.Run("success: supplier code routes to the supplier source", func() {
		b := s.createDraft(builder.NewBookingBuilder().WithSupplier(booking.SupplierHotelbeds))

		s.Equal(booking.SourceSupplier, b.Source())
		s.Require().NotNil(b.SupplierCode())
		s.Equal(booking.SupplierHotelbeds, *b.SupplierCode())
	})

	s.Run("error: replay with invalid guests is rejected before lookup", func() {
		bb := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.IdempotencyKey = "create-2" })
		s.createDraft(bb)

		bb.Guests = []booking.Guest{{Name: "Ada Lovelace"}}
		_, err := s.sut.CreateBooking(s.ctx, bb.UserID, bb.BuildIntent())

		s.True(errs.IsValidation(err))
		s.True(errs.Is(err, booking.ErrInvalidGuests))
	})

	s.Run("error: check-in in the past", func() {
		bb := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.CheckIn = b.Now.AddDate(0, 0, -1) })

		_, err := s.sut.CreateBooking(s.ctx, bb.UserID, bb.BuildIntent())

		s.True(errs.IsValidation(err))
		s.True(errs.Is(err, booking.ErrInvalidDates))
	})
}

// ================================================================================
// ConfirmBooking: owner inventory
// ================================================================================

func (s *BookingOrchestratorTestSuite) TestConfirmBooking_Owner() {
	s.Run("success: reserves inventory and confirms", func() {
		s.SetupTest()
		s.seedAllotment(2)
		draft := s.createDraft(s.bb)
		s.expectEvents(shared.EventBookingConfirmed)

		confirmed, err := s.sut.ConfirmBooking(s.ctx, s.bb.UserID, draft.ID(), "confirm-1")
		s.Require().NoError(err)

		s.Equal(booking.StatusConfirmed, confirmed.Status())
		s.Require().NotNil(confirmed.ConfirmationRef())
		s.True(strings.HasPrefix(*confirmed.ConfirmationRef(), "OWN-RES-"))
		s.Empty(confirmed.NextActions())
		s.Equal(booking.StatusConfirmed, s.stored(draft.ID()).Status())

		left, err := s.avail.MinAvailable(s.ctx, s.roomKey(), s.stay())
		s.Require().NoError(err)
		s.Equal(1, left)

		s.Run("success: confirming again is a no-op", func() {
			again, err := s.sut.ConfirmBooking(s.ctx, s.bb.UserID, draft.ID(), "confirm-1")
			s.Require().NoError(err)
			s.Equal(*confirmed.ConfirmationRef(), *again.ConfirmationRef())

			left, err := s.avail.MinAvailable(s.ctx, s.roomKey(), s.stay())
			s.Require().NoError(err)
			s.Equal(1, left)
		})
	})

	s.Run("success: sold out recheck fails the booking", func() {
		s.SetupTest()
		s.seedAllotment(0)
		draft := s.createDraft(s.bb)
		s.expectEvents(shared.EventBookingFailed)

		failed, err := s.sut.ConfirmBooking(s.ctx, s.bb.UserID, draft.ID(), "")
		s.Require().NoError(err)

		s.Equal(booking.StatusFailed, failed.Status())
		s.Require().NotNil(failed.FailureReason())
		s.Contains(*failed.FailureReason(), "sold out")
		s.Nil(failed.ConfirmationRef())

		s.Run("error: a failed booking cannot be confirmed again", func() {
			_, err := s.sut.ConfirmBooking(s.ctx, s.bb.UserID, draft.ID(), "")
			s.True(errs.IsConflict(err))
			s.True(errs.Is(err, booking.ErrInvalidTransition))
		})
	})

	s.Run("error: expired draft", func() {
		s.SetupTest()
		s.seedAllotment(2)
		draft := s.createDraft(s.bb)
		s.clock.Add(16 * time.Minute)

		_, err := s.sut.ConfirmBooking(s.ctx, s.bb.UserID, draft.ID(), "")

		s.True(errs.IsConflict(err))
		s.True(errs.Is(err, booking.ErrBookingExpired))
		s.Equal(booking.StatusDraft, s.stored(draft.ID()).Status())
	})

	s.Run("error: another user's booking", func() {
		s.SetupTest()
		draft := s.createDraft(s.bb)

		_, err := s.sut.ConfirmBooking(s.ctx, uuid.New(), draft.ID(), "")

		s.True(errs.IsConflict(err))
		s.True(errs.Is(err, booking.ErrNotOwner))
	})

	s.Run("error: another user's confirmed booking is not returned", func() {
		s.SetupTest()
		ref := "OWN-RES-1"
		b := s.bb.BuildWithStatus(booking.StatusConfirmed, &ref)
		s.Require().NoError(s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Bookings().Create(ctx, b)
		}))

		got, err := s.sut.ConfirmBooking(s.ctx, uuid.New(), b.ID(), "")

		s.Nil(got)
		s.True(errs.Is(err, booking.ErrNotOwner))
	})

	s.Run("error: unknown booking", func() {
		s.SetupTest()

		_, err := s.sut.ConfirmBooking(s.ctx, s.bb.UserID, uuid.New(), "")

		s.True(errs.IsNotFound(err))
	})

	s.Run("success: publish failure does not fail the confirm", func() {
		s.SetupTest()
		s.seedAllotment(1)
		draft := s.createDraft(s.bb)
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down")).Times(1)

		confirmed, err := s.sut.ConfirmBooking(s.ctx, s.bb.UserID, draft.ID(), "")

		s.Require().NoError(err)
		s.Equal(booking.StatusConfirmed, confirmed.Status())
	})
}

// ================================================================================
// ConfirmBooking: supplier
// ================================================================================

func (s *BookingOrchestratorTestSuite) TestConfirmBooking_Supplier() {
	s.Run("success: books with the supplier once", func() {
		s.SetupTest()
		draft := s.createDraft(s.bb.WithSupplier(booking.SupplierHotelbeds))
		s.supplier.EXPECT().Recheck(gomock.Any(), gomock.Any()).Return(shared.RecheckResult{Status: shared.RecheckOK}, nil).Times(1)
		s.supplier.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return("SUP-123", nil).Times(1)
		s.expectEvents(shared.EventBookingConfirmed)

		confirmed, err := s.sut.ConfirmBooking(s.ctx, s.bb.UserID, draft.ID(), "")
		s.Require().NoError(err)
		s.Equal(booking.StatusConfirmed, confirmed.Status())
		s.Equal("SUP-123", *confirmed.ConfirmationRef())

		again, err := s.sut.ConfirmBooking(s.ctx, s.bb.UserID, draft.ID(), "")
		s.Require().NoError(err)
		s.Equal(booking.StatusConfirmed, again.Status())
	})

	s.Run("success: price change fails the booking", func() {
		s.SetupTest()
		draft := s.createDraft(s.bb.WithSupplier(booking.SupplierHotelbeds))
		s.supplier.EXPECT().Recheck(gomock.Any(), gomock.Any()).
			Return(shared.RecheckResult{Status: shared.RecheckPriceChanged, Message: "new price"}, nil).Times(1)
		s.expectEvents(shared.EventBookingFailed)

		failed, err := s.sut.ConfirmBooking(s.ctx, s.bb.UserID, draft.ID(), "")
		s.Require().NoError(err)
		s.Equal(booking.StatusFailed, failed.Status())
	})

	s.Run("error: supplier outage leaves the booking retryable", func() {
		s.SetupTest()
		draft := s.createDraft(s.bb.WithSupplier(booking.SupplierHotelbeds))
		s.supplier.EXPECT().Recheck(gomock.Any(), gomock.Any()).Return(shared.RecheckResult{Status: shared.RecheckOK}, nil).Times(1)
		gomock.InOrder(
			s.supplier.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
				Return("", shared.AdapterUnavailable("HOTELBEDS", context.DeadlineExceeded)),
			s.supplier.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return("SUP-456", nil),
		)
		s.expectEvents(shared.EventBookingConfirmed)

		_, err := s.sut.ConfirmBooking(s.ctx, s.bb.UserID, draft.ID(), "")
		s.True(errs.IsConflict(err))
		s.Equal("HOTELBEDS is temporarily unavailable", errs.Message(err))
		s.Equal(booking.StatusPendingConfirmation, s.stored(draft.ID()).Status())

		confirmed, err := s.sut.ConfirmBooking(s.ctx, s.bb.UserID, draft.ID(), "")
		s.Require().NoError(err)
		s.Equal("SUP-456", *confirmed.ConfirmationRef())
	})
}

// ================================================================================
// ConfirmBooking: concurrent callers
// ================================================================================

// heldOwner parks the first hold calls to Recheck until release is closed.
type heldOwner struct {
	shared.OwnerInventoryAdapter
	hold    atomic.Int32
	arrived chan struct{}
	release chan struct{}
}

func newHeldOwner(inner shared.OwnerInventoryAdapter, hold int) *heldOwner {
	h := &heldOwner{
		OwnerInventoryAdapter: inner,
		arrived:               make(chan struct{}, hold),
		release:               make(chan struct{}),
	}
	h.hold.Store(int32(hold))
	return h
}

func (h *heldOwner) Recheck(ctx context.Context, b *booking.Booking) (shared.RecheckResult, error) {
	if h.hold.Add(-1) >= 0 {
		h.arrived <- struct{}{}
		<-h.release
	}
	return h.OwnerInventoryAdapter.Recheck(ctx, b)
}

func (s *BookingOrchestratorTestSuite) withOwner(owner shared.OwnerInventoryAdapter) {
	registry := adapter.NewRegistry(owner, s.supplier)
	s.sut = commands.NewBookingOrchestrator(s.store, registry, s.publisher, s.clock, 15*time.Minute)
}

func (s *BookingOrchestratorTestSuite) reservationsOf(id uuid.UUID) []*inventory.Reservation {
	var list []*inventory.Reservation
	err := s.store.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.ReadTx) error {
		var err error
		list, err = tx.Inventory().FindReservationsByBooking(ctx, id)
		return err
	})
	s.Require().NoError(err)
	return list
}

type confirmOutcome struct {
	booking *booking.Booking
	err     error
}

func (s *BookingOrchestratorTestSuite) TestConfirmBooking_Concurrent() {
	s.Run("success: two confirms of one booking reserve once", func() {
		s.SetupTest()
		s.seedAllotment(5)
		owner := newHeldOwner(infraadapter.NewOwnerInventoryAdapter(s.avail, s.inventory), 2)
		s.withOwner(owner)
		draft := s.createDraft(s.bb)
		s.expectEvents(shared.EventBookingConfirmed)

		outcomes := make(chan confirmOutcome, 2)
		for range 2 {
			go func() {
				b, err := s.sut.ConfirmBooking(s.ctx, s.bb.UserID, draft.ID(), "retry-1")
				outcomes <- confirmOutcome{booking: b, err: err}
			}()
		}
		<-owner.arrived
		<-owner.arrived
		close(owner.release)

		refs := make([]string, 0, 2)
		for range 2 {
			out := <-outcomes
			s.Require().NoError(out.err)
			s.Equal(booking.StatusConfirmed, out.booking.Status())
			s.Require().NotNil(out.booking.ConfirmationRef())
			refs = append(refs, *out.booking.ConfirmationRef())
		}
		s.Equal(refs[0], refs[1])
		s.Len(s.reservationsOf(draft.ID()), 1)

		left, err := s.avail.MinAvailable(s.ctx, s.roomKey(), s.stay())
		s.Require().NoError(err)
		s.Equal(4, left)
	})

	s.Run("error: a late confirm does not revive a cancelled booking", func() {
		s.SetupTest()
		s.seedAllotment(5)
		owner := newHeldOwner(infraadapter.NewOwnerInventoryAdapter(s.avail, s.inventory), 1)
		s.withOwner(owner)
		draft := s.createDraft(s.bb)
		s.expectEvents(shared.EventBookingConfirmed, shared.EventBookingCancelled)

		late := make(chan confirmOutcome, 1)
		go func() {
			b, err := s.sut.ConfirmBooking(s.ctx, s.bb.UserID, draft.ID(), "")
			late <- confirmOutcome{booking: b, err: err}
		}()
		<-owner.arrived

		confirmed, err := s.sut.ConfirmBooking(s.ctx, s.bb.UserID, draft.ID(), "")
		s.Require().NoError(err)
		s.Equal(booking.StatusConfirmed, confirmed.Status())
		cancelled, err := s.sut.CancelBooking(s.ctx, s.bb.UserID, draft.ID())
		s.Require().NoError(err)
		s.Equal(booking.StatusCancelled, cancelled.Status())

		close(owner.release)
		out := <-late

		s.Nil(out.booking)
		s.True(errs.IsConflict(out.err))
		s.True(errs.Is(out.err, booking.ErrInvalidTransition))
		s.Equal(booking.StatusCancelled, s.stored(draft.ID()).Status())
		for _, res := range s.reservationsOf(draft.ID()) {
			s.False(res.IsActive())
		}

		left, err := s.avail.MinAvailable(s.ctx, s.roomKey(), s.stay())
		s.Require().NoError(err)
		s.Equal(5, left)
	})

	s.Run("success: two supplier confirms book with the supplier once", func() {
		s.SetupTest()
		draft := s.createDraft(s.bb.WithSupplier(booking.SupplierHotelbeds))
		arrived := make(chan struct{}, 2)
		release := make(chan struct{})
		s.supplier.EXPECT().Recheck(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, *booking.Booking) (shared.RecheckResult, error) {
				arrived <- struct{}{}
				<-release
				return shared.RecheckResult{Status: shared.RecheckOK}, nil
			}).Times(2)
		s.supplier.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return("SUP-789", nil).Times(1)
		s.expectEvents(shared.EventBookingConfirmed)

		outcomes := make(chan confirmOutcome, 2)
		for range 2 {
			go func() {
				b, err := s.sut.ConfirmBooking(s.ctx, s.bb.UserID, draft.ID(), "")
				outcomes <- confirmOutcome{booking: b, err: err}
			}()
		}
		<-arrived
		<-arrived
		close(release)

		for range 2 {
			out := <-outcomes
			s.Require().NoError(out.err)
			s.Equal("SUP-789", *out.booking.ConfirmationRef())
		}
	})
}

// ================================================================================
// CancelBooking
// ================================================================================

func (s *BookingOrchestratorTestSuite) TestCancelBooking() {
	s.Run("success: releases owner inventory", func() {
		s.SetupTest()
		s.seedAllotment(1)
		draft := s.createDraft(s.bb)
		s.expectEvents(shared.EventBookingConfirmed, shared.EventBookingCancelled)
		_, err := s.sut.ConfirmBooking(s.ctx, s.bb.UserID, draft.ID(), "")
		s.Require().NoError(err)

		cancelled, err := s.sut.CancelBooking(s.ctx, s.bb.UserID, draft.ID())
		s.Require().NoError(err)
		s.Equal(booking.StatusCancelled, cancelled.Status())

		left, err := s.avail.MinAvailable(s.ctx, s.roomKey(), s.stay())
		s.Require().NoError(err)
		s.Equal(1, left)

		again, err := s.sut.CancelBooking(s.ctx, s.bb.UserID, draft.ID())
		s.Require().NoError(err)
		s.Equal(booking.StatusCancelled, again.Status())
	})

	s.Run("success: cancels with the supplier", func() {
		s.SetupTest()
		ref := "SUP-1"
		b := s.bb.WithSupplier(booking.SupplierHotelbeds).BuildWithStatus(booking.StatusConfirmed, &ref)
		s.Require().NoError(s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Bookings().Create(ctx, b)
		}))
		s.supplier.EXPECT().CancelBooking(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		s.expectEvents(shared.EventBookingCancelled)

		cancelled, err := s.sut.CancelBooking(s.ctx, s.bb.UserID, b.ID())
		s.Require().NoError(err)
		s.Equal(booking.StatusCancelled, cancelled.Status())
	})

	s.Run("error: only confirmed bookings can be cancelled", func() {
		s.SetupTest()
		draft := s.createDraft(s.bb)

		_, err := s.sut.CancelBooking(s.ctx, s.bb.UserID, draft.ID())

		s.True(errs.IsConflict(err))
		s.True(errs.Is(err, booking.ErrNotCancellable))
		s.Equal("Only CONFIRMED bookings can be cancelled. Current status: DRAFT", errs.Message(err))
	})

	s.Run("error: another user's booking", func() {
		s.SetupTest()
		draft := s.createDraft(s.bb)

		_, err := s.sut.CancelBooking(s.ctx, uuid.New(), draft.ID())

		s.True(errs.Is(err, booking.ErrNotOwner))
	})
}

func eventOfType(typ string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		e, ok := x.(shared.BookingEvent)
		return ok && e.Type == typ
	})
}

func TestConfirmBooking_OwnerRecheckError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	bb := builder.NewBookingBuilder()
	store := memstore.New()
	clk := clock.NewMockClock(bb.Now)

	owner := sharedmock.NewMockOwnerInventoryAdapter(ctrl)
	owner.EXPECT().Recheck(gomock.Any(), gomock.Any()).Return(shared.RecheckResult{}, shared.AdapterUnavailable("owner inventory", errors.New("db down"))).Times(1)
	owner.EXPECT().ReserveAndConfirm(gomock.Any(), gomock.Any()).Times(0)
	publisher := sharedmock.NewMockEventPublisher(ctrl)

	sut := commands.NewBookingOrchestrator(store, adapter.NewRegistry(owner), publisher, clk, 15*time.Minute)
	draft, err := sut.CreateBooking(ctx, bb.UserID, bb.BuildIntent())
	require.NoError(t, err)

	_, err = sut.ConfirmBooking(ctx, bb.UserID, draft.ID(), "")
	require.Error(t, err)
	assert.True(t, errs.Is(err, shared.ErrAdapterUnavailable))
}

func TestCancelBooking_RowLockTimeoutIsBusy(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	bb := builder.NewBookingBuilder()
	ref := "OWN-RES-1"
	confirmed := bb.BuildWithStatus(booking.StatusConfirmed, &ref)

	uow := sharedmock.NewMockUnitOfWork(ctrl)
	readTx := sharedmock.NewMockReadTx(ctrl)
	reader := sharedmock.NewMockBookingReader(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	repo := sharedmock.NewMockBookingRepository(ctrl)

	uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.ReadTx) error) error {
			return fn(ctx, readTx)
		}).Times(1)
	readTx.EXPECT().Bookings().Return(reader).Times(1)
	reader.EXPECT().FindByID(gomock.Any(), confirmed.ID()).Return(confirmed, nil).Times(1)

	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).Times(1)
	tx.EXPECT().Bookings().Return(repo).Times(1)
	repo.EXPECT().FindByIDForUpdate(gomock.Any(), confirmed.ID()).
		Return(nil, infra.NewRepoErr(infra.KindLockTimeout, "lock wait timeout")).Times(1)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	owner := sharedmock.NewMockOwnerInventoryAdapter(ctrl)
	owner.EXPECT().Release(gomock.Any(), gomock.Any()).Times(0)
	publisher := sharedmock.NewMockEventPublisher(ctrl)

	sut := commands.NewBookingOrchestrator(uow, adapter.NewRegistry(owner), publisher, clock.NewMockClock(bb.Now), 15*time.Minute)
	_, err := sut.CancelBooking(ctx, bb.UserID, confirmed.ID())

	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))
	assert.True(t, errs.Is(err, booking.ErrBookingBusy))
}
