package commands

//go:generate mockgen -source=inventory.go -destination=../../../tests/mock/commands/inventory.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInventoryOperationFailed = errs.New("inventory operation failed")

type ReserveParams struct {
	BookingID  uuid.UUID
	Key        inventory.RoomKey
	Stay       stay.Range
	RoomsCount int
}

type AllotmentInput struct {
	HotelID    string
	RoomTypeID string
	Date       time.Time
	Quantity   int
	StopSell   bool
}

type InventoryCommands interface {
	// Reserve holds RoomsCount rooms on every night of the stay, or fails
	// with a Conflict and writes nothing.
	Reserve(ctx context.Context, p ReserveParams) (*inventory.Reservation, error)
	// ReleaseByBookingID releases every RESERVED row of the booking. Repeated
	// calls are no-ops.
	ReleaseByBookingID(ctx context.Context, bookingID uuid.UUID) (int, error)
	UpsertAllotments(ctx context.Context, in []AllotmentInput) ([]inventory.Allotment, error)
}

type reservationManagerImpl struct {
	uow         shared.UnitOfWork
	locker      shared.RangeLocker
	clock       clock.Clock
	lockTimeout time.Duration
}

func NewReservationManager(
	uow shared.UnitOfWork,
	locker shared.RangeLocker,
	clock clock.Clock,
	lockTimeout time.Duration,
) InventoryCommands {
	return &reservationManagerImpl{
		uow:         uow,
		locker:      locker,
		clock:       clock,
		lockTimeout: lockTimeout,
	}
}

func (m *reservationManagerImpl) Reserve(ctx context.Context, p ReserveParams) (*inventory.Reservation, error) {
	if err := p.Key.Validate(); err != nil {
		return nil, err
	}
	if p.RoomsCount < 1 {
		return nil, errs.Validation(inventory.ErrInvalidRoomsCount)
	}

	var reserved *inventory.Reservation
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		release, err := m.locker.Acquire(ctx, p.Key.LockKey(), m.lockTimeout)
		if err != nil {
			return inventory.LockTimeout(p.Key, err)
		}
		// Held until the outermost transaction ends so a competing writer
		// reads the committed reservation.
		tx.AfterEnd(release)

		allotments, err := tx.Inventory().LockAllotments(ctx, p.Key, p.Stay)
		if err != nil {
			return m.mapRepoErr(p.Key, err)
		}
		active, err := tx.Inventory().FindActiveReservations(ctx, p.Key, p.Stay)
		if err != nil {
			return m.mapRepoErr(p.Key, err)
		}

		available := inventory.MinAvailable(p.Stay, allotments, active)
		if available < p.RoomsCount {
			return inventory.InsufficientInventory(p.Key, p.Stay, p.RoomsCount, available)
		}

		res, err := inventory.NewReservation(p.BookingID, p.Key, p.Stay, p.RoomsCount, m.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Inventory().InsertReservation(ctx, res); err != nil {
			return m.mapRepoErr(p.Key, err)
		}
		reserved = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("inventory reserved",
		"booking_id", p.BookingID,
		"reservation_id", reserved.ID(),
		"lock_key", p.Key.LockKey(),
		"stay", p.Stay.String(),
		"rooms", p.RoomsCount)
	return reserved, nil
}

func (m *reservationManagerImpl) ReleaseByBookingID(ctx context.Context, bookingID uuid.UUID) (int, error) {
	released := 0
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		released = 0
		list, err := tx.Inventory().FindReservationsByBooking(ctx, bookingID)
		if err != nil {
			return errs.Mark(err, ErrInventoryOperationFailed)
		}
		now := m.clock.Now()
		for _, res := range list {
			if !res.Release(now) {
				continue
			}
			if err := tx.Inventory().UpdateReservationStatus(ctx, res); err != nil {
				return errs.Mark(err, ErrInventoryOperationFailed)
			}
			released++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if released > 0 {
		slog.Info("inventory released", "booking_id", bookingID, "reservations", released)
	}
	return released, nil
}

func (m *reservationManagerImpl) UpsertAllotments(ctx context.Context, in []AllotmentInput) ([]inventory.Allotment, error) {
	if len(in) == 0 {
		return nil, errs.Validation(errs.New("at least one allotment is required"))
	}

	allotments := make([]inventory.Allotment, 0, len(in))
	for _, a := range in {
		key := inventory.RoomKey{HotelID: a.HotelID, RoomTypeID: a.RoomTypeID}
		allotment, err := inventory.NewAllotment(key, a.Date, a.Quantity, a.StopSell)
		if err != nil {
			return nil, err
		}
		allotments = append(allotments, allotment)
	}

	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Inventory().UpsertAllotments(ctx, allotments); err != nil {
			return errs.Mark(err, ErrInventoryOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return allotments, nil
}

func (m *reservationManagerImpl) mapRepoErr(key inventory.RoomKey, err error) error {
	if infra.IsKind(err, infra.KindLockTimeout) {
		return inventory.LockTimeout(key, err)
	}
	return errs.Mark(err, ErrInventoryOperationFailed)
}
