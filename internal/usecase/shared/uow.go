package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/stay"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic.
	// A call made with a ctx that already carries a transaction joins it.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx ReadTx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Inventory() InventoryRepository
	// AfterEnd registers fn to run once the outermost transaction has
	// committed or rolled back. Used to release range locks.
	AfterEnd(fn func())
}

type ReadTx interface {
	Bookings() BookingReader
	Inventory() InventoryReader
}

type BookingReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByUserAndIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*booking.Booking, error)
}

type BookingRepository interface {
	BookingReader
	// FindByIDForUpdate reads the booking and excludes other writers of it
	// until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// Create fails with a DUPLICATE_KEY repository error when (user, idempotency key) is taken.
	Create(ctx context.Context, b *booking.Booking) error
	Save(ctx context.Context, b *booking.Booking) error
}

type InventoryReader interface {
	FindAllotments(ctx context.Context, key inventory.RoomKey, r stay.Range) ([]inventory.Allotment, error)
	// FindActiveReservations returns RESERVED rows overlapping r.
	FindActiveReservations(ctx context.Context, key inventory.RoomKey, r stay.Range) ([]*inventory.Reservation, error)
	FindReservationsByBooking(ctx context.Context, bookingID uuid.UUID) ([]*inventory.Reservation, error)
}

type InventoryRepository interface {
	InventoryReader
	// LockAllotments takes an exclusive lock on the allotment rows of every
	// night in r, in ascending date order, and returns them.
	LockAllotments(ctx context.Context, key inventory.RoomKey, r stay.Range) ([]inventory.Allotment, error)
	InsertReservation(ctx context.Context, res *inventory.Reservation) error
	UpdateReservationStatus(ctx context.Context, res *inventory.Reservation) error
	UpsertAllotments(ctx context.Context, allotments []inventory.Allotment) error
}

// RangeLocker serializes writers for one lock key across goroutines or instances.
type RangeLocker interface {
	// Acquire waits at most timeout. The returned release func is idempotent.
	Acquire(ctx context.Context, key string, timeout time.Duration) (release func(), err error)
}
