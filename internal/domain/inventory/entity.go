package inventory

import (
	"strings"
	"time"

	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInsufficientInventory = errs.New("insufficient inventory")
	ErrInvalidRoomsCount     = errs.New("rooms count must be at least 1")
	ErrInvalidQuantity       = errs.New("allotment quantity cannot be negative")
	ErrMissingRoomKey        = errs.New("hotel id and room type id are required")
	ErrLockTimeout           = errs.New("inventory is busy, retry later")
)

func InsufficientInventory(key RoomKey, r stay.Range, rooms, available int) error {
	err := errs.Newf("insufficient inventory for %s/%s over %s: requested %d, available %d",
		key.HotelID, key.RoomTypeID, r, rooms, available)
	return errs.Kind(err, ErrInsufficientInventory, errs.ErrConflict)
}

// LockTimeout is returned when the range lock could not be acquired in time.
// It is a retryable conflict.
func LockTimeout(key RoomKey, cause error) error {
	err := errs.Newf("inventory for %s/%s is busy, retry later", key.HotelID, key.RoomTypeID)
	return errs.Kind(errs.WithCause(err, cause), ErrLockTimeout, errs.ErrConflict)
}

func (k RoomKey) Validate() error {
	if strings.TrimSpace(k.HotelID) == "" || strings.TrimSpace(k.RoomTypeID) == "" {
		return errs.Validation(ErrMissingRoomKey)
	}
	return nil
}

// Allotment is the sellable quantity of one room type on one night.
type Allotment struct {
	Key      RoomKey
	Date     time.Time
	Quantity int
	StopSell bool
}

func NewAllotment(key RoomKey, date time.Time, quantity int, stopSell bool) (Allotment, error) {
	if err := key.Validate(); err != nil {
		return Allotment{}, err
	}
	if quantity < 0 {
		return Allotment{}, errs.Validation(ErrInvalidQuantity)
	}
	return Allotment{Key: key, Date: stay.Day(date), Quantity: quantity, StopSell: stopSell}, nil
}

type Reservation struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	key        RoomKey
	stay       stay.Range
	roomsCount int
	status     ReservationStatus
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReservation(bookingID uuid.UUID, key RoomKey, r stay.Range, rooms int, now time.Time) (*Reservation, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	if rooms < 1 {
		return nil, errs.Validation(ErrInvalidRoomsCount)
	}
	return &Reservation{
		id:         uuid.New(),
		bookingID:  bookingID,
		key:        key,
		stay:       r,
		roomsCount: rooms,
		status:     ReservationReserved,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructReservation(
	id, bookingID uuid.UUID,
	key RoomKey,
	r stay.Range,
	rooms int,
	status ReservationStatus,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		bookingID:  bookingID,
		key:        key,
		stay:       r,
		roomsCount: rooms,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Release reports whether the status changed. RELEASED is terminal.
func (r *Reservation) Release(now time.Time) bool {
	if r.status == ReservationReleased {
		return false
	}
	r.status = ReservationReleased
	r.updatedAt = now
	return true
}

func (r *Reservation) IsActive() bool {
	return r.status == ReservationReserved
}

// Holds reports how many rooms this reservation takes on night.
func (r *Reservation) Holds(night time.Time) int {
	if !r.IsActive() || !r.stay.Covers(night) {
		return 0
	}
	return r.roomsCount
}

func (r *Reservation) ID() uuid.UUID             { return r.id }
func (r *Reservation) BookingID() uuid.UUID      { return r.bookingID }
func (r *Reservation) Key() RoomKey              { return r.key }
func (r *Reservation) Stay() stay.Range          { return r.stay }
func (r *Reservation) RoomsCount() int           { return r.roomsCount }
func (r *Reservation) Status() ReservationStatus { return r.status }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time      { return r.updatedAt }
