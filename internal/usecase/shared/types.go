package shared

//go:generate mockgen -source=types.go -destination=../../../tests/mock/shared/types.go -package=sharedmock

import (
	"context"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrLockNotAcquired    = errs.New("lock not acquired")
	ErrAdapterUnavailable = errs.New("booking channel temporarily unavailable")
)

// AdapterUnavailable translates an adapter transport failure into a Conflict.
func AdapterUnavailable(channel string, cause error) error {
	err := errs.New(channel + " is temporarily unavailable")
	return errs.Kind(errs.WithCause(err, cause), ErrAdapterUnavailable, errs.ErrConflict)
}

type RecheckStatus string

const (
	RecheckOK           RecheckStatus = "OK"
	RecheckSoldOut      RecheckStatus = "SOLD_OUT"
	RecheckPriceChanged RecheckStatus = "PRICE_CHANGED"
)

type RecheckResult struct {
	Status  RecheckStatus
	Message string
}

func (r RecheckResult) IsFailure() bool {
	return r.Status == RecheckSoldOut || r.Status == RecheckPriceChanged
}

// OwnerInventoryAdapter fulfils bookings from the property's own allotments.
type OwnerInventoryAdapter interface {
	Recheck(ctx context.Context, b *booking.Booking) (RecheckResult, error)
	// ReserveAndConfirm runs inside the caller's transaction when ctx carries one.
	ReserveAndConfirm(ctx context.Context, b *booking.Booking) (string, error)
	Release(ctx context.Context, b *booking.Booking) error
}

// SupplierBookingAdapter fulfils bookings through a third-party supplier.
type SupplierBookingAdapter interface {
	Code() booking.SupplierCode
	Recheck(ctx context.Context, b *booking.Booking) (RecheckResult, error)
	CreateBooking(ctx context.Context, b *booking.Booking) (string, error)
	CancelBooking(ctx context.Context, b *booking.Booking) error
}

const (
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
	EventBookingFailed    = "booking.failed"
)

type BookingEvent struct {
	Type            string    `json:"type"`
	BookingID       uuid.UUID `json:"booking_id"`
	UserID          uuid.UUID `json:"user_id"`
	HotelID         string    `json:"hotel_id"`
	RoomTypeID      string    `json:"room_type_id"`
	CheckIn         string    `json:"check_in"`
	CheckOut        string    `json:"check_out"`
	RoomsCount      int       `json:"rooms_count"`
	Status          string    `json:"status"`
	Source          string    `json:"source"`
	SupplierCode    *string   `json:"supplier_code,omitempty"`
	ConfirmationRef *string   `json:"confirmation_ref,omitempty"`
	FailureReason   *string   `json:"failure_reason,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

func NewBookingEvent(eventType string, b *booking.Booking, at time.Time) BookingEvent {
	e := BookingEvent{
		Type:            eventType,
		BookingID:       b.ID(),
		UserID:          b.UserID(),
		HotelID:         b.HotelID(),
		RoomTypeID:      b.RoomTypeID(),
		CheckIn:         b.Stay().CheckIn().Format(stay.DateLayout),
		CheckOut:        b.Stay().CheckOut().Format(stay.DateLayout),
		RoomsCount:      b.RoomsCount(),
		Status:          b.Status().String(),
		Source:          b.Source().String(),
		ConfirmationRef: b.ConfirmationRef(),
		FailureReason:   b.FailureReason(),
		OccurredAt:      at,
	}
	if code := b.SupplierCode(); code != nil {
		s := code.String()
		e.SupplierCode = &s
	}
	return e
}

// EventPublisher delivers lifecycle events. Delivery is best-effort.
type EventPublisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}
