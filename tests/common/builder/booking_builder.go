//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/stay"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID         uuid.UUID
	HotelID        string
	RoomTypeID     string
	CheckIn        time.Time
	CheckOut       time.Time
	Guests         []booking.Guest
	SupplierCode   string
	RoomsCount     *int
	IdempotencyKey string
	PriceSnapshot  *booking.PriceSnapshot
	Now            time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC()
	in := stay.Day(now).AddDate(0, 0, 7)
	return &BookingBuilder{
		UserID:     uuid.New(),
		HotelID:    "hotel-1",
		RoomTypeID: "deluxe-double",
		CheckIn:    in,
		CheckOut:   in.AddDate(0, 0, 2),
		Guests: []booking.Guest{
			{Name: "Ada Lovelace", Email: "ada@example.com", Phone: "+44 20 7946 0000"},
		},
		Now: now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithSupplier(code booking.SupplierCode) *BookingBuilder {
	b.SupplierCode = code.String()
	return b
}

func (b *BookingBuilder) WithRooms(n int) *BookingBuilder {
	b.RoomsCount = &n
	return b
}

// Build methods
func (b *BookingBuilder) BuildIntent() booking.Intent {
	return booking.Intent{
		HotelID:        b.HotelID,
		RoomTypeID:     b.RoomTypeID,
		CheckIn:        b.CheckIn,
		CheckOut:       b.CheckOut,
		Guests:         b.Guests,
		SupplierCode:   b.SupplierCode,
		RoomsCount:     b.RoomsCount,
		IdempotencyKey: b.IdempotencyKey,
		PriceSnapshot:  b.PriceSnapshot,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewDraft(b.UserID, b.BuildIntent(), b.Now, booking.DefaultDraftTTL)
}

// BuildWithStatus skips intake and places the booking directly in status.
func (b *BookingBuilder) BuildWithStatus(status booking.Status, confirmationRef *string) *booking.Booking {
	draft, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	attrs := draft.Attributes()
	attrs.Status = status
	attrs.ConfirmationRef = confirmationRef
	if status != booking.StatusDraft {
		attrs.NextActions = nil
	}
	return booking.Reconstruct(attrs)
}

func (b *BookingBuilder) BuildCreateRequest() map[string]any {
	guests := make([]map[string]any, 0, len(b.Guests))
	for _, g := range b.Guests {
		guests = append(guests, map[string]any{"name": g.Name, "email": g.Email, "phone": g.Phone})
	}
	req := map[string]any{
		"hotelId":    b.HotelID,
		"roomTypeId": b.RoomTypeID,
		"checkIn":    b.CheckIn.Format(stay.DateLayout),
		"checkOut":   b.CheckOut.Format(stay.DateLayout),
		"guests":     guests,
	}
	if b.SupplierCode != "" {
		req["supplierCode"] = b.SupplierCode
	}
	if b.RoomsCount != nil {
		req["roomsCount"] = *b.RoomsCount
	}
	if b.IdempotencyKey != "" {
		req["idempotencyKey"] = b.IdempotencyKey
	}
	return req
}
