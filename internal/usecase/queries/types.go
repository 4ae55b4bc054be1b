package queries

import (
	"encoding/json"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/stay"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID              uuid.UUID               `json:"id"`
	UserID          uuid.UUID               `json:"user_id"`
	HotelID         string                  `json:"hotel_id"`
	RoomTypeID      string                  `json:"room_type_id"`
	CheckIn         string                  `json:"check_in"`
	CheckOut        string                  `json:"check_out"`
	Nights          int                     `json:"nights"`
	Status          string                  `json:"status"`
	Source          string                  `json:"source"`
	SupplierCode    *string                 `json:"supplier_code,omitempty"`
	ConfirmationRef *string                 `json:"confirmation_ref,omitempty"`
	IdempotencyKey  *string                 `json:"idempotency_key,omitempty"`
	RoomsCount      int                     `json:"rooms_count"`
	FailureReason   *string                 `json:"failure_reason,omitempty"`
	ExpiresAt       time.Time               `json:"expires_at"`
	Guests          []booking.Guest         `json:"guests"`
	LeadGuest       booking.Guest           `json:"lead_guest"`
	SpecialRequests string                  `json:"special_requests,omitempty"`
	Adults          *int                    `json:"adults,omitempty"`
	Children        *int                    `json:"children,omitempty"`
	ChildrenAges    []int                   `json:"children_ages,omitempty"`
	OfferID         string                  `json:"offer_id,omitempty"`
	SupplierRateKey string                  `json:"supplier_rate_key,omitempty"`
	OfferPayload    json.RawMessage         `json:"offer_payload,omitempty"`
	PriceSnapshot   *booking.PriceSnapshot  `json:"price_snapshot,omitempty"`
	PolicySnapshot  *booking.PolicySnapshot `json:"policy_snapshot,omitempty"`
	NextActions     []string                `json:"next_actions"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

func NewBookingView(b *booking.Booking) *BookingView {
	v := &BookingView{
		ID:              b.ID(),
		UserID:          b.UserID(),
		HotelID:         b.HotelID(),
		RoomTypeID:      b.RoomTypeID(),
		CheckIn:         b.Stay().CheckIn().Format(stay.DateLayout),
		CheckOut:        b.Stay().CheckOut().Format(stay.DateLayout),
		Nights:          b.Stay().NightCount(),
		Status:          b.Status().String(),
		Source:          b.Source().String(),
		ConfirmationRef: b.ConfirmationRef(),
		IdempotencyKey:  b.IdempotencyKey(),
		RoomsCount:      b.RoomsCount(),
		FailureReason:   b.FailureReason(),
		ExpiresAt:       b.ExpiresAt(),
		Guests:          b.Guests(),
		LeadGuest:       b.LeadGuest(),
		SpecialRequests: b.SpecialRequests(),
		Adults:          b.Occupancy().Adults,
		Children:        b.Occupancy().Children,
		ChildrenAges:    b.ChildrenAges(),
		OfferID:         b.OfferID(),
		SupplierRateKey: b.SupplierRateKey(),
		OfferPayload:    b.OfferPayload(),
		PriceSnapshot:   b.PriceSnapshot(),
		PolicySnapshot:  b.PolicySnapshot(),
		NextActions:     b.NextActions(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
	if code := b.SupplierCode(); code != nil {
		s := code.String()
		v.SupplierCode = &s
	}
	if v.NextActions == nil {
		v.NextActions = []string{}
	}
	if v.Guests == nil {
		v.Guests = []booking.Guest{}
	}
	return v
}

type NightAvailabilityView struct {
	Date      string `json:"date"`
	Quantity  int    `json:"quantity"`
	Reserved  int    `json:"reserved"`
	Available int    `json:"available"`
	StopSell  bool   `json:"stop_sell"`
	Missing   bool   `json:"missing"`
}

type AvailabilityView struct {
	HotelID        string                  `json:"hotel_id"`
	RoomTypeID     string                  `json:"room_type_id"`
	CheckIn        string                  `json:"check_in"`
	CheckOut       string                  `json:"check_out"`
	RoomsAvailable int                     `json:"rooms_available"`
	Bookable       bool                    `json:"bookable"`
	Nights         []NightAvailabilityView `json:"nights"`
}

func newNightViews(nights []inventory.NightAvailability) []NightAvailabilityView {
	views := make([]NightAvailabilityView, 0, len(nights))
	for _, n := range nights {
		views = append(views, NightAvailabilityView{
			Date:      n.Date.Format(stay.DateLayout),
			Quantity:  n.Quantity,
			Reserved:  n.Reserved,
			Available: n.Available,
			StopSell:  n.StopSell,
			Missing:   n.Missing,
		})
	}
	return views
}
