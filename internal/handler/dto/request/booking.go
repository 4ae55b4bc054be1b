package request

import (
	"encoding/json"
	"strings"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/pkg/errs"
)

var ErrInvalidDateFormat = errs.New("dates must use YYYY-MM-DD")

type GuestRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type OccupancyRequest struct {
	Adults   *int `json:"adults,omitempty"`
	Children *int `json:"children,omitempty"`
}

type MoneyRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type PriceSnapshotRequest struct {
	TotalPrice    *MoneyRequest `json:"totalPrice,omitempty"`
	BasePrice     *MoneyRequest `json:"basePrice,omitempty"`
	Taxes         *MoneyRequest `json:"taxes,omitempty"`
	Fees          *MoneyRequest `json:"fees,omitempty"`
	PricePerNight *MoneyRequest `json:"pricePerNight,omitempty"`
	Nights        *int          `json:"nights,omitempty"`
}

type PolicySnapshotRequest struct {
	CancellationPolicySummary string     `json:"cancellationPolicySummary,omitempty"`
	FreeCancellationDeadline  *time.Time `json:"freeCancellationDeadline,omitempty"`
	CancellationAllowed       *bool      `json:"cancellationAllowed,omitempty"`
	RefundPolicySummary       string     `json:"refundPolicySummary,omitempty"`
	CheckInPolicy             string     `json:"checkInPolicy,omitempty"`
	CheckOutPolicy            string     `json:"checkOutPolicy,omitempty"`
}

// Dates are plain strings so that missing values reach the domain checks
// instead of failing at bind time.
type CreateBookingRequest struct {
	HotelID         string                 `json:"hotelId"`
	RoomTypeID      string                 `json:"roomTypeId"`
	CheckIn         string                 `json:"checkIn"`
	CheckOut        string                 `json:"checkOut"`
	GuestName       string                 `json:"guestName,omitempty"`
	GuestEmail      string                 `json:"guestEmail,omitempty"`
	GuestPhone      string                 `json:"guestPhone,omitempty"`
	Guests          []GuestRequest         `json:"guests,omitempty"`
	SpecialRequests string                 `json:"specialRequests,omitempty"`
	OfferPayload    json.RawMessage        `json:"offerPayload,omitempty"`
	SupplierCode    string                 `json:"supplierCode,omitempty"`
	Occupancy       *OccupancyRequest      `json:"occupancy,omitempty"`
	ChildrenAges    []int                  `json:"childrenAges,omitempty"`
	RoomsCount      *int                   `json:"roomsCount,omitempty"`
	OfferID         string                 `json:"offerId,omitempty"`
	SupplierRateKey string                 `json:"supplierRateKey,omitempty"`
	PriceSnapshot   *PriceSnapshotRequest  `json:"priceSnapshot,omitempty"`
	PolicySnapshot  *PolicySnapshotRequest `json:"policySnapshot,omitempty"`
	IdempotencyKey  string                 `json:"idempotencyKey,omitempty"`
}

// ToIntent converts the request; headerKey wins over the body idempotency key.
func (r CreateBookingRequest) ToIntent(headerKey string) (booking.Intent, error) {
	checkIn, err := parseOptionalDate(r.CheckIn)
	if err != nil {
		return booking.Intent{}, err
	}
	checkOut, err := parseOptionalDate(r.CheckOut)
	if err != nil {
		return booking.Intent{}, err
	}

	key := strings.TrimSpace(headerKey)
	if key == "" {
		key = r.IdempotencyKey
	}

	in := booking.Intent{
		HotelID:         r.HotelID,
		RoomTypeID:      r.RoomTypeID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		SpecialRequests: r.SpecialRequests,
		OfferPayload:    r.OfferPayload,
		SupplierCode:    r.SupplierCode,
		ChildrenAges:    r.ChildrenAges,
		RoomsCount:      r.RoomsCount,
		OfferID:         r.OfferID,
		SupplierRateKey: r.SupplierRateKey,
		IdempotencyKey:  key,
	}
	for _, g := range r.Guests {
		in.Guests = append(in.Guests, booking.Guest(g))
	}
	if r.Occupancy != nil {
		in.Occupancy = &booking.Occupancy{Adults: r.Occupancy.Adults, Children: r.Occupancy.Children}
	}
	if r.PriceSnapshot != nil {
		in.PriceSnapshot = r.PriceSnapshot.toDomain()
	}
	if r.PolicySnapshot != nil {
		p := booking.PolicySnapshot{
			CancellationSummary:      r.PolicySnapshot.CancellationPolicySummary,
			FreeCancellationDeadline: r.PolicySnapshot.FreeCancellationDeadline,
			CancellationAllowed:      r.PolicySnapshot.CancellationAllowed,
			RefundSummary:            r.PolicySnapshot.RefundPolicySummary,
			CheckInPolicy:            r.PolicySnapshot.CheckInPolicy,
			CheckOutPolicy:           r.PolicySnapshot.CheckOutPolicy,
		}
		in.PolicySnapshot = &p
	}
	return in, nil
}

func (p *PriceSnapshotRequest) toDomain() *booking.PriceSnapshot {
	return &booking.PriceSnapshot{
		Total:    p.TotalPrice.toDomain(),
		Base:     p.BasePrice.toDomain(),
		Taxes:    p.Taxes.toDomain(),
		Fees:     p.Fees.toDomain(),
		PerNight: p.PricePerNight.toDomain(),
		Nights:   p.Nights,
	}
}

func (m *MoneyRequest) toDomain() *booking.Money {
	if m == nil {
		return nil
	}
	money := booking.MoneyFromDecimal(m.Amount, m.Currency)
	return &money
}

type ConfirmBookingRequest struct {
	IdempotencyKey string `json:"idempotencyKey,omitempty"`
}

func parseOptionalDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := stay.ParseDate(s)
	if err != nil {
		return time.Time{}, errs.Kind(errs.Newf("Invalid date %q, expected YYYY-MM-DD", s), ErrInvalidDateFormat, errs.ErrValidation)
	}
	return t, nil
}
