package response

import (
	"encoding/json"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GuestResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type MoneyResponse struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type PriceSnapshotResponse struct {
	TotalPrice    *MoneyResponse `json:"totalPrice,omitempty"`
	BasePrice     *MoneyResponse `json:"basePrice,omitempty"`
	Taxes         *MoneyResponse `json:"taxes,omitempty"`
	Fees          *MoneyResponse `json:"fees,omitempty"`
	PricePerNight *MoneyResponse `json:"pricePerNight,omitempty"`
	Nights        *int           `json:"nights,omitempty"`
}

type PolicySnapshotResponse struct {
	CancellationPolicySummary string     `json:"cancellationPolicySummary,omitempty"`
	FreeCancellationDeadline  *time.Time `json:"freeCancellationDeadline,omitempty"`
	CancellationAllowed       *bool      `json:"cancellationAllowed,omitempty"`
	RefundPolicySummary       string     `json:"refundPolicySummary,omitempty"`
	CheckInPolicy             string     `json:"checkInPolicy,omitempty"`
	CheckOutPolicy            string     `json:"checkOutPolicy,omitempty"`
}

type BookingResponse struct {
	BookingID       uuid.UUID               `json:"bookingId" copier:"ID"`
	UserID          uuid.UUID               `json:"userId"`
	HotelID         string                  `json:"hotelId"`
	RoomTypeID      string                  `json:"roomTypeId"`
	CheckIn         string                  `json:"checkIn"`
	CheckOut        string                  `json:"checkOut"`
	Nights          int                     `json:"nights"`
	Status          string                  `json:"status"`
	Source          string                  `json:"source"`
	SupplierCode    *string                 `json:"supplierCode,omitempty"`
	ConfirmationRef *string                 `json:"confirmationRef,omitempty"`
	IdempotencyKey  *string                 `json:"idempotencyKey,omitempty"`
	RoomsCount      int                     `json:"roomsCount"`
	FailureReason   *string                 `json:"failureReason,omitempty"`
	ExpiresAt       time.Time               `json:"expiresAt"`
	Guests          []GuestResponse         `json:"guests"`
	LeadGuest       GuestResponse           `json:"leadGuest"`
	GuestName       string                  `json:"guestName"`
	GuestEmail      string                  `json:"guestEmail"`
	GuestPhone      string                  `json:"guestPhone"`
	SpecialRequests string                  `json:"specialRequests,omitempty"`
	Adults          *int                    `json:"adults,omitempty"`
	Children        *int                    `json:"children,omitempty"`
	ChildrenAges    []int                   `json:"childrenAges,omitempty"`
	OfferID         string                  `json:"offerId,omitempty"`
	SupplierRateKey string                  `json:"supplierRateKey,omitempty"`
	OfferPayload    json.RawMessage         `json:"offerPayload,omitempty"`
	PriceSnapshot   *PriceSnapshotResponse  `json:"priceSnapshot,omitempty" copier:"-"`
	PolicySnapshot  *PolicySnapshotResponse `json:"policySnapshot,omitempty" copier:"-"`
	NextActions     []string                `json:"nextActions"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.CopyWithOption(&res, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	res.GuestName = v.LeadGuest.Name
	res.GuestEmail = v.LeadGuest.Email
	res.GuestPhone = v.LeadGuest.Phone
	if res.Guests == nil {
		res.Guests = []GuestResponse{}
	}
	if res.NextActions == nil {
		res.NextActions = []string{}
	}
	res.PriceSnapshot = fromPriceSnapshot(v.PriceSnapshot)
	res.PolicySnapshot = fromPolicySnapshot(v.PolicySnapshot)
	return &res, nil
}

func FromBooking(b *booking.Booking) (*BookingResponse, error) {
	return FromBookingView(queries.NewBookingView(b))
}

func fromPriceSnapshot(p *booking.PriceSnapshot) *PriceSnapshotResponse {
	if p == nil {
		return nil
	}
	return &PriceSnapshotResponse{
		TotalPrice:    fromMoney(p.Total),
		BasePrice:     fromMoney(p.Base),
		Taxes:         fromMoney(p.Taxes),
		Fees:          fromMoney(p.Fees),
		PricePerNight: fromMoney(p.PerNight),
		Nights:        p.Nights,
	}
}

func fromMoney(m *booking.Money) *MoneyResponse {
	if m == nil {
		return nil
	}
	return &MoneyResponse{Amount: m.Decimal(), Currency: m.Currency}
}

func fromPolicySnapshot(p *booking.PolicySnapshot) *PolicySnapshotResponse {
	if p == nil {
		return nil
	}
	return &PolicySnapshotResponse{
		CancellationPolicySummary: p.CancellationSummary,
		FreeCancellationDeadline:  p.FreeCancellationDeadline,
		CancellationAllowed:       p.CancellationAllowed,
		RefundPolicySummary:       p.RefundSummary,
		CheckInPolicy:             p.CheckInPolicy,
		CheckOutPolicy:            p.CheckOutPolicy,
	}
}
