package converter

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra/query"
	"hotel-booking-core/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// jsonb documents; the domain types carry no serialization tags.
type guestDoc struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type occupancyDoc struct {
	Adults   *int `json:"adults,omitempty"`
	Children *int `json:"children,omitempty"`
}

type moneyDoc struct {
	AmountMinor int64  `json:"amount_minor"`
	Currency    string `json:"currency"`
}

type priceDoc struct {
	Total    *moneyDoc `json:"total,omitempty"`
	Base     *moneyDoc `json:"base,omitempty"`
	Taxes    *moneyDoc `json:"taxes,omitempty"`
	Fees     *moneyDoc `json:"fees,omitempty"`
	PerNight *moneyDoc `json:"per_night,omitempty"`
	Nights   *int      `json:"nights,omitempty"`
}

type policyDoc struct {
	CancellationSummary      string     `json:"cancellation_summary,omitempty"`
	FreeCancellationDeadline *time.Time `json:"free_cancellation_deadline,omitempty"`
	CancellationAllowed      *bool      `json:"cancellation_allowed,omitempty"`
	RefundSummary            string     `json:"refund_summary,omitempty"`
	CheckInPolicy            string     `json:"check_in_policy,omitempty"`
	CheckOutPolicy           string     `json:"check_out_policy,omitempty"`
}

func BookingToInfra(b *booking.Booking) (query.Booking, error) {
	if b.RoomsCount() > math.MaxInt32 {
		return query.Booking{}, fmt.Errorf("rooms count out of int32 range: %d", b.RoomsCount())
	}

	guests := make([]guestDoc, 0, len(b.Guests()))
	for _, g := range b.Guests() {
		guests = append(guests, guestDoc(g))
	}
	guestsJSON, err := json.Marshal(guests)
	if err != nil {
		return query.Booking{}, err
	}
	leadJSON, err := json.Marshal(guestDoc(b.LeadGuest()))
	if err != nil {
		return query.Booking{}, err
	}
	occupancyJSON, err := json.Marshal(occupancyDoc(b.Occupancy()))
	if err != nil {
		return query.Booking{}, err
	}
	agesJSON, err := marshalSlice(b.ChildrenAges())
	if err != nil {
		return query.Booking{}, err
	}
	nextJSON, err := NextActionsToInfra(b.NextActions())
	if err != nil {
		return query.Booking{}, err
	}
	priceJSON, err := marshalPrice(b.PriceSnapshot())
	if err != nil {
		return query.Booking{}, err
	}
	policyJSON, err := marshalPolicy(b.PolicySnapshot())
	if err != nil {
		return query.Booking{}, err
	}

	var supplierCode pgtype.Text
	if code := b.SupplierCode(); code != nil {
		supplierCode = pgconv.StringToPgtype(code.String())
	}

	var payload []byte
	if len(b.OfferPayload()) > 0 {
		payload = b.OfferPayload()
	}

	return query.Booking{
		ID:              pgconv.UUIDToPgtype(b.ID()),
		UserID:          pgconv.UUIDToPgtype(b.UserID()),
		HotelID:         b.HotelID(),
		RoomTypeID:      b.RoomTypeID(),
		CheckIn:         pgconv.DateToPgtype(b.Stay().CheckIn()),
		CheckOut:        pgconv.DateToPgtype(b.Stay().CheckOut()),
		Status:          b.Status().String(),
		Source:          b.Source().String(),
		SupplierCode:    supplierCode,
		ConfirmationRef: pgconv.StringPtrToPgtype(b.ConfirmationRef()),
		IdempotencyKey:  pgconv.StringPtrToPgtype(b.IdempotencyKey()),
		RoomsCount:      int32(b.RoomsCount()), // #nosec G115 -- range checked above
		FailureReason:   pgconv.StringPtrToPgtype(b.FailureReason()),
		ExpiresAt:       pgconv.TimeToPgtype(b.ExpiresAt()),
		Guests:          guestsJSON,
		LeadGuest:       leadJSON,
		SpecialRequests: b.SpecialRequests(),
		Occupancy:       occupancyJSON,
		ChildrenAges:    agesJSON,
		OfferID:         b.OfferID(),
		SupplierRateKey: b.SupplierRateKey(),
		OfferPayload:    payload,
		PriceSnapshot:   priceJSON,
		PolicySnapshot:  policyJSON,
		NextActions:     nextJSON,
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
	}, nil
}

func BookingUpdateToInfra(b *booking.Booking) (query.UpdateBookingParams, error) {
	nextJSON, err := NextActionsToInfra(b.NextActions())
	if err != nil {
		return query.UpdateBookingParams{}, err
	}
	return query.UpdateBookingParams{
		ID:              pgconv.UUIDToPgtype(b.ID()),
		Status:          b.Status().String(),
		ConfirmationRef: pgconv.StringPtrToPgtype(b.ConfirmationRef()),
		FailureReason:   pgconv.StringPtrToPgtype(b.FailureReason()),
		NextActions:     nextJSON,
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
	}, nil
}

func NextActionsToInfra(actions []string) ([]byte, error) {
	return marshalSlice(actions)
}

func BookingFromInfra(row query.Booking) (*booking.Booking, error) {
	r, err := stay.NewRange(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
	if err != nil {
		return nil, fmt.Errorf("booking %s has an invalid stay: %w", pgconv.UUIDFromPgtype(row.ID), err)
	}

	var guests []guestDoc
	if err := unmarshalOptional(row.Guests, &guests); err != nil {
		return nil, err
	}
	var lead guestDoc
	if err := unmarshalOptional(row.LeadGuest, &lead); err != nil {
		return nil, err
	}
	var occupancy occupancyDoc
	if err := unmarshalOptional(row.Occupancy, &occupancy); err != nil {
		return nil, err
	}
	var ages []int
	if err := unmarshalOptional(row.ChildrenAges, &ages); err != nil {
		return nil, err
	}
	var next []string
	if err := unmarshalOptional(row.NextActions, &next); err != nil {
		return nil, err
	}
	price, err := unmarshalPrice(row.PriceSnapshot)
	if err != nil {
		return nil, err
	}
	policy, err := unmarshalPolicy(row.PolicySnapshot)
	if err != nil {
		return nil, err
	}

	domainGuests := make([]booking.Guest, 0, len(guests))
	for _, g := range guests {
		domainGuests = append(domainGuests, booking.Guest(g))
	}

	var code *booking.SupplierCode
	if row.SupplierCode.Valid {
		c := booking.SupplierCode(row.SupplierCode.String)
		code = &c
	}

	var payload json.RawMessage
	if len(row.OfferPayload) > 0 {
		payload = json.RawMessage(row.OfferPayload)
	}

	return booking.Reconstruct(booking.Attributes{
		ID:              pgconv.UUIDFromPgtype(row.ID),
		UserID:          pgconv.UUIDFromPgtype(row.UserID),
		HotelID:         row.HotelID,
		RoomTypeID:      row.RoomTypeID,
		Stay:            r,
		Status:          booking.Status(row.Status),
		Source:          booking.Source(row.Source),
		SupplierCode:    code,
		ConfirmationRef: pgconv.StringPtrFromPgtype(row.ConfirmationRef),
		IdempotencyKey:  pgconv.StringPtrFromPgtype(row.IdempotencyKey),
		RoomsCount:      int(row.RoomsCount),
		FailureReason:   pgconv.StringPtrFromPgtype(row.FailureReason),
		ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
		Guests:          domainGuests,
		LeadGuest:       booking.Guest(lead),
		SpecialRequests: row.SpecialRequests,
		Occupancy:       booking.Occupancy(occupancy),
		ChildrenAges:    ages,
		OfferID:         row.OfferID,
		SupplierRateKey: row.SupplierRateKey,
		OfferPayload:    payload,
		PriceSnapshot:   price,
		PolicySnapshot:  policy,
		NextActions:     next,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func marshalSlice[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

func unmarshalOptional(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode jsonb column: %w", err)
	}
	return nil
}

func moneyToDoc(m *booking.Money) *moneyDoc {
	if m == nil {
		return nil
	}
	d := moneyDoc(*m)
	return &d
}

func moneyFromDoc(d *moneyDoc) *booking.Money {
	if d == nil {
		return nil
	}
	m := booking.Money(*d)
	return &m
}

func marshalPrice(p *booking.PriceSnapshot) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(priceDoc{
		Total:    moneyToDoc(p.Total),
		Base:     moneyToDoc(p.Base),
		Taxes:    moneyToDoc(p.Taxes),
		Fees:     moneyToDoc(p.Fees),
		PerNight: moneyToDoc(p.PerNight),
		Nights:   p.Nights,
	})
}

func unmarshalPrice(data []byte) (*booking.PriceSnapshot, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var d priceDoc
	if err := unmarshalOptional(data, &d); err != nil {
		return nil, err
	}
	return &booking.PriceSnapshot{
		Total:    moneyFromDoc(d.Total),
		Base:     moneyFromDoc(d.Base),
		Taxes:    moneyFromDoc(d.Taxes),
		Fees:     moneyFromDoc(d.Fees),
		PerNight: moneyFromDoc(d.PerNight),
		Nights:   d.Nights,
	}, nil
}

func marshalPolicy(p *booking.PolicySnapshot) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(policyDoc(*p))
}

func unmarshalPolicy(data []byte) (*booking.PolicySnapshot, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var d policyDoc
	if err := unmarshalOptional(data, &d); err != nil {
		return nil, err
	}
	p := booking.PolicySnapshot(d)
	return &p, nil
}
