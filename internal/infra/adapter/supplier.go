package adapter

import (
	"context"
	"encoding/json"
	"log/slog"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

const supplierReferencePrefix = "SUP-"

// StubSupplierAdapter stands in for a supplier integration. It accepts every
// booking unless the offer payload carries a force flag:
//
//	{"forceSoldOut": true}      -> SOLD_OUT
//	{"forcePriceChange": true}  -> PRICE_CHANGED
type StubSupplierAdapter struct {
	code booking.SupplierCode
}

func NewStubSupplierAdapter(code booking.SupplierCode) *StubSupplierAdapter {
	return &StubSupplierAdapter{code: code}
}

func NewHotelbedsAdapter() *StubSupplierAdapter {
	return NewStubSupplierAdapter(booking.SupplierHotelbeds)
}

func NewTravellandaAdapter() *StubSupplierAdapter {
	return NewStubSupplierAdapter(booking.SupplierTravellanda)
}

func (a *StubSupplierAdapter) Code() booking.SupplierCode {
	return a.code
}

type stubFlags struct {
	ForceSoldOut     bool `json:"forceSoldOut"`
	ForcePriceChange bool `json:"forcePriceChange"`
}

func (a *StubSupplierAdapter) Recheck(_ context.Context, b *booking.Booking) (shared.RecheckResult, error) {
	var flags stubFlags
	if len(b.OfferPayload()) > 0 {
		// Unparseable payloads carry no flags.
		_ = json.Unmarshal(b.OfferPayload(), &flags)
	}

	switch {
	case flags.ForceSoldOut:
		return shared.RecheckResult{Status: shared.RecheckSoldOut, Message: a.code.String() + " reports the rate as sold out"}, nil
	case flags.ForcePriceChange:
		return shared.RecheckResult{Status: shared.RecheckPriceChanged, Message: a.code.String() + " returned a new price"}, nil
	default:
		return shared.RecheckResult{Status: shared.RecheckOK}, nil
	}
}

func (a *StubSupplierAdapter) CreateBooking(_ context.Context, b *booking.Booking) (string, error) {
	ref := supplierReferencePrefix + uuid.NewString()
	slog.Info("supplier booking created", "supplier", a.code.String(), "booking_id", b.ID(), "confirmation_ref", ref)
	return ref, nil
}

func (a *StubSupplierAdapter) CancelBooking(_ context.Context, b *booking.Booking) error {
	slog.Info("supplier booking cancelled", "supplier", a.code.String(), "booking_id", b.ID())
	return nil
}
