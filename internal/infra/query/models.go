package query

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Booking struct {
	ID              pgtype.UUID
	UserID          pgtype.UUID
	HotelID         string
	RoomTypeID      string
	CheckIn         pgtype.Date
	CheckOut        pgtype.Date
	Status          string
	Source          string
	SupplierCode    pgtype.Text
	ConfirmationRef pgtype.Text
	IdempotencyKey  pgtype.Text
	RoomsCount      int32
	FailureReason   pgtype.Text
	ExpiresAt       pgtype.Timestamptz
	Guests          []byte
	LeadGuest       []byte
	SpecialRequests string
	Occupancy       []byte
	ChildrenAges    []byte
	OfferID         string
	SupplierRateKey string
	OfferPayload    []byte
	PriceSnapshot   []byte
	PolicySnapshot  []byte
	NextActions     []byte
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

type InventoryAllotment struct {
	HotelID    string
	RoomTypeID string
	StayDate   pgtype.Date
	Quantity   int32
	StopSell   bool
	UpdatedAt  pgtype.Timestamptz
}

type InventoryReservation struct {
	ID         pgtype.UUID
	BookingID  pgtype.UUID
	HotelID    string
	RoomTypeID string
	CheckIn    pgtype.Date
	CheckOut   pgtype.Date
	RoomsCount int32
	Status     string
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}
