package booking

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/pkg/ptr"

	"github.com/google/uuid"
)

const DefaultDraftTTL = 15 * time.Minute

var (
	ErrInvalidDates  = errs.New("invalid stay dates")
	ErrInvalidGuests = errs.New("invalid guest information")
	ErrInvalidIntent = errs.New("invalid booking request")
)

func invalid(sentinel error, format string, args ...any) error {
	return errs.Kind(errs.Newf(format, args...), sentinel, errs.ErrValidation)
}

// Intent is the caller's booking request before it becomes a DRAFT.
type Intent struct {
	HotelID    string
	RoomTypeID string
	CheckIn    time.Time
	CheckOut   time.Time

	// Legacy single-guest fields, accepted when Guests is empty.
	GuestName  string
	GuestEmail string
	GuestPhone string
	Guests     []Guest

	SpecialRequests string
	OfferPayload    json.RawMessage
	SupplierCode    string
	Occupancy       *Occupancy
	ChildrenAges    []int
	RoomsCount      *int

	OfferID         string
	SupplierRateKey string
	PriceSnapshot   *PriceSnapshot
	PolicySnapshot  *PolicySnapshot
	IdempotencyKey  string
}

// ValidateDates checks presence, that check-in is not before today and that
// check-out is after check-in.
func (in Intent) ValidateDates(today time.Time) (stay.Range, error) {
	if in.CheckIn.IsZero() || in.CheckOut.IsZero() {
		return stay.Range{}, invalid(ErrInvalidDates, "Check-in and check-out dates are required")
	}
	if stay.Day(in.CheckIn).Before(stay.Day(today)) {
		return stay.Range{}, invalid(ErrInvalidDates, "Check-in date must be today or in the future")
	}
	r, err := stay.NewRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return stay.Range{}, invalid(ErrInvalidDates, "Check-out date must be after check-in date")
	}
	return r, nil
}

func (in Intent) legacyGuest() Guest {
	return Guest{
		Name:  strings.TrimSpace(in.GuestName),
		Email: strings.TrimSpace(in.GuestEmail),
		Phone: strings.TrimSpace(in.GuestPhone),
	}
}

// ValidateGuests requires either a complete guests list or all three legacy fields.
func (in Intent) ValidateGuests() error {
	hasLegacy := in.legacyGuest().IsComplete()
	if !hasLegacy && len(in.Guests) == 0 {
		return invalid(ErrInvalidGuests, "Either guests list or guest name/email/phone must be provided")
	}

	for _, g := range in.Guests {
		switch {
		case strings.TrimSpace(g.Name) == "":
			return invalid(ErrInvalidGuests, "All guests must have a name")
		case strings.TrimSpace(g.Email) == "":
			return invalid(ErrInvalidGuests, "All guests must have an email")
		case strings.TrimSpace(g.Phone) == "":
			return invalid(ErrInvalidGuests, "All guests must have a phone")
		}
		if _, err := mail.ParseAddress(g.Email); err != nil {
			return invalid(ErrInvalidGuests, "Guest email must be valid")
		}
	}
	if email := strings.TrimSpace(in.GuestEmail); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return invalid(ErrInvalidGuests, "Guest email must be valid (if provided)")
		}
	}
	return nil
}

// ValidateOptional checks the optional fields only when they are supplied.
func (in Intent) ValidateOptional() error {
	if strings.TrimSpace(in.HotelID) == "" {
		return invalid(ErrInvalidIntent, "Hotel ID is required")
	}
	if strings.TrimSpace(in.RoomTypeID) == "" {
		return invalid(ErrInvalidIntent, "Room type ID is required")
	}

	if in.Occupancy != nil {
		if in.Occupancy.Adults != nil && *in.Occupancy.Adults <= 0 {
			return invalid(ErrInvalidIntent, "Number of adults must be greater than 0")
		}
		if in.Occupancy.Children != nil && *in.Occupancy.Children < 0 {
			return invalid(ErrInvalidIntent, "Number of children cannot be negative")
		}
		if children := in.Occupancy.ChildrenCount(); children > 0 {
			if len(in.ChildrenAges) == 0 {
				return invalid(ErrInvalidIntent, "childrenAges is required when children > 0")
			}
			if len(in.ChildrenAges) != children {
				return invalid(ErrInvalidIntent, "childrenAges size (%d) must match children count (%d)", len(in.ChildrenAges), children)
			}
		}
	}

	if in.RoomsCount != nil && *in.RoomsCount <= 0 {
		return invalid(ErrInvalidIntent, "Number of rooms must be greater than 0")
	}
	return nil
}

// ResolveSupplierCode looks at the explicit field first and then at a
// "supplierCode" entry inside the offer payload. Nil means an owner booking.
func (in Intent) ResolveSupplierCode() (*SupplierCode, error) {
	if raw := strings.TrimSpace(in.SupplierCode); raw != "" {
		code, ok := ParseSupplierCode(raw)
		if !ok {
			return nil, invalid(ErrInvalidIntent, "Unknown supplier code: %s", raw)
		}
		return &code, nil
	}

	if len(in.OfferPayload) == 0 {
		return nil, nil
	}
	var payload struct {
		SupplierCode string `json:"supplierCode"`
	}
	if err := json.Unmarshal(in.OfferPayload, &payload); err != nil {
		// An opaque payload is kept as-is; it just carries no routing hint.
		return nil, nil
	}
	if payload.SupplierCode == "" {
		return nil, nil
	}
	code, ok := ParseSupplierCode(payload.SupplierCode)
	if !ok {
		return nil, invalid(ErrInvalidIntent, "Unknown supplier code in offer payload: %s", payload.SupplierCode)
	}
	return &code, nil
}

func (in Intent) roomsCount() int {
	return ptr.Or(in.RoomsCount, 1)
}

// NewDraft validates the intent and builds a DRAFT booking expiring after ttl.
func NewDraft(userID uuid.UUID, in Intent, now time.Time, ttl time.Duration) (*Booking, error) {
	if userID == uuid.Nil {
		return nil, invalid(ErrInvalidIntent, "User ID is required. User must be authenticated.")
	}
	r, err := in.ValidateDates(now)
	if err != nil {
		return nil, err
	}
	if err := in.ValidateGuests(); err != nil {
		return nil, err
	}
	if err := in.ValidateOptional(); err != nil {
		return nil, err
	}
	code, err := in.ResolveSupplierCode()
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}

	source := SourceOwner
	if code != nil {
		source = SourceSupplier
	}

	guests := make([]Guest, 0, len(in.Guests))
	for _, g := range in.Guests {
		guests = append(guests, Guest{
			Name:  strings.TrimSpace(g.Name),
			Email: strings.TrimSpace(g.Email),
			Phone: strings.TrimSpace(g.Phone),
		})
	}
	lead := in.legacyGuest()
	if len(guests) > 0 {
		lead = guests[0]
	}

	var key *string
	if k := strings.TrimSpace(in.IdempotencyKey); k != "" {
		key = &k
	}

	var occupancy Occupancy
	if in.Occupancy != nil {
		occupancy = *in.Occupancy
	}

	return &Booking{
		id:              uuid.New(),
		userID:          userID,
		hotelID:         strings.TrimSpace(in.HotelID),
		roomTypeID:      strings.TrimSpace(in.RoomTypeID),
		stay:            r,
		status:          StatusDraft,
		source:          source,
		supplierCode:    code,
		idempotencyKey:  key,
		roomsCount:      in.roomsCount(),
		expiresAt:       now.Add(ttl),
		guests:          guests,
		leadGuest:       lead,
		specialRequests: in.SpecialRequests,
		occupancy:       occupancy,
		childrenAges:    in.ChildrenAges,
		offerID:         in.OfferID,
		supplierRateKey: in.SupplierRateKey,
		offerPayload:    in.OfferPayload,
		priceSnapshot:   in.PriceSnapshot,
		policySnapshot:  in.PolicySnapshot,
		nextActions:     []string{NextActionConfirmRequired},
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// RecheckFailureReason builds the stored reason for a failed recheck.
func RecheckFailureReason(soldOut bool, hasPriceSnapshot bool, message string) string {
	if soldOut {
		return "Room is sold out or no longer available: " + message
	}
	if hasPriceSnapshot {
		return "Price has changed from the original offer: " + message
	}
	return fmt.Sprintf("Price has changed: %s", message)
}
