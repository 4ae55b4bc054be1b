package booking

import (
	"encoding/json"
	"time"

	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrNotOwner        = errs.New("booking belongs to another user")
	ErrBookingExpired  = errs.New("booking draft has expired")
	ErrNotCancellable  = errs.New("booking cannot be cancelled")
	ErrBookingBusy     = errs.New("booking is being updated")
)

func NotFound(id uuid.UUID) error {
	return errs.Kind(errs.Newf("Booking not found: %s", id), ErrBookingNotFound, errs.ErrNotFound)
}

func Busy(id uuid.UUID, cause error) error {
	err := errs.Newf("Booking %s is being updated, retry later", id)
	return errs.Kind(errs.WithCause(err, cause), ErrBookingBusy, errs.ErrConflict)
}

type Booking struct {
	id              uuid.UUID
	userID          uuid.UUID
	hotelID         string
	roomTypeID      string
	stay            stay.Range
	status          Status
	source          Source
	supplierCode    *SupplierCode
	confirmationRef *string
	idempotencyKey  *string
	roomsCount      int
	failureReason   *string
	expiresAt       time.Time

	guests          []Guest
	leadGuest       Guest
	specialRequests string
	occupancy       Occupancy
	childrenAges    []int
	offerID         string
	supplierRateKey string
	offerPayload    json.RawMessage
	priceSnapshot   *PriceSnapshot
	policySnapshot  *PolicySnapshot
	nextActions     []string

	createdAt time.Time
	updatedAt time.Time
}

// Attributes carries every persisted field. Used by storage adapters to rebuild
// a Booking without going through intake validation.
type Attributes struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	HotelID         string
	RoomTypeID      string
	Stay            stay.Range
	Status          Status
	Source          Source
	SupplierCode    *SupplierCode
	ConfirmationRef *string
	IdempotencyKey  *string
	RoomsCount      int
	FailureReason   *string
	ExpiresAt       time.Time
	Guests          []Guest
	LeadGuest       Guest
	SpecialRequests string
	Occupancy       Occupancy
	ChildrenAges    []int
	OfferID         string
	SupplierRateKey string
	OfferPayload    json.RawMessage
	PriceSnapshot   *PriceSnapshot
	PolicySnapshot  *PolicySnapshot
	NextActions     []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func Reconstruct(a Attributes) *Booking {
	return &Booking{
		id:              a.ID,
		userID:          a.UserID,
		hotelID:         a.HotelID,
		roomTypeID:      a.RoomTypeID,
		stay:            a.Stay,
		status:          a.Status,
		source:          a.Source,
		supplierCode:    a.SupplierCode,
		confirmationRef: a.ConfirmationRef,
		idempotencyKey:  a.IdempotencyKey,
		roomsCount:      a.RoomsCount,
		failureReason:   a.FailureReason,
		expiresAt:       a.ExpiresAt,
		guests:          a.Guests,
		leadGuest:       a.LeadGuest,
		specialRequests: a.SpecialRequests,
		occupancy:       a.Occupancy,
		childrenAges:    a.ChildrenAges,
		offerID:         a.OfferID,
		supplierRateKey: a.SupplierRateKey,
		offerPayload:    a.OfferPayload,
		priceSnapshot:   a.PriceSnapshot,
		policySnapshot:  a.PolicySnapshot,
		nextActions:     a.NextActions,
		createdAt:       a.CreatedAt,
		updatedAt:       a.UpdatedAt,
	}
}

func (b *Booking) Attributes() Attributes {
	return Attributes{
		ID:              b.id,
		UserID:          b.userID,
		HotelID:         b.hotelID,
		RoomTypeID:      b.roomTypeID,
		Stay:            b.stay,
		Status:          b.status,
		Source:          b.source,
		SupplierCode:    b.supplierCode,
		ConfirmationRef: b.confirmationRef,
		IdempotencyKey:  b.idempotencyKey,
		RoomsCount:      b.roomsCount,
		FailureReason:   b.failureReason,
		ExpiresAt:       b.expiresAt,
		Guests:          b.guests,
		LeadGuest:       b.leadGuest,
		SpecialRequests: b.specialRequests,
		Occupancy:       b.occupancy,
		ChildrenAges:    b.childrenAges,
		OfferID:         b.offerID,
		SupplierRateKey: b.supplierRateKey,
		OfferPayload:    b.offerPayload,
		PriceSnapshot:   b.priceSnapshot,
		PolicySnapshot:  b.policySnapshot,
		NextActions:     b.nextActions,
		CreatedAt:       b.createdAt,
		UpdatedAt:       b.updatedAt,
	}
}

// Clone returns an independent copy; stores hand out clones so callers cannot
// mutate persisted state without a save.
func (b *Booking) Clone() *Booking {
	a := b.Attributes()
	a.Guests = append([]Guest(nil), a.Guests...)
	a.ChildrenAges = append([]int(nil), a.ChildrenAges...)
	a.NextActions = append([]string(nil), a.NextActions...)
	a.OfferPayload = append(json.RawMessage(nil), a.OfferPayload...)
	return Reconstruct(a)
}

// TransitionTo moves the booking through the state machine.
func (b *Booking) TransitionTo(to Status, now time.Time) error {
	if err := ValidateTransition(b.status, to); err != nil {
		return err
	}
	if b.status == to {
		return nil
	}
	b.status = to
	switch to {
	case StatusConfirmed, StatusFailed, StatusCancelled:
		b.nextActions = nil
	}
	b.updatedAt = now
	return nil
}

// Fail records reason and moves to FAILED.
func (b *Booking) Fail(reason string, now time.Time) error {
	if err := b.TransitionTo(StatusFailed, now); err != nil {
		return err
	}
	b.failureReason = &reason
	return nil
}

func (b *Booking) SetConfirmationRef(ref string, now time.Time) {
	b.confirmationRef = &ref
	b.updatedAt = now
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

// EnsureOwnedBy returns a Conflict when userID is not the booking owner.
func (b *Booking) EnsureOwnedBy(userID uuid.UUID) error {
	if b.IsOwnedBy(userID) {
		return nil
	}
	err := errs.Newf("User does not have permission to access booking %s", b.id)
	return errs.Kind(err, ErrNotOwner, errs.ErrConflict)
}

// IsExpired only applies to drafts; later states are no longer time-boxed.
func (b *Booking) IsExpired(now time.Time) bool {
	return b.status == StatusDraft && !b.expiresAt.IsZero() && now.After(b.expiresAt)
}

func (b *Booking) HasConfirmationRef() bool {
	return b.confirmationRef != nil && *b.confirmationRef != ""
}

func (b *Booking) HasPriceSnapshot() bool {
	return b.priceSnapshot != nil
}

func (b *Booking) RoomKey() inventory.RoomKey {
	return inventory.RoomKey{HotelID: b.hotelID, RoomTypeID: b.roomTypeID}
}

func (b *Booking) ID() uuid.UUID                   { return b.id }
func (b *Booking) UserID() uuid.UUID               { return b.userID }
func (b *Booking) HotelID() string                 { return b.hotelID }
func (b *Booking) RoomTypeID() string              { return b.roomTypeID }
func (b *Booking) Stay() stay.Range                { return b.stay }
func (b *Booking) Status() Status                  { return b.status }
func (b *Booking) Source() Source                  { return b.source }
func (b *Booking) SupplierCode() *SupplierCode     { return b.supplierCode }
func (b *Booking) ConfirmationRef() *string        { return b.confirmationRef }
func (b *Booking) IdempotencyKey() *string         { return b.idempotencyKey }
func (b *Booking) RoomsCount() int                 { return b.roomsCount }
func (b *Booking) FailureReason() *string          { return b.failureReason }
func (b *Booking) ExpiresAt() time.Time            { return b.expiresAt }
func (b *Booking) Guests() []Guest                 { return b.guests }
func (b *Booking) LeadGuest() Guest                { return b.leadGuest }
func (b *Booking) SpecialRequests() string         { return b.specialRequests }
func (b *Booking) Occupancy() Occupancy            { return b.occupancy }
func (b *Booking) ChildrenAges() []int             { return b.childrenAges }
func (b *Booking) OfferID() string                 { return b.offerID }
func (b *Booking) SupplierRateKey() string         { return b.supplierRateKey }
func (b *Booking) OfferPayload() json.RawMessage   { return b.offerPayload }
func (b *Booking) PriceSnapshot() *PriceSnapshot   { return b.priceSnapshot }
func (b *Booking) PolicySnapshot() *PolicySnapshot { return b.policySnapshot }
func (b *Booking) NextActions() []string           { return b.nextActions }
func (b *Booking) CreatedAt() time.Time            { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time            { return b.updatedAt }
