package memstore

import (
	"context"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// memTx writes straight into the store while holding the write lock and
// records an undo entry per write.
type memTx struct {
	store    *Store
	undo     []func()
	afterEnd []func()
}

func (t *memTx) Bookings() shared.BookingRepository    { return &bookingRepo{tx: t} }
func (t *memTx) Inventory() shared.InventoryRepository { return &inventoryRepo{tx: t} }

func (t *memTx) AfterEnd(fn func()) {
	t.afterEnd = append(t.afterEnd, fn)
}

func (t *memTx) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

func (t *memTx) runAfterEnd() {
	for i := len(t.afterEnd) - 1; i >= 0; i-- {
		t.afterEnd[i]()
	}
	t.afterEnd = nil
}

type memReadTx struct {
	store *Store
}

func (r *memReadTx) Bookings() shared.BookingReader    { return &bookingReader{store: r.store} }
func (r *memReadTx) Inventory() shared.InventoryReader { return &inventoryReader{store: r.store} }

type bookingReader struct {
	store *Store
}

func (r *bookingReader) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.store.findBooking(id)
}

func (r *bookingReader) FindByUserAndIdempotencyKey(_ context.Context, userID uuid.UUID, key string) (*booking.Booking, error) {
	return r.store.findBookingByKey(userID, key)
}

type bookingRepo struct {
	tx *memTx
}

func (r *bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.tx.store.findBooking(id)
}

// FindByIDForUpdate is a plain read under the store write lock.
func (r *bookingRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.tx.store.findBooking(id)
}

func (r *bookingRepo) FindByUserAndIdempotencyKey(_ context.Context, userID uuid.UUID, key string) (*booking.Booking, error) {
	return r.tx.store.findBookingByKey(userID, key)
}

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	s := r.tx.store
	if _, exists := s.bookings[b.ID()]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "booking id already exists")
	}
	var ik *idempotencyKey
	if key := b.IdempotencyKey(); key != nil {
		k := idempotencyKey{userID: b.UserID(), key: *key}
		if _, taken := s.idempotency[k]; taken {
			return infra.NewRepoErr(infra.KindDuplicateKey, "idempotency key already used by this user")
		}
		ik = &k
	}

	s.bookings[b.ID()] = b.Clone()
	if ik != nil {
		s.idempotency[*ik] = b.ID()
	}
	id := b.ID()
	r.tx.undo = append(r.tx.undo, func() {
		delete(s.bookings, id)
		if ik != nil {
			delete(s.idempotency, *ik)
		}
	})
	return nil
}

func (r *bookingRepo) Save(_ context.Context, b *booking.Booking) error {
	s := r.tx.store
	prev, ok := s.bookings[b.ID()]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	s.bookings[b.ID()] = b.Clone()
	id := b.ID()
	r.tx.undo = append(r.tx.undo, func() { s.bookings[id] = prev })
	return nil
}

type inventoryReader struct {
	store *Store
}

func (r *inventoryReader) FindAllotments(_ context.Context, key inventory.RoomKey, rng stay.Range) ([]inventory.Allotment, error) {
	return r.store.findAllotments(key, rng), nil
}

func (r *inventoryReader) FindActiveReservations(_ context.Context, key inventory.RoomKey, rng stay.Range) ([]*inventory.Reservation, error) {
	return r.store.findActiveReservations(key, rng), nil
}

func (r *inventoryReader) FindReservationsByBooking(_ context.Context, bookingID uuid.UUID) ([]*inventory.Reservation, error) {
	return r.store.findReservationsByBooking(bookingID), nil
}

type inventoryRepo struct {
	tx *memTx
}

func (r *inventoryRepo) FindAllotments(_ context.Context, key inventory.RoomKey, rng stay.Range) ([]inventory.Allotment, error) {
	return r.tx.store.findAllotments(key, rng), nil
}

// LockAllotments is a plain read: the write lock already excludes every other writer.
func (r *inventoryRepo) LockAllotments(_ context.Context, key inventory.RoomKey, rng stay.Range) ([]inventory.Allotment, error) {
	return r.tx.store.findAllotments(key, rng), nil
}

func (r *inventoryRepo) FindActiveReservations(_ context.Context, key inventory.RoomKey, rng stay.Range) ([]*inventory.Reservation, error) {
	return r.tx.store.findActiveReservations(key, rng), nil
}

func (r *inventoryRepo) FindReservationsByBooking(_ context.Context, bookingID uuid.UUID) ([]*inventory.Reservation, error) {
	return r.tx.store.findReservationsByBooking(bookingID), nil
}

func (r *inventoryRepo) InsertReservation(_ context.Context, res *inventory.Reservation) error {
	s := r.tx.store
	if _, exists := s.reservations[res.ID()]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "reservation id already exists")
	}
	s.reservations[res.ID()] = cloneReservation(res)
	id := res.ID()
	r.tx.undo = append(r.tx.undo, func() { delete(s.reservations, id) })
	return nil
}

func (r *inventoryRepo) UpdateReservationStatus(_ context.Context, res *inventory.Reservation) error {
	s := r.tx.store
	prev, ok := s.reservations[res.ID()]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	s.reservations[res.ID()] = cloneReservation(res)
	id := res.ID()
	r.tx.undo = append(r.tx.undo, func() { s.reservations[id] = prev })
	return nil
}

func (r *inventoryRepo) UpsertAllotments(_ context.Context, allotments []inventory.Allotment) error {
	s := r.tx.store
	for _, a := range allotments {
		k := allotmentKey{key: a.Key, date: stay.Day(a.Date)}
		prev, existed := s.allotments[k]
		a.Date = k.date
		s.allotments[k] = a
		r.tx.undo = append(r.tx.undo, func() {
			if existed {
				s.allotments[k] = prev
			} else {
				delete(s.allotments, k)
			}
		})
	}
	return nil
}
