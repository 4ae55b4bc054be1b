// Package memstore is an in-process implementation of the booking and
// inventory store. Write transactions are serialized by a store-wide mutex and
// rolled back from an undo log; reads take a shared lock and see committed
// state only.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type allotmentKey struct {
	key  inventory.RoomKey
	date time.Time
}

type idempotencyKey struct {
	userID uuid.UUID
	key    string
}

type Store struct {
	mu sync.RWMutex

	bookings     map[uuid.UUID]*booking.Booking
	idempotency  map[idempotencyKey]uuid.UUID
	allotments   map[allotmentKey]inventory.Allotment
	reservations map[uuid.UUID]*inventory.Reservation
}

func New() *Store {
	return &Store{
		bookings:     make(map[uuid.UUID]*booking.Booking),
		idempotency:  make(map[idempotencyKey]uuid.UUID),
		allotments:   make(map[allotmentKey]inventory.Allotment),
		reservations: make(map[uuid.UUID]*inventory.Reservation),
	}
}

type txKey struct{}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if outer, ok := ctx.Value(txKey{}).(*memTx); ok && outer.store == s {
		return fn(ctx, outer)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &memTx{store: s}
	defer tx.runAfterEnd()
	return s.runLocked(context.WithValue(ctx, txKey{}, tx), tx, fn)
}

func (s *Store) runLocked(ctx context.Context, tx *memTx, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	committed := false
	defer func() {
		if !committed {
			tx.rollback()
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	committed = true
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.ReadTx) error) error {
	if outer, ok := ctx.Value(txKey{}).(*memTx); ok && outer.store == s {
		return fn(ctx, &memReadTx{store: s})
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(ctx, &memReadTx{store: s})
}

// The helpers below assume the caller holds s.mu.

func (s *Store) findBooking(id uuid.UUID) (*booking.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return b.Clone(), nil
}

func (s *Store) findBookingByKey(userID uuid.UUID, key string) (*booking.Booking, error) {
	id, ok := s.idempotency[idempotencyKey{userID: userID, key: key}]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return s.findBooking(id)
}

func (s *Store) findAllotments(key inventory.RoomKey, r stay.Range) []inventory.Allotment {
	out := make([]inventory.Allotment, 0, r.NightCount())
	for _, night := range r.Nights() {
		if a, ok := s.allotments[allotmentKey{key: key, date: night}]; ok {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) findActiveReservations(key inventory.RoomKey, r stay.Range) []*inventory.Reservation {
	out := []*inventory.Reservation{}
	for _, res := range s.reservations {
		if res.IsActive() && res.Key() == key && res.Stay().Overlaps(r) {
			out = append(out, cloneReservation(res))
		}
	}
	sortReservations(out)
	return out
}

func (s *Store) findReservationsByBooking(bookingID uuid.UUID) []*inventory.Reservation {
	out := []*inventory.Reservation{}
	for _, res := range s.reservations {
		if res.BookingID() == bookingID {
			out = append(out, cloneReservation(res))
		}
	}
	sortReservations(out)
	return out
}

func sortReservations(list []*inventory.Reservation) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt().Equal(list[j].CreatedAt()) {
			return list[i].ID().String() < list[j].ID().String()
		}
		return list[i].CreatedAt().Before(list[j].CreatedAt())
	})
}

func cloneReservation(r *inventory.Reservation) *inventory.Reservation {
	return inventory.ReconstructReservation(
		r.ID(), r.BookingID(), r.Key(), r.Stay(), r.RoomsCount(), r.Status(), r.CreatedAt(), r.UpdatedAt(),
	)
}
