package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/adapter"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBookingOperationFailed = errs.New("booking operation failed")

type BookingCommands interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, in booking.Intent) (*booking.Booking, error)
	ConfirmBooking(ctx context.Context, userID, bookingID uuid.UUID, idempotencyKey string) (*booking.Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) (*booking.Booking, error)
}

type bookingOrchestratorImpl struct {
	uow       shared.UnitOfWork
	registry  *adapter.Registry
	publisher shared.EventPublisher
	clock     clock.Clock
	draftTTL  time.Duration
}

func NewBookingOrchestrator(
	uow shared.UnitOfWork,
	registry *adapter.Registry,
	publisher shared.EventPublisher,
	clock clock.Clock,
	draftTTL time.Duration,
) BookingCommands {
	return &bookingOrchestratorImpl{
		uow:       uow,
		registry:  registry,
		publisher: publisher,
		clock:     clock,
		draftTTL:  draftTTL,
	}
}

func (o *bookingOrchestratorImpl) CreateBooking(ctx context.Context, userID uuid.UUID, in booking.Intent) (*booking.Booking, error) {
	now := o.clock.Now()
	if _, err := in.ValidateDates(now); err != nil {
		return nil, err
	}
	if err := in.ValidateGuests(); err != nil {
		return nil, err
	}

	key := strings.TrimSpace(in.IdempotencyKey)
	if key != "" {
		existing, err := o.findByIdempotencyKey(ctx, userID, key)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			slog.Info("booking replayed by idempotency key", "booking_id", existing.ID(), "user_id", userID)
			return existing, nil
		}
	}

	draft, err := booking.NewDraft(userID, in, now, o.draftTTL)
	if err != nil {
		return nil, err
	}

	err = o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, draft)
	})
	if err != nil {
		if key != "" && infra.IsKind(err, infra.KindDuplicateKey) {
			// Lost a concurrent insert with the same key; the winner's row is the answer.
			existing, findErr := o.findByIdempotencyKey(ctx, userID, key)
			if findErr == nil && existing != nil {
				return existing, nil
			}
		}
		return nil, errs.Mark(err, ErrBookingOperationFailed)
	}

	slog.Info("booking draft created",
		"booking_id", draft.ID(),
		"user_id", userID,
		"source", draft.Source().String(),
		"stay", draft.Stay().String())
	return draft, nil
}

// ConfirmBooking drives the booking forward from the stored status. Each step
// re-reads the row under lock, so a concurrent caller that already advanced
// the booking is followed instead of overwritten.
func (o *bookingOrchestratorImpl) ConfirmBooking(ctx context.Context, userID, bookingID uuid.UUID, idempotencyKey string) (*booking.Booking, error) {
	b, err := o.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := b.EnsureOwnedBy(userID); err != nil {
		return nil, err
	}

	log := slog.With("booking_id", b.ID(), "user_id", userID)
	if idempotencyKey != "" {
		log = log.With("idempotency_key", idempotencyKey)
	}

	// applied reports whether this call wrote the step it attempted.
	var applied bool
	for {
		switch b.Status() {
		case booking.StatusConfirmed:
			if applied {
				log.Info("booking confirmed", "source", b.Source().String())
				o.publish(ctx, shared.EventBookingConfirmed, b)
			}
			return b, nil

		case booking.StatusDraft:
			now := o.clock.Now()
			if b.IsExpired(now) {
				err := errs.Newf("Booking draft %s expired at %s", b.ID(), b.ExpiresAt().UTC().Format(time.RFC3339))
				return nil, errs.Kind(err, booking.ErrBookingExpired, errs.ErrConflict)
			}
			b, applied, err = o.step(ctx, b.ID(), booking.StatusDraft, func(_ context.Context, next *booking.Booking) error {
				return next.TransitionTo(booking.StatusRechecking, now)
			})

		case booking.StatusRechecking:
			var result shared.RecheckResult
			result, err = o.recheck(ctx, b)
			if err != nil {
				return nil, err
			}
			if result.IsFailure() {
				reason := booking.RecheckFailureReason(result.Status == shared.RecheckSoldOut, b.HasPriceSnapshot(), result.Message)
				b, applied, err = o.step(ctx, b.ID(), booking.StatusRechecking, func(_ context.Context, next *booking.Booking) error {
					return next.Fail(reason, o.clock.Now())
				})
				if err == nil && applied {
					log.Info("booking failed on recheck", "recheck_status", string(result.Status))
					o.publish(ctx, shared.EventBookingFailed, b)
					return b, nil
				}
				break
			}
			b, applied, err = o.step(ctx, b.ID(), booking.StatusRechecking, func(_ context.Context, next *booking.Booking) error {
				return next.TransitionTo(booking.StatusPendingConfirmation, o.clock.Now())
			})

		case booking.StatusPendingConfirmation:
			if b.Source() == booking.SourceSupplier {
				b, applied, err = o.confirmWithSupplier(ctx, b)
			} else {
				b, applied, err = o.confirmWithOwner(ctx, b)
			}

		default:
			return nil, booking.ValidateTransition(b.Status(), booking.StatusRechecking)
		}
		if err != nil {
			return nil, err
		}
	}
}

func (o *bookingOrchestratorImpl) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) (*booking.Booking, error) {
	b, err := o.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := b.EnsureOwnedBy(userID); err != nil {
		return nil, err
	}
	if b.Status() == booking.StatusCancelled {
		return b, nil
	}
	if b.Status() != booking.StatusConfirmed {
		return nil, notCancellable(b.Status())
	}

	var supplier shared.SupplierBookingAdapter
	if b.Source() == booking.SourceSupplier {
		if supplier, err = o.registry.Supplier(b.SupplierCode()); err != nil {
			return nil, err
		}
	}

	b, applied, err := o.step(ctx, b.ID(), booking.StatusConfirmed, func(ctx context.Context, next *booking.Booking) error {
		if supplier != nil {
			if err := supplier.CancelBooking(ctx, next); err != nil {
				return err
			}
		} else if err := o.registry.Owner().Release(ctx, next); err != nil {
			return err
		}
		return next.TransitionTo(booking.StatusCancelled, o.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	if !applied {
		if b.Status() == booking.StatusCancelled {
			return b, nil
		}
		return nil, notCancellable(b.Status())
	}

	slog.Info("booking cancelled", "booking_id", b.ID(), "user_id", userID, "source", b.Source().String())
	o.publish(ctx, shared.EventBookingCancelled, b)
	return b, nil
}

// confirmWithOwner reserves inventory and writes CONFIRMED in one transaction,
// so a failed reserve leaves the booking in PENDING_CONFIRMATION.
func (o *bookingOrchestratorImpl) confirmWithOwner(ctx context.Context, b *booking.Booking) (*booking.Booking, bool, error) {
	return o.step(ctx, b.ID(), booking.StatusPendingConfirmation, func(ctx context.Context, next *booking.Booking) error {
		now := o.clock.Now()
		if !next.HasConfirmationRef() {
			ref, err := o.registry.Owner().ReserveAndConfirm(ctx, next)
			if err != nil {
				return err
			}
			next.SetConfirmationRef(ref, now)
		}
		return next.TransitionTo(booking.StatusConfirmed, now)
	})
}

// confirmWithSupplier persists the supplier reference before CONFIRMED so a
// retry after a crash does not book twice. The supplier call runs under the
// booking row lock.
func (o *bookingOrchestratorImpl) confirmWithSupplier(ctx context.Context, b *booking.Booking) (*booking.Booking, bool, error) {
	supplier, err := o.registry.Supplier(b.SupplierCode())
	if err != nil {
		return nil, false, err
	}

	if !b.HasConfirmationRef() {
		var applied bool
		b, applied, err = o.step(ctx, b.ID(), booking.StatusPendingConfirmation, func(ctx context.Context, next *booking.Booking) error {
			if next.HasConfirmationRef() {
				return nil
			}
			ref, err := supplier.CreateBooking(ctx, next)
			if err != nil {
				return err
			}
			next.SetConfirmationRef(ref, o.clock.Now())
			return nil
		})
		if err != nil || !applied {
			return b, false, err
		}
	}

	return o.step(ctx, b.ID(), booking.StatusPendingConfirmation, func(_ context.Context, next *booking.Booking) error {
		return next.TransitionTo(booking.StatusConfirmed, o.clock.Now())
	})
}

func (o *bookingOrchestratorImpl) recheck(ctx context.Context, b *booking.Booking) (shared.RecheckResult, error) {
	if b.Source() == booking.SourceSupplier {
		supplier, err := o.registry.Supplier(b.SupplierCode())
		if err != nil {
			return shared.RecheckResult{}, err
		}
		return supplier.Recheck(ctx, b)
	}
	return o.registry.Owner().Recheck(ctx, b)
}

// step locks the stored row and, when it is still in status from, applies
// mutate to it and saves it in the same transaction. Otherwise the stored row
// is returned unchanged with applied false.
func (o *bookingOrchestratorImpl) step(
	ctx context.Context,
	id uuid.UUID,
	from booking.Status,
	mutate func(ctx context.Context, next *booking.Booking) error,
) (*booking.Booking, bool, error) {
	var (
		saved   *booking.Booking
		applied bool
	)
	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		applied = false
		current, err := tx.Bookings().FindByIDForUpdate(ctx, id)
		if err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return booking.NotFound(id)
			case infra.IsKind(err, infra.KindLockTimeout):
				return booking.Busy(id, err)
			}
			return errs.Mark(err, ErrBookingOperationFailed)
		}
		saved = current
		if current.Status() != from {
			return nil
		}
		if err := mutate(ctx, current); err != nil {
			return err
		}
		if err := tx.Bookings().Save(ctx, current); err != nil {
			return errs.Mark(err, ErrBookingOperationFailed)
		}
		applied = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return saved, applied, nil
}

func (o *bookingOrchestratorImpl) load(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var b *booking.Booking
	err := o.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		found, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return err
		}
		b = found
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.NotFound(id)
		}
		return nil, errs.Mark(err, ErrBookingOperationFailed)
	}
	return b, nil
}

func (o *bookingOrchestratorImpl) findByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*booking.Booking, error) {
	var b *booking.Booking
	err := o.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		found, err := tx.Bookings().FindByUserAndIdempotencyKey(ctx, userID, key)
		if err != nil {
			return err
		}
		b = found
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrBookingOperationFailed)
	}
	return b, nil
}

func (o *bookingOrchestratorImpl) publish(ctx context.Context, eventType string, b *booking.Booking) {
	event := shared.NewBookingEvent(eventType, b, o.clock.Now())
	if err := o.publisher.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish booking event",
			"event", eventType,
			"booking_id", b.ID(),
			"error", err.Error())
	}
}

func notCancellable(status booking.Status) error {
	err := errs.Newf("Only CONFIRMED bookings can be cancelled. Current status: %s", status)
	return errs.Kind(err, booking.ErrNotCancellable, errs.ErrConflict)
}
