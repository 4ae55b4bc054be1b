package booking

import "hotel-booking-core/internal/pkg/errs"

var ErrInvalidTransition = errs.New("invalid status transition")

var transitions = map[Status][]Status{
	StatusDraft:               {StatusRechecking},
	StatusRechecking:          {StatusPendingConfirmation, StatusFailed},
	StatusPendingConfirmation: {StatusConfirmed, StatusFailed},
	StatusConfirmed:           {StatusCancelled},
}

// CanTransition is a pure table lookup. A self-transition is always allowed.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidateTransition(from, to Status) error {
	if CanTransition(from, to) {
		return nil
	}
	err := errs.Newf("Invalid status transition from %s to %s", from, to)
	return errs.Kind(err, ErrInvalidTransition, errs.ErrConflict)
}
