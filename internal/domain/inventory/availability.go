package inventory

import (
	"time"

	"hotel-booking-core/internal/domain/stay"
)

// MinAvailable returns the number of rooms sellable on every night of r.
// A night without an allotment row, or with stop-sell set, has zero
// availability. Reservations outside r or already released are ignored.
func MinAvailable(r stay.Range, allotments []Allotment, reservations []*Reservation) int {
	byDate := make(map[time.Time]Allotment, len(allotments))
	for _, a := range allotments {
		byDate[stay.Day(a.Date)] = a
	}

	minimum := -1
	for _, night := range r.Nights() {
		a, ok := byDate[night]
		if !ok || a.StopSell {
			return 0
		}

		reserved := 0
		for _, res := range reservations {
			reserved += res.Holds(night)
		}

		available := max(0, a.Quantity-reserved)
		if minimum < 0 || available < minimum {
			minimum = available
		}
	}
	return max(0, minimum)
}

func IsBookable(r stay.Range, rooms int, allotments []Allotment, reservations []*Reservation) bool {
	return MinAvailable(r, allotments, reservations) >= rooms
}

// NightAvailability is the per-night breakdown behind MinAvailable.
type NightAvailability struct {
	Date      time.Time
	Quantity  int
	Reserved  int
	Available int
	StopSell  bool
	Missing   bool
}

func Breakdown(r stay.Range, allotments []Allotment, reservations []*Reservation) []NightAvailability {
	byDate := make(map[time.Time]Allotment, len(allotments))
	for _, a := range allotments {
		byDate[stay.Day(a.Date)] = a
	}

	out := make([]NightAvailability, 0, r.NightCount())
	for _, night := range r.Nights() {
		a, ok := byDate[night]
		n := NightAvailability{Date: night, Missing: !ok}
		if ok {
			n.Quantity = a.Quantity
			n.StopSell = a.StopSell
			for _, res := range reservations {
				n.Reserved += res.Holds(night)
			}
			if !a.StopSell {
				n.Available = max(0, a.Quantity-n.Reserved)
			}
		}
		out = append(out, n)
	}
	return out
}
