// Package stay models the night range of a hotel stay.
// Dates are civil dates held as midnight UTC; check-in is inclusive and
// check-out exclusive.
package stay

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrMissingDates     = errors.New("check-in and check-out dates are required")
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
)

// Day truncates t to its civil date in t's own location and returns it as midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

type Range struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewRange(checkIn, checkOut time.Time) (Range, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return Range{}, ErrMissingDates
	}
	in, out := Day(checkIn), Day(checkOut)
	if !in.Before(out) {
		return Range{}, ErrInvalidDateRange
	}
	return Range{checkIn: in, checkOut: out}, nil
}

// MustRange panics on an invalid range. Intended for fixtures.
func MustRange(checkIn, checkOut string) Range {
	in, err := ParseDate(checkIn)
	if err != nil {
		panic(err)
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		panic(err)
	}
	r, err := NewRange(in, out)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Range) CheckIn() time.Time  { return r.checkIn }
func (r Range) CheckOut() time.Time { return r.checkOut }
func (r Range) IsZero() bool        { return r.checkIn.IsZero() }

func (r Range) NightCount() int {
	return int(r.checkOut.Sub(r.checkIn).Hours() / 24)
}

// Nights lists every occupied night in ascending order.
func (r Range) Nights() []time.Time {
	nights := make([]time.Time, 0, r.NightCount())
	for d := r.checkIn; d.Before(r.checkOut); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}
	return nights
}

// Covers reports whether night falls inside [checkIn, checkOut).
func (r Range) Covers(night time.Time) bool {
	n := Day(night)
	return !n.Before(r.checkIn) && n.Before(r.checkOut)
}

func (r Range) Overlaps(other Range) bool {
	return r.checkIn.Before(other.checkOut) && other.checkIn.Before(r.checkOut)
}

func (r Range) String() string {
	return r.checkIn.Format(DateLayout) + "/" + r.checkOut.Format(DateLayout)
}
