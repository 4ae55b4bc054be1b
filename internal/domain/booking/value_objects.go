package booking

import (
	"math"
	"strings"
	"time"

	"hotel-booking-core/internal/pkg/ptr"
)

type Guest struct {
	Name  string
	Email string
	Phone string
}

func (g Guest) IsComplete() bool {
	return strings.TrimSpace(g.Name) != "" &&
		strings.TrimSpace(g.Email) != "" &&
		strings.TrimSpace(g.Phone) != ""
}

func (g Guest) IsZero() bool {
	return g == Guest{}
}

// Occupancy fields are optional; nil means the caller did not say.
type Occupancy struct {
	Adults   *int
	Children *int
}

func (o Occupancy) ChildrenCount() int {
	return ptr.Or(o.Children, 0)
}

// Money is held in minor units (cents) to avoid float drift.
type Money struct {
	AmountMinor int64
	Currency    string
}

func MoneyFromDecimal(amount float64, currency string) Money {
	return Money{AmountMinor: int64(math.Round(amount * 100)), Currency: strings.ToUpper(currency)}
}

func (m Money) Decimal() float64 {
	return float64(m.AmountMinor) / 100.0
}

type PriceSnapshot struct {
	Total    *Money
	Base     *Money
	Taxes    *Money
	Fees     *Money
	PerNight *Money
	Nights   *int
}

type PolicySnapshot struct {
	CancellationSummary      string
	FreeCancellationDeadline *time.Time
	CancellationAllowed      *bool
	RefundSummary            string
	CheckInPolicy            string
	CheckOutPolicy           string
}
