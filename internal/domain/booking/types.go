package booking

import "strings"

type Status string

const (
	StatusDraft               Status = "DRAFT"
	StatusRechecking          Status = "RECHECKING"
	StatusPendingConfirmation Status = "PENDING_CONFIRMATION"
	StatusConfirmed           Status = "CONFIRMED"
	StatusFailed              Status = "FAILED"
	StatusCancelled           Status = "CANCELLED"
)

var AllStatuses = []Status{
	StatusDraft,
	StatusRechecking,
	StatusPendingConfirmation,
	StatusConfirmed,
	StatusFailed,
	StatusCancelled,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusRechecking, StatusPendingConfirmation, StatusConfirmed, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusFailed || s == StatusCancelled
}

type Source string

const (
	SourceOwner    Source = "OWNER"
	SourceSupplier Source = "SUPPLIER"
)

func (s Source) String() string {
	return string(s)
}

type SupplierCode string

const (
	SupplierHotelbeds   SupplierCode = "HOTELBEDS"
	SupplierTravellanda SupplierCode = "TRAVELLANDA"
)

func (c SupplierCode) String() string {
	return string(c)
}

// ParseSupplierCode is case-insensitive. Unknown codes are rejected.
func ParseSupplierCode(s string) (SupplierCode, bool) {
	switch code := SupplierCode(strings.ToUpper(strings.TrimSpace(s))); code {
	case SupplierHotelbeds, SupplierTravellanda:
		return code, true
	default:
		return "", false
	}
}

const NextActionConfirmRequired = "CONFIRM_REQUIRED"
