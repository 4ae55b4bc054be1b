package adapter

import (
	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/shared"
)

var ErrSupplierNotRegistered = errs.New("supplier adapter not registered")

// Registry routes a booking to the adapter that fulfils it. It is built once
// at startup and read-only afterwards.
type Registry struct {
	owner     shared.OwnerInventoryAdapter
	suppliers map[booking.SupplierCode]shared.SupplierBookingAdapter
}

func NewRegistry(owner shared.OwnerInventoryAdapter, suppliers ...shared.SupplierBookingAdapter) *Registry {
	r := &Registry{
		owner:     owner,
		suppliers: make(map[booking.SupplierCode]shared.SupplierBookingAdapter, len(suppliers)),
	}
	for _, s := range suppliers {
		r.suppliers[s.Code()] = s
	}
	return r
}

func (r *Registry) Owner() shared.OwnerInventoryAdapter {
	return r.owner
}

// Supplier returns a Conflict for a code with no registered adapter.
func (r *Registry) Supplier(code *booking.SupplierCode) (shared.SupplierBookingAdapter, error) {
	if code == nil {
		return nil, errs.Kind(errs.New("Supplier code is required for supplier bookings"), ErrSupplierNotRegistered, errs.ErrConflict)
	}
	s, ok := r.suppliers[*code]
	if !ok {
		return nil, errs.Kind(errs.Newf("No adapter registered for supplier %s", *code), ErrSupplierNotRegistered, errs.ErrConflict)
	}
	return s, nil
}
