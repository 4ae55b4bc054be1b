package request

import (
	"time"

	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/pkg/ptr"
	"hotel-booking-core/internal/usecase/commands"
)

var ErrInvalidAllotmentRange = errs.New("invalid allotment date range")

type AvailabilityRequest struct {
	HotelID    string `form:"hotelId" binding:"required"`
	RoomTypeID string `form:"roomTypeId" binding:"required"`
	CheckIn    string `form:"checkIn" binding:"required"`
	CheckOut   string `form:"checkOut" binding:"required"`
	Rooms      *int   `form:"rooms" binding:"omitempty,min=1"`
}

func (r AvailabilityRequest) StayRange() (stay.Range, error) {
	checkIn, err := parseOptionalDate(r.CheckIn)
	if err != nil {
		return stay.Range{}, err
	}
	checkOut, err := parseOptionalDate(r.CheckOut)
	if err != nil {
		return stay.Range{}, err
	}
	rg, err := stay.NewRange(checkIn, checkOut)
	if err != nil {
		return stay.Range{}, errs.Validation(err)
	}
	return rg, nil
}

func (r AvailabilityRequest) RoomsOrDefault() int {
	return ptr.Or(r.Rooms, 1)
}

// UpsertAllotmentsRequest sets the same quantity on every night from
// StartDate (inclusive) to EndDate (exclusive).
type UpsertAllotmentsRequest struct {
	HotelID      string `json:"hotelId" binding:"required"`
	RoomTypeID   string `json:"roomTypeId" binding:"required"`
	StartDate    string `json:"startDate" binding:"required"`
	EndDate      string `json:"endDate" binding:"required"`
	AllotmentQty *int   `json:"allotmentQty" binding:"required,min=0"`
	StopSell     bool   `json:"stopSell"`
}

func (r UpsertAllotmentsRequest) ToInputs(today time.Time) ([]commands.AllotmentInput, error) {
	start, err := parseOptionalDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate(r.EndDate)
	if err != nil {
		return nil, err
	}
	if start.Before(stay.Day(today)) {
		return nil, errs.Kind(errs.Newf("startDate (%s) cannot be in the past", r.StartDate), ErrInvalidAllotmentRange, errs.ErrValidation)
	}
	rg, err := stay.NewRange(start, end)
	if err != nil {
		return nil, errs.Kind(errs.New("startDate must be before endDate"), ErrInvalidAllotmentRange, errs.ErrValidation)
	}

	nights := rg.Nights()
	inputs := make([]commands.AllotmentInput, 0, len(nights))
	for _, night := range nights {
		inputs = append(inputs, commands.AllotmentInput{
			HotelID:    r.HotelID,
			RoomTypeID: r.RoomTypeID,
			Date:       night,
			Quantity:   *r.AllotmentQty,
			StopSell:   r.StopSell,
		})
	}
	return inputs, nil
}
