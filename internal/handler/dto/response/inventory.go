package response

import (
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type NightAvailabilityResponse struct {
	Date      string `json:"date"`
	Quantity  int    `json:"allotmentQty"`
	Reserved  int    `json:"reservedQty"`
	Available int    `json:"availableQty"`
	StopSell  bool   `json:"stopSell"`
	Missing   bool   `json:"missing"`
}

type AvailabilityResponse struct {
	HotelID        string                      `json:"hotelId"`
	RoomTypeID     string                      `json:"roomTypeId"`
	CheckIn        string                      `json:"checkIn"`
	CheckOut       string                      `json:"checkOut"`
	RoomsAvailable int                         `json:"roomsAvailable"`
	Bookable       bool                        `json:"bookable"`
	Nights         []NightAvailabilityResponse `json:"nights"`
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	var res AvailabilityResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	if res.Nights == nil {
		res.Nights = []NightAvailabilityResponse{}
	}
	return &res, nil
}

type AllotmentResponse struct {
	HotelID      string `json:"hotelId"`
	RoomTypeID   string `json:"roomTypeId"`
	Date         string `json:"date"`
	AllotmentQty int    `json:"allotmentQty"`
	StopSell     bool   `json:"stopSell"`
}

type UpsertAllotmentsResponse struct {
	Upserted   int                 `json:"upserted"`
	Allotments []AllotmentResponse `json:"allotments"`
}

func FromAllotments(items []inventory.Allotment) *UpsertAllotmentsResponse {
	res := &UpsertAllotmentsResponse{
		Upserted:   len(items),
		Allotments: make([]AllotmentResponse, len(items)),
	}
	for i, a := range items {
		res.Allotments[i] = AllotmentResponse{
			HotelID:      a.Key.HotelID,
			RoomTypeID:   a.Key.RoomTypeID,
			Date:         a.Date.Format(stay.DateLayout),
			AllotmentQty: a.Quantity,
			StopSell:     a.StopSell,
		}
	}
	return res
}
