package inventory

type ReservationStatus string

const (
	ReservationReserved ReservationStatus = "RESERVED"
	ReservationReleased ReservationStatus = "RELEASED"
)

func (s ReservationStatus) String() string {
	return string(s)
}

func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationReserved, ReservationReleased:
		return true
	default:
		return false
	}
}

// RoomKey identifies the sellable unit whose nights are locked together.
type RoomKey struct {
	HotelID    string
	RoomTypeID string
}

func (k RoomKey) LockKey() string {
	return "inventory:" + k.HotelID + ":" + k.RoomTypeID
}
