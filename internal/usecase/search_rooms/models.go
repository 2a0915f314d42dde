package search_rooms

import "time"

// Request is an availability search over [CheckIn, CheckOut).
type Request struct {
	CheckIn  time.Time // date only
	CheckOut time.Time // date only
	Guests   *int      // nil = any capacity
	RoomType *string   // nil = any type
}

// AvailableRoom is one bookable room with the price for the requested stay.
type AvailableRoom struct {
	ID          int64
	Number      string
	Type        string
	Capacity    int
	NightlyRate float64
	Floor       *string
	Description *string
	Amenities   []string
	TotalPrice  float64
}

// Response lists the rooms free for the requested stay.
type Response struct {
	CheckIn  time.Time
	CheckOut time.Time
	Nights   int
	Rooms    []*AvailableRoom
}
