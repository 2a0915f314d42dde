package create_booking

import "time"

// Request carries the data needed to reserve a room.
type Request struct {
	GuestID         int64
	RoomID          int64
	CheckIn         time.Time // date only
	CheckOut        time.Time // date only, stay is [CheckIn, CheckOut)
	Guests          int
	SpecialRequests *string
	Notes           *string
}

// Response is the created booking.
type Response struct {
	ID            int64
	Code          string
	GuestID       int64
	RoomID        int64
	RoomNumber    string
	CheckIn       time.Time
	CheckOut      time.Time
	Nights        int
	Guests        int
	TotalPrice    float64
	Status        string
	PaymentStatus string

	SpecialRequests *string
	Notes           *string

	CreatedAt time.Time
}
