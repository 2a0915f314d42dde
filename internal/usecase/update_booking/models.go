package update_booking

import (
	"time"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
)

// Request carries a partial reschedule of a reserved booking. Nil fields
// keep their current value.
type Request struct {
	BookingID  int64
	CallerID   int64
	CallerRole domain.Role

	CheckIn         *time.Time // date only
	CheckOut        *time.Time // date only
	Guests          *int
	SpecialRequests *string
	Notes           *string
}

// Response is the updated booking.
type Response struct {
	ID            int64
	Code          string
	GuestID       int64
	RoomID        int64
	CheckIn       time.Time
	CheckOut      time.Time
	Nights        int
	Guests        int
	TotalPrice    float64
	Status        string
	PaymentStatus string

	SpecialRequests *string
	Notes           *string
}
