package update_booking

import (
	"fmt"
	"time"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	"github.com/hotelharmony/hotel-ops-service/internal/usecase/update_booking"
)

// Request is a partial reschedule. Absent fields keep their value.
type Request struct {
	CheckIn         *string `json:"checkIn,omitempty"`
	CheckOut        *string `json:"checkOut,omitempty"`
	Guests          *int    `json:"guests,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// ToUseCaseRequest converts the payload into the use case request.
func (r *Request) ToUseCaseRequest(bookingID, callerID int64, callerRole domain.Role) (*update_booking.Request, error) {
	req := &update_booking.Request{
		BookingID:       bookingID,
		CallerID:        callerID,
		CallerRole:      callerRole,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
		Notes:           r.Notes,
	}

	if r.CheckIn != nil {
		checkIn, err := time.Parse(domain.DateFormat, *r.CheckIn)
		if err != nil {
			return nil, fmt.Errorf("invalid checkIn date: %v", err)
		}
		req.CheckIn = &checkIn
	}
	if r.CheckOut != nil {
		checkOut, err := time.Parse(domain.DateFormat, *r.CheckOut)
		if err != nil {
			return nil, fmt.Errorf("invalid checkOut date: %v", err)
		}
		req.CheckOut = &checkOut
	}

	return req, nil
}

// Response is the updated booking.
type Response struct {
	ID              int64   `json:"id"`
	Code            string  `json:"code"`
	GuestID         int64   `json:"guestId"`
	RoomID          int64   `json:"roomId"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	Nights          int     `json:"nights"`
	Guests          int     `json:"guests"`
	TotalPrice      float64 `json:"totalPrice"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// FromUseCaseResponse converts the use case result to the API response.
func FromUseCaseResponse(resp *update_booking.Response) *Response {
	return &Response{
		ID:              resp.ID,
		Code:            resp.Code,
		GuestID:         resp.GuestID,
		RoomID:          resp.RoomID,
		CheckIn:         resp.CheckIn.Format(domain.DateFormat),
		CheckOut:        resp.CheckOut.Format(domain.DateFormat),
		Nights:          resp.Nights,
		Guests:          resp.Guests,
		TotalPrice:      resp.TotalPrice,
		Status:          resp.Status,
		PaymentStatus:   resp.PaymentStatus,
		SpecialRequests: resp.SpecialRequests,
		Notes:           resp.Notes,
	}
}
