package create_booking

import (
	"fmt"
	"time"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	"github.com/hotelharmony/hotel-ops-service/internal/usecase/create_booking"
)

// Request is the reservation payload. Staff may book on behalf of a
// guest via guestId, for guests the field is ignored.
type Request struct {
	RoomID          int64   `json:"roomId"`
	GuestID         int64   `json:"guestId,omitempty"`
	CheckIn         string  `json:"checkIn"`  // "2025-10-15"
	CheckOut        string  `json:"checkOut"` // "2025-10-18"
	Guests          int     `json:"guests"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// ToUseCaseRequest converts the payload, resolving the booking owner
// from the caller's identity and role.
func (r *Request) ToUseCaseRequest(callerID int64, callerRole domain.Role) (*create_booking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("invalid checkIn date: %v", err)
	}
	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("invalid checkOut date: %v", err)
	}

	guestID := r.GuestID
	if callerRole == domain.RoleGuest {
		guestID = callerID
	}
	if guestID == 0 {
		return nil, fmt.Errorf("guestId is required")
	}

	return &create_booking.Request{
		GuestID:         guestID,
		RoomID:          r.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
		Notes:           r.Notes,
	}, nil
}

// Response is the created booking.
type Response struct {
	ID              int64   `json:"id"`
	Code            string  `json:"code"`
	GuestID         int64   `json:"guestId"`
	RoomID          int64   `json:"roomId"`
	RoomNumber      string  `json:"roomNumber"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	Nights          int     `json:"nights"`
	Guests          int     `json:"guests"`
	TotalPrice      float64 `json:"totalPrice"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// FromUseCaseResponse converts the use case result to the API response.
func FromUseCaseResponse(resp *create_booking.Response) *Response {
	return &Response{
		ID:              resp.ID,
		Code:            resp.Code,
		GuestID:         resp.GuestID,
		RoomID:          resp.RoomID,
		RoomNumber:      resp.RoomNumber,
		CheckIn:         resp.CheckIn.Format(domain.DateFormat),
		CheckOut:        resp.CheckOut.Format(domain.DateFormat),
		Nights:          resp.Nights,
		Guests:          resp.Guests,
		TotalPrice:      resp.TotalPrice,
		Status:          resp.Status,
		PaymentStatus:   resp.PaymentStatus,
		SpecialRequests: resp.SpecialRequests,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
