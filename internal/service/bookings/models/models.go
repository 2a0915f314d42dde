package models

import (
	"errors"
	"time"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
)

var (
	// ErrInvalidStatus is returned on an unknown booking status
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidPaymentStatus is returned on an unknown payment status
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// ErrInvalidDate is returned when a date does not parse as YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

// Request models

// CancelBookingRequest is the cancellation payload.
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// UpdatePaymentRequest updates the payment state of a booking.
type UpdatePaymentRequest struct {
	PaymentStatus string  `json:"paymentStatus"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
}

// ListBookingsRequest filters the staff-facing booking listing. StartDate
// and EndDate select stays overlapping the period.
type ListBookingsRequest struct {
	RoomID          *int64  `json:"roomId,omitempty"`
	GuestID         *int64  `json:"guestId,omitempty"`
	Status          *string `json:"status,omitempty"`
	StartDate       *string `json:"startDate,omitempty"`
	EndDate         *string `json:"endDate,omitempty"`
	IncludeInactive bool    `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into a domain filter.
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingFilter, error) {
	filter := domain.BookingFilter{
		RoomID:          r.RoomID,
		GuestID:         r.GuestID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	if r.StartDate != nil {
		start, err := ParseDate(*r.StartDate)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &start
	}
	if r.EndDate != nil {
		end, err := ParseDate(*r.EndDate)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &end
	}

	return filter, nil
}

// Response models

// BookingResponse is the booking representation returned by the API.
type BookingResponse struct {
	ID                 int64   `json:"id"`
	Code               string  `json:"code"`
	GuestID            int64   `json:"guestId"`
	RoomID             int64   `json:"roomId"`
	CheckIn            string  `json:"checkIn"`  // "2025-10-15"
	CheckOut           string  `json:"checkOut"` // "2025-10-18"
	Nights             int     `json:"nights"`
	Guests             int     `json:"guests"`
	TotalPrice         float64 `json:"totalPrice"`
	Status             string  `json:"status"`
	PaymentStatus      string  `json:"paymentStatus"`
	PaymentMethod      *string `json:"paymentMethod,omitempty"`
	SpecialRequests    *string `json:"specialRequests,omitempty"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
}

// BookingListResponse wraps a list of bookings.
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking converts a domain booking to its API representation.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                 b.ID,
		Code:               b.Code,
		GuestID:            b.GuestID,
		RoomID:             b.RoomID,
		CheckIn:            b.CheckIn.Format(domain.DateFormat),
		CheckOut:           b.CheckOut.Format(domain.DateFormat),
		Nights:             b.Nights(),
		Guests:             b.Guests,
		TotalPrice:         b.TotalPrice,
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		PaymentMethod:      b.PaymentMethod,
		SpecialRequests:    b.SpecialRequests,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
	}

	if b.CancelledAt != nil {
		formatted := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &formatted
	}

	return resp
}

// FromDomainBookingList converts a list of domain bookings.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	responses := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: responses,
		Total:    len(responses),
	}
}

// ToDomainBookingStatus parses a booking status string.
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	if !domain.ValidBookingStatus(s) {
		return "", ErrInvalidStatus
	}
	return domain.BookingStatus(s), nil
}

// ToDomainPaymentStatus parses a payment status string.
func ToDomainPaymentStatus(s string) (domain.PaymentStatus, error) {
	if !domain.ValidPaymentStatus(s) {
		return "", ErrInvalidPaymentStatus
	}
	return domain.PaymentStatus(s), nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
