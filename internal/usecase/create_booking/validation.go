package create_booking

import (
	"fmt"
	"time"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
)

// validateRequest checks the request shape before any storage access.
func validateRequest(req *Request) error {
	if req.GuestID <= 0 {
		return fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidInput)
	}

	if req.Guests <= 0 {
		return fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests too long", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}

	return nil
}

// validateStay checks the dates against the booking window rules.
func validateStay(checkIn, checkOut time.Time, now time.Time) error {
	nights := domain.NightsBetween(checkIn, checkOut)
	if nights < domain.MinNights {
		return fmt.Errorf("%w: stay must be at least %d night(s)", ErrInvalidInput, domain.MinNights)
	}
	if nights > domain.MaxStayNights {
		return fmt.Errorf("%w: at most %d nights", ErrStayTooLong, domain.MaxStayNights)
	}

	today := domain.DateOnly(now)
	if domain.DateOnly(checkIn).Before(today) {
		return ErrInvalidDate
	}

	maxCheckIn := today.AddDate(0, 0, domain.MaxAdvanceBookingDays)
	if domain.DateOnly(checkIn).After(maxCheckIn) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, domain.MaxAdvanceBookingDays)
	}

	return nil
}

// hasOverlap reports whether any active booking intersects [checkIn, checkOut).
// excludeID skips the booking being rescheduled, 0 excludes nothing.
func hasOverlap(bookings []*domain.Booking, checkIn, checkOut time.Time, excludeID int64) bool {
	for _, b := range bookings {
		if b.ID == excludeID {
			continue
		}
		if !b.IsActive() {
			continue
		}
		if b.Overlaps(checkIn, checkOut) {
			return true
		}
	}
	return false
}
