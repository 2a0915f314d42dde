package update_booking

import (
	"fmt"
	"time"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
)

// validateRequest checks the request shape before any storage access.
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.CallerID <= 0 {
		return fmt.Errorf("%w: callerID must be positive", ErrInvalidInput)
	}

	if req.CheckIn == nil && req.CheckOut == nil && req.Guests == nil &&
		req.SpecialRequests == nil && req.Notes == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.Guests != nil && *req.Guests <= 0 {
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
