package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinNights                   = 1
	MaxStayNights               = 90
	MaxAdvanceBookingDays       = 365
	MaxNotesLength              = 500
	MaxSpecialRequestsLength    = 1000
	MaxCancellationReasonLength = 500
	MaxDescriptionLength        = 2000
	MinNightlyRate              = 0.0
)

// ActiveStatuses are the booking statuses that count against availability.
var ActiveStatuses = []BookingStatus{
	StatusReserved,
	StatusCheckedIn,
}

// InactiveStatuses are the booking statuses that release the room's dates.
var InactiveStatuses = []BookingStatus{
	StatusCheckedOut,
	StatusCancelled,
	StatusNoShow,
}

// BookingStatuses lists every valid booking status.
var BookingStatuses = []BookingStatus{
	StatusReserved,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCancelled,
	StatusNoShow,
}

// PaymentStatuses lists every valid payment status.
var PaymentStatuses = []PaymentStatus{
	PaymentPending,
	PaymentPartiallyPaid,
	PaymentPaid,
	PaymentRefunded,
}

// ValidBookingStatus reports whether s names a known booking status.
func ValidBookingStatus(s string) bool {
	for _, st := range BookingStatuses {
		if BookingStatus(s) == st {
			return true
		}
	}
	return false
}

// ValidPaymentStatus reports whether s names a known payment status.
func ValidPaymentStatus(s string) bool {
	for _, st := range PaymentStatuses {
		if PaymentStatus(s) == st {
			return true
		}
	}
	return false
}
