package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusReserved   BookingStatus = "reserved"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no_show"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
	PaymentRefunded      PaymentStatus = "refunded"
)

// legalTransitions is the explicit transition table for the booking status
// machine. Statuses absent from the map are terminal.
var legalTransitions = map[BookingStatus][]BookingStatus{
	StatusReserved:  {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn: {StatusCheckedOut},
}

// Booking represents a guest's stay in a room
type Booking struct {
	ID         int64
	Code       string // public reference code, shown to guests
	GuestID    int64
	RoomID     int64
	CheckIn    time.Time // date only, midnight UTC
	CheckOut   time.Time // date only, midnight UTC; stay is [CheckIn, CheckOut)
	Guests     int
	TotalPrice float64
	Status     BookingStatus

	PaymentStatus PaymentStatus
	PaymentMethod *string

	SpecialRequests    *string
	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking counts against room availability.
func (b *Booking) IsActive() bool {
	return b.Status == StatusReserved || b.Status == StatusCheckedIn
}

// CanTransitionTo returns true if moving the booking to status is legal.
func (b *Booking) CanTransitionTo(status BookingStatus) bool {
	for _, next := range legalTransitions[b.Status] {
		if next == status {
			return true
		}
	}
	return false
}

// CanBeCancelled returns true if the booking can still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.CanTransitionTo(StatusCancelled)
}

// CanBeUpdated returns true if dates and party size may still change.
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusReserved
}

// Overlaps reports whether the booking's stay intersects [checkIn, checkOut).
// Ranges are half-open: a stay ending the morning another begins does not
// conflict.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && b.CheckOut.After(checkIn)
}

// Covers reports whether date falls inside the stay [CheckIn, CheckOut).
func (b *Booking) Covers(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(b.CheckIn)) && d.Before(DateOnly(b.CheckOut))
}

// Nights returns the number of nights of the stay.
func (b *Booking) Nights() int {
	return NightsBetween(b.CheckIn, b.CheckOut)
}

// NightsBetween returns the number of nights between two dates.
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(DateOnly(checkOut).Sub(DateOnly(checkIn)).Hours() / 24)
}

// StayPrice computes the total price of a stay: nights times the nightly rate.
func StayPrice(nightlyRate float64, checkIn, checkOut time.Time) float64 {
	return nightlyRate * float64(NightsBetween(checkIn, checkOut))
}

// OverlapNights returns how many nights of the stay fall inside
// [rangeStart, rangeEnd). Used by occupancy reporting.
func (b *Booking) OverlapNights(rangeStart, rangeEnd time.Time) int {
	start := DateOnly(b.CheckIn)
	end := DateOnly(b.CheckOut)

	if rs := DateOnly(rangeStart); start.Before(rs) {
		start = rs
	}
	if re := DateOnly(rangeEnd); end.After(re) {
		end = re
	}
	if !start.Before(end) {
		return 0
	}
	return NightsBetween(start, end)
}

// DateOnly returns midnight UTC of t's calendar day, read in t's own
// location. Request dates parse to midnight UTC, so deriving "today" from a
// zoned clock through the same helper keeps same-day comparisons exact on
// any host zone.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BookingFilter filter for listing bookings
type BookingFilter struct {
	RoomID          *int64
	GuestID         *int64
	Status          *BookingStatus
	StartDate       *time.Time // stays overlapping [StartDate, EndDate)
	EndDate         *time.Time
	IncludeInactive bool
}
