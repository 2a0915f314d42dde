package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBooking_Overlaps(t *testing.T) {
	// Stay Oct 10 .. Oct 15
	b := &Booking{
		CheckIn:  date(2025, time.October, 10),
		CheckOut: date(2025, time.October, 15),
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{
			name:     "identical range",
			checkIn:  date(2025, time.October, 10),
			checkOut: date(2025, time.October, 15),
			want:     true,
		},
		{
			name:     "fully inside",
			checkIn:  date(2025, time.October, 11),
			checkOut: date(2025, time.October, 13),
			want:     true,
		},
		{
			name:     "overlaps the start",
			checkIn:  date(2025, time.October, 8),
			checkOut: date(2025, time.October, 11),
			want:     true,
		},
		{
			name:     "overlaps the end",
			checkIn:  date(2025, time.October, 14),
			checkOut: date(2025, time.October, 20),
			want:     true,
		},
		{
			name:     "surrounds the stay",
			checkIn:  date(2025, time.October, 1),
			checkOut: date(2025, time.October, 31),
			want:     true,
		},
		{
			name:     "starts on the checkout day",
			checkIn:  date(2025, time.October, 15),
			checkOut: date(2025, time.October, 18),
			want:     false,
		},
		{
			name:     "ends on the checkin day",
			checkIn:  date(2025, time.October, 5),
			checkOut: date(2025, time.October, 10),
			want:     false,
		},
		{
			name:     "entirely before",
			checkIn:  date(2025, time.October, 1),
			checkOut: date(2025, time.October, 5),
			want:     false,
		},
		{
			name:     "entirely after",
			checkIn:  date(2025, time.October, 20),
			checkOut: date(2025, time.October, 25),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Overlaps(tt.checkIn, tt.checkOut))
		})
	}
}

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{StatusReserved, StatusCheckedIn, true},
		{StatusReserved, StatusCancelled, true},
		{StatusReserved, StatusNoShow, true},
		{StatusReserved, StatusCheckedOut, false},
		{StatusCheckedIn, StatusCheckedOut, true},
		{StatusCheckedIn, StatusCancelled, false},
		{StatusCheckedIn, StatusNoShow, false},
		{StatusCheckedOut, StatusCheckedIn, false},
		{StatusCancelled, StatusCheckedIn, false},
		{StatusNoShow, StatusCheckedIn, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusReserved}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCheckedIn}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCheckedOut}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusNoShow}).CanBeCancelled())
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusReserved}).IsActive())
	assert.True(t, (&Booking{Status: StatusCheckedIn}).IsActive())
	assert.False(t, (&Booking{Status: StatusCheckedOut}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
	assert.False(t, (&Booking{Status: StatusNoShow}).IsActive())
}

func TestNightsBetween(t *testing.T) {
	assert.Equal(t, 1, NightsBetween(date(2025, time.October, 10), date(2025, time.October, 11)))
	assert.Equal(t, 5, NightsBetween(date(2025, time.October, 10), date(2025, time.October, 15)))
	assert.Equal(t, 31, NightsBetween(date(2025, time.December, 15), date(2026, time.January, 15)))
}

func TestStayPrice(t *testing.T) {
	assert.Equal(t, 450.0, StayPrice(150, date(2025, time.October, 10), date(2025, time.October, 13)))
	assert.Equal(t, 99.9, StayPrice(99.9, date(2025, time.October, 10), date(2025, time.October, 11)))
}

func TestBooking_OverlapNights(t *testing.T) {
	// Stay Oct 10 .. Oct 15, five nights
	b := &Booking{
		CheckIn:  date(2025, time.October, 10),
		CheckOut: date(2025, time.October, 15),
	}

	tests := []struct {
		name       string
		rangeStart time.Time
		rangeEnd   time.Time
		want       int
	}{
		{"stay inside range", date(2025, time.October, 1), date(2025, time.October, 31), 5},
		{"range clips the start", date(2025, time.October, 12), date(2025, time.October, 31), 3},
		{"range clips the end", date(2025, time.October, 1), date(2025, time.October, 12), 2},
		{"range inside stay", date(2025, time.October, 11), date(2025, time.October, 13), 2},
		{"no overlap", date(2025, time.October, 20), date(2025, time.October, 25), 0},
		{"range ends at checkin", date(2025, time.October, 1), date(2025, time.October, 10), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.OverlapNights(tt.rangeStart, tt.rangeEnd))
		})
	}
}

func TestBooking_Covers(t *testing.T) {
	b := &Booking{
		CheckIn:  date(2025, time.October, 10),
		CheckOut: date(2025, time.October, 15),
	}

	assert.True(t, b.Covers(date(2025, time.October, 10)))
	assert.True(t, b.Covers(date(2025, time.October, 14)))
	assert.False(t, b.Covers(date(2025, time.October, 15)))
	assert.False(t, b.Covers(date(2025, time.October, 9)))
}

func TestDateOnly(t *testing.T) {
	// Stored dates are midnight UTC already and pass through unchanged
	assert.Equal(t, date(2025, time.October, 10), DateOnly(date(2025, time.October, 10)))

	// A zoned wall clock maps to the UTC midnight of its own calendar day,
	// so "today" from a non-UTC host compares equal to a parsed date
	east := time.FixedZone("UTC+2", 2*60*60)
	west := time.FixedZone("UTC-5", -5*60*60)

	assert.Equal(t, date(2025, time.October, 10), DateOnly(time.Date(2025, time.October, 10, 15, 0, 0, 0, east)))
	assert.Equal(t, date(2025, time.October, 10), DateOnly(time.Date(2025, time.October, 10, 20, 0, 0, 0, west)))
	assert.Equal(t, date(2025, time.October, 10), DateOnly(time.Date(2025, time.October, 10, 0, 30, 0, 0, east)))
	assert.Equal(t, date(2025, time.October, 10), DateOnly(time.Date(2025, time.October, 10, 23, 30, 0, 0, west)))
}

func TestBooking_CoversZonedClock(t *testing.T) {
	b := &Booking{
		CheckIn:  date(2025, time.October, 10),
		CheckOut: date(2025, time.October, 13),
	}

	east := time.FixedZone("UTC+2", 2*60*60)
	west := time.FixedZone("UTC-5", -5*60*60)

	// Arrival-day afternoon is inside the stay on either side of UTC
	assert.True(t, b.Covers(time.Date(2025, time.October, 10, 15, 0, 0, 0, east)))
	assert.True(t, b.Covers(time.Date(2025, time.October, 10, 15, 0, 0, 0, west)))
	assert.False(t, b.Covers(time.Date(2025, time.October, 13, 9, 0, 0, 0, east)))
}
