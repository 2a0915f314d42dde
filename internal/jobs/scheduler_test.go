package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeNoShowMarker struct {
	before time.Time
	ids    []int64
}

func (f *fakeNoShowMarker) MarkNoShows(_ context.Context, before time.Time) ([]int64, error) {
	f.before = before
	return f.ids, nil
}

type fakeOverdueCounter struct {
	count int
}

func (f *fakeOverdueCounter) OverdueCount(_ context.Context) (int, error) {
	return f.count, nil
}

type fakeMetrics struct {
	overdue int
}

func (f *fakeMetrics) SetMaintenanceOverdue(count int) { f.overdue = count }

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestSweepNoShows_CutoffIsCalendarDay(t *testing.T) {
	// The sweep runs at 03:00 local on a host five hours west of UTC.
	// Stored check-in dates are midnight UTC, so the cutoff must be the
	// UTC midnight of the local calendar day or today's arrivals would
	// be marked as no-shows.
	west := time.FixedZone("UTC-5", -5*60*60)
	marker := &fakeNoShowMarker{ids: []int64{3, 4}}
	s := NewScheduler(marker, &fakeOverdueCounter{}, &fakeMetrics{},
		&fixedTime{now: time.Date(2025, time.October, 10, 3, 0, 0, 0, west)}, nopLogger{})

	s.sweepNoShows()

	assert.Equal(t, time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC), marker.before)
}

func TestSweepOverdue_UpdatesGauge(t *testing.T) {
	metrics := &fakeMetrics{}
	s := NewScheduler(&fakeNoShowMarker{}, &fakeOverdueCounter{count: 7}, metrics,
		&fixedTime{now: time.Date(2025, time.October, 10, 3, 0, 0, 0, time.UTC)}, nopLogger{})

	s.sweepOverdue()

	assert.Equal(t, 7, metrics.overdue)
}

func TestRegister_RejectsBadSchedule(t *testing.T) {
	s := NewScheduler(&fakeNoShowMarker{}, &fakeOverdueCounter{}, &fakeMetrics{},
		&fixedTime{now: time.Now()}, nopLogger{})

	assert.Error(t, s.Register("not a schedule", "@hourly"))
	assert.NoError(t, s.Register("@daily", "@hourly"))
}
