package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	"github.com/hotelharmony/hotel-ops-service/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	arrivals   []*domain.Booking
	departures []*domain.Booking
}

func (f *fakeBookingRepo) List(_ context.Context, _ domain.BookingFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) ArrivalsOn(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.arrivals, nil
}

func (f *fakeBookingRepo) DeparturesOn(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.departures, nil
}

type fakeRoomRepo struct {
	rooms []*domain.Room
}

func (f *fakeRoomRepo) List(_ context.Context, _ domain.RoomFilter) ([]*domain.Room, error) {
	return f.rooms, nil
}

type fakeMaintenanceRepo struct {
	requests []*domain.MaintenanceRequest
}

func (f *fakeMaintenanceRepo) List(_ context.Context, _ domain.MaintenanceFilter, _ time.Time) ([]*domain.MaintenanceRequest, error) {
	return f.requests, nil
}

func (f *fakeMaintenanceRepo) CountOverdue(_ context.Context, now time.Time) (int, error) {
	count := 0
	for _, r := range f.requests {
		if r.IsOverdue(now) {
			count++
		}
	}
	return count, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(bookings *fakeBookingRepo, rooms *fakeRoomRepo, maintenance *fakeMaintenanceRepo, now time.Time) *Service {
	return NewService(bookings, rooms, maintenance, &fakeTxManager{}, &fixedTime{now: now}, nopLogger{})
}

func twoRooms() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: []*domain.Room{
		{ID: 1, Number: "101", Type: domain.RoomTypeStandard, Status: domain.RoomStatusAvailable, IsClean: true},
		{ID: 2, Number: "305", Type: domain.RoomTypeSuite, Status: domain.RoomStatusOccupied, IsClean: true},
	}}
}

func TestOccupancy_CountsOverlapNightsOnly(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		// fully inside the period: 3 nights
		{RoomID: 1, Status: domain.StatusCheckedOut, CheckIn: day(2025, time.October, 2), CheckOut: day(2025, time.October, 5)},
		// sticks out on both sides, clipped to the 7 period nights
		{RoomID: 2, Status: domain.StatusCheckedIn, CheckIn: day(2025, time.September, 28), CheckOut: day(2025, time.October, 20)},
		// cancelled stays do not count
		{RoomID: 1, Status: domain.StatusCancelled, CheckIn: day(2025, time.October, 3), CheckOut: day(2025, time.October, 6)},
	}}
	svc := newTestService(bookings, twoRooms(), &fakeMaintenanceRepo{}, day(2025, time.October, 8))

	report, err := svc.Occupancy(context.Background(), "2025-10-01", "2025-10-08")
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalRooms)
	assert.Equal(t, 14, report.AvailableRoomNight)
	assert.Equal(t, 10, report.OccupiedRoomNights)
	assert.InDelta(t, 10.0/14.0, report.OccupancyRate, 1e-9)

	require.Contains(t, report.ByRoomType, "standard")
	assert.Equal(t, 3, report.ByRoomType["standard"].OccupiedRoomNights)
	require.Contains(t, report.ByRoomType, "suite")
	assert.Equal(t, 7, report.ByRoomType["suite"].OccupiedRoomNights)
	assert.InDelta(t, 1.0, report.ByRoomType["suite"].OccupancyRate, 1e-9)
}

func TestOccupancy_RejectsInvertedPeriod(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, twoRooms(), &fakeMaintenanceRepo{}, day(2025, time.October, 8))

	_, err := svc.Occupancy(context.Background(), "2025-10-08", "2025-10-01")
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = svc.Occupancy(context.Background(), "october", "2025-10-08")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestRevenue_PaidBookingsOnly(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{RoomID: 1, Status: domain.StatusCheckedOut, PaymentStatus: domain.PaymentPaid, PaymentMethod: ptr.Ptr("card"),
			CheckIn: day(2025, time.October, 2), CheckOut: day(2025, time.October, 5), TotalPrice: 450},
		{RoomID: 2, Status: domain.StatusCheckedOut, PaymentStatus: domain.PaymentPaid,
			CheckIn: day(2025, time.October, 3), CheckOut: day(2025, time.October, 6), TotalPrice: 840},
		// pending payment counts as unpaid, not revenue
		{RoomID: 1, Status: domain.StatusReserved, PaymentStatus: domain.PaymentPending,
			CheckIn: day(2025, time.October, 6), CheckOut: day(2025, time.October, 7), TotalPrice: 150},
		// no-show never counts, paid or not
		{RoomID: 1, Status: domain.StatusNoShow, PaymentStatus: domain.PaymentPaid,
			CheckIn: day(2025, time.October, 4), CheckOut: day(2025, time.October, 5), TotalPrice: 150},
		// check-in outside the period
		{RoomID: 1, Status: domain.StatusReserved, PaymentStatus: domain.PaymentPaid,
			CheckIn: day(2025, time.November, 1), CheckOut: day(2025, time.November, 3), TotalPrice: 300},
	}}
	svc := newTestService(bookings, twoRooms(), &fakeMaintenanceRepo{}, day(2025, time.October, 8))

	report, err := svc.Revenue(context.Background(), "2025-10-01", "2025-10-08")
	require.NoError(t, err)

	assert.Equal(t, 2, report.PaidBookings)
	assert.Equal(t, 1, report.UnpaidBookings)
	assert.Equal(t, 1290.0, report.TotalRevenue)
	assert.Equal(t, 645.0, report.AveragePerBooking)
	assert.Equal(t, 450.0, report.ByRoomType["standard"])
	assert.Equal(t, 840.0, report.ByRoomType["suite"])
	assert.Equal(t, 450.0, report.ByPaymentMethod["card"])
	assert.Equal(t, 840.0, report.ByPaymentMethod["unknown"])
}

func TestMaintenance_WorkloadBreakdown(t *testing.T) {
	created := day(2025, time.October, 1)
	now := day(2025, time.October, 8)

	maintenance := &fakeMaintenanceRepo{requests: []*domain.MaintenanceRequest{
		{Status: domain.MaintenanceOpen, IssueType: domain.IssuePlumbing, Priority: domain.PriorityUrgent, CreatedAt: created},
		{Status: domain.MaintenanceCompleted, IssueType: domain.IssueElectrical, Priority: domain.PriorityHigh,
			CreatedAt: created, CompletedAt: ptr.Ptr(created.Add(12 * time.Hour))},
		{Status: domain.MaintenanceCompleted, IssueType: domain.IssuePlumbing, Priority: domain.PriorityLow,
			CreatedAt: created, CompletedAt: ptr.Ptr(created.Add(36 * time.Hour))},
	}}
	tx := &fakeTxManager{}
	svc := NewService(&fakeBookingRepo{}, twoRooms(), maintenance, tx, &fixedTime{now: now}, nopLogger{})

	report, err := svc.Maintenance(context.Background(), "2025-10-01", "2025-10-08")
	require.NoError(t, err)

	// The workload is read inside one read-only snapshot
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 3, report.TotalRequests)
	assert.Equal(t, 1, report.Overdue)
	assert.Equal(t, 2, report.ByIssueType["plumbing"])
	assert.Equal(t, 1, report.ByStatus["open"])
	assert.Equal(t, 2, report.ByStatus["completed"])
	assert.Equal(t, 24.0, report.AverageResolutionHours)
}

func TestSummary_DailySnapshot(t *testing.T) {
	now := day(2025, time.October, 8)
	bookings := &fakeBookingRepo{
		arrivals:   []*domain.Booking{{ID: 1}, {ID: 2}},
		departures: []*domain.Booking{{ID: 3}},
	}
	rooms := &fakeRoomRepo{rooms: []*domain.Room{
		{ID: 1, Status: domain.RoomStatusAvailable, IsClean: true},
		{ID: 2, Status: domain.RoomStatusOccupied, IsClean: true},
		{ID: 3, Status: domain.RoomStatusAvailable, IsClean: false},
		{ID: 4, Status: domain.RoomStatusMaintenance, IsClean: true},
	}}
	maintenance := &fakeMaintenanceRepo{requests: []*domain.MaintenanceRequest{
		{Status: domain.MaintenanceOpen, Priority: domain.PriorityUrgent, CreatedAt: day(2025, time.October, 7)},
		{Status: domain.MaintenanceInProgress, Priority: domain.PriorityLow, CreatedAt: day(2025, time.October, 7)},
		{Status: domain.MaintenanceCompleted, Priority: domain.PriorityUrgent, CreatedAt: day(2025, time.October, 1)},
	}}
	svc := newTestService(bookings, rooms, maintenance, now)

	summary, err := svc.Summary(context.Background(), "2025-10-08")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Arrivals)
	assert.Equal(t, 1, summary.Departures)
	assert.Equal(t, 4, summary.TotalRooms)
	assert.Equal(t, 2, summary.AvailableRooms)
	assert.Equal(t, 1, summary.OccupiedRooms)
	assert.Equal(t, 1, summary.RoomsToClean)
	assert.Equal(t, 2, summary.OpenMaintenanceRequests)
	assert.Equal(t, 1, summary.HighPriorityMaintenanceRequests)
	assert.Equal(t, 1, summary.OverdueMaintenanceRequests)
}

func TestSummary_RejectsBadDate(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, twoRooms(), &fakeMaintenanceRepo{}, day(2025, time.October, 8))

	_, err := svc.Summary(context.Background(), "yesterday")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
