package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	bookingRepo "github.com/hotelharmony/hotel-ops-service/internal/infra/storage/booking"
	"github.com/hotelharmony/hotel-ops-service/internal/service/bookings/models"
)

type statusChange struct {
	id     int64
	status domain.BookingStatus
}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	statusChanges  []statusChange
	cancelledID    int64
	cancelReason   string
	paymentStatus  domain.PaymentStatus
	paymentMethod  *string
	arrivalsResult []*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	m := make(map[int64]*domain.Booking, len(bookings))
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeBookingRepo{bookings: m}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetByCode(_ context.Context, code string) (*domain.Booking, error) {
	for _, b := range f.bookings {
		if b.Code == code {
			copied := *b
			return &copied, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) List(_ context.Context, _ domain.BookingFilter) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) ArrivalsOn(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.arrivalsResult, nil
}

func (f *fakeBookingRepo) DeparturesOn(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.arrivalsResult, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.statusChanges = append(f.statusChanges, statusChange{id: id, status: status})
	if b, ok := f.bookings[id]; ok {
		b.Status = status
	}
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.cancelledID = id
	f.cancelReason = reason
	return nil
}

func (f *fakeBookingRepo) UpdatePayment(_ context.Context, id int64, status domain.PaymentStatus, method *string) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.paymentStatus = status
	f.paymentMethod = method
	return nil
}

type roomChange struct {
	id     int64
	status domain.RoomStatus
}

type fakeRoomRepo struct {
	statusChanges []roomChange
	cleanliness   map[int64]bool
}

func (f *fakeRoomRepo) UpdateStatus(_ context.Context, id int64, status domain.RoomStatus) error {
	f.statusChanges = append(f.statusChanges, roomChange{id: id, status: status})
	return nil
}

func (f *fakeRoomRepo) SetCleanliness(_ context.Context, id int64, clean bool) error {
	if f.cleanliness == nil {
		f.cleanliness = make(map[int64]bool)
	}
	f.cleanliness[id] = clean
	return nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
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

func reservedBooking() *domain.Booking {
	return &domain.Booking{
		ID:            21,
		Code:          "ref-21",
		GuestID:       3,
		RoomID:        7,
		CheckIn:       day(2025, time.October, 10),
		CheckOut:      day(2025, time.October, 13),
		Guests:        2,
		TotalPrice:    450,
		Status:        domain.StatusReserved,
		PaymentStatus: domain.PaymentPending,
	}
}

func newTestService(repo *fakeBookingRepo, rooms *fakeRoomRepo, now time.Time) (*Service, *fakeTxManager) {
	tx := &fakeTxManager{}
	svc := NewService(repo, rooms, tx, &fixedTime{now: now}, nopLogger{})
	return svc, tx
}

func TestCheckIn_MarksBookingAndRoom(t *testing.T) {
	repo := newFakeBookingRepo(reservedBooking())
	rooms := &fakeRoomRepo{}
	svc, tx := newTestService(repo, rooms, day(2025, time.October, 10))

	resp, err := svc.CheckIn(context.Background(), 21)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCheckedIn), resp.Status)
	assert.Equal(t, 1, tx.calls)
	require.Len(t, repo.statusChanges, 1)
	assert.Equal(t, domain.StatusCheckedIn, repo.statusChanges[0].status)
	require.Len(t, rooms.statusChanges, 1)
	assert.Equal(t, domain.RoomStatusOccupied, rooms.statusChanges[0].status)
}

func TestCheckIn_TooEarly(t *testing.T) {
	repo := newFakeBookingRepo(reservedBooking())
	svc, _ := newTestService(repo, &fakeRoomRepo{}, day(2025, time.October, 9))

	_, err := svc.CheckIn(context.Background(), 21)
	assert.ErrorIs(t, err, ErrCheckInTooEarly)
	assert.Empty(t, repo.statusChanges)
}

func TestCheckIn_ArrivalDayOnNonUTCHost(t *testing.T) {
	// 15:00 local on the arrival day, host two hours east of UTC
	east := time.FixedZone("UTC+2", 2*60*60)
	repo := newFakeBookingRepo(reservedBooking())
	svc, _ := newTestService(repo, &fakeRoomRepo{}, time.Date(2025, time.October, 10, 15, 0, 0, 0, east))

	_, err := svc.CheckIn(context.Background(), 21)
	assert.NoError(t, err)
}

func TestCheckIn_AfterStayRejected(t *testing.T) {
	repo := newFakeBookingRepo(reservedBooking())
	svc, _ := newTestService(repo, &fakeRoomRepo{}, day(2025, time.October, 20))

	_, err := svc.CheckIn(context.Background(), 21)
	assert.ErrorIs(t, err, ErrCheckInTooLate)
	assert.Empty(t, repo.statusChanges)
}

func TestCheckIn_CheckOutDayTooLate(t *testing.T) {
	// The stay is half-open, the check-out morning is already outside it
	repo := newFakeBookingRepo(reservedBooking())
	svc, _ := newTestService(repo, &fakeRoomRepo{}, day(2025, time.October, 13))

	_, err := svc.CheckIn(context.Background(), 21)
	assert.ErrorIs(t, err, ErrCheckInTooLate)
}

func TestCheckIn_LateArrivalStillWorks(t *testing.T) {
	repo := newFakeBookingRepo(reservedBooking())
	svc, _ := newTestService(repo, &fakeRoomRepo{}, day(2025, time.October, 11))

	_, err := svc.CheckIn(context.Background(), 21)
	assert.NoError(t, err)
}

func TestCheckIn_WrongState(t *testing.T) {
	b := reservedBooking()
	b.Status = domain.StatusCheckedOut
	svc, _ := newTestService(newFakeBookingRepo(b), &fakeRoomRepo{}, day(2025, time.October, 13))

	_, err := svc.CheckIn(context.Background(), 21)
	assert.ErrorIs(t, err, ErrCannotCheckIn)
}

func TestCheckOut_FreesRoomAndFlagsCleaning(t *testing.T) {
	b := reservedBooking()
	b.Status = domain.StatusCheckedIn
	repo := newFakeBookingRepo(b)
	rooms := &fakeRoomRepo{}
	svc, _ := newTestService(repo, rooms, day(2025, time.October, 13))

	resp, err := svc.CheckOut(context.Background(), 21)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCheckedOut), resp.Status)
	require.Len(t, rooms.statusChanges, 1)
	assert.Equal(t, domain.RoomStatusAvailable, rooms.statusChanges[0].status)
	assert.Equal(t, false, rooms.cleanliness[7])
}

func TestCheckOut_RequiresCheckedIn(t *testing.T) {
	svc, _ := newTestService(newFakeBookingRepo(reservedBooking()), &fakeRoomRepo{}, day(2025, time.October, 13))

	_, err := svc.CheckOut(context.Background(), 21)
	assert.ErrorIs(t, err, ErrCannotCheckOut)
}

func TestCancel_RequiresReason(t *testing.T) {
	repo := newFakeBookingRepo(reservedBooking())
	svc, _ := newTestService(repo, &fakeRoomRepo{}, day(2025, time.October, 1))

	err := svc.Cancel(context.Background(), 21, 3, domain.RoleGuest, &models.CancelBookingRequest{Reason: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_GuestOwnBooking(t *testing.T) {
	repo := newFakeBookingRepo(reservedBooking())
	svc, _ := newTestService(repo, &fakeRoomRepo{}, day(2025, time.October, 1))

	err := svc.Cancel(context.Background(), 21, 3, domain.RoleGuest, &models.CancelBookingRequest{Reason: "change of plans"})
	require.NoError(t, err)
	assert.Equal(t, int64(21), repo.cancelledID)
	assert.Equal(t, "change of plans", repo.cancelReason)
}

func TestCancel_GuestCannotCancelOthers(t *testing.T) {
	repo := newFakeBookingRepo(reservedBooking())
	svc, _ := newTestService(repo, &fakeRoomRepo{}, day(2025, time.October, 1))

	err := svc.Cancel(context.Background(), 21, 99, domain.RoleGuest, &models.CancelBookingRequest{Reason: "nope"})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_CheckedInBooking(t *testing.T) {
	b := reservedBooking()
	b.Status = domain.StatusCheckedIn
	svc, _ := newTestService(newFakeBookingRepo(b), &fakeRoomRepo{}, day(2025, time.October, 11))

	err := svc.Cancel(context.Background(), 21, 3, domain.RoleGuest, &models.CancelBookingRequest{Reason: "too late"})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestGetByID_GuestAccess(t *testing.T) {
	repo := newFakeBookingRepo(reservedBooking())
	svc, _ := newTestService(repo, &fakeRoomRepo{}, day(2025, time.October, 1))

	_, err := svc.GetByID(context.Background(), 21, 3, domain.RoleGuest)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 21, 99, domain.RoleGuest)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 21, 99, domain.RoleReceptionist)
	assert.NoError(t, err)
}

func TestUpdatePayment_UnknownStatusRejected(t *testing.T) {
	repo := newFakeBookingRepo(reservedBooking())
	svc, _ := newTestService(repo, &fakeRoomRepo{}, day(2025, time.October, 1))

	_, err := svc.UpdatePayment(context.Background(), 21, &models.UpdatePaymentRequest{PaymentStatus: "gold"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdatePayment_RecordsMethod(t *testing.T) {
	repo := newFakeBookingRepo(reservedBooking())
	svc, _ := newTestService(repo, &fakeRoomRepo{}, day(2025, time.October, 1))

	method := "card"
	_, err := svc.UpdatePayment(context.Background(), 21, &models.UpdatePaymentRequest{
		PaymentStatus: "paid",
		PaymentMethod: &method,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, repo.paymentStatus)
	require.NotNil(t, repo.paymentMethod)
	assert.Equal(t, "card", *repo.paymentMethod)
}
