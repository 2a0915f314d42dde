package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	bookingRepo "github.com/hotelharmony/hotel-ops-service/internal/infra/storage/booking"
	"github.com/hotelharmony/hotel-ops-service/pkg/ptr"
)

type fakeBookingRepo struct {
	booking *domain.Booking
	getErr  error
	active  []*domain.Booking
	updated *domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copied := *f.booking
	return &copied, nil
}

func (f *fakeBookingRepo) ListActiveForRoom(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Booking, error) {
	return f.active, nil
}

func (f *fakeBookingRepo) UpdateStay(_ context.Context, b *domain.Booking) error {
	copied := *b
	f.updated = &copied
	return nil
}

type fakeRoomRepo struct {
	room *domain.Room
}

func (f *fakeRoomRepo) GetByID(_ context.Context, _ int64) (*domain.Room, error) {
	return f.room, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
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
		ID:         11,
		Code:       "ref-11",
		GuestID:    3,
		RoomID:     7,
		CheckIn:    day(2025, time.October, 10),
		CheckOut:   day(2025, time.October, 13),
		Guests:     2,
		TotalPrice: 450,
		Status:     domain.StatusReserved,
	}
}

func newTestUseCase(bookings *fakeBookingRepo) *UseCase {
	return &UseCase{
		bookingRepo: bookings,
		roomRepo: &fakeRoomRepo{room: &domain.Room{
			ID:          7,
			Capacity:    3,
			NightlyRate: 150,
			Status:      domain.RoomStatusAvailable,
		}},
		txManager:    &fakeTxManager{},
		timeProvider: &fixedTime{now: day(2025, time.October, 1)},
		logger:       nopLogger{},
	}
}

func TestExecute_ReschedulesAndReprices(t *testing.T) {
	bookings := &fakeBookingRepo{booking: reservedBooking()}
	uc := newTestUseCase(bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:  11,
		CallerID:   3,
		CallerRole: domain.RoleGuest,
		CheckIn:    ptr.Ptr(day(2025, time.October, 12)),
		CheckOut:   ptr.Ptr(day(2025, time.October, 17)),
	})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.Nights)
	assert.Equal(t, 750.0, resp.TotalPrice)
	require.NotNil(t, bookings.updated)
	assert.Equal(t, day(2025, time.October, 12), bookings.updated.CheckIn)
}

func TestExecute_PartialUpdateKeepsDates(t *testing.T) {
	bookings := &fakeBookingRepo{booking: reservedBooking()}
	uc := newTestUseCase(bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:  11,
		CallerID:   3,
		CallerRole: domain.RoleGuest,
		Guests:     ptr.Ptr(3),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Guests)
	assert.Equal(t, day(2025, time.October, 10), resp.CheckIn)
	assert.Equal(t, 450.0, resp.TotalPrice)
}

func TestExecute_GuestCannotTouchOthersBooking(t *testing.T) {
	bookings := &fakeBookingRepo{booking: reservedBooking()}
	uc := newTestUseCase(bookings)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:  11,
		CallerID:   99,
		CallerRole: domain.RoleGuest,
		Guests:     ptr.Ptr(1),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_StaffMayTouchAnyBooking(t *testing.T) {
	bookings := &fakeBookingRepo{booking: reservedBooking()}
	uc := newTestUseCase(bookings)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:  11,
		CallerID:   99,
		CallerRole: domain.RoleReceptionist,
		Guests:     ptr.Ptr(1),
	})
	assert.NoError(t, err)
}

func TestExecute_CheckedInBookingIsFrozen(t *testing.T) {
	b := reservedBooking()
	b.Status = domain.StatusCheckedIn
	uc := newTestUseCase(&fakeBookingRepo{booking: b})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:  11,
		CallerID:   3,
		CallerRole: domain.RoleGuest,
		Guests:     ptr.Ptr(1),
	})
	assert.ErrorIs(t, err, ErrCannotUpdate)
}

func TestExecute_OwnDatesDoNotConflict(t *testing.T) {
	b := reservedBooking()
	bookings := &fakeBookingRepo{
		booking: b,
		active:  []*domain.Booking{b},
	}
	uc := newTestUseCase(bookings)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:  11,
		CallerID:   3,
		CallerRole: domain.RoleGuest,
		CheckOut:   ptr.Ptr(day(2025, time.October, 14)),
	})
	assert.NoError(t, err)
}

func TestExecute_NewDatesCollideWithAnotherStay(t *testing.T) {
	bookings := &fakeBookingRepo{
		booking: reservedBooking(),
		active: []*domain.Booking{
			{
				ID:       12,
				Status:   domain.StatusReserved,
				CheckIn:  day(2025, time.October, 14),
				CheckOut: day(2025, time.October, 18),
			},
		},
	}
	uc := newTestUseCase(bookings)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:  11,
		CallerID:   3,
		CallerRole: domain.RoleGuest,
		CheckOut:   ptr.Ptr(day(2025, time.October, 16)),
	})
	assert.ErrorIs(t, err, ErrRoomNotAvailable)
	assert.Nil(t, bookings.updated)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:  404,
		CallerID:   3,
		CallerRole: domain.RoleGuest,
		Guests:     ptr.Ptr(1),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_NoFieldsRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{booking: reservedBooking()})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:  11,
		CallerID:   3,
		CallerRole: domain.RoleGuest,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
