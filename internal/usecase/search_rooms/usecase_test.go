package search_rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	"github.com/hotelharmony/hotel-ops-service/pkg/ptr"
)

type fakeRoomRepo struct {
	rooms      []*domain.Room
	lastFilter domain.RoomSearchFilter
}

func (f *fakeRoomRepo) FindAvailableBetween(_ context.Context, _, _ time.Time, filter domain.RoomSearchFilter) ([]*domain.Room, error) {
	f.lastFilter = filter
	return f.rooms, nil
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

func newTestUseCase(repo *fakeRoomRepo) *UseCase {
	return &UseCase{
		roomRepo:     repo,
		timeProvider: &fixedTime{now: day(2025, time.October, 1)},
		logger:       nopLogger{},
	}
}

func TestExecute_PricesEachRoomForTheStay(t *testing.T) {
	repo := &fakeRoomRepo{
		rooms: []*domain.Room{
			{ID: 1, Number: "101", Type: domain.RoomTypeStandard, Capacity: 2, NightlyRate: 100},
			{ID: 2, Number: "305", Type: domain.RoomTypeSuite, Capacity: 4, NightlyRate: 280},
		},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		CheckIn:  day(2025, time.October, 10),
		CheckOut: day(2025, time.October, 13),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Nights)
	require.Len(t, resp.Rooms, 2)
	assert.Equal(t, 300.0, resp.Rooms[0].TotalPrice)
	assert.Equal(t, 840.0, resp.Rooms[1].TotalPrice)
}

func TestExecute_PassesFiltersThrough(t *testing.T) {
	repo := &fakeRoomRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		CheckIn:  day(2025, time.October, 10),
		CheckOut: day(2025, time.October, 12),
		Guests:   ptr.Ptr(3),
		RoomType: ptr.Ptr("suite"),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.Guests)
	assert.Equal(t, 3, *repo.lastFilter.Guests)
	require.NotNil(t, repo.lastFilter.Type)
	assert.Equal(t, domain.RoomTypeSuite, *repo.lastFilter.Type)
}

func TestExecute_RejectsUnknownRoomType(t *testing.T) {
	uc := newTestUseCase(&fakeRoomRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		CheckIn:  day(2025, time.October, 10),
		CheckOut: day(2025, time.October, 12),
		RoomType: ptr.Ptr("penthouse"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RejectsPastCheckIn(t *testing.T) {
	uc := newTestUseCase(&fakeRoomRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		CheckIn:  day(2025, time.September, 20),
		CheckOut: day(2025, time.September, 25),
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_RejectsZeroNightStay(t *testing.T) {
	uc := newTestUseCase(&fakeRoomRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		CheckIn:  day(2025, time.October, 10),
		CheckOut: day(2025, time.October, 10),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
