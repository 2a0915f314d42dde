package rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	roomRepo "github.com/hotelharmony/hotel-ops-service/internal/infra/storage/room"
	"github.com/hotelharmony/hotel-ops-service/internal/service/rooms/models"
	"github.com/hotelharmony/hotel-ops-service/pkg/ptr"
)

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room

	createErr   error
	created     *domain.Room
	deletedID   int64
	cleanliness map[int64]bool
}

func newFakeRoomRepo(rooms ...*domain.Room) *fakeRoomRepo {
	m := make(map[int64]*domain.Room, len(rooms))
	for _, r := range rooms {
		m[r.ID] = r
	}
	return &fakeRoomRepo{rooms: m, cleanliness: make(map[int64]bool)}
}

func (f *fakeRoomRepo) Create(_ context.Context, room *domain.Room) (*domain.Room, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *room
	out.ID = 42
	out.CreatedAt = time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC)
	f.created = &out
	f.rooms[out.ID] = &out
	return &out, nil
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRoomRepo) GetByNumber(_ context.Context, number string) (*domain.Room, error) {
	for _, r := range f.rooms {
		if r.Number == number {
			copied := *r
			return &copied, nil
		}
	}
	return nil, roomRepo.ErrRoomNotFound
}

func (f *fakeRoomRepo) List(_ context.Context, _ domain.RoomFilter) ([]*domain.Room, error) {
	out := make([]*domain.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, room *domain.Room) error {
	if _, ok := f.rooms[room.ID]; !ok {
		return roomRepo.ErrRoomNotFound
	}
	copied := *room
	f.rooms[room.ID] = &copied
	return nil
}

func (f *fakeRoomRepo) UpdateStatus(_ context.Context, id int64, status domain.RoomStatus) error {
	r, ok := f.rooms[id]
	if !ok {
		return roomRepo.ErrRoomNotFound
	}
	r.Status = status
	return nil
}

func (f *fakeRoomRepo) SetCleanliness(_ context.Context, id int64, clean bool) error {
	if _, ok := f.rooms[id]; !ok {
		return roomRepo.ErrRoomNotFound
	}
	f.cleanliness[id] = clean
	f.rooms[id].IsClean = clean
	return nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.rooms[id]; !ok {
		return roomRepo.ErrRoomNotFound
	}
	f.deletedID = id
	delete(f.rooms, id)
	return nil
}

type fakeBookingCounter struct {
	count int
}

func (f *fakeBookingCounter) CountActiveForRoom(_ context.Context, _ int64) (int, error) {
	return f.count, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func suiteRoom() *domain.Room {
	return &domain.Room{
		ID:          7,
		Number:      "305",
		Type:        domain.RoomTypeSuite,
		Capacity:    4,
		NightlyRate: 280,
		Status:      domain.RoomStatusAvailable,
		IsClean:     false,
	}
}

func newTestService(repo *fakeRoomRepo, bookings *fakeBookingCounter) *Service {
	return NewService(repo, bookings, nopLogger{})
}

func TestCreate_NewRoomStartsAvailableAndClean(t *testing.T) {
	repo := newFakeRoomRepo()
	svc := newTestService(repo, &fakeBookingCounter{})

	resp, err := svc.Create(context.Background(), &models.CreateRoomRequest{
		Number:      " 204 ",
		Type:        "standard",
		Capacity:    2,
		NightlyRate: 150,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "204", resp.Number)
	assert.Equal(t, string(domain.RoomStatusAvailable), resp.Status)
	assert.True(t, repo.created.IsClean)
}

func TestCreate_DuplicateNumber(t *testing.T) {
	repo := newFakeRoomRepo()
	repo.createErr = roomRepo.ErrDuplicateNumber
	svc := newTestService(repo, &fakeBookingCounter{})

	_, err := svc.Create(context.Background(), &models.CreateRoomRequest{
		Number:      "204",
		Type:        "standard",
		Capacity:    2,
		NightlyRate: 150,
	})
	assert.ErrorIs(t, err, ErrNumberTaken)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateRoomRequest
	}{
		{"blank number", models.CreateRoomRequest{Number: "  ", Type: "standard", Capacity: 2, NightlyRate: 150}},
		{"unknown type", models.CreateRoomRequest{Number: "204", Type: "penthouse", Capacity: 2, NightlyRate: 150}},
		{"zero capacity", models.CreateRoomRequest{Number: "204", Type: "standard", Capacity: 0, NightlyRate: 150}},
		{"free room", models.CreateRoomRequest{Number: "204", Type: "standard", Capacity: 2, NightlyRate: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newFakeRoomRepo(), &fakeBookingCounter{})
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate_PartialUpdate(t *testing.T) {
	repo := newFakeRoomRepo(suiteRoom())
	svc := newTestService(repo, &fakeBookingCounter{})

	resp, err := svc.Update(context.Background(), 7, &models.UpdateRoomRequest{
		NightlyRate: ptr.Ptr(320.0),
	})
	require.NoError(t, err)

	assert.Equal(t, 320.0, resp.NightlyRate)
	assert.Equal(t, "305", resp.Number)
	assert.Equal(t, 4, resp.Capacity)
}

func TestUpdate_RejectsNonPositiveRate(t *testing.T) {
	svc := newTestService(newFakeRoomRepo(suiteRoom()), &fakeBookingCounter{})

	_, err := svc.Update(context.Background(), 7, &models.UpdateRoomRequest{
		NightlyRate: ptr.Ptr(-5.0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_BlockedByActiveBookings(t *testing.T) {
	repo := newFakeRoomRepo(suiteRoom())
	svc := newTestService(repo, &fakeBookingCounter{count: 2})

	err := svc.Delete(context.Background(), 7)
	assert.ErrorIs(t, err, ErrRoomHasBookings)
	assert.Contains(t, repo.rooms, int64(7))
}

func TestDelete_EmptyRoom(t *testing.T) {
	repo := newFakeRoomRepo(suiteRoom())
	svc := newTestService(repo, &fakeBookingCounter{})

	err := svc.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.deletedID)
}

func TestRecordCleaning(t *testing.T) {
	repo := newFakeRoomRepo(suiteRoom())
	svc := newTestService(repo, &fakeBookingCounter{})

	resp, err := svc.RecordCleaning(context.Background(), 7)
	require.NoError(t, err)

	assert.True(t, resp.IsClean)
	assert.True(t, repo.cleanliness[7])
}

func TestSetStatus_UnknownStatusRejected(t *testing.T) {
	svc := newTestService(newFakeRoomRepo(suiteRoom()), &fakeBookingCounter{})

	_, err := svc.SetStatus(context.Background(), 7, "closed")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByNumber(t *testing.T) {
	svc := newTestService(newFakeRoomRepo(suiteRoom()), &fakeBookingCounter{})

	resp, err := svc.GetByNumber(context.Background(), "305")
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)

	_, err = svc.GetByNumber(context.Background(), "999")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
