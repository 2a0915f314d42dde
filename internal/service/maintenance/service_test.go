package maintenance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	maintenanceRepo "github.com/hotelharmony/hotel-ops-service/internal/infra/storage/maintenance"
	"github.com/hotelharmony/hotel-ops-service/internal/service/maintenance/models"
	"github.com/hotelharmony/hotel-ops-service/pkg/ptr"
)

type fakeMaintenanceRepo struct {
	requests map[int64]*domain.MaintenanceRequest

	created     *domain.MaintenanceRequest
	assignedTo  int64
	started     bool
	resolution  string
	cancelled   bool
	newPriority domain.Priority
}

func newFakeMaintenanceRepo(requests ...*domain.MaintenanceRequest) *fakeMaintenanceRepo {
	m := make(map[int64]*domain.MaintenanceRequest, len(requests))
	for _, r := range requests {
		m[r.ID] = r
	}
	return &fakeMaintenanceRepo{requests: m}
}

func (f *fakeMaintenanceRepo) Create(_ context.Context, req *domain.MaintenanceRequest) (*domain.MaintenanceRequest, error) {
	out := *req
	out.ID = 42
	out.CreatedAt = time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC)
	f.created = &out
	f.requests[out.ID] = &out
	return &out, nil
}

func (f *fakeMaintenanceRepo) GetByID(_ context.Context, id int64) (*domain.MaintenanceRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, maintenanceRepo.ErrRequestNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeMaintenanceRepo) List(_ context.Context, _ domain.MaintenanceFilter, _ time.Time) ([]*domain.MaintenanceRequest, error) {
	out := make([]*domain.MaintenanceRequest, 0, len(f.requests))
	for _, r := range f.requests {
		out = append(out, r)
	}
	return out, nil
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

func (f *fakeMaintenanceRepo) Assign(_ context.Context, id int64, staffID int64) error {
	f.assignedTo = staffID
	if r, ok := f.requests[id]; ok {
		r.Status = domain.MaintenanceAssigned
		r.AssignedTo = &staffID
	}
	return nil
}

func (f *fakeMaintenanceRepo) Start(_ context.Context, id int64) error {
	f.started = true
	if r, ok := f.requests[id]; ok {
		r.Status = domain.MaintenanceInProgress
	}
	return nil
}

func (f *fakeMaintenanceRepo) Complete(_ context.Context, id int64, resolution string) error {
	f.resolution = resolution
	if r, ok := f.requests[id]; ok {
		r.Status = domain.MaintenanceCompleted
		r.ResolutionDetails = &resolution
	}
	return nil
}

func (f *fakeMaintenanceRepo) CancelRequest(_ context.Context, id int64, _ *string) error {
	f.cancelled = true
	if r, ok := f.requests[id]; ok {
		r.Status = domain.MaintenanceCancelled
	}
	return nil
}

func (f *fakeMaintenanceRepo) UpdatePriority(_ context.Context, id int64, priority domain.Priority) error {
	f.newPriority = priority
	if r, ok := f.requests[id]; ok {
		r.Priority = priority
	}
	return nil
}

type roomChange struct {
	id     int64
	status domain.RoomStatus
}

type fakeRoomRepo struct {
	statusChanges []roomChange
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	return &domain.Room{ID: id, Status: domain.RoomStatusAvailable}, nil
}

func (f *fakeRoomRepo) UpdateStatus(_ context.Context, id int64, status domain.RoomStatus) error {
	f.statusChanges = append(f.statusChanges, roomChange{id: id, status: status})
	return nil
}

type fakeUserRepo struct {
	user *domain.User
	err  error
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return f.user, f.err
}

type fakeBookingFinder struct {
	bookings []*domain.Booking
}

func (f *fakeBookingFinder) List(_ context.Context, _ domain.BookingFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
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

func openRequest() *domain.MaintenanceRequest {
	return &domain.MaintenanceRequest{
		ID:          5,
		RoomID:      7,
		IssueType:   domain.IssuePlumbing,
		Priority:    domain.PriorityHigh,
		Status:      domain.MaintenanceOpen,
		Description: "leaking sink",
		CreatedAt:   time.Date(2025, time.October, 1, 9, 0, 0, 0, time.UTC),
	}
}

func newTestService(repo *fakeMaintenanceRepo, rooms *fakeRoomRepo, users *fakeUserRepo, bookings *fakeBookingFinder) *Service {
	now := time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC)
	return NewService(repo, rooms, users, bookings, &fakeTxManager{}, &fixedTime{now: now}, nopLogger{})
}

func TestCreate_LinksCurrentStay(t *testing.T) {
	repo := newFakeMaintenanceRepo()
	bookings := &fakeBookingFinder{bookings: []*domain.Booking{{ID: 21, RoomID: 7, Status: domain.StatusCheckedIn}}}
	svc := newTestService(repo, &fakeRoomRepo{}, &fakeUserRepo{}, bookings)

	resp, err := svc.Create(context.Background(), &models.CreateRequest{
		RoomID:      7,
		IssueType:   "plumbing",
		Priority:    "high",
		Description: "leaking sink",
	}, 9)
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	require.NotNil(t, resp.BookingID)
	assert.Equal(t, int64(21), *resp.BookingID)
	require.NotNil(t, repo.created.ReportedBy)
	assert.Equal(t, int64(9), *repo.created.ReportedBy)
	assert.Equal(t, domain.MaintenanceOpen, repo.created.Status)
}

func TestCreate_BlockingRequestPullsRoom(t *testing.T) {
	repo := newFakeMaintenanceRepo()
	rooms := &fakeRoomRepo{}
	svc := newTestService(repo, rooms, &fakeUserRepo{}, &fakeBookingFinder{})

	_, err := svc.Create(context.Background(), &models.CreateRequest{
		RoomID:      7,
		IssueType:   "electrical",
		Priority:    "urgent",
		Description: "sparking outlet",
		BlocksRoom:  true,
	}, 9)
	require.NoError(t, err)

	require.Len(t, rooms.statusChanges, 1)
	assert.Equal(t, domain.RoomStatusMaintenance, rooms.statusChanges[0].status)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateRequest
	}{
		{"missing room", models.CreateRequest{IssueType: "plumbing", Priority: "high", Description: "x"}},
		{"unknown issue type", models.CreateRequest{RoomID: 7, IssueType: "roof", Priority: "high", Description: "x"}},
		{"unknown priority", models.CreateRequest{RoomID: 7, IssueType: "plumbing", Priority: "critical", Description: "x"}},
		{"blank description", models.CreateRequest{RoomID: 7, IssueType: "plumbing", Priority: "high", Description: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newFakeMaintenanceRepo(), &fakeRoomRepo{}, &fakeUserRepo{}, &fakeBookingFinder{})
			_, err := svc.Create(context.Background(), &tt.req, 9)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestAssign_ChecksRole(t *testing.T) {
	repo := newFakeMaintenanceRepo(openRequest())
	users := &fakeUserRepo{user: &domain.User{ID: 12, Role: domain.RoleGuest}}
	svc := newTestService(repo, &fakeRoomRepo{}, users, &fakeBookingFinder{})

	_, err := svc.Assign(context.Background(), 5, &models.AssignRequest{StaffID: 12})
	assert.ErrorIs(t, err, ErrNotMaintenanceStaff)
}

func TestAssign_MaintenanceWorker(t *testing.T) {
	repo := newFakeMaintenanceRepo(openRequest())
	users := &fakeUserRepo{user: &domain.User{ID: 12, Role: domain.RoleMaintenance}}
	svc := newTestService(repo, &fakeRoomRepo{}, users, &fakeBookingFinder{})

	resp, err := svc.Assign(context.Background(), 5, &models.AssignRequest{StaffID: 12})
	require.NoError(t, err)

	assert.Equal(t, int64(12), repo.assignedTo)
	assert.Equal(t, string(domain.MaintenanceAssigned), resp.Status)
}

func TestStart_RequiresAssigned(t *testing.T) {
	repo := newFakeMaintenanceRepo(openRequest())
	svc := newTestService(repo, &fakeRoomRepo{}, &fakeUserRepo{}, &fakeBookingFinder{})

	_, err := svc.Start(context.Background(), 5)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.False(t, repo.started)
}

func TestComplete_ReleasesBlockedRoom(t *testing.T) {
	r := openRequest()
	r.Status = domain.MaintenanceInProgress
	r.BlocksRoom = true
	repo := newFakeMaintenanceRepo(r)
	rooms := &fakeRoomRepo{}
	svc := newTestService(repo, rooms, &fakeUserRepo{}, &fakeBookingFinder{})

	resp, err := svc.Complete(context.Background(), 5, &models.CompleteRequest{Resolution: "replaced the trap"})
	require.NoError(t, err)

	assert.Equal(t, "replaced the trap", repo.resolution)
	assert.Equal(t, string(domain.MaintenanceCompleted), resp.Status)
	require.Len(t, rooms.statusChanges, 1)
	assert.Equal(t, domain.RoomStatusAvailable, rooms.statusChanges[0].status)
}

func TestComplete_RequiresResolution(t *testing.T) {
	r := openRequest()
	r.Status = domain.MaintenanceInProgress
	svc := newTestService(newFakeMaintenanceRepo(r), &fakeRoomRepo{}, &fakeUserRepo{}, &fakeBookingFinder{})

	_, err := svc.Complete(context.Background(), 5, &models.CompleteRequest{Resolution: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_TerminalRequestRejected(t *testing.T) {
	r := openRequest()
	r.Status = domain.MaintenanceCompleted
	svc := newTestService(newFakeMaintenanceRepo(r), &fakeRoomRepo{}, &fakeUserRepo{}, &fakeBookingFinder{})

	_, err := svc.Cancel(context.Background(), 5, &models.CancelRequest{Reason: ptr.Ptr("duplicate")})
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestUpdatePriority_EscalatesOpenRequest(t *testing.T) {
	repo := newFakeMaintenanceRepo(openRequest())
	svc := newTestService(repo, &fakeRoomRepo{}, &fakeUserRepo{}, &fakeBookingFinder{})

	resp, err := svc.UpdatePriority(context.Background(), 5, &models.UpdatePriorityRequest{Priority: "urgent"})
	require.NoError(t, err)

	assert.Equal(t, domain.PriorityUrgent, repo.newPriority)
	assert.Equal(t, "urgent", resp.Priority)
}

func TestGet_NotFound(t *testing.T) {
	svc := newTestService(newFakeMaintenanceRepo(), &fakeRoomRepo{}, &fakeUserRepo{}, &fakeBookingFinder{})

	_, err := svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestOverdueCount(t *testing.T) {
	overdue := openRequest()
	overdue.Priority = domain.PriorityUrgent
	overdue.CreatedAt = time.Date(2025, time.September, 30, 9, 0, 0, 0, time.UTC)
	fresh := openRequest()
	fresh.ID = 6

	svc := newTestService(newFakeMaintenanceRepo(overdue, fresh), &fakeRoomRepo{}, &fakeUserRepo{}, &fakeBookingFinder{})

	count, err := svc.OverdueCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
