package maintenance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	maintenanceRepo "github.com/hotelharmony/hotel-ops-service/internal/infra/storage/maintenance"
	roomRepo "github.com/hotelharmony/hotel-ops-service/internal/infra/storage/room"
	userRepo "github.com/hotelharmony/hotel-ops-service/internal/infra/storage/user"
	"github.com/hotelharmony/hotel-ops-service/internal/service/maintenance/models"
	"github.com/hotelharmony/hotel-ops-service/pkg/ptr"
)

// Service tracks maintenance requests from report to resolution.
type Service struct {
	requests  MaintenanceRepository
	rooms     RoomRepository
	users     UserRepository
	bookings  BookingFinder
	txManager TransactionManager
	timer     TimeProvider
	logger    Logger
}

// NewService creates a maintenance tracking service.
func NewService(
	requests MaintenanceRepository,
	rooms RoomRepository,
	users UserRepository,
	bookings BookingFinder,
	txManager TransactionManager,
	timer TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		requests:  requests,
		rooms:     rooms,
		users:     users,
		bookings:  bookings,
		txManager: txManager,
		timer:     timer,
		logger:    logger,
	}
}

// Create reports a new issue. If a guest is currently checked in to the
// room, the request is linked to that stay. A blocking request pulls the
// room out of inventory in the same transaction.
func (s *Service) Create(ctx context.Context, req *models.CreateRequest, reporterID int64) (*models.MaintenanceResponse, error) {
	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: invalid input for room_id=%d: %v", req.RoomID, err)
		return nil, err
	}

	if _, err := s.rooms.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Create: failed to load room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: Create - load room: %v", ErrInternal, err)
	}

	request := &domain.MaintenanceRequest{
		RoomID:      req.RoomID,
		BookingID:   s.findCurrentStay(ctx, req.RoomID),
		ReportedBy:  ptr.Ptr(reporterID),
		IssueType:   domain.IssueType(req.IssueType),
		Priority:    domain.Priority(req.Priority),
		Status:      domain.MaintenanceOpen,
		Description: strings.TrimSpace(req.Description),
		BlocksRoom:  req.BlocksRoom,
		Notes:       req.Notes,
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := s.requests.Create(ctx, request)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		request = created

		if request.BlocksRoom {
			if err := s.rooms.UpdateStatus(ctx, request.RoomID, domain.RoomStatusMaintenance); err != nil {
				return fmt.Errorf("block room: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Create: transaction failed for room_id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: Create - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Create: request created: id=%d, room_id=%d, priority=%s, blocks_room=%t",
		request.ID, request.RoomID, request.Priority, request.BlocksRoom)
	return models.FromDomainRequest(request, s.timer.Now()), nil
}

// Get returns the request with the given id.
func (s *Service) Get(ctx context.Context, id int64) (*models.MaintenanceResponse, error) {
	request, err := s.getDomain(ctx, id, "Get")
	if err != nil {
		return nil, err
	}
	return models.FromDomainRequest(request, s.timer.Now()), nil
}

// List returns requests matching the filter.
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.MaintenanceListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.timer.Now()
	requests, err := s.requests.List(ctx, filter, now)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRequestList(requests, now), nil
}

// Assign hands the request to a staff member who can work it. Reassigning
// an already assigned request is allowed.
func (s *Service) Assign(ctx context.Context, id int64, req *models.AssignRequest) (*models.MaintenanceResponse, error) {
	request, err := s.getDomain(ctx, id, "Assign")
	if err != nil {
		return nil, err
	}

	if !request.CanBeAssigned() {
		s.logger.Warn("Assign: illegal transition from %s: request_id=%d", request.Status, id)
		return nil, ErrIllegalTransition
	}

	staff, err := s.users.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("Assign: failed to load user id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: Assign - load user: %v", ErrInternal, err)
	}

	if !staff.CanWorkMaintenance() {
		s.logger.Warn("Assign: user id=%d has role %s, cannot work requests", staff.ID, staff.Role)
		return nil, ErrNotMaintenanceStaff
	}

	if err := s.requests.Assign(ctx, id, req.StaffID); err != nil {
		s.logger.Error("Assign: repository error for request_id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Assign - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Assign: request id=%d assigned to staff id=%d", id, req.StaffID)
	return s.Get(ctx, id)
}

// Start begins work on an assigned request.
func (s *Service) Start(ctx context.Context, id int64) (*models.MaintenanceResponse, error) {
	request, err := s.getDomain(ctx, id, "Start")
	if err != nil {
		return nil, err
	}

	if !request.CanStart() {
		s.logger.Warn("Start: illegal transition from %s: request_id=%d", request.Status, id)
		return nil, ErrIllegalTransition
	}

	if err := s.requests.Start(ctx, id); err != nil {
		s.logger.Error("Start: repository error for request_id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Start - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Start: work started on request id=%d", id)
	return s.Get(ctx, id)
}

// Complete resolves the request. A blocking request puts its room back into
// inventory in the same transaction.
func (s *Service) Complete(ctx context.Context, id int64, req *models.CompleteRequest) (*models.MaintenanceResponse, error) {
	resolution := strings.TrimSpace(req.Resolution)
	if resolution == "" {
		return nil, fmt.Errorf("%w: resolution is required", ErrInvalidInput)
	}

	request, err := s.getDomain(ctx, id, "Complete")
	if err != nil {
		return nil, err
	}

	if !request.CanComplete() {
		s.logger.Warn("Complete: illegal transition from %s: request_id=%d", request.Status, id)
		return nil, ErrIllegalTransition
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.requests.Complete(ctx, id, resolution); err != nil {
			return fmt.Errorf("complete request: %w", err)
		}
		if request.BlocksRoom {
			if err := s.rooms.UpdateStatus(ctx, request.RoomID, domain.RoomStatusAvailable); err != nil {
				return fmt.Errorf("release room: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Complete: transaction failed for request_id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Complete - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: request id=%d resolved", id)
	return s.Get(ctx, id)
}

// Cancel drops the request. A blocking request releases its room.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelRequest) (*models.MaintenanceResponse, error) {
	request, err := s.getDomain(ctx, id, "Cancel")
	if err != nil {
		return nil, err
	}

	if !request.CanBeCancelled() {
		s.logger.Warn("Cancel: illegal transition from %s: request_id=%d", request.Status, id)
		return nil, ErrIllegalTransition
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.requests.CancelRequest(ctx, id, req.Reason); err != nil {
			return fmt.Errorf("cancel request: %w", err)
		}
		if request.BlocksRoom {
			if err := s.rooms.UpdateStatus(ctx, request.RoomID, domain.RoomStatusAvailable); err != nil {
				return fmt.Errorf("release room: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Cancel: transaction failed for request_id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: request id=%d cancelled", id)
	return s.Get(ctx, id)
}

// UpdatePriority changes the urgency of an unresolved request.
func (s *Service) UpdatePriority(ctx context.Context, id int64, req *models.UpdatePriorityRequest) (*models.MaintenanceResponse, error) {
	priority, err := models.ToDomainPriority(req.Priority)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	request, err := s.getDomain(ctx, id, "UpdatePriority")
	if err != nil {
		return nil, err
	}

	if request.IsTerminal() {
		s.logger.Warn("UpdatePriority: request id=%d already %s", id, request.Status)
		return nil, ErrIllegalTransition
	}

	if err := s.requests.UpdatePriority(ctx, id, priority); err != nil {
		s.logger.Error("UpdatePriority: repository error for request_id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdatePriority - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePriority: request id=%d set to %s", id, priority)
	return s.Get(ctx, id)
}

// OverdueCount returns how many unresolved requests missed their SLA.
func (s *Service) OverdueCount(ctx context.Context) (int, error) {
	count, err := s.requests.CountOverdue(ctx, s.timer.Now())
	if err != nil {
		s.logger.Error("OverdueCount: repository error: %v", err)
		return 0, fmt.Errorf("%w: OverdueCount - repository error: %v", ErrInternal, err)
	}
	return count, nil
}

// findCurrentStay links the request to the checked-in booking for the room,
// when there is one. A lookup failure only loses the link, the report still
// goes through.
func (s *Service) findCurrentStay(ctx context.Context, roomID int64) *int64 {
	status := domain.StatusCheckedIn
	bookings, err := s.bookings.List(ctx, domain.BookingFilter{
		RoomID: &roomID,
		Status: &status,
	})
	if err != nil {
		s.logger.Warn("findCurrentStay: failed to look up stay for room_id=%d: %v", roomID, err)
		return nil
	}
	if len(bookings) == 0 {
		return nil
	}
	return &bookings[0].ID
}

func (s *Service) getDomain(ctx context.Context, id int64, method string) (*domain.MaintenanceRequest, error) {
	request, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, maintenanceRepo.ErrRequestNotFound) {
			return nil, ErrRequestNotFound
		}
		s.logger.Error("%s: repository error for request_id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return request, nil
}

func validateCreate(req *models.CreateRequest) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: room id is required", ErrInvalidInput)
	}
	if !domain.ValidIssueType(req.IssueType) {
		return fmt.Errorf("%w: unknown issue type %q", ErrInvalidInput, req.IssueType)
	}
	if !domain.ValidPriority(req.Priority) {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, req.Priority)
	}
	if strings.TrimSpace(req.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if len(req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description too long", ErrInvalidInput)
	}
	return nil
}
