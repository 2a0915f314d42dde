package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	roomRepo "github.com/hotelharmony/hotel-ops-service/internal/infra/storage/room"
	"github.com/hotelharmony/hotel-ops-service/internal/service/rooms/models"
)

// Service manages the room inventory.
type Service struct {
	roomRepo RoomRepository
	bookings BookingCounter
	logger   Logger
}

// NewService creates a room inventory service.
func NewService(rooms RoomRepository, bookings BookingCounter, logger Logger) *Service {
	return &Service{
		roomRepo: rooms,
		bookings: bookings,
		logger:   logger,
	}
}

// Create adds a room to the inventory. New rooms start available and clean.
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: invalid input for room number=%s: %v", req.Number, err)
		return nil, err
	}

	room := &domain.Room{
		Number:      strings.TrimSpace(req.Number),
		Type:        domain.RoomType(req.Type),
		Capacity:    req.Capacity,
		NightlyRate: req.NightlyRate,
		Floor:       req.Floor,
		Status:      domain.RoomStatusAvailable,
		IsClean:     true,
		Description: req.Description,
		Amenities:   req.Amenities,
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrDuplicateNumber) {
			s.logger.Warn("Create: room number taken: %s", req.Number)
			return nil, ErrNumberTaken
		}
		s.logger.Error("Create: repository error for number=%s: %v", req.Number, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: room created: id=%d, number=%s, type=%s", created.ID, created.Number, created.Type)
	return models.FromDomainRoom(created), nil
}

// Get returns the room with the given id.
func (s *Service) Get(ctx context.Context, id int64) (*models.RoomResponse, error) {
	room, err := s.getDomain(ctx, id, "Get")
	if err != nil {
		return nil, err
	}
	return models.FromDomainRoom(room), nil
}

// GetByNumber returns the room with the given room number.
func (s *Service) GetByNumber(ctx context.Context, number string) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByNumber: repository error for number=%s: %v", number, err)
		return nil, fmt.Errorf("%w: GetByNumber - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRoom(room), nil
}

// List returns rooms matching the filter.
func (s *Service) List(ctx context.Context, req *models.ListRoomsRequest) (*models.RoomListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	rooms, err := s.roomRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoomList(rooms), nil
}

// Update applies a partial update to a room. The room number is immutable.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	room, err := s.getDomain(ctx, id, "Update")
	if err != nil {
		return nil, err
	}

	if err := applyUpdate(room, req); err != nil {
		s.logger.Warn("Update: invalid input for room id=%d: %v", id, err)
		return nil, err
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: room updated: id=%d", id)
	return s.Get(ctx, id)
}

// Delete removes a room from the inventory. Rooms with active bookings
// cannot be deleted.
func (s *Service) Delete(ctx context.Context, id int64) error {
	count, err := s.bookings.CountActiveForRoom(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to count bookings for room id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - count bookings: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("Delete: room id=%d still has %d active bookings", id, count)
		return ErrRoomHasBookings
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return ErrRoomNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: room deleted: id=%d", id)
	return nil
}

// RecordCleaning marks the room as cleaned now.
func (s *Service) RecordCleaning(ctx context.Context, id int64) (*models.RoomResponse, error) {
	if err := s.roomRepo.SetCleanliness(ctx, id, true); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("RecordCleaning: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: RecordCleaning - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RecordCleaning: room cleaned: id=%d", id)
	return s.Get(ctx, id)
}

// SetStatus is the manual status override for staff. Lifecycle transitions
// normally come from check-ins, check-outs and maintenance work.
func (s *Service) SetStatus(ctx context.Context, id int64, status string) (*models.RoomResponse, error) {
	domainStatus, err := models.ToDomainRoomStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.roomRepo.UpdateStatus(ctx, id, domainStatus); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("SetStatus: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetStatus: room id=%d set to %s", id, domainStatus)
	return s.Get(ctx, id)
}

func (s *Service) getDomain(ctx context.Context, id int64, method string) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("%s: repository error for room id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return room, nil
}

func validateCreate(req *models.CreateRoomRequest) error {
	if strings.TrimSpace(req.Number) == "" {
		return fmt.Errorf("%w: room number is required", ErrInvalidInput)
	}
	if !domain.ValidRoomType(req.Type) {
		return fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, req.Type)
	}
	if req.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	if req.NightlyRate <= 0 {
		return fmt.Errorf("%w: nightly rate must be positive", ErrInvalidInput)
	}
	return nil
}

func applyUpdate(room *domain.Room, req *models.UpdateRoomRequest) error {
	if req.Type != nil {
		roomType, err := models.ToDomainRoomType(*req.Type)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		room.Type = roomType
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
		}
		room.Capacity = *req.Capacity
	}
	if req.NightlyRate != nil {
		if *req.NightlyRate <= 0 {
			return fmt.Errorf("%w: nightly rate must be positive", ErrInvalidInput)
		}
		room.NightlyRate = *req.NightlyRate
	}
	if req.Floor != nil {
		room.Floor = req.Floor
	}
	if req.Description != nil {
		room.Description = req.Description
	}
	if req.Amenities != nil {
		room.Amenities = *req.Amenities
	}
	return nil
}
