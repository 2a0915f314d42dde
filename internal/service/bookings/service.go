package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	bookingRepo "github.com/hotelharmony/hotel-ops-service/internal/infra/storage/booking"
	"github.com/hotelharmony/hotel-ops-service/internal/service/bookings/models"
)

// Service drives the booking lifecycle after creation: lookups, listings,
// cancellation, check-in, check-out and payment updates.
type Service struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	timer       TimeProvider
	logger      Logger
}

// NewService creates a booking lifecycle service.
func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	timer TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		timer:       timer,
		logger:      logger,
	}
}

// GetByID returns a booking. Guests may only see their own bookings, staff
// see all of them.
func (s *Service) GetByID(ctx context.Context, id int64, callerID int64, callerRole domain.Role) (*models.BookingResponse, error) {
	booking, err := s.getDomain(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if err := checkAccess(booking, callerID, callerRole); err != nil {
		s.logger.Warn("GetByID: access denied: booking_id=%d, user_id=%d", id, callerID)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetByCode returns a booking by its public reference code.
func (s *Service) GetByCode(ctx context.Context, code string, callerID int64, callerRole domain.Role) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByCode - repository error: %v", ErrInternal, err)
	}

	if err := checkAccess(booking, callerID, callerRole); err != nil {
		s.logger.Warn("GetByCode: access denied: code=%s, user_id=%d", code, callerID)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// ListGuestBookings returns a guest's booking history, optionally filtered
// by status. Cancelled and past stays are included.
func (s *Service) ListGuestBookings(ctx context.Context, guestID int64, status *string) (*models.BookingListResponse, error) {
	filter := domain.BookingFilter{
		GuestID:         &guestID,
		IncludeInactive: true,
	}

	if status != nil {
		domainStatus, err := models.ToDomainBookingStatus(*status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = &domainStatus
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListGuestBookings: repository error for guest=%d: %v", guestID, err)
		return nil, fmt.Errorf("%w: ListGuestBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// List returns bookings matching the staff-facing filter.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Arrivals returns the bookings due to check in on the given date.
func (s *Service) Arrivals(ctx context.Context, date string) (*models.BookingListResponse, error) {
	day, err := models.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.ArrivalsOn(ctx, day)
	if err != nil {
		s.logger.Error("Arrivals: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: Arrivals - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Departures returns the bookings due to check out on the given date.
func (s *Service) Departures(ctx context.Context, date string) (*models.BookingListResponse, error) {
	day, err := models.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.DeparturesOn(ctx, day)
	if err != nil {
		s.logger.Error("Departures: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: Departures - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Cancel cancels a reserved booking. Guests may only cancel their own.
func (s *Service) Cancel(ctx context.Context, id int64, callerID int64, callerRole domain.Role, req *models.CancelBookingRequest) error {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return fmt.Errorf("%w: cancellation reason is required", ErrInvalidInput)
	}
	if len(reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	booking, err := s.getDomain(ctx, id, "Cancel")
	if err != nil {
		return err
	}

	if err := checkAccess(booking, callerID, callerRole); err != nil {
		s.logger.Warn("Cancel: access denied: booking_id=%d, user_id=%d", id, callerID)
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: illegal transition from %s: booking_id=%d", booking.Status, id)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, id, reason); err != nil {
		s.logger.Error("Cancel: repository error for booking_id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking cancelled: booking_id=%d, by user_id=%d", id, callerID)
	return nil
}

// CheckIn moves a reserved booking to checked_in and marks the room
// occupied. Both writes happen in one transaction.
func (s *Service) CheckIn(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.getDomain(ctx, id, "CheckIn")
	if err != nil {
		return nil, err
	}

	if !booking.CanTransitionTo(domain.StatusCheckedIn) {
		s.logger.Warn("CheckIn: illegal transition from %s: booking_id=%d", booking.Status, id)
		return nil, ErrCannotCheckIn
	}

	today := domain.DateOnly(s.timer.Now())
	if today.Before(domain.DateOnly(booking.CheckIn)) {
		s.logger.Warn("CheckIn: too early: booking_id=%d, check_in=%s", id, booking.CheckIn.Format(domain.DateFormat))
		return nil, ErrCheckInTooEarly
	}
	if !booking.Covers(today) {
		s.logger.Warn("CheckIn: stay already over: booking_id=%d, check_out=%s", id, booking.CheckOut.Format(domain.DateFormat))
		return nil, ErrCheckInTooLate
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusCheckedIn); err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}
		if err := s.roomRepo.UpdateStatus(ctx, booking.RoomID, domain.RoomStatusOccupied); err != nil {
			return fmt.Errorf("update room status: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("CheckIn: transaction failed for booking_id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: CheckIn - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("CheckIn: guest checked in: booking_id=%d, room_id=%d", id, booking.RoomID)
	return s.get(ctx, id)
}

// CheckOut moves a checked-in booking to checked_out, frees the room and
// flags it for cleaning. Both writes happen in one transaction.
func (s *Service) CheckOut(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.getDomain(ctx, id, "CheckOut")
	if err != nil {
		return nil, err
	}

	if !booking.CanTransitionTo(domain.StatusCheckedOut) {
		s.logger.Warn("CheckOut: illegal transition from %s: booking_id=%d", booking.Status, id)
		return nil, ErrCannotCheckOut
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusCheckedOut); err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}
		if err := s.roomRepo.UpdateStatus(ctx, booking.RoomID, domain.RoomStatusAvailable); err != nil {
			return fmt.Errorf("update room status: %w", err)
		}
		if err := s.roomRepo.SetCleanliness(ctx, booking.RoomID, false); err != nil {
			return fmt.Errorf("flag room for cleaning: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("CheckOut: transaction failed for booking_id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: CheckOut - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("CheckOut: guest checked out: booking_id=%d, room_id=%d", id, booking.RoomID)
	return s.get(ctx, id)
}

// UpdatePayment sets the payment state of a booking.
func (s *Service) UpdatePayment(ctx context.Context, id int64, req *models.UpdatePaymentRequest) (*models.BookingResponse, error) {
	status, err := models.ToDomainPaymentStatus(req.PaymentStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.bookingRepo.UpdatePayment(ctx, id, status, req.PaymentMethod); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdatePayment: repository error for booking_id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdatePayment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePayment: payment updated: booking_id=%d, status=%s", id, status)
	return s.get(ctx, id)
}

func (s *Service) get(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.getDomain(ctx, id, "get")
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

func (s *Service) getDomain(ctx context.Context, id int64, method string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking_id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return booking, nil
}

// checkAccess enforces that guests only touch their own bookings.
func checkAccess(b *domain.Booking, callerID int64, callerRole domain.Role) error {
	if callerRole != domain.RoleGuest {
		return nil
	}
	if b.GuestID != callerID {
		return ErrAccessDenied
	}
	return nil
}
