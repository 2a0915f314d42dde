package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	"github.com/hotelharmony/hotel-ops-service/internal/service/reports/models"
)

// Service computes operational reports. Each report reads its tables inside
// a read-only transaction so the numbers describe one snapshot.
type Service struct {
	bookings    BookingRepository
	rooms       RoomRepository
	maintenance MaintenanceRepository
	txManager   TransactionManager
	timer       TimeProvider
	logger      Logger
}

// NewService creates a reporting service.
func NewService(
	bookings BookingRepository,
	rooms RoomRepository,
	maintenance MaintenanceRepository,
	txManager TransactionManager,
	timer TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookings:    bookings,
		rooms:       rooms,
		maintenance: maintenance,
		txManager:   txManager,
		timer:       timer,
		logger:      logger,
	}
}

// Occupancy reports how many room nights were sold over [startDate, endDate).
// Cancelled and no-show bookings do not count, completed stays do.
func (s *Service) Occupancy(ctx context.Context, startDate, endDate string) (*models.OccupancyReport, error) {
	start, end, err := parsePeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}

	var rooms []*domain.Room
	var bookings []*domain.Booking

	err = s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		rooms, err = s.rooms.List(ctx, domain.RoomFilter{})
		if err != nil {
			return fmt.Errorf("list rooms: %w", err)
		}
		bookings, err = s.bookings.List(ctx, domain.BookingFilter{
			StartDate:       &start,
			EndDate:         &end,
			IncludeInactive: true,
		})
		if err != nil {
			return fmt.Errorf("list bookings: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Occupancy: failed to load data for %s..%s: %v", startDate, endDate, err)
		return nil, fmt.Errorf("%w: Occupancy - load data: %v", ErrInternal, err)
	}

	nights := domain.NightsBetween(start, end)
	roomTypeByID := make(map[int64]domain.RoomType, len(rooms))
	byType := make(map[string]*models.OccupancyByType)
	for _, room := range rooms {
		roomTypeByID[room.ID] = room.Type
		entry := byType[string(room.Type)]
		if entry == nil {
			entry = &models.OccupancyByType{}
			byType[string(room.Type)] = entry
		}
		entry.Rooms++
	}

	occupiedNights := 0
	for _, b := range bookings {
		if !staysCount(b) {
			continue
		}
		overlap := b.OverlapNights(start, end)
		occupiedNights += overlap

		if roomType, ok := roomTypeByID[b.RoomID]; ok {
			byType[string(roomType)].OccupiedRoomNights += overlap
		}
	}

	availableNights := len(rooms) * nights
	for _, entry := range byType {
		if typeNights := entry.Rooms * nights; typeNights > 0 {
			entry.OccupancyRate = float64(entry.OccupiedRoomNights) / float64(typeNights)
		}
	}

	report := &models.OccupancyReport{
		StartDate:          startDate,
		EndDate:            endDate,
		TotalRooms:         len(rooms),
		AvailableRoomNight: availableNights,
		OccupiedRoomNights: occupiedNights,
		ByRoomType:         byType,
	}
	if availableNights > 0 {
		report.OccupancyRate = float64(occupiedNights) / float64(availableNights)
	}

	s.logger.Info("Occupancy: report for %s..%s: %d/%d room nights", startDate, endDate, occupiedNights, availableNights)
	return report, nil
}

// Revenue sums booking revenue over [startDate, endDate). A booking belongs
// to the period of its check-in date, only fully paid bookings count.
func (s *Service) Revenue(ctx context.Context, startDate, endDate string) (*models.RevenueReport, error) {
	start, end, err := parsePeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}

	var rooms []*domain.Room
	var bookings []*domain.Booking

	err = s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		rooms, err = s.rooms.List(ctx, domain.RoomFilter{})
		if err != nil {
			return fmt.Errorf("list rooms: %w", err)
		}
		bookings, err = s.bookings.List(ctx, domain.BookingFilter{
			StartDate:       &start,
			EndDate:         &end,
			IncludeInactive: true,
		})
		if err != nil {
			return fmt.Errorf("list bookings: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Revenue: failed to load data for %s..%s: %v", startDate, endDate, err)
		return nil, fmt.Errorf("%w: Revenue - load data: %v", ErrInternal, err)
	}

	roomTypeByID := make(map[int64]domain.RoomType, len(rooms))
	for _, room := range rooms {
		roomTypeByID[room.ID] = room.Type
	}

	report := &models.RevenueReport{
		StartDate:       startDate,
		EndDate:         endDate,
		ByRoomType:      make(map[string]float64),
		ByPaymentMethod: make(map[string]float64),
	}

	for _, b := range bookings {
		checkIn := domain.DateOnly(b.CheckIn)
		if checkIn.Before(start) || !checkIn.Before(end) {
			continue
		}
		if !staysCount(b) {
			continue
		}

		if b.PaymentStatus != domain.PaymentPaid {
			report.UnpaidBookings++
			continue
		}

		report.PaidBookings++
		report.TotalRevenue += b.TotalPrice
		if roomType, ok := roomTypeByID[b.RoomID]; ok {
			report.ByRoomType[string(roomType)] += b.TotalPrice
		}
		method := "unknown"
		if b.PaymentMethod != nil {
			method = *b.PaymentMethod
		}
		report.ByPaymentMethod[method] += b.TotalPrice
	}

	if report.PaidBookings > 0 {
		report.AveragePerBooking = report.TotalRevenue / float64(report.PaidBookings)
	}

	s.logger.Info("Revenue: report for %s..%s: %.2f over %d paid bookings",
		startDate, endDate, report.TotalRevenue, report.PaidBookings)
	return report, nil
}

// Maintenance counts the maintenance workload reported over [startDate, endDate).
func (s *Service) Maintenance(ctx context.Context, startDate, endDate string) (*models.MaintenanceReport, error) {
	start, end, err := parsePeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}

	now := s.timer.Now()
	var requests []*domain.MaintenanceRequest

	err = s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		requests, err = s.maintenance.List(ctx, domain.MaintenanceFilter{
			StartDate: &start,
			EndDate:   &end,
		}, now)
		if err != nil {
			return fmt.Errorf("list requests: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Maintenance: failed to load data for %s..%s: %v", startDate, endDate, err)
		return nil, fmt.Errorf("%w: Maintenance - load data: %v", ErrInternal, err)
	}

	report := &models.MaintenanceReport{
		StartDate:   startDate,
		EndDate:     endDate,
		ByStatus:    make(map[string]int),
		ByIssueType: make(map[string]int),
		ByPriority:  make(map[string]int),
	}

	completed := 0
	resolutionHours := 0.0
	for _, req := range requests {
		report.TotalRequests++
		report.ByStatus[string(req.Status)]++
		report.ByIssueType[string(req.IssueType)]++
		report.ByPriority[string(req.Priority)]++
		if req.IsOverdue(now) {
			report.Overdue++
		}
		if req.Status == domain.MaintenanceCompleted && req.CompletedAt != nil {
			completed++
			resolutionHours += req.CompletedAt.Sub(req.CreatedAt).Hours()
		}
	}
	if completed > 0 {
		report.AverageResolutionHours = resolutionHours / float64(completed)
	}

	s.logger.Info("Maintenance: report for %s..%s: %d requests, %d overdue",
		startDate, endDate, report.TotalRequests, report.Overdue)
	return report, nil
}

// Summary is the front-desk snapshot for one day: arrivals, departures,
// room state and the open maintenance workload.
func (s *Service) Summary(ctx context.Context, date string) (*models.DailySummary, error) {
	day, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q", ErrInvalidPeriod, date)
	}

	summary := &models.DailySummary{Date: date}
	now := s.timer.Now()

	err = s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		arrivals, err := s.bookings.ArrivalsOn(ctx, day)
		if err != nil {
			return fmt.Errorf("list arrivals: %w", err)
		}
		departures, err := s.bookings.DeparturesOn(ctx, day)
		if err != nil {
			return fmt.Errorf("list departures: %w", err)
		}
		rooms, err := s.rooms.List(ctx, domain.RoomFilter{})
		if err != nil {
			return fmt.Errorf("list rooms: %w", err)
		}
		requests, err := s.maintenance.List(ctx, domain.MaintenanceFilter{}, now)
		if err != nil {
			return fmt.Errorf("list maintenance requests: %w", err)
		}

		summary.Arrivals = len(arrivals)
		summary.Departures = len(departures)
		summary.TotalRooms = len(rooms)
		for _, room := range rooms {
			switch {
			case room.Status == domain.RoomStatusAvailable:
				summary.AvailableRooms++
			case room.IsOccupied():
				summary.OccupiedRooms++
			}
			if room.NeedsCleaning() {
				summary.RoomsToClean++
			}
		}
		for _, req := range requests {
			if req.IsTerminal() {
				continue
			}
			summary.OpenMaintenanceRequests++
			if req.Priority == domain.PriorityHigh || req.Priority == domain.PriorityUrgent {
				summary.HighPriorityMaintenanceRequests++
			}
			if req.IsOverdue(now) {
				summary.OverdueMaintenanceRequests++
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Summary: failed to load data for %s: %v", date, err)
		return nil, fmt.Errorf("%w: Summary - load data: %v", ErrInternal, err)
	}

	s.logger.Info("Summary: %s: %d arrivals, %d departures, %d/%d rooms occupied",
		date, summary.Arrivals, summary.Departures, summary.OccupiedRooms, summary.TotalRooms)
	return summary, nil
}

// staysCount reports whether the booking represents a real or expected stay.
func staysCount(b *domain.Booking) bool {
	return b.Status != domain.StatusCancelled && b.Status != domain.StatusNoShow
}

func parsePeriod(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(domain.DateFormat, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: bad start date %q", ErrInvalidPeriod, startDate)
	}
	end, err := time.Parse(domain.DateFormat, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: bad end date %q", ErrInvalidPeriod, endDate)
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start date must precede end date", ErrInvalidPeriod)
	}
	return start, end, nil
}
