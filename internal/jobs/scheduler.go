package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
)

const sweepTimeout = 30 * time.Second

// Scheduler runs the background sweeps: marking no-show bookings and
// refreshing the overdue maintenance gauge.
type Scheduler struct {
	cron     *cron.Cron
	bookings NoShowMarker
	requests OverdueCounter
	metrics  Metrics
	timer    TimeProvider
	logger   Logger
}

// NewScheduler creates a scheduler, jobs are registered via Register.
func NewScheduler(
	bookings NoShowMarker,
	requests OverdueCounter,
	metrics Metrics,
	timer TimeProvider,
	logger Logger,
) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		bookings: bookings,
		requests: requests,
		metrics:  metrics,
		timer:    timer,
		logger:   logger,
	}
}

// Register wires the sweeps onto their cron schedules.
func (s *Scheduler) Register(noShowSchedule, overdueSchedule string) error {
	if _, err := s.cron.AddFunc(noShowSchedule, s.sweepNoShows); err != nil {
		return fmt.Errorf("register no-show sweep: %w", err)
	}
	if _, err := s.cron.AddFunc(overdueSchedule, s.sweepOverdue); err != nil {
		return fmt.Errorf("register overdue sweep: %w", err)
	}
	return nil
}

// Start launches the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("jobs: scheduler started")
}

// Stop halts the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("jobs: scheduler stopped")
}

// sweepNoShows turns reserved bookings whose check-in day has passed into
// no-shows. Runs once a night after the front desk closes out arrivals.
func (s *Scheduler) sweepNoShows() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	today := domain.DateOnly(s.timer.Now())
	ids, err := s.bookings.MarkNoShows(ctx, today)
	if err != nil {
		s.logger.Error("jobs: no-show sweep failed: %v", err)
		return
	}

	if len(ids) > 0 {
		s.logger.Info("jobs: marked %d bookings as no-show: %v", len(ids), ids)
	}
}

// sweepOverdue refreshes the overdue maintenance gauge.
func (s *Scheduler) sweepOverdue() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	count, err := s.requests.OverdueCount(ctx)
	if err != nil {
		s.logger.Error("jobs: overdue sweep failed: %v", err)
		return
	}

	s.metrics.SetMaintenanceOverdue(count)
	if count > 0 {
		s.logger.Warn("jobs: %d maintenance requests are past their deadline", count)
	}
}
