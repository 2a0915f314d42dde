package reports

import (
	"context"
	"time"

	"github.com/hotelharmony/hotel-ops-service/internal/service/reports/models"
)

type ReportService interface {
	Occupancy(ctx context.Context, startDate, endDate string) (*models.OccupancyReport, error)
	Revenue(ctx context.Context, startDate, endDate string) (*models.RevenueReport, error)
	Maintenance(ctx context.Context, startDate, endDate string) (*models.MaintenanceReport, error)
	Summary(ctx context.Context, date string) (*models.DailySummary, error)
}

// TimeProvider supplies the current time, the summary date defaults to today.
type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
