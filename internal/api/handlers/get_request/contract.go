package get_request

import (
	"context"

	"github.com/hotelharmony/hotel-ops-service/internal/service/maintenance/models"
)

type MaintenanceService interface {
	Get(ctx context.Context, id int64) (*models.MaintenanceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
