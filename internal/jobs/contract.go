package jobs

import (
	"context"
	"time"
)

type NoShowMarker interface {
	MarkNoShows(ctx context.Context, before time.Time) ([]int64, error)
}

type OverdueCounter interface {
	OverdueCount(ctx context.Context) (int, error)
}

type Metrics interface {
	SetMaintenanceOverdue(count int)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
