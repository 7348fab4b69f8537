package get_stats

import (
	"context"

	"github.com/carhive/FleetTimeline-Service/internal/service/availability/models"
)

type AvailabilityService interface {
	Stats(ctx context.Context) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
