package check_availability

import (
	"context"
	"time"

	"github.com/carhive/FleetTimeline-Service/internal/service/availability/models"
)

type AvailabilityService interface {
	CheckAvailability(ctx context.Context, vehicleID int64, startDate, endDate time.Time) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
