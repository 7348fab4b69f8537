package get_fleet_availability

import (
	"context"
	"time"

	"github.com/carhive/FleetTimeline-Service/internal/service/availability/models"
)

type AvailabilityService interface {
	FleetOverview(ctx context.Context) (*models.FleetOverviewResponse, error)
	FleetAvailability(ctx context.Context, vehicleIDs []int64, startDate, endDate time.Time) (*models.FleetAvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
