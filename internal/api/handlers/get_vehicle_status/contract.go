package get_vehicle_status

import (
	"context"

	"github.com/carhive/FleetTimeline-Service/internal/service/availability/models"
)

type AvailabilityService interface {
	CurrentStatus(ctx context.Context, vehicleID int64) (*models.VehicleStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
