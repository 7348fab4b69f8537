package get_vehicle_maintenance

import (
	"context"

	"github.com/carhive/FleetTimeline-Service/internal/service/timeline/models"
)

type TimelineService interface {
	ListMaintenanceByVehicle(ctx context.Context, vehicleID int64) (*models.MaintenanceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
