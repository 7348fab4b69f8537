package get_vehicle_incidents

import (
	"context"

	"github.com/carhive/FleetTimeline-Service/internal/service/incidents/models"
)

type IncidentService interface {
	ListByVehicle(ctx context.Context, vehicleID int64) (*models.IncidentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
