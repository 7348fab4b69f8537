package list_vehicles

import (
	"context"

	"github.com/carhive/FleetTimeline-Service/internal/service/fleet/models"
)

type FleetService interface {
	List(ctx context.Context) (*models.VehicleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
