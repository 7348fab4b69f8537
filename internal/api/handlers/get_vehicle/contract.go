package get_vehicle

import (
	"context"

	"github.com/carhive/FleetTimeline-Service/internal/service/fleet/models"
)

type FleetService interface {
	GetByID(ctx context.Context, id int64) (*models.VehicleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
