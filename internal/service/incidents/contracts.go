package incidents

import (
	"context"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
)

// IncidentRepository интерфейс репозитория инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, inc *domain.Incident) (*domain.Incident, error)
	GetByID(ctx context.Context, id int64) (*domain.Incident, error)
	ListByVehicle(ctx context.Context, vehicleID int64) ([]*domain.Incident, error)
	AddFollowUp(ctx context.Context, id int64, notes string, status domain.IncidentStatus) error
	Delete(ctx context.Context, id int64) error
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
