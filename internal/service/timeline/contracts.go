package timeline

import (
	"context"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
)

// IntervalRepository интерфейс репозитория интервалов
type IntervalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Interval, error)
	ListByVehicle(ctx context.Context, vehicleID int64) ([]*domain.Interval, error)
	ListWithFilter(ctx context.Context, filter domain.IntervalFilter) ([]*domain.Interval, error)
	Delete(ctx context.Context, id int64) error
	DeleteByVehicleAndKind(ctx context.Context, vehicleID int64, kind domain.IntervalKind) (int64, error)
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
