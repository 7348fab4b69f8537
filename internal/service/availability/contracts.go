package availability

import (
	"context"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
)

// IntervalRepository интерфейс репозитория интервалов
type IntervalRepository interface {
	ListByVehicle(ctx context.Context, vehicleID int64) ([]*domain.Interval, error)
	ListByVehicles(ctx context.Context, vehicleIDs []int64) (map[int64][]*domain.Interval, error)
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
