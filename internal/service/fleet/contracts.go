package fleet

import (
	"context"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
)

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id int64) error
}

// IntervalRepository интерфейс репозитория интервалов
type IntervalRepository interface {
	ListByVehicle(ctx context.Context, vehicleID int64) ([]*domain.Interval, error)
	ListByVehicles(ctx context.Context, vehicleIDs []int64) (map[int64][]*domain.Interval, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
