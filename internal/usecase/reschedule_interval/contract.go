package reschedule_interval

import (
	"context"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
)

// IntervalRepository интерфейс репозитория интервалов
type IntervalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Interval, error)
	ListByVehicle(ctx context.Context, vehicleID int64) ([]*domain.Interval, error)
	Create(ctx context.Context, ival *domain.Interval) (*domain.Interval, error)
	Delete(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
