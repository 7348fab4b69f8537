package place_interval

import (
	"context"
	"errors"
	"fmt"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
)

// UseCase use case размещения интервала в таймлайне автомобиля
//
// Вставка выполняется по схеме validate-then-commit внутри одной
// сериализуемой транзакции: строки таймлайна автомобиля блокируются
// (FOR UPDATE), кандидат проверяется на пересечения, при отсутствии
// конфликта фиксируется. Конкурентные вставки для одного автомобиля
// сериализуются; для разных автомобилей идут параллельно
type UseCase struct {
	intervalRepo IntervalRepository
	vehicleRepo  VehicleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	intervalRepo IntervalRepository,
	vehicleRepo VehicleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		intervalRepo: intervalRepo,
		vehicleRepo:  vehicleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute размещает интервал
// Возвращает *ConflictError (разворачивается в ErrIntervalConflict),
// если период пересекается с зафиксированным интервалом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PlaceInterval: vehicle=%d, kind=%s, period=%s..%s",
		req.VehicleID, req.Kind,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PlaceInterval: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем даты до календарных (полночь UTC)
	start := domain.DateOnly(req.StartDate)
	end := domain.DateOnly(req.EndDate)

	// 3. Проверяем существование автомобиля
	exists, err := uc.vehicleRepo.Exists(ctx, req.VehicleID)
	if err != nil {
		uc.logger.Error("PlaceInterval: failed to check vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to check vehicle: %w", ErrInternal, err)
	}
	if !exists {
		uc.logger.Warn("PlaceInterval: vehicle id=%d not found", req.VehicleID)
		return nil, ErrVehicleNotFound
	}

	var result *domain.Interval

	// 4. Validate-then-commit в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Захватываем таймлайн автомобиля (FOR UPDATE)
		timeline, err := uc.intervalRepo.ListByVehicle(txCtx, req.VehicleID)
		if err != nil {
			uc.logger.Error("PlaceInterval: failed to load timeline for vehicle id=%d: %v", req.VehicleID, err)
			return fmt.Errorf("%w: failed to load timeline: %w", ErrInternal, err)
		}

		// 4.2. Проверяем кандидата на пересечения
		// Тип интервала правило не ослабляет: бронирование конфликтует
		// с обслуживанием точно так же, как с другим бронированием
		if existing := domain.FirstOverlap(timeline, start, end); existing != nil {
			uc.logger.Warn("PlaceInterval: conflict for vehicle id=%d with interval id=%d (%s..%s)",
				req.VehicleID, existing.ID,
				existing.StartDate.Format(domain.DateFormat), existing.EndDate.Format(domain.DateFormat))
			return &ConflictError{Existing: existing}
		}

		// 4.3. Фиксируем интервал
		created, err := uc.intervalRepo.Create(txCtx, &domain.Interval{
			VehicleID:      req.VehicleID,
			Kind:           req.Kind,
			StartDate:      start,
			EndDate:        end,
			CustomerName:   req.CustomerName,
			PickupLocation: req.PickupLocation,
			ReturnLocation: req.ReturnLocation,
			TotalCost:      req.TotalCost,
			MechanicName:   req.MechanicName,
			Issue:          req.Issue,
			Cost:           req.Cost,
			Reason:         req.Reason,
		})
		if err != nil {
			uc.logger.Error("PlaceInterval: failed to create interval for vehicle id=%d: %v", req.VehicleID, err)
			return fmt.Errorf("%w: failed to create interval: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конфликт - ожидаемый исход, прокидываем как есть
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			return nil, conflict
		}
		return nil, err
	}

	uc.logger.Info("PlaceInterval: placed interval id=%d for vehicle=%d", result.ID, req.VehicleID)

	return fromDomain(result), nil
}
