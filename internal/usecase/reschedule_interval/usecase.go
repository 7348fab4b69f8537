package reschedule_interval

import (
	"context"
	"errors"
	"fmt"
	"time"

	storage "github.com/carhive/FleetTimeline-Service/internal/infra/storage/interval"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
)

// UseCase use case переноса интервала на новые даты (replace-семантика)
//
// Выполняется как remove-then-insert внутри одной сериализуемой
// транзакции: интервал удаляется, новый период проверяется на
// пересечения с оставшимся таймлайном, затем вставляется заново.
// Любая ошибка откатывает транзакцию, и исходный интервал
// остаётся в хранилище нетронутым - компенсирующий rollback
type UseCase struct {
	intervalRepo IntervalRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	intervalRepo IntervalRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		intervalRepo: intervalRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute переносит интервал на новые даты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleInterval: interval=%d, new period=%s..%s",
		req.IntervalID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleInterval: validation failed: %v", err)
		return nil, err
	}

	start := domain.DateOnly(req.StartDate)
	end := domain.DateOnly(req.EndDate)

	var result *domain.Interval

	// 2. Remove-then-insert в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем переносимый интервал с блокировкой строки
		current, err := uc.intervalRepo.GetByID(txCtx, req.IntervalID)
		if err != nil {
			if errors.Is(err, storage.ErrIntervalNotFound) {
				uc.logger.Warn("RescheduleInterval: interval id=%d not found", req.IntervalID)
				return ErrIntervalNotFound
			}
			uc.logger.Error("RescheduleInterval: failed to load interval id=%d: %v", req.IntervalID, err)
			return fmt.Errorf("%w: failed to load interval: %w", ErrInternal, err)
		}

		// 2.2. Тип должен совпадать с ожидаемым
		if current.Kind != req.Kind {
			uc.logger.Warn("RescheduleInterval: interval id=%d has kind=%s, expected %s",
				req.IntervalID, current.Kind, req.Kind)
			return ErrKindMismatch
		}

		// 2.3. Убираем интервал из таймлайна
		if err := uc.intervalRepo.Delete(txCtx, req.IntervalID); err != nil {
			uc.logger.Error("RescheduleInterval: failed to delete interval id=%d: %v", req.IntervalID, err)
			return fmt.Errorf("%w: failed to delete interval: %w", ErrInternal, err)
		}

		// 2.4. Проверяем новый период против оставшегося таймлайна (FOR UPDATE)
		timeline, err := uc.intervalRepo.ListByVehicle(txCtx, current.VehicleID)
		if err != nil {
			uc.logger.Error("RescheduleInterval: failed to load timeline for vehicle id=%d: %v",
				current.VehicleID, err)
			return fmt.Errorf("%w: failed to load timeline: %w", ErrInternal, err)
		}

		if existing := domain.FirstOverlap(timeline, start, end); existing != nil {
			uc.logger.Warn("RescheduleInterval: conflict for interval id=%d with interval id=%d",
				req.IntervalID, existing.ID)
			// Откат транзакции вернёт удалённый интервал на место
			return &ConflictError{Existing: existing}
		}

		// 2.5. Вставляем интервал заново с новыми датами
		// Metadata-поля берём из запроса, если заданы, иначе сохраняем прежние
		created, err := uc.intervalRepo.Create(txCtx, &domain.Interval{
			VehicleID:      current.VehicleID,
			Kind:           current.Kind,
			StartDate:      start,
			EndDate:        end,
			CustomerName:   coalesce(req.CustomerName, current.CustomerName),
			PickupLocation: coalesce(req.PickupLocation, current.PickupLocation),
			ReturnLocation: coalesce(req.ReturnLocation, current.ReturnLocation),
			TotalCost:      coalesce(req.TotalCost, current.TotalCost),
			MechanicName:   coalesce(req.MechanicName, current.MechanicName),
			Issue:          coalesce(req.Issue, current.Issue),
			Cost:           coalesce(req.Cost, current.Cost),
			Reason:         coalesce(req.Reason, current.Reason),
		})
		if err != nil {
			uc.logger.Error("RescheduleInterval: failed to re-insert interval: %v", err)
			return fmt.Errorf("%w: failed to re-insert interval: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			return nil, conflict
		}
		return nil, err
	}

	uc.logger.Info("RescheduleInterval: interval id=%d moved to id=%d (%s..%s)",
		req.IntervalID, result.ID,
		result.StartDate.Format(domain.DateFormat), result.EndDate.Format(domain.DateFormat))

	return fromDomain(result), nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.IntervalID <= 0 {
		return fmt.Errorf("%w: intervalId must be positive", ErrInvalidInput)
	}

	if !req.Kind.IsValid() {
		return fmt.Errorf("%w: unknown interval kind %q", ErrInvalidInput, req.Kind)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if !req.StartDate.Before(req.EndDate) {
		return fmt.Errorf("%w: startDate must be before endDate", ErrInvalidDateRange)
	}

	if req.EndDate.Sub(req.StartDate) > domain.MaxIntervalDays*24*time.Hour {
		return fmt.Errorf("%w: interval longer than %d days", ErrInvalidDateRange, domain.MaxIntervalDays)
	}

	return nil
}
