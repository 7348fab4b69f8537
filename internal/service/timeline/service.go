package timeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
	intervalRepo "github.com/carhive/FleetTimeline-Service/internal/infra/storage/interval"
	"github.com/carhive/FleetTimeline-Service/internal/service/timeline/models"
)

// Service сервис чтения и снятия интервалов таймлайна
//
// Запись интервалов (вставка, перенос) живёт в usecase-слое с
// транзакционной дисциплиной; здесь только операции, которым
// сериализуемая транзакция не нужна: чтение и удаление по ID.
// Удаление никогда не нарушает инвариант непересечения - оно
// только освобождает даты
type Service struct {
	intervalRepo IntervalRepository
	vehicleRepo  VehicleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса таймлайна
func NewService(
	intervalRepo IntervalRepository,
	vehicleRepo VehicleRepository,
	logger Logger,
) *Service {
	return &Service{
		intervalRepo: intervalRepo,
		vehicleRepo:  vehicleRepo,
		logger:       logger,
	}
}

// GetBooking получает бронирование по ID
func (s *Service) GetBooking(ctx context.Context, id int64) (*models.BookingResponse, error) {
	ival, err := s.getByIDWithKind(ctx, id, domain.KindBooking, "GetBooking")
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(ival), nil
}

// ListBookings получает бронирования, опционально фильтруя по автомобилю
// Бронирования отсортированы по дате начала
func (s *Service) ListBookings(ctx context.Context, vehicleID *int64) (*models.BookingListResponse, error) {
	s.logger.Info("ListBookings: fetching bookings, vehicle=%v", vehicleID)

	if vehicleID != nil {
		exists, err := s.vehicleRepo.Exists(ctx, *vehicleID)
		if err != nil {
			s.logger.Error("ListBookings: failed to check vehicle id=%d: %v", *vehicleID, err)
			return nil, fmt.Errorf("%w: ListBookings - failed to check vehicle: %v", ErrInternal, err)
		}
		if !exists {
			s.logger.Warn("ListBookings: vehicle id=%d not found", *vehicleID)
			return nil, ErrVehicleNotFound
		}
	}

	kind := domain.KindBooking
	intervals, err := s.intervalRepo.ListWithFilter(ctx, domain.IntervalFilter{
		VehicleID: vehicleID,
		Kind:      &kind,
	})
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookings: fetched %d bookings", len(intervals))
	return models.FromDomainBookingList(intervals), nil
}

// ListMaintenanceByVehicle получает историю обслуживания автомобиля
func (s *Service) ListMaintenanceByVehicle(ctx context.Context, vehicleID int64) (*models.MaintenanceListResponse, error) {
	s.logger.Info("ListMaintenanceByVehicle: fetching records for vehicle=%d", vehicleID)

	exists, err := s.vehicleRepo.Exists(ctx, vehicleID)
	if err != nil {
		s.logger.Error("ListMaintenanceByVehicle: failed to check vehicle id=%d: %v", vehicleID, err)
		return nil, fmt.Errorf("%w: ListMaintenanceByVehicle - failed to check vehicle: %v", ErrInternal, err)
	}
	if !exists {
		s.logger.Warn("ListMaintenanceByVehicle: vehicle id=%d not found", vehicleID)
		return nil, ErrVehicleNotFound
	}

	kind := domain.KindMaintenance
	intervals, err := s.intervalRepo.ListWithFilter(ctx, domain.IntervalFilter{
		VehicleID: &vehicleID,
		Kind:      &kind,
	})
	if err != nil {
		s.logger.Error("ListMaintenanceByVehicle: repository error for vehicle id=%d: %v", vehicleID, err)
		return nil, fmt.Errorf("%w: ListMaintenanceByVehicle - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListMaintenanceByVehicle: fetched %d records for vehicle=%d", len(intervals), vehicleID)
	return models.FromDomainMaintenanceList(intervals), nil
}

// ListBlockedPeriods получает все активные ручные блокировки парка
// Блокировки с датой окончания в прошлом не возвращаются
func (s *Service) ListBlockedPeriods(ctx context.Context) (*models.BlockedPeriodListResponse, error) {
	s.logger.Info("ListBlockedPeriods: fetching active blocked periods")

	kind := domain.KindManualBlock
	today := domain.Today()
	intervals, err := s.intervalRepo.ListWithFilter(ctx, domain.IntervalFilter{
		Kind:      &kind,
		EndsAfter: &today,
	})
	if err != nil {
		s.logger.Error("ListBlockedPeriods: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlockedPeriods - repository error: %v", ErrInternal, err)
	}

	// Подтягиваем описания автомобилей, не дёргая репозиторий повторно
	descriptions := make(map[int64]string)

	resp := &models.BlockedPeriodListResponse{
		BlockedPeriods: make([]models.BlockedPeriodResponse, 0, len(intervals)),
	}
	for _, ival := range intervals {
		description, ok := descriptions[ival.VehicleID]
		if !ok {
			vehicle, err := s.vehicleRepo.GetByID(ctx, ival.VehicleID)
			if err != nil {
				s.logger.Error("ListBlockedPeriods: failed to load vehicle id=%d: %v", ival.VehicleID, err)
				return nil, fmt.Errorf("%w: ListBlockedPeriods - failed to load vehicle: %v", ErrInternal, err)
			}
			description = vehicle.Description()
			descriptions[ival.VehicleID] = description
		}
		resp.BlockedPeriods = append(resp.BlockedPeriods, *models.FromDomainBlockedPeriod(ival, description))
	}

	s.logger.Info("ListBlockedPeriods: fetched %d blocked periods", len(resp.BlockedPeriods))
	return resp, nil
}

// RemoveBooking отменяет бронирование, освобождая его даты
func (s *Service) RemoveBooking(ctx context.Context, id int64) error {
	return s.removeByKind(ctx, id, domain.KindBooking, "RemoveBooking")
}

// CompleteMaintenance завершает период обслуживания, освобождая его даты
func (s *Service) CompleteMaintenance(ctx context.Context, id int64) error {
	return s.removeByKind(ctx, id, domain.KindMaintenance, "CompleteMaintenance")
}

// UnblockPeriod снимает одну ручную блокировку по её ID
func (s *Service) UnblockPeriod(ctx context.Context, id int64) error {
	return s.removeByKind(ctx, id, domain.KindManualBlock, "UnblockPeriod")
}

// UnblockVehicle снимает все ручные блокировки автомобиля
// Возвращает количество снятых блокировок; ноль - не ошибка
func (s *Service) UnblockVehicle(ctx context.Context, vehicleID int64) (int64, error) {
	s.logger.Info("UnblockVehicle: removing all manual blocks for vehicle=%d", vehicleID)

	exists, err := s.vehicleRepo.Exists(ctx, vehicleID)
	if err != nil {
		s.logger.Error("UnblockVehicle: failed to check vehicle id=%d: %v", vehicleID, err)
		return 0, fmt.Errorf("%w: UnblockVehicle - failed to check vehicle: %v", ErrInternal, err)
	}
	if !exists {
		s.logger.Warn("UnblockVehicle: vehicle id=%d not found", vehicleID)
		return 0, ErrVehicleNotFound
	}

	removed, err := s.intervalRepo.DeleteByVehicleAndKind(ctx, vehicleID, domain.KindManualBlock)
	if err != nil {
		s.logger.Error("UnblockVehicle: repository error for vehicle id=%d: %v", vehicleID, err)
		return 0, fmt.Errorf("%w: UnblockVehicle - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UnblockVehicle: removed %d blocks for vehicle=%d", removed, vehicleID)
	return removed, nil
}

// Вспомогательные методы

// getByIDWithKind загружает интервал и проверяет его тип
func (s *Service) getByIDWithKind(ctx context.Context, id int64, kind domain.IntervalKind, op string) (*domain.Interval, error) {
	s.logger.Info("%s: fetching interval id=%d", op, id)

	ival, err := s.intervalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, intervalRepo.ErrIntervalNotFound) {
			s.logger.Warn("%s: interval id=%d not found", op, id)
			return nil, ErrIntervalNotFound
		}
		s.logger.Error("%s: repository error for interval id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if ival.Kind != kind {
		s.logger.Warn("%s: interval id=%d has kind=%s, expected %s", op, id, ival.Kind, kind)
		return nil, ErrKindMismatch
	}

	return ival, nil
}

// removeByKind удаляет интервал, предварительно проверив его тип
func (s *Service) removeByKind(ctx context.Context, id int64, kind domain.IntervalKind, op string) error {
	if _, err := s.getByIDWithKind(ctx, id, kind, op); err != nil {
		return err
	}

	if err := s.intervalRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, intervalRepo.ErrIntervalNotFound) {
			s.logger.Warn("%s: interval id=%d disappeared during removal", op, id)
			return ErrIntervalNotFound
		}
		s.logger.Error("%s: repository error for interval id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: removed interval id=%d", op, id)
	return nil
}
