package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
	vehicleRepo "github.com/carhive/FleetTimeline-Service/internal/infra/storage/vehicle"
	"github.com/carhive/FleetTimeline-Service/internal/service/availability/models"
)

// Service сервис запросов доступности
//
// Все ответы вычисляются из таймлайна интервалов на момент запроса,
// статус автомобиля нигде не хранится. Читает без блокировок: гонка
// "проверил - освободилось - занято" допустима, финальную проверку
// делает вставка интервала
type Service struct {
	intervalRepo IntervalRepository
	vehicleRepo  VehicleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса доступности
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

// CheckAvailability проверяет, свободен ли автомобиль на период [start, end)
// При конфликте в ответ попадают тип и даты самого раннего пересекающегося
// интервала и ближайшая свободная дата после запрошенного начала
func (s *Service) CheckAvailability(ctx context.Context, vehicleID int64, startDate, endDate time.Time) (*models.AvailabilityResponse, error) {
	s.logger.Info("CheckAvailability: vehicle=%d, period=%s..%s",
		vehicleID, startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))

	if startDate.IsZero() || endDate.IsZero() {
		return nil, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	start := domain.DateOnly(startDate)
	end := domain.DateOnly(endDate)
	if !start.Before(end) {
		s.logger.Warn("CheckAvailability: invalid range %s..%s for vehicle=%d",
			start.Format(domain.DateFormat), end.Format(domain.DateFormat), vehicleID)
		return nil, fmt.Errorf("%w: startDate must be before endDate", ErrInvalidDateRange)
	}

	timeline, err := s.vehicleTimeline(ctx, vehicleID, "CheckAvailability")
	if err != nil {
		return nil, err
	}

	resp := &models.AvailabilityResponse{
		VehicleID:         vehicleID,
		StartDate:         start.Format(domain.DateFormat),
		EndDate:           end.Format(domain.DateFormat),
		Available:         true,
		NextAvailableDate: domain.NextAvailableDate(timeline, start).Format(domain.DateFormat),
	}

	if existing := domain.FirstOverlap(timeline, start, end); existing != nil {
		kind := string(existing.Kind)
		conflictStart := existing.StartDate.Format(domain.DateFormat)
		conflictEnd := existing.EndDate.Format(domain.DateFormat)

		resp.Available = false
		resp.ConflictKind = &kind
		resp.ConflictStartDate = &conflictStart
		resp.ConflictEndDate = &conflictEnd
	}

	s.logger.Info("CheckAvailability: vehicle=%d available=%t", vehicleID, resp.Available)
	return resp, nil
}

// CurrentStatus возвращает статус автомобиля на сегодня
// Статус выводится из таймлайна: тип покрывающего интервала либо available
func (s *Service) CurrentStatus(ctx context.Context, vehicleID int64) (*models.VehicleStatusResponse, error) {
	s.logger.Info("CurrentStatus: vehicle=%d", vehicleID)

	timeline, err := s.vehicleTimeline(ctx, vehicleID, "CurrentStatus")
	if err != nil {
		return nil, err
	}

	today := domain.Today()
	resp := &models.VehicleStatusResponse{
		VehicleID:         vehicleID,
		Status:            string(domain.StatusAt(timeline, today)),
		AsOf:              today.Format(domain.DateFormat),
		NextAvailableDate: domain.NextAvailableDate(timeline, today).Format(domain.DateFormat),
	}

	if current := domain.CurrentInterval(timeline, today); current != nil {
		busyUntil := current.EndDate.Format(domain.DateFormat)
		resp.CurrentIntervalID = &current.ID
		resp.BusyUntil = &busyUntil
	}

	s.logger.Info("CurrentStatus: vehicle=%d status=%s", vehicleID, resp.Status)
	return resp, nil
}

// FleetOverview возвращает сводку по всему парку на сегодня
// Таймлайны всех автомобилей загружаются одним батч-запросом
func (s *Service) FleetOverview(ctx context.Context) (*models.FleetOverviewResponse, error) {
	s.logger.Info("FleetOverview: building fleet snapshot")

	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		s.logger.Error("FleetOverview: failed to list vehicles: %v", err)
		return nil, fmt.Errorf("%w: FleetOverview - failed to list vehicles: %v", ErrInternal, err)
	}

	timelines, err := s.fleetTimelines(ctx, vehicles, "FleetOverview")
	if err != nil {
		return nil, err
	}

	today := domain.Today()
	resp := &models.FleetOverviewResponse{
		AsOf:     today.Format(domain.DateFormat),
		Vehicles: make([]models.FleetVehicleOverview, 0, len(vehicles)),
	}

	for _, vehicle := range vehicles {
		timeline := timelines[vehicle.ID]

		overview := models.FleetVehicleOverview{
			VehicleID:         vehicle.ID,
			Description:       vehicle.Description(),
			LicensePlate:      vehicle.LicensePlate,
			Status:            string(domain.StatusAt(timeline, today)),
			NextAvailableDate: domain.NextAvailableDate(timeline, today).Format(domain.DateFormat),
		}

		if current := domain.CurrentInterval(timeline, today); current != nil {
			busyUntil := current.EndDate.Format(domain.DateFormat)
			overview.BusyUntil = &busyUntil
			if current.Kind == domain.KindBooking {
				overview.CustomerName = current.CustomerName
			}
		}

		resp.Vehicles = append(resp.Vehicles, overview)
	}

	s.logger.Info("FleetOverview: snapshot built for %d vehicles", len(resp.Vehicles))
	return resp, nil
}

// FleetAvailability проверяет доступность набора автомобилей на период
// [start, end) одним батч-запросом. Пустой vehicleIDs означает весь парк.
// Ответ для каждого автомобиля совпадает с CheckAvailability на тот же
// период: таймлайны независимы, занятость одного автомобиля не влияет
// на остальные
func (s *Service) FleetAvailability(ctx context.Context, vehicleIDs []int64, startDate, endDate time.Time) (*models.FleetAvailabilityResponse, error) {
	s.logger.Info("FleetAvailability: vehicles=%d, period=%s..%s",
		len(vehicleIDs), startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))

	if startDate.IsZero() || endDate.IsZero() {
		return nil, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	start := domain.DateOnly(startDate)
	end := domain.DateOnly(endDate)
	if !start.Before(end) {
		s.logger.Warn("FleetAvailability: invalid range %s..%s",
			start.Format(domain.DateFormat), end.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: startDate must be before endDate", ErrInvalidDateRange)
	}

	if len(vehicleIDs) == 0 {
		vehicles, err := s.vehicleRepo.List(ctx)
		if err != nil {
			s.logger.Error("FleetAvailability: failed to list vehicles: %v", err)
			return nil, fmt.Errorf("%w: FleetAvailability - failed to list vehicles: %v", ErrInternal, err)
		}
		for _, vehicle := range vehicles {
			vehicleIDs = append(vehicleIDs, vehicle.ID)
		}
	}

	timelines, err := s.intervalRepo.ListByVehicles(ctx, vehicleIDs)
	if err != nil {
		s.logger.Error("FleetAvailability: failed to load fleet timelines: %v", err)
		return nil, fmt.Errorf("%w: FleetAvailability - failed to load fleet timelines: %v", ErrInternal, err)
	}

	resp := &models.FleetAvailabilityResponse{
		StartDate:    start.Format(domain.DateFormat),
		EndDate:      end.Format(domain.DateFormat),
		Availability: make(map[int64]bool, len(vehicleIDs)),
	}
	for _, vehicleID := range vehicleIDs {
		resp.Availability[vehicleID] = domain.FirstOverlap(timelines[vehicleID], start, end) == nil
	}

	s.logger.Info("FleetAvailability: checked %d vehicles", len(resp.Availability))
	return resp, nil
}

// Stats возвращает агрегированную статистику парка на сегодня
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	s.logger.Info("Stats: building fleet stats")

	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		s.logger.Error("Stats: failed to list vehicles: %v", err)
		return nil, fmt.Errorf("%w: Stats - failed to list vehicles: %v", ErrInternal, err)
	}

	timelines, err := s.fleetTimelines(ctx, vehicles, "Stats")
	if err != nil {
		return nil, err
	}

	today := domain.Today()
	resp := &models.StatsResponse{
		AsOf:          today.Format(domain.DateFormat),
		TotalVehicles: len(vehicles),
	}

	for _, vehicle := range vehicles {
		timeline := timelines[vehicle.ID]

		switch domain.StatusAt(timeline, today) {
		case domain.StatusRented:
			resp.Rented++
		case domain.StatusMaintenance:
			resp.InMaintenance++
		case domain.StatusBlocked:
			resp.Blocked++
		default:
			resp.Available++
		}

		for _, ival := range timeline {
			switch ival.Kind {
			case domain.KindBooking:
				if ival.Covers(today) {
					resp.ActiveBookings++
				} else if ival.StartDate.After(today) {
					resp.UpcomingBookings++
				}
			case domain.KindManualBlock:
				if today.Before(ival.EndDate) {
					resp.ActiveBlockedPeriods++
				}
			}
		}
	}

	s.logger.Info("Stats: total=%d available=%d rented=%d maintenance=%d blocked=%d",
		resp.TotalVehicles, resp.Available, resp.Rented, resp.InMaintenance, resp.Blocked)
	return resp, nil
}

// Вспомогательные методы

// vehicleTimeline загружает таймлайн одного автомобиля, проверяя его существование
func (s *Service) vehicleTimeline(ctx context.Context, vehicleID int64, op string) ([]*domain.Interval, error) {
	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("%s: vehicle id=%d not found", op, vehicleID)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("%s: failed to load vehicle id=%d: %v", op, vehicleID, err)
		return nil, fmt.Errorf("%w: %s - failed to load vehicle: %v", ErrInternal, op, err)
	}

	timeline, err := s.intervalRepo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		s.logger.Error("%s: failed to load timeline for vehicle id=%d: %v", op, vehicleID, err)
		return nil, fmt.Errorf("%w: %s - failed to load timeline: %v", ErrInternal, op, err)
	}

	return timeline, nil
}

// fleetTimelines загружает таймлайны набора автомобилей одним запросом
func (s *Service) fleetTimelines(ctx context.Context, vehicles []*domain.Vehicle, op string) (map[int64][]*domain.Interval, error) {
	if len(vehicles) == 0 {
		return map[int64][]*domain.Interval{}, nil
	}

	ids := make([]int64, 0, len(vehicles))
	for _, vehicle := range vehicles {
		ids = append(ids, vehicle.ID)
	}

	timelines, err := s.intervalRepo.ListByVehicles(ctx, ids)
	if err != nil {
		s.logger.Error("%s: failed to load fleet timelines: %v", op, err)
		return nil, fmt.Errorf("%w: %s - failed to load fleet timelines: %v", ErrInternal, op, err)
	}

	return timelines, nil
}
