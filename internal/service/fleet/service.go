package fleet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
	vehicleRepo "github.com/carhive/FleetTimeline-Service/internal/infra/storage/vehicle"
	"github.com/carhive/FleetTimeline-Service/internal/service/fleet/models"
)

// Service сервис управления автопарком
//
// Статус автомобиля во всех ответах вычисляется из таймлайна
// интервалов на сегодня. Удаление автомобиля каскадно удаляет его
// интервалы и инциденты (FK ON DELETE CASCADE)
type Service struct {
	vehicleRepo  VehicleRepository
	intervalRepo IntervalRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса автопарка
func NewService(
	vehicleRepo VehicleRepository,
	intervalRepo IntervalRepository,
	logger Logger,
) *Service {
	return &Service{
		vehicleRepo:  vehicleRepo,
		intervalRepo: intervalRepo,
		logger:       logger,
	}
}

// Create добавляет автомобиль в парк
func (s *Service) Create(ctx context.Context, req *models.CreateVehicleRequest) (*models.VehicleResponse, error) {
	s.logger.Info("Create: adding vehicle %d %s %s, plate=%s", req.Year, req.Make, req.Model, req.LicensePlate)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.vehicleRepo.Create(ctx, &domain.Vehicle{
		Make:               strings.TrimSpace(req.Make),
		Model:              strings.TrimSpace(req.Model),
		Year:               req.Year,
		LicensePlate:       strings.TrimSpace(req.LicensePlate),
		Colour:             req.Colour,
		WeeklyRate:         req.WeeklyRate,
		MileageLimitPerDay: req.MileageLimitPerDay,
	})
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrDuplicatePlate) {
			s.logger.Warn("Create: plate %s already registered", req.LicensePlate)
			return nil, ErrDuplicatePlate
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: added vehicle id=%d", created.ID)

	// Таймлайн нового автомобиля пуст: статус всегда available
	return models.FromDomainVehicle(created, domain.StatusAvailable), nil
}

// GetByID получает автомобиль с вычисленным статусом на сегодня
func (s *Service) GetByID(ctx context.Context, id int64) (*models.VehicleResponse, error) {
	s.logger.Info("GetByID: fetching vehicle id=%d", id)

	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("GetByID: vehicle id=%d not found", id)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("GetByID: repository error for vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	timeline, err := s.intervalRepo.ListByVehicle(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to load timeline for vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - failed to load timeline: %v", ErrInternal, err)
	}

	return models.FromDomainVehicle(vehicle, domain.StatusAt(timeline, domain.Today())), nil
}

// List получает все автомобили парка со статусами на сегодня
// Таймлайны загружаются одним батч-запросом
func (s *Service) List(ctx context.Context) (*models.VehicleListResponse, error) {
	s.logger.Info("List: fetching fleet")

	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.VehicleListResponse{
		Vehicles: make([]models.VehicleResponse, 0, len(vehicles)),
	}
	if len(vehicles) == 0 {
		return resp, nil
	}

	ids := make([]int64, 0, len(vehicles))
	for _, vehicle := range vehicles {
		ids = append(ids, vehicle.ID)
	}

	timelines, err := s.intervalRepo.ListByVehicles(ctx, ids)
	if err != nil {
		s.logger.Error("List: failed to load fleet timelines: %v", err)
		return nil, fmt.Errorf("%w: List - failed to load fleet timelines: %v", ErrInternal, err)
	}

	today := domain.Today()
	for _, vehicle := range vehicles {
		status := domain.StatusAt(timelines[vehicle.ID], today)
		resp.Vehicles = append(resp.Vehicles, *models.FromDomainVehicle(vehicle, status))
	}

	s.logger.Info("List: fetched %d vehicles", len(resp.Vehicles))
	return resp, nil
}

// Update изменяет данные автомобиля
// Частичное обновление: незаданные поля сохраняют текущие значения
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateVehicleRequest) (*models.VehicleResponse, error) {
	s.logger.Info("Update: updating vehicle id=%d", id)

	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Update: vehicle id=%d not found", id)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("Update: repository error for vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	applyUpdate(vehicle, req)

	if err := validateVehicle(vehicle); err != nil {
		s.logger.Warn("Update: validation failed for vehicle id=%d: %v", id, err)
		return nil, err
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		if errors.Is(err, vehicleRepo.ErrDuplicatePlate) {
			s.logger.Warn("Update: plate %s already registered", vehicle.LicensePlate)
			return nil, ErrDuplicatePlate
		}
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Update: vehicle id=%d disappeared during update", id)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("Update: repository error for vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated vehicle id=%d", id)
	return s.GetByID(ctx, id)
}

// Delete удаляет автомобиль из парка вместе с его таймлайном
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: removing vehicle id=%d", id)

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Delete: vehicle id=%d not found", id)
			return ErrVehicleNotFound
		}
		s.logger.Error("Delete: repository error for vehicle id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: removed vehicle id=%d", id)
	return nil
}

// Вспомогательные функции

func validateCreateRequest(req *models.CreateVehicleRequest) error {
	v := &domain.Vehicle{
		Make:               strings.TrimSpace(req.Make),
		Model:              strings.TrimSpace(req.Model),
		Year:               req.Year,
		LicensePlate:       strings.TrimSpace(req.LicensePlate),
		WeeklyRate:         req.WeeklyRate,
		MileageLimitPerDay: req.MileageLimitPerDay,
	}
	return validateVehicle(v)
}

func validateVehicle(v *domain.Vehicle) error {
	if strings.TrimSpace(v.Make) == "" || strings.TrimSpace(v.Model) == "" {
		return fmt.Errorf("%w: make and model are required", ErrInvalidInput)
	}
	if v.Year < 1950 || v.Year > 2100 {
		return fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}
	if strings.TrimSpace(v.LicensePlate) == "" {
		return fmt.Errorf("%w: licensePlate is required", ErrInvalidInput)
	}
	if v.WeeklyRate != nil && *v.WeeklyRate < 0 {
		return fmt.Errorf("%w: weeklyRate must be non-negative", ErrInvalidInput)
	}
	if v.MileageLimitPerDay != nil && *v.MileageLimitPerDay < 0 {
		return fmt.Errorf("%w: mileageLimitPerDay must be non-negative", ErrInvalidInput)
	}
	return nil
}

func applyUpdate(v *domain.Vehicle, req *models.UpdateVehicleRequest) {
	if req.Make != nil {
		v.Make = strings.TrimSpace(*req.Make)
	}
	if req.Model != nil {
		v.Model = strings.TrimSpace(*req.Model)
	}
	if req.Year != nil {
		v.Year = *req.Year
	}
	if req.LicensePlate != nil {
		v.LicensePlate = strings.TrimSpace(*req.LicensePlate)
	}
	if req.Colour != nil {
		v.Colour = req.Colour
	}
	if req.WeeklyRate != nil {
		v.WeeklyRate = req.WeeklyRate
	}
	if req.MileageLimitPerDay != nil {
		v.MileageLimitPerDay = req.MileageLimitPerDay
	}
}
