package incidents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
	incidentRepo "github.com/carhive/FleetTimeline-Service/internal/infra/storage/incident"
	"github.com/carhive/FleetTimeline-Service/internal/service/incidents/models"
)

// Service сервис журнала инцидентов
//
// Инциденты не участвуют в таймлайне занятости: регистрация ДТП
// не блокирует даты. Если автомобиль требует ремонта, администратор
// отдельно ставит период обслуживания
type Service struct {
	incidentRepo IncidentRepository
	vehicleRepo  VehicleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса инцидентов
func NewService(
	incidentRepo IncidentRepository,
	vehicleRepo VehicleRepository,
	logger Logger,
) *Service {
	return &Service{
		incidentRepo: incidentRepo,
		vehicleRepo:  vehicleRepo,
		logger:       logger,
	}
}

// Report регистрирует инцидент
func (s *Service) Report(ctx context.Context, req *models.ReportIncidentRequest) (*models.IncidentResponse, error) {
	s.logger.Info("Report: reporting incident for vehicle=%d", req.VehicleID)

	if req.VehicleID <= 0 {
		return nil, fmt.Errorf("%w: vehicleId must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if req.IncidentDate.IsZero() {
		return nil, fmt.Errorf("%w: incidentDate is required", ErrInvalidInput)
	}

	exists, err := s.vehicleRepo.Exists(ctx, req.VehicleID)
	if err != nil {
		s.logger.Error("Report: failed to check vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: Report - failed to check vehicle: %v", ErrInternal, err)
	}
	if !exists {
		s.logger.Warn("Report: vehicle id=%d not found", req.VehicleID)
		return nil, ErrVehicleNotFound
	}

	created, err := s.incidentRepo.Create(ctx, &domain.Incident{
		VehicleID:    req.VehicleID,
		RentalID:     req.RentalID,
		CustomerID:   req.CustomerID,
		Description:  strings.TrimSpace(req.Description),
		IncidentDate: req.IncidentDate,
		Status:       domain.IncidentOpen,
	})
	if err != nil {
		s.logger.Error("Report: repository error for vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: Report - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Report: reported incident id=%d for vehicle=%d", created.ID, req.VehicleID)
	return models.FromDomainIncident(created), nil
}

// GetByID получает инцидент по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.IncidentResponse, error) {
	s.logger.Info("GetByID: fetching incident id=%d", id)

	inc, err := s.incidentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, incidentRepo.ErrIncidentNotFound) {
			s.logger.Warn("GetByID: incident id=%d not found", id)
			return nil, ErrIncidentNotFound
		}
		s.logger.Error("GetByID: repository error for incident id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainIncident(inc), nil
}

// ListByVehicle получает инциденты автомобиля, новые первыми
func (s *Service) ListByVehicle(ctx context.Context, vehicleID int64) (*models.IncidentListResponse, error) {
	s.logger.Info("ListByVehicle: fetching incidents for vehicle=%d", vehicleID)

	exists, err := s.vehicleRepo.Exists(ctx, vehicleID)
	if err != nil {
		s.logger.Error("ListByVehicle: failed to check vehicle id=%d: %v", vehicleID, err)
		return nil, fmt.Errorf("%w: ListByVehicle - failed to check vehicle: %v", ErrInternal, err)
	}
	if !exists {
		s.logger.Warn("ListByVehicle: vehicle id=%d not found", vehicleID)
		return nil, ErrVehicleNotFound
	}

	incidents, err := s.incidentRepo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		s.logger.Error("ListByVehicle: repository error for vehicle id=%d: %v", vehicleID, err)
		return nil, fmt.Errorf("%w: ListByVehicle - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByVehicle: fetched %d incidents for vehicle=%d", len(incidents), vehicleID)
	return models.FromDomainIncidentList(incidents), nil
}

// AddFollowUp добавляет результат разбирательства
// При Resolve=true инцидент закрывается
func (s *Service) AddFollowUp(ctx context.Context, id int64, req *models.FollowUpRequest) (*models.IncidentResponse, error) {
	s.logger.Info("AddFollowUp: incident id=%d, resolve=%t", id, req.Resolve)

	if strings.TrimSpace(req.Notes) == "" {
		return nil, fmt.Errorf("%w: notes are required", ErrInvalidInput)
	}

	status := domain.IncidentOpen
	if req.Resolve {
		status = domain.IncidentResolved
	}

	if err := s.incidentRepo.AddFollowUp(ctx, id, strings.TrimSpace(req.Notes), status); err != nil {
		if errors.Is(err, incidentRepo.ErrIncidentNotFound) {
			s.logger.Warn("AddFollowUp: incident id=%d not found", id)
			return nil, ErrIncidentNotFound
		}
		s.logger.Error("AddFollowUp: repository error for incident id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: AddFollowUp - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddFollowUp: updated incident id=%d", id)
	return s.GetByID(ctx, id)
}

// Delete удаляет запись об инциденте
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: removing incident id=%d", id)

	if err := s.incidentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, incidentRepo.ErrIncidentNotFound) {
			s.logger.Warn("Delete: incident id=%d not found", id)
			return ErrIncidentNotFound
		}
		s.logger.Error("Delete: repository error for incident id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: removed incident id=%d", id)
	return nil
}
