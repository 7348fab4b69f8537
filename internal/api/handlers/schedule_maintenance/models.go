package schedule_maintenance

import (
	"fmt"
	"time"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
	placeInterval "github.com/carhive/FleetTimeline-Service/internal/usecase/place_interval"
)

// ScheduleMaintenanceRequest запрос на постановку автомобиля на обслуживание
type ScheduleMaintenanceRequest struct {
	VehicleID    int64    `json:"vehicleId"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	MechanicName *string  `json:"mechanicName,omitempty"`
	Issue        *string  `json:"issue,omitempty"`
	Cost         *float64 `json:"cost,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case с парсингом дат
func (r *ScheduleMaintenanceRequest) ToUseCaseRequest() (*placeInterval.Request, error) {
	start, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid startDate: %w", err)
	}

	end, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid endDate: %w", err)
	}

	return &placeInterval.Request{
		VehicleID:    r.VehicleID,
		Kind:         domain.KindMaintenance,
		StartDate:    start,
		EndDate:      end,
		MechanicName: r.MechanicName,
		Issue:        r.Issue,
		Cost:         r.Cost,
	}, nil
}

// MaintenanceResponse ответ с запланированным обслуживанием
type MaintenanceResponse struct {
	ID           int64    `json:"id"`
	VehicleID    int64    `json:"vehicleId"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	MechanicName *string  `json:"mechanicName,omitempty"`
	Issue        *string  `json:"issue,omitempty"`
	Cost         *float64 `json:"cost,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *placeInterval.Response) *MaintenanceResponse {
	return &MaintenanceResponse{
		ID:           resp.ID,
		VehicleID:    resp.VehicleID,
		StartDate:    resp.StartDate.Format(domain.DateFormat),
		EndDate:      resp.EndDate.Format(domain.DateFormat),
		MechanicName: resp.MechanicName,
		Issue:        resp.Issue,
		Cost:         resp.Cost,
		CreatedAt:    resp.CreatedAt,
	}
}
