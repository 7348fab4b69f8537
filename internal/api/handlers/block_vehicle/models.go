package block_vehicle

import (
	"fmt"
	"time"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
	placeInterval "github.com/carhive/FleetTimeline-Service/internal/usecase/place_interval"
)

// BlockVehicleRequest запрос на ручную блокировку автомобиля
type BlockVehicleRequest struct {
	VehicleID int64   `json:"vehicleId"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Reason    *string `json:"reason,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case с парсингом дат
func (r *BlockVehicleRequest) ToUseCaseRequest() (*placeInterval.Request, error) {
	start, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid startDate: %w", err)
	}

	end, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid endDate: %w", err)
	}

	return &placeInterval.Request{
		VehicleID: r.VehicleID,
		Kind:      domain.KindManualBlock,
		StartDate: start,
		EndDate:   end,
		Reason:    r.Reason,
	}, nil
}

// BlockedPeriodResponse ответ с созданной блокировкой
type BlockedPeriodResponse struct {
	ID        int64   `json:"id"`
	VehicleID int64   `json:"vehicleId"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Reason    *string `json:"reason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *placeInterval.Response) *BlockedPeriodResponse {
	return &BlockedPeriodResponse{
		ID:        resp.ID,
		VehicleID: resp.VehicleID,
		StartDate: resp.StartDate.Format(domain.DateFormat),
		EndDate:   resp.EndDate.Format(domain.DateFormat),
		Reason:    resp.Reason,
		CreatedAt: resp.CreatedAt,
	}
}
