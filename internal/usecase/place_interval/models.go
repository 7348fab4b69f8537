package place_interval

import (
	"time"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
)

// Request запрос на размещение интервала в таймлайне автомобиля
// Один usecase обслуживает все три типа: бронирование, обслуживание,
// ручную блокировку - правило непересечения для них общее
type Request struct {
	VehicleID int64
	Kind      domain.IntervalKind
	StartDate time.Time // Полуоткрытый диапазон [StartDate, EndDate)
	EndDate   time.Time

	// Данные бронирования (Kind = booking)
	CustomerName   *string
	PickupLocation *string
	ReturnLocation *string
	TotalCost      *float64

	// Данные обслуживания (Kind = maintenance)
	MechanicName *string
	Issue        *string
	Cost         *float64

	// Причина блокировки (Kind = manual_block)
	Reason *string
}

// Response размещённый интервал
type Response struct {
	ID        int64
	VehicleID int64
	Kind      domain.IntervalKind
	StartDate time.Time
	EndDate   time.Time

	CustomerName   *string
	PickupLocation *string
	ReturnLocation *string
	TotalCost      *float64
	MechanicName   *string
	Issue          *string
	Cost           *float64
	Reason         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func fromDomain(ival *domain.Interval) *Response {
	return &Response{
		ID:             ival.ID,
		VehicleID:      ival.VehicleID,
		Kind:           ival.Kind,
		StartDate:      ival.StartDate,
		EndDate:        ival.EndDate,
		CustomerName:   ival.CustomerName,
		PickupLocation: ival.PickupLocation,
		ReturnLocation: ival.ReturnLocation,
		TotalCost:      ival.TotalCost,
		MechanicName:   ival.MechanicName,
		Issue:          ival.Issue,
		Cost:           ival.Cost,
		Reason:         ival.Reason,
		CreatedAt:      ival.CreatedAt,
		UpdatedAt:      ival.UpdatedAt,
	}
}
