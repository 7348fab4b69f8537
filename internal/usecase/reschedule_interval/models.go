package reschedule_interval

import (
	"time"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
)

// Request запрос на перенос интервала на новые даты
//
// Перенос - это retract + re-validate + re-insert, никогда не
// изменение дат на месте: так проверка непересечения остаётся
// атомарной. Metadata-поля опциональны: nil означает "оставить как было"
type Request struct {
	IntervalID int64
	Kind       domain.IntervalKind // Ожидаемый тип (защита от переноса чужого типа записи)
	StartDate  time.Time
	EndDate    time.Time

	CustomerName   *string
	PickupLocation *string
	ReturnLocation *string
	TotalCost      *float64
	MechanicName   *string
	Issue          *string
	Cost           *float64
	Reason         *string
}

// Response перенесённый интервал
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

// coalesce возвращает override, если он задан, иначе текущее значение
func coalesce[T any](override, current *T) *T {
	if override != nil {
		return override
	}
	return current
}
