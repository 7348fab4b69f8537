package domain

import "time"

// IntervalKind тип интервала занятости автомобиля
type IntervalKind string

const (
	KindBooking     IntervalKind = "booking"
	KindMaintenance IntervalKind = "maintenance"
	KindManualBlock IntervalKind = "manual_block"
)

// Kinds список всех типов интервалов
var Kinds = []IntervalKind{KindBooking, KindMaintenance, KindManualBlock}

// IsValid возвращает true для известного типа интервала
func (k IntervalKind) IsValid() bool {
	switch k {
	case KindBooking, KindMaintenance, KindManualBlock:
		return true
	default:
		return false
	}
}

// Status возвращает статус автомобиля, который даёт интервал этого типа
func (k IntervalKind) Status() VehicleStatus {
	switch k {
	case KindBooking:
		return StatusRented
	case KindMaintenance:
		return StatusMaintenance
	case KindManualBlock:
		return StatusBlocked
	default:
		return StatusAvailable
	}
}

// Interval занятый период таймлайна автомобиля
//
// Даты календарные, полуоткрытый диапазон [StartDate, EndDate):
// EndDate - первый свободный день, поэтому дата возврата одного
// бронирования может совпадать с датой выдачи следующего.
// Инвариант StartDate < EndDate проверяется на записи.
//
// Для каждого автомобиля зафиксированные интервалы не пересекаются -
// независимо от типа (автомобиль не может быть одновременно
// забронирован и находиться в ремонте)
type Interval struct {
	ID        int64
	VehicleID int64
	Kind      IntervalKind
	StartDate time.Time
	EndDate   time.Time

	// Денормализованные данные бронирования
	CustomerName   *string
	PickupLocation *string
	ReturnLocation *string
	TotalCost      *float64

	// Денормализованные данные обслуживания
	MechanicName *string
	Issue        *string
	Cost         *float64

	// Причина ручной блокировки
	Reason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers возвращает true, если дата попадает в интервал
// Полуоткрытая семантика: StartDate включается, EndDate - нет
func (i *Interval) Covers(date time.Time) bool {
	return !date.Before(i.StartDate) && date.Before(i.EndDate)
}

// OverlapsRange возвращает true, если интервал пересекается с [start, end)
// Граничащие интервалы (end == StartDate или EndDate == start)
// пересечением НЕ считаются - это обычная same-day передача автомобиля
func (i *Interval) OverlapsRange(start, end time.Time) bool {
	return i.StartDate.Before(end) && start.Before(i.EndDate)
}

// IntervalFilter фильтр для выборки интервалов
type IntervalFilter struct {
	VehicleID *int64        // Фильтр по автомобилю (опционально)
	Kind      *IntervalKind // Фильтр по типу (опционально)
	EndsAfter *time.Time    // Только интервалы, заканчивающиеся после даты (опционально)
}
