package domain

import (
	"fmt"
	"time"
)

// VehicleStatus derived состояние автомобиля на конкретную дату
// Статус НЕ хранится в БД - он вычисляется из таймлайна интервалов
// на момент чтения, чтобы исключить расхождение между сохранённым
// статусом и фактическими бронированиями
type VehicleStatus string

const (
	StatusAvailable   VehicleStatus = "available"
	StatusRented      VehicleStatus = "rented"
	StatusMaintenance VehicleStatus = "maintenance"
	StatusBlocked     VehicleStatus = "blocked"
)

// Vehicle автомобиль автопарка
type Vehicle struct {
	ID                 int64
	Make               string
	Model              string
	Year               int
	LicensePlate       string
	Colour             *string
	WeeklyRate         *float64
	MileageLimitPerDay *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Description возвращает человекочитаемое описание автомобиля
// Используется в списках заблокированных периодов
func (v *Vehicle) Description() string {
	return fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model)
}
