package models

import (
	"time"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
)

// Request модели

// CreateVehicleRequest запрос на добавление автомобиля в парк
type CreateVehicleRequest struct {
	Make               string   `json:"make"`
	Model              string   `json:"model"`
	Year               int      `json:"year"`
	LicensePlate       string   `json:"licensePlate"`
	Colour             *string  `json:"colour,omitempty"`
	WeeklyRate         *float64 `json:"weeklyRate,omitempty"`
	MileageLimitPerDay *float64 `json:"mileageLimitPerDay,omitempty"`
}

// UpdateVehicleRequest запрос на изменение данных автомобиля
// Частичное обновление: nil означает "оставить как было"
type UpdateVehicleRequest struct {
	Make               *string  `json:"make,omitempty"`
	Model              *string  `json:"model,omitempty"`
	Year               *int     `json:"year,omitempty"`
	LicensePlate       *string  `json:"licensePlate,omitempty"`
	Colour             *string  `json:"colour,omitempty"`
	WeeklyRate         *float64 `json:"weeklyRate,omitempty"`
	MileageLimitPerDay *float64 `json:"mileageLimitPerDay,omitempty"`
}

// Response модели

// VehicleResponse ответ с данными автомобиля
// Status вычислен из таймлайна на сегодня, в БД не хранится
type VehicleResponse struct {
	ID                 int64    `json:"id"`
	Make               string   `json:"make"`
	Model              string   `json:"model"`
	Year               int      `json:"year"`
	LicensePlate       string   `json:"licensePlate"`
	Colour             *string  `json:"colour,omitempty"`
	WeeklyRate         *float64 `json:"weeklyRate,omitempty"`
	MileageLimitPerDay *float64 `json:"mileageLimitPerDay,omitempty"`
	Status             string   `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VehicleListResponse ответ со списком автомобилей
type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

// Методы конвертации

// FromDomainVehicle конвертирует domain модель в DTO с вычисленным статусом
func FromDomainVehicle(v *domain.Vehicle, status domain.VehicleStatus) *VehicleResponse {
	if v == nil {
		return nil
	}

	return &VehicleResponse{
		ID:                 v.ID,
		Make:               v.Make,
		Model:              v.Model,
		Year:               v.Year,
		LicensePlate:       v.LicensePlate,
		Colour:             v.Colour,
		WeeklyRate:         v.WeeklyRate,
		MileageLimitPerDay: v.MileageLimitPerDay,
		Status:             string(status),
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}
