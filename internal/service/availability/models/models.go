package models

// Response модели

// AvailabilityResponse ответ проверки доступности автомобиля на период
type AvailabilityResponse struct {
	VehicleID int64  `json:"vehicleId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Available bool   `json:"available"`

	// Заполняются только при Available=false
	ConflictKind      *string `json:"conflictKind,omitempty"`
	ConflictStartDate *string `json:"conflictStartDate,omitempty"`
	ConflictEndDate   *string `json:"conflictEndDate,omitempty"`

	NextAvailableDate string `json:"nextAvailableDate"`
}

// VehicleStatusResponse ответ с текущим статусом автомобиля
type VehicleStatusResponse struct {
	VehicleID int64  `json:"vehicleId"`
	Status    string `json:"status"`
	AsOf      string `json:"asOf"`

	// Интервал, определяющий статус; nil для available
	CurrentIntervalID *int64  `json:"currentIntervalId,omitempty"`
	BusyUntil         *string `json:"busyUntil,omitempty"`

	NextAvailableDate string `json:"nextAvailableDate"`
}

// FleetVehicleOverview сводка по одному автомобилю парка
type FleetVehicleOverview struct {
	VehicleID         int64   `json:"vehicleId"`
	Description       string  `json:"description"`
	LicensePlate      string  `json:"licensePlate"`
	Status            string  `json:"status"`
	CustomerName      *string `json:"customerName,omitempty"` // Текущий арендатор при status=rented
	BusyUntil         *string `json:"busyUntil,omitempty"`
	NextAvailableDate string  `json:"nextAvailableDate"`
}

// FleetOverviewResponse сводка по всему парку
type FleetOverviewResponse struct {
	AsOf     string                 `json:"asOf"`
	Vehicles []FleetVehicleOverview `json:"vehicles"`
}

// FleetAvailabilityResponse доступность набора автомобилей на период
// Ключ карты - ID автомобиля, значение - свободен ли весь период целиком
type FleetAvailabilityResponse struct {
	StartDate    string         `json:"startDate"`
	EndDate      string         `json:"endDate"`
	Availability map[int64]bool `json:"availability"`
}

// StatsResponse агрегированная статистика парка
type StatsResponse struct {
	AsOf                 string `json:"asOf"`
	TotalVehicles        int    `json:"totalVehicles"`
	Available            int    `json:"available"`
	Rented               int    `json:"rented"`
	InMaintenance        int    `json:"inMaintenance"`
	Blocked              int    `json:"blocked"`
	ActiveBookings       int    `json:"activeBookings"`
	UpcomingBookings     int    `json:"upcomingBookings"`
	ActiveBlockedPeriods int    `json:"activeBlockedPeriods"`
}
