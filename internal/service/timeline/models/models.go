package models

import (
	"time"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
)

// Response модели
//
// Имена JSON-полей повторяют клиентский контракт: даты бронирования
// идут как pickupDate/returnDate, остальные интервалы - startDate/endDate

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             int64    `json:"id"`
	VehicleID      int64    `json:"vehicleId"`
	CustomerName   string   `json:"customerName"`
	PickupDate     string   `json:"pickupDate"` // "2026-08-01"
	ReturnDate     string   `json:"returnDate"` // "2026-08-08", exclusive
	PickupLocation *string  `json:"pickupLocation,omitempty"`
	ReturnLocation *string  `json:"returnLocation,omitempty"`
	TotalCost      *float64 `json:"totalCost,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// MaintenanceResponse ответ с данными периода обслуживания
type MaintenanceResponse struct {
	ID           int64    `json:"id"`
	VehicleID    int64    `json:"vehicleId"`
	MechanicName *string  `json:"mechanicName,omitempty"`
	Issue        *string  `json:"issue,omitempty"`
	Cost         *float64 `json:"cost,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MaintenanceListResponse ответ со списком периодов обслуживания
type MaintenanceListResponse struct {
	Records []MaintenanceResponse `json:"records"`
}

// BlockedPeriodResponse ответ с данными ручной блокировки
type BlockedPeriodResponse struct {
	ID                 int64   `json:"id"`
	VehicleID          int64   `json:"vehicleId"`
	VehicleDescription string  `json:"vehicleDescription"`
	Reason             *string `json:"reason,omitempty"`
	StartDate          string  `json:"startDate"`
	EndDate            string  `json:"endDate"`

	CreatedAt time.Time `json:"createdAt"`
}

// BlockedPeriodListResponse ответ со списком блокировок
type BlockedPeriodListResponse struct {
	BlockedPeriods []BlockedPeriodResponse `json:"blockedPeriods"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain интервал бронирования в DTO
func FromDomainBooking(ival *domain.Interval) *BookingResponse {
	if ival == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:             ival.ID,
		VehicleID:      ival.VehicleID,
		PickupDate:     ival.StartDate.Format(domain.DateFormat),
		ReturnDate:     ival.EndDate.Format(domain.DateFormat),
		PickupLocation: ival.PickupLocation,
		ReturnLocation: ival.ReturnLocation,
		TotalCost:      ival.TotalCost,
		CreatedAt:      ival.CreatedAt,
		UpdatedAt:      ival.UpdatedAt,
	}
	if ival.CustomerName != nil {
		resp.CustomerName = *ival.CustomerName
	}

	return resp
}

// FromDomainBookingList конвертирует список интервалов бронирования в DTO
func FromDomainBookingList(intervals []*domain.Interval) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(intervals)),
	}

	for _, ival := range intervals {
		if bookingResp := FromDomainBooking(ival); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainMaintenance конвертирует domain интервал обслуживания в DTO
func FromDomainMaintenance(ival *domain.Interval) *MaintenanceResponse {
	if ival == nil {
		return nil
	}

	return &MaintenanceResponse{
		ID:           ival.ID,
		VehicleID:    ival.VehicleID,
		MechanicName: ival.MechanicName,
		Issue:        ival.Issue,
		Cost:         ival.Cost,
		StartDate:    ival.StartDate.Format(domain.DateFormat),
		EndDate:      ival.EndDate.Format(domain.DateFormat),
		CreatedAt:    ival.CreatedAt,
		UpdatedAt:    ival.UpdatedAt,
	}
}

// FromDomainMaintenanceList конвертирует список интервалов обслуживания в DTO
func FromDomainMaintenanceList(intervals []*domain.Interval) *MaintenanceListResponse {
	resp := &MaintenanceListResponse{
		Records: make([]MaintenanceResponse, 0, len(intervals)),
	}

	for _, ival := range intervals {
		if mResp := FromDomainMaintenance(ival); mResp != nil {
			resp.Records = append(resp.Records, *mResp)
		}
	}

	return resp
}

// FromDomainBlockedPeriod конвертирует domain интервал блокировки в DTO
// description - человекочитаемое описание автомобиля ("2022 Toyota Camry")
func FromDomainBlockedPeriod(ival *domain.Interval, description string) *BlockedPeriodResponse {
	if ival == nil {
		return nil
	}

	return &BlockedPeriodResponse{
		ID:                 ival.ID,
		VehicleID:          ival.VehicleID,
		VehicleDescription: description,
		Reason:             ival.Reason,
		StartDate:          ival.StartDate.Format(domain.DateFormat),
		EndDate:            ival.EndDate.Format(domain.DateFormat),
		CreatedAt:          ival.CreatedAt,
	}
}
