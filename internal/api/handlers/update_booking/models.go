package update_booking

import (
	"fmt"
	"time"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
	rescheduleInterval "github.com/carhive/FleetTimeline-Service/internal/usecase/reschedule_interval"
)

// UpdateBookingRequest запрос на перенос бронирования
// Metadata-поля опциональны: незаданные сохраняют текущие значения
type UpdateBookingRequest struct {
	PickupDate     string   `json:"pickupDate"`
	ReturnDate     string   `json:"returnDate"`
	CustomerName   *string  `json:"customerName,omitempty"`
	PickupLocation *string  `json:"pickupLocation,omitempty"`
	ReturnLocation *string  `json:"returnLocation,omitempty"`
	TotalCost      *float64 `json:"totalCost,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case с парсингом дат
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) (*rescheduleInterval.Request, error) {
	pickup, err := time.Parse(domain.DateFormat, r.PickupDate)
	if err != nil {
		return nil, fmt.Errorf("invalid pickupDate: %w", err)
	}

	ret, err := time.Parse(domain.DateFormat, r.ReturnDate)
	if err != nil {
		return nil, fmt.Errorf("invalid returnDate: %w", err)
	}

	return &rescheduleInterval.Request{
		IntervalID:     bookingID,
		Kind:           domain.KindBooking,
		StartDate:      pickup,
		EndDate:        ret,
		CustomerName:   r.CustomerName,
		PickupLocation: r.PickupLocation,
		ReturnLocation: r.ReturnLocation,
		TotalCost:      r.TotalCost,
	}, nil
}

// BookingResponse ответ с перенесённым бронированием
// ID меняется: перенос пересоздаёт интервал
type BookingResponse struct {
	ID             int64    `json:"id"`
	VehicleID      int64    `json:"vehicleId"`
	CustomerName   string   `json:"customerName"`
	PickupDate     string   `json:"pickupDate"`
	ReturnDate     string   `json:"returnDate"`
	PickupLocation *string  `json:"pickupLocation,omitempty"`
	ReturnLocation *string  `json:"returnLocation,omitempty"`
	TotalCost      *float64 `json:"totalCost,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *rescheduleInterval.Response) *BookingResponse {
	out := &BookingResponse{
		ID:             resp.ID,
		VehicleID:      resp.VehicleID,
		PickupDate:     resp.StartDate.Format(domain.DateFormat),
		ReturnDate:     resp.EndDate.Format(domain.DateFormat),
		PickupLocation: resp.PickupLocation,
		ReturnLocation: resp.ReturnLocation,
		TotalCost:      resp.TotalCost,
		UpdatedAt:      resp.UpdatedAt,
	}
	if resp.CustomerName != nil {
		out.CustomerName = *resp.CustomerName
	}

	return out
}
