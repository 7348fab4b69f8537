package create_booking

import (
	"fmt"
	"time"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
	placeInterval "github.com/carhive/FleetTimeline-Service/internal/usecase/place_interval"
)

// CreateBookingRequest запрос на создание бронирования
type CreateBookingRequest struct {
	VehicleID      int64    `json:"vehicleId"`
	CustomerName   string   `json:"customerName"`
	PickupDate     string   `json:"pickupDate"` // "2026-08-01"
	ReturnDate     string   `json:"returnDate"` // Эксклюзивная граница: в этот день автомобиль уже свободен
	PickupLocation *string  `json:"pickupLocation,omitempty"`
	ReturnLocation *string  `json:"returnLocation,omitempty"`
	TotalCost      *float64 `json:"totalCost,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case с парсингом дат
func (r *CreateBookingRequest) ToUseCaseRequest() (*placeInterval.Request, error) {
	pickup, err := time.Parse(domain.DateFormat, r.PickupDate)
	if err != nil {
		return nil, fmt.Errorf("invalid pickupDate: %w", err)
	}

	ret, err := time.Parse(domain.DateFormat, r.ReturnDate)
	if err != nil {
		return nil, fmt.Errorf("invalid returnDate: %w", err)
	}

	req := &placeInterval.Request{
		VehicleID:      r.VehicleID,
		Kind:           domain.KindBooking,
		StartDate:      pickup,
		EndDate:        ret,
		PickupLocation: r.PickupLocation,
		ReturnLocation: r.ReturnLocation,
		TotalCost:      r.TotalCost,
	}
	if r.CustomerName != "" {
		req.CustomerName = &r.CustomerName
	}

	return req, nil
}

// BookingResponse ответ с созданным бронированием
type BookingResponse struct {
	ID             int64    `json:"id"`
	VehicleID      int64    `json:"vehicleId"`
	CustomerName   string   `json:"customerName"`
	PickupDate     string   `json:"pickupDate"`
	ReturnDate     string   `json:"returnDate"`
	PickupLocation *string  `json:"pickupLocation,omitempty"`
	ReturnLocation *string  `json:"returnLocation,omitempty"`
	TotalCost      *float64 `json:"totalCost,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *placeInterval.Response) *BookingResponse {
	out := &BookingResponse{
		ID:             resp.ID,
		VehicleID:      resp.VehicleID,
		PickupDate:     resp.StartDate.Format(domain.DateFormat),
		ReturnDate:     resp.EndDate.Format(domain.DateFormat),
		PickupLocation: resp.PickupLocation,
		ReturnLocation: resp.ReturnLocation,
		TotalCost:      resp.TotalCost,
		CreatedAt:      resp.CreatedAt,
	}
	if resp.CustomerName != nil {
		out.CustomerName = *resp.CustomerName
	}

	return out
}
