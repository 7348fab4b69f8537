package models

import (
	"time"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
)

// Request модели

// ReportIncidentRequest запрос на регистрацию инцидента
type ReportIncidentRequest struct {
	VehicleID    int64     `json:"vehicleId"`
	RentalID     *int64    `json:"rentalId,omitempty"`
	CustomerID   *int64    `json:"customerId,omitempty"`
	Description  string    `json:"description"`
	IncidentDate time.Time `json:"incidentDate"`
}

// FollowUpRequest запрос на добавление результата разбирательства
type FollowUpRequest struct {
	Notes   string `json:"notes"`
	Resolve bool   `json:"resolve"`
}

// Response модели

// IncidentResponse ответ с данными инцидента
type IncidentResponse struct {
	ID            int64   `json:"id"`
	VehicleID     int64   `json:"vehicleId"`
	RentalID      *int64  `json:"rentalId,omitempty"`
	CustomerID    *int64  `json:"customerId,omitempty"`
	Description   string  `json:"description"`
	IncidentDate  string  `json:"incidentDate"` // ISO 8601
	Status        string  `json:"status"`
	FollowUpNotes *string `json:"followUpNotes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IncidentListResponse ответ со списком инцидентов
type IncidentListResponse struct {
	Incidents []IncidentResponse `json:"incidents"`
}

// Методы конвертации

// FromDomainIncident конвертирует domain модель в DTO
func FromDomainIncident(inc *domain.Incident) *IncidentResponse {
	if inc == nil {
		return nil
	}

	return &IncidentResponse{
		ID:            inc.ID,
		VehicleID:     inc.VehicleID,
		RentalID:      inc.RentalID,
		CustomerID:    inc.CustomerID,
		Description:   inc.Description,
		IncidentDate:  inc.IncidentDate.Format(time.RFC3339),
		Status:        string(inc.Status),
		FollowUpNotes: inc.FollowUpNotes,
		CreatedAt:     inc.CreatedAt,
		UpdatedAt:     inc.UpdatedAt,
	}
}

// FromDomainIncidentList конвертирует список domain моделей в DTO
func FromDomainIncidentList(incidents []*domain.Incident) *IncidentListResponse {
	resp := &IncidentListResponse{
		Incidents: make([]IncidentResponse, 0, len(incidents)),
	}

	for _, inc := range incidents {
		if incResp := FromDomainIncident(inc); incResp != nil {
			resp.Incidents = append(resp.Incidents, *incResp)
		}
	}

	return resp
}
