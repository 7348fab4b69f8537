package report_incident

import (
	"errors"
	"net/http"

	"github.com/carhive/FleetTimeline-Service/internal/api/handlers"
	"github.com/carhive/FleetTimeline-Service/internal/service/incidents"
	"github.com/carhive/FleetTimeline-Service/internal/service/incidents/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidIncident    = "некорректные данные инцидента"
	msgVehicleNotFound    = "автомобиль не найден"
)

type Handler struct {
	service IncidentService
	logger  Logger
}

func NewHandler(service IncidentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/incidents
// Регистрация инцидента не блокирует даты в таймлайне: при необходимости
// ремонта администратор отдельно ставит период обслуживания
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ReportIncidentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /incidents - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Report(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, incidents.ErrVehicleNotFound):
			h.logger.Warn("POST /incidents - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, incidents.ErrInvalidInput):
			h.logger.Warn("POST /incidents - Invalid input: vehicle_id=%d, error=%v", req.VehicleID, err)
			handlers.RespondBadRequest(w, msgInvalidIncident)

		default:
			h.logger.Error("POST /incidents - Failed to report incident: vehicle_id=%d, error=%v",
				req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /incidents - Incident reported: incident_id=%d, vehicle_id=%d",
		result.ID, req.VehicleID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
