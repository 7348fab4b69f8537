package followup_incident

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/carhive/FleetTimeline-Service/internal/api/handlers"
	"github.com/carhive/FleetTimeline-Service/internal/service/incidents"
	"github.com/carhive/FleetTimeline-Service/internal/service/incidents/models"
)

const (
	msgInvalidIncidentID  = "некорректный ID инцидента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "инцидент не найден"
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

// Handle PUT /api/incidents/{incidentId}/followup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	incidentID, err := strconv.ParseInt(vars["incidentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /incidents/{id}/followup - Invalid incident ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIncidentID)
		return
	}

	var req models.FollowUpRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /incidents/{id}/followup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddFollowUp(r.Context(), incidentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, incidents.ErrIncidentNotFound):
			h.logger.Warn("PUT /incidents/{id}/followup - Incident not found: incident_id=%d", incidentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, incidents.ErrInvalidInput):
			h.logger.Warn("PUT /incidents/{id}/followup - Invalid input: incident_id=%d, error=%v",
				incidentID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /incidents/{id}/followup - Failed to add follow-up: incident_id=%d, error=%v",
				incidentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /incidents/{id}/followup - Follow-up added: incident_id=%d, status=%s",
		incidentID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
