package delete_incident

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/carhive/FleetTimeline-Service/internal/api/handlers"
	"github.com/carhive/FleetTimeline-Service/internal/service/incidents"
)

const (
	msgInvalidIncidentID = "некорректный ID инцидента"
	msgNotFound          = "инцидент не найден"
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

// Handle DELETE /api/incidents/{incidentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	incidentID, err := strconv.ParseInt(vars["incidentId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /incidents/{id} - Invalid incident ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIncidentID)
		return
	}

	if err := h.service.Delete(r.Context(), incidentID); err != nil {
		switch {
		case errors.Is(err, incidents.ErrIncidentNotFound):
			h.logger.Warn("DELETE /incidents/{id} - Incident not found: incident_id=%d", incidentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /incidents/{id} - Failed to delete incident: incident_id=%d, error=%v",
				incidentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /incidents/{id} - Incident deleted: incident_id=%d", incidentID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
