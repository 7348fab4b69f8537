package complete_maintenance

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/carhive/FleetTimeline-Service/internal/api/handlers"
	"github.com/carhive/FleetTimeline-Service/internal/service/timeline"
)

const (
	msgInvalidMaintenanceID = "некорректный ID записи обслуживания"
	msgNotFound             = "запись обслуживания не найдена"
)

type Handler struct {
	service TimelineService
	logger  Logger
}

func NewHandler(service TimelineService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/maintenance/{maintenanceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	maintenanceID, err := strconv.ParseInt(vars["maintenanceId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /maintenance/{id} - Invalid maintenance ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMaintenanceID)
		return
	}

	if err := h.service.CompleteMaintenance(r.Context(), maintenanceID); err != nil {
		switch {
		case errors.Is(err, timeline.ErrIntervalNotFound), errors.Is(err, timeline.ErrKindMismatch):
			h.logger.Warn("DELETE /maintenance/{id} - Maintenance not found: maintenance_id=%d", maintenanceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /maintenance/{id} - Failed to complete maintenance: maintenance_id=%d, error=%v",
				maintenanceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /maintenance/{id} - Maintenance completed: maintenance_id=%d", maintenanceID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
