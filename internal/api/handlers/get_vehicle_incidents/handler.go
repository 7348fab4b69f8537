package get_vehicle_incidents

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/carhive/FleetTimeline-Service/internal/api/handlers"
	"github.com/carhive/FleetTimeline-Service/internal/service/incidents"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgVehicleNotFound  = "автомобиль не найден"
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

// Handle GET /api/incidents/vehicle/{vehicleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /incidents/vehicle/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	result, err := h.service.ListByVehicle(r.Context(), vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, incidents.ErrVehicleNotFound):
			h.logger.Warn("GET /incidents/vehicle/{id} - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		default:
			h.logger.Error("GET /incidents/vehicle/{id} - Failed to list incidents: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /incidents/vehicle/{id} - Fetched %d incidents for vehicle_id=%d",
		len(result.Incidents), vehicleID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
