package get_vehicle

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/carhive/FleetTimeline-Service/internal/api/handlers"
	"github.com/carhive/FleetTimeline-Service/internal/service/fleet"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgVehicleNotFound  = "автомобиль не найден"
)

type Handler struct {
	service FleetService
	logger  Logger
}

func NewHandler(service FleetService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/vehicles/{vehicleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /vehicles/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	result, err := h.service.GetByID(r.Context(), vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrVehicleNotFound):
			h.logger.Warn("GET /vehicles/{id} - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		default:
			h.logger.Error("GET /vehicles/{id} - Failed to fetch vehicle: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/{id} - Fetched vehicle id=%d, status=%s", vehicleID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
