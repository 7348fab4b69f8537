package get_vehicle_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/carhive/FleetTimeline-Service/internal/api/handlers"
	"github.com/carhive/FleetTimeline-Service/internal/service/availability"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgVehicleNotFound  = "автомобиль не найден"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/availability/vehicles/{vehicleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability/vehicles/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	result, err := h.service.CurrentStatus(r.Context(), vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrVehicleNotFound):
			h.logger.Warn("GET /availability/vehicles/{id} - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		default:
			h.logger.Error("GET /availability/vehicles/{id} - Failed to compute status: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/vehicles/{id} - vehicle_id=%d status=%s", vehicleID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
