package delete_vehicle

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

// Handle DELETE /api/vehicles/{vehicleId}
// Вместе с автомобилем каскадно удаляются его интервалы и инциденты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /vehicles/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	if err := h.service.Delete(r.Context(), vehicleID); err != nil {
		switch {
		case errors.Is(err, fleet.ErrVehicleNotFound):
			h.logger.Warn("DELETE /vehicles/{id} - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		default:
			h.logger.Error("DELETE /vehicles/{id} - Failed to delete vehicle: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /vehicles/{id} - Vehicle deleted: vehicle_id=%d", vehicleID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
