package update_vehicle

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/carhive/FleetTimeline-Service/internal/api/handlers"
	"github.com/carhive/FleetTimeline-Service/internal/service/fleet"
	"github.com/carhive/FleetTimeline-Service/internal/service/fleet/models"
)

const (
	msgInvalidVehicleID   = "некорректный ID автомобиля"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidVehicle     = "некорректные данные автомобиля"
	msgVehicleNotFound    = "автомобиль не найден"
	msgDuplicatePlate     = "автомобиль с таким госномером уже зарегистрирован"
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

// Handle PUT /api/vehicles/{vehicleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /vehicles/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	var req models.UpdateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /vehicles/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), vehicleID, &req)
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrVehicleNotFound):
			h.logger.Warn("PUT /vehicles/{id} - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, fleet.ErrDuplicatePlate):
			h.logger.Warn("PUT /vehicles/{id} - Duplicate plate: vehicle_id=%d", vehicleID)
			handlers.RespondConflict(w, msgDuplicatePlate)

		case errors.Is(err, fleet.ErrInvalidInput):
			h.logger.Warn("PUT /vehicles/{id} - Invalid input: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondBadRequest(w, msgInvalidVehicle)

		default:
			h.logger.Error("PUT /vehicles/{id} - Failed to update vehicle: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /vehicles/{id} - Vehicle updated: vehicle_id=%d", vehicleID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
