package unblock_vehicle

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/carhive/FleetTimeline-Service/internal/api/handlers"
	"github.com/carhive/FleetTimeline-Service/internal/service/timeline"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgVehicleNotFound  = "автомобиль не найден"
)

// UnblockVehicleResponse ответ со счётчиком снятых блокировок
type UnblockVehicleResponse struct {
	RemovedBlocks int64 `json:"removedBlocks"`
}

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

// Handle DELETE /api/availability/unblock/vehicle/{vehicleId}
// Снимает все ручные блокировки автомобиля; ноль блокировок - не ошибка
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /availability/unblock/vehicle/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	removed, err := h.service.UnblockVehicle(r.Context(), vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, timeline.ErrVehicleNotFound):
			h.logger.Warn("DELETE /availability/unblock/vehicle/{id} - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		default:
			h.logger.Error("DELETE /availability/unblock/vehicle/{id} - Failed to unblock: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /availability/unblock/vehicle/{id} - Removed %d blocks for vehicle_id=%d",
		removed, vehicleID)
	handlers.RespondJSON(w, http.StatusOK, UnblockVehicleResponse{RemovedBlocks: removed})
}
