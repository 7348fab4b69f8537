package get_vehicle_maintenance

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

// Handle GET /api/maintenance/car/{carId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	vehicleID, err := strconv.ParseInt(vars["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /maintenance/car/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	result, err := h.service.ListMaintenanceByVehicle(r.Context(), vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, timeline.ErrVehicleNotFound):
			h.logger.Warn("GET /maintenance/car/{id} - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		default:
			h.logger.Error("GET /maintenance/car/{id} - Failed to list maintenance: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /maintenance/car/{id} - Fetched %d records for vehicle_id=%d",
		len(result.Records), vehicleID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
