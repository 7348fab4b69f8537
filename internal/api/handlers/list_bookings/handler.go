package list_bookings

import (
	"errors"
	"net/http"
	"strconv"

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

// Handle GET /api/bookings?vehicleId=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Опциональный фильтр по автомобилю
	var vehicleID *int64
	if raw := r.URL.Query().Get("vehicleId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid vehicle ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidVehicleID)
			return
		}
		vehicleID = &id
	}

	result, err := h.service.ListBookings(r.Context(), vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, timeline.ErrVehicleNotFound):
			h.logger.Warn("GET /bookings - Vehicle not found: vehicle_id=%v", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Fetched %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
