package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/carhive/FleetTimeline-Service/internal/api/handlers"
	"github.com/carhive/FleetTimeline-Service/internal/domain"
	"github.com/carhive/FleetTimeline-Service/internal/service/availability"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange = "некорректный диапазон дат"
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

// Handle GET /api/availability/check-availability?vehicleId=N&startDate=...&endDate=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	vehicleID, err := strconv.ParseInt(query.Get("vehicleId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability/check-availability - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /availability/check-availability - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /availability/check-availability - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CheckAvailability(r.Context(), vehicleID, startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrVehicleNotFound):
			h.logger.Warn("GET /availability/check-availability - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, availability.ErrInvalidDateRange), errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /availability/check-availability - Invalid range: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		default:
			h.logger.Error("GET /availability/check-availability - Failed to check: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/check-availability - vehicle_id=%d available=%t", vehicleID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, result)
}
