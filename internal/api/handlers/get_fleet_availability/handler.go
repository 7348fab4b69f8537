package get_fleet_availability

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/carhive/FleetTimeline-Service/internal/api/handlers"
	"github.com/carhive/FleetTimeline-Service/internal/domain"
	"github.com/carhive/FleetTimeline-Service/internal/service/availability"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange = "некорректный диапазон дат"
	msgInvalidVehicleID = "некорректный список vehicleIds"
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

// Handle GET /api/availability/vehicles
//
// Без параметров возвращает сводку по парку на сегодня. С параметрами
// startDate и endDate возвращает карту доступности на период; параметр
// vehicleIds (ID через запятую) ограничивает проверку частью парка
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("startDate") == "" && query.Get("endDate") == "" {
		h.handleOverview(w, r)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /availability/vehicles - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /availability/vehicles - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	vehicleIDs, err := parseVehicleIDs(query.Get("vehicleIds"))
	if err != nil {
		h.logger.Warn("GET /availability/vehicles - Invalid vehicleIds: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	result, err := h.service.FleetAvailability(r.Context(), vehicleIDs, startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidDateRange), errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /availability/vehicles - Invalid range: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		default:
			h.logger.Error("GET /availability/vehicles - Failed to check fleet availability: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/vehicles - Availability checked for %d vehicles", len(result.Availability))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.FleetOverview(r.Context())
	if err != nil {
		h.logger.Error("GET /availability/vehicles - Failed to build fleet overview: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability/vehicles - Overview built for %d vehicles", len(result.Vehicles))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseVehicleIDs разбирает список ID через запятую; пустая строка - весь парк
func parseVehicleIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
