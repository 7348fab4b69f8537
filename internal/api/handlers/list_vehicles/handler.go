package list_vehicles

import (
	"net/http"

	"github.com/carhive/FleetTimeline-Service/internal/api/handlers"
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

// Handle GET /api/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /vehicles - Failed to list vehicles: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /vehicles - Fetched %d vehicles", len(result.Vehicles))
	handlers.RespondJSON(w, http.StatusOK, result)
}
