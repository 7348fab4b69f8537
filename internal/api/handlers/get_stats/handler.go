package get_stats

import (
	"net/http"

	"github.com/carhive/FleetTimeline-Service/internal/api/handlers"
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

// Handle GET /api/availability/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /availability/stats - Failed to build stats: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability/stats - Stats built: total=%d", result.TotalVehicles)
	handlers.RespondJSON(w, http.StatusOK, result)
}
