package get_blocked_periods

import (
	"net/http"

	"github.com/carhive/FleetTimeline-Service/internal/api/handlers"
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

// Handle GET /api/availability/blocked-periods
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBlockedPeriods(r.Context())
	if err != nil {
		h.logger.Error("GET /availability/blocked-periods - Failed to list blocked periods: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability/blocked-periods - Fetched %d blocked periods", len(result.BlockedPeriods))
	handlers.RespondJSON(w, http.StatusOK, result)
}
