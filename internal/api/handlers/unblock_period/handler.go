package unblock_period

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/carhive/FleetTimeline-Service/internal/api/handlers"
	"github.com/carhive/FleetTimeline-Service/internal/service/timeline"
)

const (
	msgInvalidBlockID = "некорректный ID блокировки"
	msgNotFound       = "блокировка не найдена"
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

// Handle DELETE /api/availability/unblock/period/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	blockID, err := strconv.ParseInt(vars["blockId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /availability/unblock/period/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.UnblockPeriod(r.Context(), blockID); err != nil {
		switch {
		case errors.Is(err, timeline.ErrIntervalNotFound), errors.Is(err, timeline.ErrKindMismatch):
			h.logger.Warn("DELETE /availability/unblock/period/{id} - Block not found: block_id=%d", blockID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /availability/unblock/period/{id} - Failed to unblock: block_id=%d, error=%v",
				blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /availability/unblock/period/{id} - Block removed: block_id=%d", blockID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
