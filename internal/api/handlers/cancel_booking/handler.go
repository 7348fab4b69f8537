package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/carhive/FleetTimeline-Service/internal/api/handlers"
	"github.com/carhive/FleetTimeline-Service/internal/service/timeline"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
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

// Handle DELETE /api/bookings/{bookingId}
// Отмена освобождает даты; инвариант непересечения нарушить не может
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.RemoveBooking(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, timeline.ErrIntervalNotFound), errors.Is(err, timeline.ErrKindMismatch):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking cancelled: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
