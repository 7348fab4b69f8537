package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/carhive/FleetTimeline-Service/internal/api/handlers"
	rescheduleInterval "github.com/carhive/FleetTimeline-Service/internal/usecase/reschedule_interval"
	"github.com/carhive/FleetTimeline-Service/pkg/txmanager"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange   = "некорректный диапазон дат"
	msgNotFound           = "бронирование не найдено"
	msgDatesConflict      = "автомобиль занят на выбранные даты, бронирование не изменено"
	msgTryAgain           = "не удалось обработать запрос из-за конкурентного доступа, повторите попытку"
)

type Handler struct {
	useCase RescheduleIntervalUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleIntervalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *rescheduleInterval.ConflictError

		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("PUT /bookings/{id} - Dates conflict: booking_id=%d", bookingID)
			handlers.RespondIntervalConflict(w, msgDatesConflict, conflict.Existing)

		case errors.Is(err, rescheduleInterval.ErrIntervalNotFound),
			errors.Is(err, rescheduleInterval.ErrKindMismatch):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleInterval.ErrInvalidDateRange):
			h.logger.Warn("PUT /bookings/{id} - Invalid date range: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, rescheduleInterval.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, txmanager.ErrSerialization):
			h.logger.Warn("PUT /bookings/{id} - Serialization failure: booking_id=%d", bookingID)
			handlers.RespondServiceUnavailable(w, msgTryAgain)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to reschedule booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking rescheduled: booking_id=%d -> id=%d", bookingID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
