package block_vehicle

import (
	"errors"
	"net/http"

	"github.com/carhive/FleetTimeline-Service/internal/api/handlers"
	placeInterval "github.com/carhive/FleetTimeline-Service/internal/usecase/place_interval"
	"github.com/carhive/FleetTimeline-Service/pkg/txmanager"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange   = "некорректный диапазон дат"
	msgVehicleNotFound    = "автомобиль не найден"
	msgDatesConflict      = "автомобиль занят на выбранные даты"
	msgTryAgain           = "не удалось обработать запрос из-за конкурентного доступа, повторите попытку"
)

type Handler struct {
	useCase PlaceIntervalUseCase
	logger  Logger
}

func NewHandler(useCase PlaceIntervalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/availability/block
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BlockVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/block - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /availability/block - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *placeInterval.ConflictError

		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /availability/block - Dates conflict: vehicle_id=%d", req.VehicleID)
			handlers.RespondIntervalConflict(w, msgDatesConflict, conflict.Existing)

		case errors.Is(err, placeInterval.ErrVehicleNotFound):
			h.logger.Warn("POST /availability/block - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, placeInterval.ErrInvalidDateRange):
			h.logger.Warn("POST /availability/block - Invalid date range: vehicle_id=%d", req.VehicleID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, placeInterval.ErrInvalidInput):
			h.logger.Warn("POST /availability/block - Invalid input: vehicle_id=%d, error=%v", req.VehicleID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, txmanager.ErrSerialization):
			h.logger.Warn("POST /availability/block - Serialization failure: vehicle_id=%d", req.VehicleID)
			handlers.RespondServiceUnavailable(w, msgTryAgain)

		default:
			h.logger.Error("POST /availability/block - Failed to block vehicle: vehicle_id=%d, error=%v",
				req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/block - Vehicle blocked: block_id=%d, vehicle_id=%d",
		result.ID, req.VehicleID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
