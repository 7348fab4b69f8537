package create_vehicle

import (
	"errors"
	"net/http"

	"github.com/carhive/FleetTimeline-Service/internal/api/handlers"
	"github.com/carhive/FleetTimeline-Service/internal/service/fleet"
	"github.com/carhive/FleetTimeline-Service/internal/service/fleet/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidVehicle     = "некорректные данные автомобиля"
	msgDuplicatePlate     = "автомобиль с таким госномером уже зарегистрирован"
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

// Handle POST /api/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrDuplicatePlate):
			h.logger.Warn("POST /vehicles - Duplicate plate: plate=%s", req.LicensePlate)
			handlers.RespondConflict(w, msgDuplicatePlate)

		case errors.Is(err, fleet.ErrInvalidInput):
			h.logger.Warn("POST /vehicles - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidVehicle)

		default:
			h.logger.Error("POST /vehicles - Failed to create vehicle: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles - Vehicle created: vehicle_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
