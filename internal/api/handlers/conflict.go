package handlers

import (
	"net/http"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
)

// ConflictDetails даты и тип интервала, помешавшего операции
// Клиент показывает их пользователю, чтобы тот выбрал другие даты
type ConflictDetails struct {
	Kind      string `json:"kind"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ConflictErrorResponse тело ответа 409 Conflict
type ConflictErrorResponse struct {
	Error    string          `json:"error"`
	Conflict ConflictDetails `json:"conflict"`
}

// RespondIntervalConflict отправляет 409 Conflict с данными
// пересекающегося интервала
func RespondIntervalConflict(w http.ResponseWriter, message string, existing *domain.Interval) {
	RespondJSON(w, http.StatusConflict, ConflictErrorResponse{
		Error: message,
		Conflict: ConflictDetails{
			Kind:      string(existing.Kind),
			StartDate: existing.StartDate.Format(domain.DateFormat),
			EndDate:   existing.EndDate.Format(domain.DateFormat),
		},
	})
}
