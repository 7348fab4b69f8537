package place_interval

import (
	"errors"
	"fmt"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("place_interval: invalid input data")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	// (start >= end, слишком длинный интервал)
	ErrInvalidDateRange = errors.New("place_interval: invalid date range")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("place_interval: vehicle not found")

	// ErrIntervalConflict возвращается, когда запрошенный период
	// пересекается с уже зафиксированным интервалом.
	// Это ожидаемый исход, а не сбой: вызывающая сторона предлагает
	// пользователю другие даты
	ErrIntervalConflict = errors.New("place_interval: period overlaps an existing interval")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("place_interval: internal error")
)

// ConflictError несёт пересекающийся интервал, чтобы вызывающая сторона
// могла показать занятые даты. Разворачивается в ErrIntervalConflict
type ConflictError struct {
	Existing *domain.Interval
}

// Error реализует error
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: %s is taken from %s to %s",
		ErrIntervalConflict,
		e.Existing.Kind,
		e.Existing.StartDate.Format(domain.DateFormat),
		e.Existing.EndDate.Format(domain.DateFormat),
	)
}

// Unwrap позволяет errors.Is(err, ErrIntervalConflict)
func (e *ConflictError) Unwrap() error {
	return ErrIntervalConflict
}
