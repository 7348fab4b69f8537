package reschedule_interval

import (
	"errors"
	"fmt"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_interval: invalid input data")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("reschedule_interval: invalid date range")

	// ErrIntervalNotFound возвращается, когда переносимый интервал не найден
	ErrIntervalNotFound = errors.New("reschedule_interval: interval not found")

	// ErrKindMismatch возвращается, когда интервал найден, но имеет другой тип
	// (попытка перенести обслуживание через endpoint бронирований)
	ErrKindMismatch = errors.New("reschedule_interval: interval has a different kind")

	// ErrIntervalConflict возвращается, когда новый период пересекается
	// с другим интервалом. Исходный интервал при этом остаётся нетронутым:
	// транзакция откатывается целиком
	ErrIntervalConflict = errors.New("reschedule_interval: new period overlaps an existing interval")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_interval: internal error")
)

// ConflictError несёт пересекающийся интервал для сообщения об ошибке
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
