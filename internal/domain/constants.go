package domain

import "time"

// Форматы дат
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Ограничения на текстовые поля
const (
	MaxCustomerNameLength = 200
	MaxLocationLength     = 200
	MaxMechanicNameLength = 200
	MaxIssueLength        = 500
	MaxReasonLength       = 500
)

// Ограничения на диапазоны дат
const (
	// MaxIntervalDays максимальная длительность одного интервала
	MaxIntervalDays = 365
)

// DateOnly обнуляет время, оставляя календарную дату в UTC
// Все даты таймлайна хранятся и сравниваются в этом виде
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today возвращает сегодняшнюю календарную дату в UTC
func Today() time.Time {
	return DateOnly(time.Now().UTC())
}
