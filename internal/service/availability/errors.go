package availability

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability service: internal error")
)
