package timeline

import "errors"

var (
	// ErrIntervalNotFound возвращается, когда интервал не найден
	ErrIntervalNotFound = errors.New("interval not found")

	// ErrKindMismatch возвращается, когда интервал найден, но имеет другой тип
	// (попытка снять блокировку по ID бронирования и т.п.)
	ErrKindMismatch = errors.New("interval has a different kind")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("timeline service: internal error")
)
