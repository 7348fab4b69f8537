package incidents

import "errors"

var (
	// ErrIncidentNotFound возвращается, когда инцидент не найден
	ErrIncidentNotFound = errors.New("incident not found")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("incidents service: internal error")
)
