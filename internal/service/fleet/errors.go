package fleet

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrDuplicatePlate возвращается при попытке сохранить автомобиль
	// с уже занятым госномером
	ErrDuplicatePlate = errors.New("license plate already registered")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("fleet service: internal error")
)
