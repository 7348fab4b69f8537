package interval

import "errors"

var (
	// ErrIntervalNotFound возвращается, когда интервал не найден
	ErrIntervalNotFound = errors.New("interval.repository: interval not found")

	// ErrIntervalOverlap возвращается, когда вставка нарушила exclusion
	// constraint таблицы (страховка на уровне БД, основная проверка
	// пересечений выполняется в usecase внутри транзакции)
	ErrIntervalOverlap = errors.New("interval.repository: interval overlaps an existing one")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("interval.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса.
	// Исходная ошибка драйвера остаётся в цепочке (%w): менеджер
	// транзакций по ней распознаёт retryable коды 40001/40P01/55P03
	ErrExecQuery = errors.New("interval.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("interval.repository: failed to scan row")
)
