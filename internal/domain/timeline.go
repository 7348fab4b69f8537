package domain

import "time"

// Чистые функции над отсортированным таймлайном одного автомобиля.
// Все функции ожидают интервалы, отсортированные по StartDate по возрастанию
// (в таком порядке их возвращает репозиторий), и не имеют побочных эффектов.

// FirstOverlap возвращает самый ранний интервал, пересекающийся с [start, end),
// или nil, если пересечений нет.
//
// Детерминированный tie-break: при нескольких конфликтах возвращается
// интервал с наименьшим StartDate - его даты попадают в сообщение об ошибке
func FirstOverlap(sorted []*Interval, start, end time.Time) *Interval {
	for _, interval := range sorted {
		// Интервалы отсортированы по началу: дальше пересечений быть не может
		if !interval.StartDate.Before(end) {
			break
		}
		if interval.OverlapsRange(start, end) {
			return interval
		}
	}
	return nil
}

// NextAvailableDate возвращает наименьшую дату >= from, не покрытую
// ни одним интервалом. Цепочки встык ([1,5) + [5,10)) обрабатываются
// повторным переходом к концу покрывающего интервала
func NextAvailableDate(sorted []*Interval, from time.Time) time.Time {
	candidate := from
	for _, interval := range sorted {
		if interval.Covers(candidate) {
			candidate = interval.EndDate
		}
	}
	return candidate
}

// StatusAt возвращает статус автомобиля на указанную дату:
// тип покрывающего интервала, иначе StatusAvailable
func StatusAt(sorted []*Interval, asOf time.Time) VehicleStatus {
	if interval := CurrentInterval(sorted, asOf); interval != nil {
		return interval.Kind.Status()
	}
	return StatusAvailable
}

// CurrentInterval возвращает интервал, покрывающий указанную дату, или nil
func CurrentInterval(sorted []*Interval, asOf time.Time) *Interval {
	for _, interval := range sorted {
		if interval.Covers(asOf) {
			return interval
		}
		if interval.StartDate.After(asOf) {
			break
		}
	}
	return nil
}
