package domain

import "time"

// IncidentStatus статус инцидента
type IncidentStatus string

const (
	IncidentOpen     IncidentStatus = "OPEN"
	IncidentResolved IncidentStatus = "RESOLVED"
)

// Incident инцидент с автомобилем (ДТП, повреждение, жалоба)
// В таймлайне занятости не участвует - это журнальная запись
type Incident struct {
	ID            int64
	VehicleID     int64
	RentalID      *int64
	CustomerID    *int64
	Description   string
	IncidentDate  time.Time
	Status        IncidentStatus
	FollowUpNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsResolved возвращает true для закрытого инцидента
func (i *Incident) IsResolved() bool {
	return i.Status == IncidentResolved
}
