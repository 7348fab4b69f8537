package followup_incident

import (
	"context"

	"github.com/carhive/FleetTimeline-Service/internal/service/incidents/models"
)

type IncidentService interface {
	AddFollowUp(ctx context.Context, id int64, req *models.FollowUpRequest) (*models.IncidentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
