package report_incident

import (
	"context"

	"github.com/carhive/FleetTimeline-Service/internal/service/incidents/models"
)

type IncidentService interface {
	Report(ctx context.Context, req *models.ReportIncidentRequest) (*models.IncidentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
