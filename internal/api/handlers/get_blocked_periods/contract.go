package get_blocked_periods

import (
	"context"

	"github.com/carhive/FleetTimeline-Service/internal/service/timeline/models"
)

type TimelineService interface {
	ListBlockedPeriods(ctx context.Context) (*models.BlockedPeriodListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
