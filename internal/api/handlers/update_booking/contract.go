package update_booking

import (
	"context"

	rescheduleInterval "github.com/carhive/FleetTimeline-Service/internal/usecase/reschedule_interval"
)

type RescheduleIntervalUseCase interface {
	Execute(ctx context.Context, req *rescheduleInterval.Request) (*rescheduleInterval.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
