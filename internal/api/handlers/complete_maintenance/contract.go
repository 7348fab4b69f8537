package complete_maintenance

import "context"

type TimelineService interface {
	CompleteMaintenance(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
