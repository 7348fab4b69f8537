package unblock_vehicle

import "context"

type TimelineService interface {
	UnblockVehicle(ctx context.Context, vehicleID int64) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
