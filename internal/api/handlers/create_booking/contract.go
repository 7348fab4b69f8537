package create_booking

import (
	"context"

	placeInterval "github.com/carhive/FleetTimeline-Service/internal/usecase/place_interval"
)

type PlaceIntervalUseCase interface {
	Execute(ctx context.Context, req *placeInterval.Request) (*placeInterval.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
