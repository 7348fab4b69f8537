package get_booking

import (
	"context"

	"github.com/carhive/FleetTimeline-Service/internal/service/timeline/models"
)

type TimelineService interface {
	GetBooking(ctx context.Context, id int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
