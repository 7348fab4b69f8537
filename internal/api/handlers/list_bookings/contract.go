package list_bookings

import (
	"context"

	"github.com/carhive/FleetTimeline-Service/internal/service/timeline/models"
)

type TimelineService interface {
	ListBookings(ctx context.Context, vehicleID *int64) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
