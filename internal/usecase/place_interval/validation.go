package place_interval

import (
	"fmt"
	"time"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleId must be positive", ErrInvalidInput)
	}

	if !req.Kind.IsValid() {
		return fmt.Errorf("%w: unknown interval kind %q", ErrInvalidInput, req.Kind)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	if err := validateDateRange(req.StartDate, req.EndDate); err != nil {
		return err
	}

	return validateMetadata(req)
}

// validateDateRange проверяет инвариант start < end и разумную длительность
func validateDateRange(start, end time.Time) error {
	if !start.Before(end) {
		return fmt.Errorf("%w: startDate must be before endDate", ErrInvalidDateRange)
	}

	if end.Sub(start) > domain.MaxIntervalDays*24*time.Hour {
		return fmt.Errorf("%w: interval longer than %d days", ErrInvalidDateRange, domain.MaxIntervalDays)
	}

	return nil
}

// validateMetadata проверяет длины текстовых полей
func validateMetadata(req *Request) error {
	checks := []struct {
		value *string
		max   int
		field string
	}{
		{req.CustomerName, domain.MaxCustomerNameLength, "customerName"},
		{req.PickupLocation, domain.MaxLocationLength, "pickupLocation"},
		{req.ReturnLocation, domain.MaxLocationLength, "returnLocation"},
		{req.MechanicName, domain.MaxMechanicNameLength, "mechanicName"},
		{req.Issue, domain.MaxIssueLength, "issue"},
		{req.Reason, domain.MaxReasonLength, "reason"},
	}

	for _, c := range checks {
		if c.value != nil && len(*c.value) > c.max {
			return fmt.Errorf("%w: %s exceeds %d characters", ErrInvalidInput, c.field, c.max)
		}
	}

	return nil
}
