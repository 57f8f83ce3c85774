package generate_slots

import (
	"fmt"

	"github.com/turfhq/turf-admin-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FieldID == "" {
		return fmt.Errorf("%w: fieldID is required", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}

	if dateOnly(req.EndDate).Before(dateOnly(req.StartDate)) {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidDateRange)
	}

	rangeDays := int(dateOnly(req.EndDate).Sub(dateOnly(req.StartDate)).Hours()/24) + 1
	if rangeDays > domain.MaxGenerationRangeDays {
		return fmt.Errorf("%w: range exceeds %d days", ErrInvalidDateRange, domain.MaxGenerationRangeDays)
	}

	if len(req.Days) == 0 {
		return fmt.Errorf("%w: at least one weekday is required", ErrInvalidInput)
	}
	for _, day := range req.Days {
		if _, err := domain.ParseWeekday(string(day)); err != nil {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, day)
		}
	}

	if req.DurationMinutes < domain.MinSlotDurationMinutes || req.DurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if !req.DailyStartTime.IsBefore(req.DailyEndTime) {
		return fmt.Errorf("%w: daily start time must be before daily end time", ErrInvalidInput)
	}

	if req.BasePrice != nil {
		if *req.BasePrice < 0 {
			return fmt.Errorf("%w: base price cannot be negative", ErrInvalidInput)
		}
		if *req.BasePrice > domain.MaxBasePrice {
			return fmt.Errorf("%w: base price exceeds %d", ErrInvalidInput, domain.MaxBasePrice)
		}
	}

	return nil
}
