package domain

import (
	"fmt"
	"time"

	"github.com/turfhq/turf-admin-service/pkg/types"
)

// SlotStatus represents the lifecycle state of a generated time slot
type SlotStatus string

const (
	SlotStatusOpen    SlotStatus = "open"
	SlotStatusBooked  SlotStatus = "booked"
	SlotStatusBlocked SlotStatus = "blocked"
)

// TimeSlot represents a single bookable time interval for a field on a specific date
type TimeSlot struct {
	ID              int64
	SlotKey         string // детерминированный ключ (field, date, startTime)
	FieldID         string
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Price           float64
	Status          SlotStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MakeSlotKey builds the deterministic slot identifier for a (field, date, startTime) triple.
// Re-generating slots for the same window yields the same keys, which makes
// generation idempotent at the storage level.
func MakeSlotKey(fieldID string, date time.Time, startTime types.TimeString) string {
	return fmt.Sprintf("%s_%s_%s", fieldID, date.Format(DateFormat), startTime)
}

// IsOpen returns true if the slot can accept a booking
func (s *TimeSlot) IsOpen() bool {
	return s.Status == SlotStatusOpen
}

// IsBooked returns true if the slot is already taken
func (s *TimeSlot) IsBooked() bool {
	return s.Status == SlotStatusBooked
}

// Overlaps reports whether two slots on the same field and date intersect in time.
// Touching boundaries (one ends exactly where the other starts) do not count as overlap.
func (s *TimeSlot) Overlaps(other *TimeSlot) bool {
	if s.FieldID != other.FieldID || !sameDate(s.Date, other.Date) {
		return false
	}
	return s.StartTime.IsBefore(other.EndTime) && s.EndTime.IsAfter(other.StartTime)
}

// SlotListFilter фильтр для выборки слотов
type SlotListFilter struct {
	FieldID   string
	StartDate *time.Time
	EndDate   *time.Time
	Status    *SlotStatus
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
