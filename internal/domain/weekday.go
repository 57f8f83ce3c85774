package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidWeekday is returned when a weekday identifier is not recognized
var ErrInvalidWeekday = errors.New("invalid weekday")

// Weekday is a lowercase weekday identifier ("monday".."sunday")
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// AllWeekdays lists weekdays in calendar order starting from Monday
var AllWeekdays = []Weekday{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

// ParseWeekday validates and normalizes a weekday identifier
func ParseWeekday(s string) (Weekday, error) {
	w := Weekday(s)
	for _, known := range AllWeekdays {
		if w == known {
			return w, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

// WeekdayOfDate returns the weekday identifier for a calendar date
func WeekdayOfDate(date time.Time) Weekday {
	switch date.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// ContainsWeekday reports whether day is present in days
func ContainsWeekday(days []Weekday, day Weekday) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
