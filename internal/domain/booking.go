package domain

import (
	"time"

	"github.com/turfhq/turf-admin-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a customer booking of a generated time slot
type Booking struct {
	ID              int64
	CustomerID      int64
	FieldID         string
	SlotID          int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Price           float64 // итоговая цена с учётом правил ценообразования
	Status          BookingStatus
	Notes           *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeUpdated returns true if the booking status can still change
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BookingListFilter фильтр для получения бронирований
type BookingListFilter struct {
	FieldID         *string        // Фильтр по площадке (опционально)
	CustomerID      *int64         // Фильтр по клиенту (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}

// BookingStats агрегированная статистика по бронированиям
// Используется дашбордом поверх списка бронирований
type BookingStats struct {
	Total     int
	Pending   int
	Confirmed int
	Completed int
	Cancelled int
	Revenue   float64 // сумма цен всех неотменённых бронирований
}

// CollectBookingStats считает статистику по списку бронирований
func CollectBookingStats(bookings []*Booking) BookingStats {
	stats := BookingStats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case StatusPending:
			stats.Pending++
		case StatusConfirmed:
			stats.Confirmed++
		case StatusCompleted:
			stats.Completed++
		case StatusCancelled:
			stats.Cancelled++
		}
		if b.IsActive() {
			stats.Revenue += b.Price
		}
	}
	return stats
}
