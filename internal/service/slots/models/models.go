package models

import (
	"errors"
	"time"

	"github.com/turfhq/turf-admin-service/internal/domain"
)

// ErrInvalidSlotStatus возвращается при некорректном статусе слота
var ErrInvalidSlotStatus = errors.New("invalid slot status")

// Request модели

// ListSlotsRequest запрос на получение слотов площадки
type ListSlotsRequest struct {
	FieldID   string     `json:"fieldId"`
	StartDate *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate   *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
	Status    *string    `json:"status,omitempty"`    // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListSlotsRequest) ToDomainFilter() (domain.SlotListFilter, error) {
	filter := domain.SlotListFilter{
		FieldID:   r.FieldID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	if r.Status != nil {
		status, err := ToDomainSlotStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID              int64   `json:"id"`
	SlotKey         string  `json:"slotKey"`
	FieldID         string  `json:"fieldId"`
	Date            string  `json:"date"`      // "2025-10-15"
	StartTime       string  `json:"startTime"` // "09:00"
	EndTime         string  `json:"endTime"`   // "10:00"
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Status          string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(slot *domain.TimeSlot) *SlotResponse {
	if slot == nil {
		return nil
	}

	return &SlotResponse{
		ID:              slot.ID,
		SlotKey:         slot.SlotKey,
		FieldID:         slot.FieldID,
		Date:            slot.Date.Format(domain.DateFormat),
		StartTime:       slot.StartTime.String(),
		EndTime:         slot.EndTime.String(),
		DurationMinutes: slot.DurationMinutes,
		Price:           slot.Price,
		Status:          string(slot.Status),
		CreatedAt:       slot.CreatedAt,
		UpdatedAt:       slot.UpdatedAt,
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.TimeSlot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}

	for _, slot := range slots {
		if slotResp := FromDomainSlot(slot); slotResp != nil {
			resp.Slots = append(resp.Slots, *slotResp)
		}
	}

	return resp
}

// ToDomainSlotStatus конвертирует строку в domain.SlotStatus с валидацией
func ToDomainSlotStatus(status string) (domain.SlotStatus, error) {
	s := domain.SlotStatus(status)

	validStatuses := []domain.SlotStatus{
		domain.SlotStatusOpen,
		domain.SlotStatusBooked,
		domain.SlotStatusBlocked,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidSlotStatus
}
