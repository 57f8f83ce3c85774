package create_booking

import (
	"time"

	"github.com/turfhq/turf-admin-service/internal/domain"
	"github.com/turfhq/turf-admin-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID     int64   // ID пользователя дашборда (для логирования)
	CustomerID int64   // ID клиента, на которого оформляется бронирование
	SlotID     int64   // ID открытого слота
	Notes      *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	CustomerID      int64            // ID клиента
	FieldID         string           // ID площадки
	SlotID          int64            // ID слота
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	BasePrice       float64          // Базовая цена слота
	Multiplier      float64          // Применённый множитель
	Price           float64          // Итоговая цена
	Status          string           // Статус бронирования
	Notes           *string          // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

// buildResponse собирает ответ из созданного бронирования
func buildResponse(booking *domain.Booking, basePrice, multiplier float64) *Response {
	return &Response{
		ID:              booking.ID,
		CustomerID:      booking.CustomerID,
		FieldID:         booking.FieldID,
		SlotID:          booking.SlotID,
		BookingDate:     booking.Date,
		StartTime:       booking.StartTime,
		DurationMinutes: booking.DurationMinutes,
		BasePrice:       basePrice,
		Multiplier:      multiplier,
		Price:           booking.Price,
		Status:          string(booking.Status),
		Notes:           booking.Notes,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}
