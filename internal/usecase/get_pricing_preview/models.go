package get_pricing_preview

import "github.com/turfhq/turf-admin-service/internal/domain"

// Request модель запроса на превью ценообразования
type Request struct {
	FieldID   string          // ID площадки
	BasePrice *float64        // Базовая цена; nil = базовая цена площадки
	Day       *domain.Weekday // Ограничить правила днём недели (опционально)
}

// Response модель ответа с почасовой сеткой цен
type Response struct {
	FieldID   string       // ID площадки
	BasePrice float64      // Использованная базовая цена
	Day       *string      // День недели, если был указан
	Points    []PricePoint // 24 точки, по одной на каждый час
}

// PricePoint цена одного часа
type PricePoint struct {
	Hour       int     `json:"hour"`       // 0..23
	Multiplier float64 `json:"multiplier"` // применённый множитель
	Price      float64 `json:"price"`      // итоговая цена
}
