package generate_slots

import (
	"time"

	"github.com/turfhq/turf-admin-service/internal/domain"
	"github.com/turfhq/turf-admin-service/pkg/types"
)

// Request модель запроса на генерацию слотов
type Request struct {
	UserID          int64            // ID пользователя (для логирования, не влияет на результат)
	FieldID         string           // ID площадки
	StartDate       time.Time        // Начало периода (включительно)
	EndDate         time.Time        // Конец периода (включительно)
	Days            []domain.Weekday // Дни недели, для которых генерируются слоты
	DailyStartTime  types.TimeString // Начало дневного окна (например, "09:00")
	DailyEndTime    types.TimeString // Конец дневного окна (например, "18:00")
	DurationMinutes int              // Длительность одного слота в минутах
	BasePrice       *float64         // Базовая цена слота; nil = базовая цена площадки
	Preview         bool             // true = посчитать без сохранения
}

// Response модель ответа с итогами генерации
type Response struct {
	FieldID          string        // ID площадки
	Preview          bool          // Был ли это предпросмотр
	GeneratedCount   int           // Количество сгенерированных слотов
	SavedCount       int64         // Количество сохранённых слотов (0 при предпросмотре)
	SkippedCount     int64         // Количество пропущенных дубликатов (0 при предпросмотре)
	EstimatedRevenue float64       // Суммарная цена всех сгенерированных слотов
	Slots            []SlotPreview // Первые слоты для предпросмотра
}

// SlotPreview краткое представление слота для ответа
type SlotPreview struct {
	SlotKey   string // Детерминированный ключ слота
	Date      string // "2025-10-15"
	StartTime string // "09:00"
	EndTime   string // "10:00"
	Price     float64
}

// buildResponse собирает ответ из сгенерированных слотов
// В предпросмотр попадают только первые DefaultPreviewSlotsCount слотов
func buildResponse(req *Request, slots []*domain.TimeSlot, saved int64) *Response {
	resp := &Response{
		FieldID:        req.FieldID,
		Preview:        req.Preview,
		GeneratedCount: len(slots),
		SavedCount:     saved,
		Slots:          make([]SlotPreview, 0, domain.DefaultPreviewSlotsCount),
	}

	if !req.Preview {
		resp.SkippedCount = int64(len(slots)) - saved
	}

	for i, slot := range slots {
		resp.EstimatedRevenue += slot.Price

		if i < domain.DefaultPreviewSlotsCount {
			resp.Slots = append(resp.Slots, SlotPreview{
				SlotKey:   slot.SlotKey,
				Date:      slot.Date.Format(domain.DateFormat),
				StartTime: slot.StartTime.String(),
				EndTime:   slot.EndTime.String(),
				Price:     slot.Price,
			})
		}
	}

	return resp
}
