package generate_slots

import (
	"time"

	"github.com/turfhq/turf-admin-service/internal/domain"
	"github.com/turfhq/turf-admin-service/pkg/types"
)

// generateSlots генерирует слоты для площадки за период
// Дни вне выбранных дней недели пропускаются целиком. Внутри дня курсор идёт
// от начала дневного окна с шагом durationMinutes; слот, не помещающийся в окно
// целиком, отбрасывается, а не обрезается.
//
// Результат отсортирован по возрастанию (дата, время начала). Генерация
// детерминирована: одинаковый вход даёт одинаковый список слотов с
// одинаковыми slot_key
func generateSlots(
	fieldID string,
	startDate, endDate time.Time,
	days []domain.Weekday,
	dailyStart, dailyEnd types.TimeString,
	durationMinutes int,
	basePrice float64,
) ([]*domain.TimeSlot, error) {
	slots := make([]*domain.TimeSlot, 0)

	for date := dateOnly(startDate); !date.After(dateOnly(endDate)); date = date.AddDate(0, 0, 1) {
		if !domain.ContainsWeekday(days, domain.WeekdayOfDate(date)) {
			continue
		}

		daySlots, err := generateDaySlots(fieldID, date, dailyStart, dailyEnd, durationMinutes, basePrice)
		if err != nil {
			return nil, err
		}

		slots = append(slots, daySlots...)
	}

	return slots, nil
}

// generateDaySlots генерирует слоты одного дня внутри дневного окна
func generateDaySlots(
	fieldID string,
	date time.Time,
	dailyStart, dailyEnd types.TimeString,
	durationMinutes int,
	basePrice float64,
) ([]*domain.TimeSlot, error) {
	slots := make([]*domain.TimeSlot, 0)
	cursor := dailyStart

	for cursor.IsBefore(dailyEnd) {
		slotEnd, err := cursor.AddMinutes(durationMinutes)
		if err != nil {
			// Слот вышел за пределы суток - дальше слотов не будет
			break
		}
		if slotEnd.IsAfter(dailyEnd) {
			break
		}

		slots = append(slots, &domain.TimeSlot{
			SlotKey:         domain.MakeSlotKey(fieldID, date, cursor),
			FieldID:         fieldID,
			Date:            date,
			StartTime:       cursor,
			EndTime:         slotEnd,
			DurationMinutes: durationMinutes,
			Price:           basePrice,
			Status:          domain.SlotStatusOpen,
		})

		cursor = slotEnd
	}

	return slots, nil
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
