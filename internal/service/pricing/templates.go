package pricing

import (
	"github.com/turfhq/turf-admin-service/internal/domain"
	"github.com/turfhq/turf-admin-service/pkg/types"
)

// Имена поддерживаемых шаблонов правил
const (
	TemplateStandardPeakHours = "standard-peak-hours"
	TemplateWeekendFocus      = "weekend-focus"
	TemplateFlatRate          = "flat-rate"
)

// TemplateNames перечисляет поддерживаемые шаблоны
var TemplateNames = []string{
	TemplateStandardPeakHours,
	TemplateWeekendFocus,
	TemplateFlatRate,
}

var weekdaysOnly = []domain.Weekday{
	domain.Monday,
	domain.Tuesday,
	domain.Wednesday,
	domain.Thursday,
	domain.Friday,
}

var weekendOnly = []domain.Weekday{
	domain.Saturday,
	domain.Sunday,
}

var allDays = []domain.Weekday{
	domain.Monday,
	domain.Tuesday,
	domain.Wednesday,
	domain.Thursday,
	domain.Friday,
	domain.Saturday,
	domain.Sunday,
}

// templateRules возвращает набор правил шаблона для площадки.
// Шаблон flat-rate не содержит правил: его применение сбрасывает
// ценообразование площадки к базовой цене.
func templateRules(template string, fieldID string) ([]*domain.PricingRule, bool) {
	switch template {
	case TemplateStandardPeakHours:
		return []*domain.PricingRule{
			{
				FieldID:    fieldID,
				Name:       "Morning Peak",
				Type:       domain.RuleTypePeak,
				Multiplier: 1.2,
				StartTime:  types.TimeString("08:00"),
				EndTime:    types.TimeString("12:00"),
				Days:       cloneDays(weekdaysOnly),
				IsActive:   true,
			},
			{
				FieldID:    fieldID,
				Name:       "Evening Peak",
				Type:       domain.RuleTypePeak,
				Multiplier: 1.5,
				StartTime:  types.TimeString("17:00"),
				EndTime:    types.TimeString("21:00"),
				Days:       cloneDays(allDays),
				IsActive:   true,
			},
		}, true

	case TemplateWeekendFocus:
		return []*domain.PricingRule{
			{
				FieldID:    fieldID,
				Name:       "Weekend Premium",
				Type:       domain.RuleTypeWeekend,
				Multiplier: 1.3,
				StartTime:  types.TimeString("09:00"),
				EndTime:    types.TimeString("20:00"),
				Days:       cloneDays(weekendOnly),
				IsActive:   true,
			},
			{
				FieldID:    fieldID,
				Name:       "Weekday Off-Peak",
				Type:       domain.RuleTypeOffPeak,
				Multiplier: 0.8,
				StartTime:  types.TimeString("13:00"),
				EndTime:    types.TimeString("16:00"),
				Days:       cloneDays(weekdaysOnly),
				IsActive:   true,
			},
		}, true

	case TemplateFlatRate:
		return []*domain.PricingRule{}, true

	default:
		return nil, false
	}
}

func cloneDays(days []domain.Weekday) []domain.Weekday {
	result := make([]domain.Weekday, len(days))
	copy(result, days)
	return result
}
