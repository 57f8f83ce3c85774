package domain

import (
	"math"
	"time"

	"github.com/turfhq/turf-admin-service/pkg/types"
)

// RuleType classifies a pricing rule. The type is a label only:
// resolution depends solely on the rule's time window, days and active flag.
type RuleType string

const (
	RuleTypePeak    RuleType = "peak"
	RuleTypeOffPeak RuleType = "off-peak"
	RuleTypeWeekend RuleType = "weekend"
	RuleTypeHoliday RuleType = "holiday"
)

// RuleTypes lists all known pricing rule types
var RuleTypes = []RuleType{
	RuleTypePeak,
	RuleTypeOffPeak,
	RuleTypeWeekend,
	RuleTypeHoliday,
}

// PricingRule is a time- and day-boxed price multiplier for a field.
// Multipliers below 1.0 are discounts, above 1.0 are surcharges.
type PricingRule struct {
	ID         int64
	FieldID    string
	Name       string
	Type       RuleType
	Multiplier float64
	StartTime  types.TimeString // окно внутри одних суток, start < end
	EndTime    types.TimeString
	Days       []Weekday
	IsActive   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MatchesHour reports whether the rule's window covers the given hour.
// Bounds are derived by truncating StartTime/EndTime to the integer hour,
// the window is half-open: [startHour, endHour).
func (r *PricingRule) MatchesHour(hour int) bool {
	return r.StartTime.Hour() <= hour && hour < r.EndTime.Hour()
}

// MatchesDay reports whether the rule is active on the given weekday
func (r *PricingRule) MatchesDay(day Weekday) bool {
	return ContainsWeekday(r.Days, day)
}

// ResolveMultiplier возвращает максимальный множитель среди активных правил,
// окно которых покрывает указанный час. Если ни одно правило не подходит,
// возвращается 1.0. Множители меньше 1.0 (скидки) применяются наравне с надбавками.
//
// День недели здесь не учитывается: эта функция обслуживает 24-часовое превью,
// у которого нет конкретной даты. Для расчёта цены бронирования используется
// ResolveMultiplierForDay.
func ResolveMultiplier(rules []*PricingRule, hour int) float64 {
	hour = ClampHour(hour)

	best := 1.0
	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}
		if !rule.MatchesHour(hour) {
			continue
		}
		if rule.Multiplier > best {
			best = rule.Multiplier
		}
	}
	return best
}

// ResolveMultiplierForDay работает как ResolveMultiplier, но дополнительно
// требует, чтобы правило действовало в указанный день недели
func ResolveMultiplierForDay(rules []*PricingRule, day Weekday, hour int) float64 {
	hour = ClampHour(hour)

	best := 1.0
	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}
		if !rule.MatchesDay(day) {
			continue
		}
		if !rule.MatchesHour(hour) {
			continue
		}
		if rule.Multiplier > best {
			best = rule.Multiplier
		}
	}
	return best
}

// EffectivePrice возвращает basePrice × максимальный множитель для часа,
// округленную до целой денежной единицы
func EffectivePrice(basePrice float64, rules []*PricingRule, hour int) float64 {
	return math.Round(basePrice * ResolveMultiplier(rules, hour))
}

// EffectivePriceForDay возвращает цену с учётом дня недели
func EffectivePriceForDay(basePrice float64, rules []*PricingRule, day Weekday, hour int) float64 {
	return math.Round(basePrice * ResolveMultiplierForDay(rules, day, hour))
}

// ClampHour приводит час к диапазону [0, 23]
func ClampHour(hour int) int {
	if hour < 0 {
		return 0
	}
	if hour > 23 {
		return 23
	}
	return hour
}
