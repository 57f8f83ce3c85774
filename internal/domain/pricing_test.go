package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turfhq/turf-admin-service/pkg/types"
)

func typesTime(s string) types.TimeString {
	return types.TimeString(s)
}

func rule(name string, multiplier float64, start, end string, days []Weekday, active bool) *PricingRule {
	return &PricingRule{
		Name:       name,
		Type:       RuleTypePeak,
		Multiplier: multiplier,
		StartTime:  typesTime(start),
		EndTime:    typesTime(end),
		Days:       days,
		IsActive:   active,
	}
}

func TestResolveMultiplier_HighestWins(t *testing.T) {
	weekdays := []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}
	ruleA := rule("Morning Peak", 1.2, "08:00", "12:00", weekdays, true)
	ruleB := rule("Mid Morning", 1.5, "09:00", "10:00", weekdays, true)
	rules := []*PricingRule{ruleA, ruleB}

	// В 9:00 действуют оба правила - побеждает больший множитель
	assert.Equal(t, 1500.0, EffectivePrice(1000, rules, 9))

	// В 11:00 действует только правило A
	assert.Equal(t, 1200.0, EffectivePrice(1000, rules, 11))
}

func TestResolveMultiplier_NoMatchDefaultsToOne(t *testing.T) {
	assert.Equal(t, 1000.0, EffectivePrice(1000, nil, 9))
	assert.Equal(t, 1000.0, EffectivePrice(1000, []*PricingRule{}, 15))

	// Правило есть, но час вне окна
	rules := []*PricingRule{rule("Evening Peak", 1.5, "17:00", "21:00", AllWeekdays, true)}
	assert.Equal(t, 1000.0, EffectivePrice(1000, rules, 9))
}

func TestResolveMultiplier_InactiveRulesIgnored(t *testing.T) {
	rules := []*PricingRule{rule("Disabled Peak", 2.0, "08:00", "20:00", AllWeekdays, false)}
	assert.Equal(t, 1.0, ResolveMultiplier(rules, 10))
}

func TestResolveMultiplier_DiscountBelowOneApplies(t *testing.T) {
	// Скидочные правила не ограничиваются снизу единицей
	rules := []*PricingRule{rule("Off Peak", 0.8, "13:00", "16:00", AllWeekdays, true)}
	assert.Equal(t, 800.0, EffectivePrice(1000, rules, 14))
}

func TestResolveMultiplier_HalfOpenHourWindow(t *testing.T) {
	rules := []*PricingRule{rule("Morning Peak", 1.2, "08:00", "12:00", AllWeekdays, true)}

	assert.Equal(t, 1.2, ResolveMultiplier(rules, 8))  // начало включительно
	assert.Equal(t, 1.2, ResolveMultiplier(rules, 11)) // последний час окна
	assert.Equal(t, 1.0, ResolveMultiplier(rules, 12)) // конец исключительно
}

func TestResolveMultiplier_WindowTruncatedToHour(t *testing.T) {
	// Минуты в границах окна отбрасываются: 08:30-11:45 действует как [8, 11)
	rules := []*PricingRule{rule("Odd Window", 1.3, "08:30", "11:45", AllWeekdays, true)}

	assert.Equal(t, 1.3, ResolveMultiplier(rules, 8))
	assert.Equal(t, 1.3, ResolveMultiplier(rules, 10))
	assert.Equal(t, 1.0, ResolveMultiplier(rules, 11))
}

func TestResolveMultiplier_OutOfRangeHourClamped(t *testing.T) {
	rules := []*PricingRule{
		rule("Early", 1.2, "00:00", "02:00", AllWeekdays, true),
		rule("Late", 1.5, "22:00", "23:59", AllWeekdays, true),
	}

	assert.Equal(t, ResolveMultiplier(rules, 0), ResolveMultiplier(rules, -5))
	assert.Equal(t, ResolveMultiplier(rules, 23), ResolveMultiplier(rules, 30))
}

func TestResolveMultiplierForDay(t *testing.T) {
	weekendRule := rule("Weekend Premium", 1.3, "09:00", "20:00", []Weekday{Saturday, Sunday}, true)
	rules := []*PricingRule{weekendRule}

	// В субботу правило действует
	assert.Equal(t, 1.3, ResolveMultiplierForDay(rules, Saturday, 10))

	// В понедельник - нет, хотя час в окне
	assert.Equal(t, 1.0, ResolveMultiplierForDay(rules, Monday, 10))

	// Превью без дня правило видит
	assert.Equal(t, 1.3, ResolveMultiplier(rules, 10))
}

func TestEffectivePrice_RoundsToNearestUnit(t *testing.T) {
	rules := []*PricingRule{rule("Odd Multiplier", 1.15, "09:00", "18:00", AllWeekdays, true)}

	// 333 * 1.15 = 382.95 -> 383
	assert.Equal(t, 383.0, EffectivePrice(333, rules, 10))
}

func TestCollectBookingStats(t *testing.T) {
	bookings := []*Booking{
		{Status: StatusPending, Price: 1000},
		{Status: StatusConfirmed, Price: 1200},
		{Status: StatusCompleted, Price: 1500},
		{Status: StatusCancelled, Price: 900},
	}

	stats := CollectBookingStats(bookings)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Confirmed)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.Cancelled)
	assert.Equal(t, 3700.0, stats.Revenue) // отменённые не входят в выручку
}
