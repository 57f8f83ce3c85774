package get_pricing_preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turfhq/turf-admin-service/internal/domain"
	"github.com/turfhq/turf-admin-service/pkg/ptr"
	"github.com/turfhq/turf-admin-service/pkg/types"
)

func rule(name string, mult float64, start, end string, days []domain.Weekday, active bool) *domain.PricingRule {
	return &domain.PricingRule{
		FieldID:    "field-1",
		Name:       name,
		Type:       domain.RuleTypePeak,
		Multiplier: mult,
		StartTime:  types.TimeString(start),
		EndTime:    types.TimeString(end),
		Days:       days,
		IsActive:   active,
	}
}

func TestBuildPreview_TwentyFourPoints(t *testing.T) {
	points := buildPreview(1000, nil, nil)
	require.Len(t, points, 24)

	for i, p := range points {
		assert.Equal(t, i, p.Hour)
		assert.Equal(t, 1.0, p.Multiplier)
		assert.Equal(t, 1000.0, p.Price)
	}
}

func TestBuildPreview_HighestMultiplierWins(t *testing.T) {
	rules := []*domain.PricingRule{
		rule("A", 1.2, "08:00", "12:00", domain.AllWeekdays, true),
		rule("B", 1.5, "09:00", "10:00", domain.AllWeekdays, true),
	}

	points := buildPreview(1000, rules, nil)

	assert.Equal(t, 1500.0, points[9].Price)  // оба правила, побеждает 1.5
	assert.Equal(t, 1200.0, points[11].Price) // только правило A
	assert.Equal(t, 1000.0, points[12].Price) // правая граница [8,12) не входит
	assert.Equal(t, 1000.0, points[7].Price)  // до начала окна
}

func TestBuildPreview_InactiveRuleIgnored(t *testing.T) {
	rules := []*domain.PricingRule{
		rule("Off", 2.0, "08:00", "20:00", domain.AllWeekdays, false),
	}

	points := buildPreview(500, rules, nil)
	assert.Equal(t, 500.0, points[10].Price)
}

func TestBuildPreview_DiscountApplies(t *testing.T) {
	rules := []*domain.PricingRule{
		rule("Morning discount", 0.8, "06:00", "09:00", domain.AllWeekdays, true),
	}

	points := buildPreview(1000, rules, nil)
	assert.Equal(t, 800.0, points[7].Price)
	assert.Equal(t, 0.8, points[7].Multiplier)
}

func TestBuildPreview_DayScopedRules(t *testing.T) {
	rules := []*domain.PricingRule{
		rule("Weekend", 1.5, "09:00", "18:00", []domain.Weekday{domain.Saturday, domain.Sunday}, true),
	}

	// Без дня правило видно - превью без даты матчится только по часу
	points := buildPreview(1000, rules, nil)
	assert.Equal(t, 1500.0, points[10].Price)

	// Во вторник субботнее правило не действует
	points = buildPreview(1000, rules, ptr.Ptr(domain.Tuesday))
	assert.Equal(t, 1000.0, points[10].Price)

	// В субботу действует
	points = buildPreview(1000, rules, ptr.Ptr(domain.Saturday))
	assert.Equal(t, 1500.0, points[10].Price)
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, validateRequest(&Request{FieldID: "field-1"}))
	assert.ErrorIs(t, validateRequest(&Request{}), ErrInvalidInput)
	assert.ErrorIs(t, validateRequest(&Request{FieldID: "f", BasePrice: ptr.Ptr(-5.0)}), ErrInvalidInput)

	badDay := domain.Weekday("someday")
	assert.ErrorIs(t, validateRequest(&Request{FieldID: "f", Day: &badDay}), ErrInvalidInput)

	goodDay := domain.Monday
	assert.NoError(t, validateRequest(&Request{FieldID: "f", Day: &goodDay}))
}
