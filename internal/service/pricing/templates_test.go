package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turfhq/turf-admin-service/internal/domain"
)

func TestTemplateRules_StandardPeakHours(t *testing.T) {
	rules, ok := templateRules(TemplateStandardPeakHours, "field-1")

	require.True(t, ok)
	require.Len(t, rules, 2)

	morning := rules[0]
	assert.Equal(t, "field-1", morning.FieldID)
	assert.Equal(t, "Morning Peak", morning.Name)
	assert.Equal(t, domain.RuleTypePeak, morning.Type)
	assert.Equal(t, 1.2, morning.Multiplier)
	assert.Equal(t, "08:00", string(morning.StartTime))
	assert.Equal(t, "12:00", string(morning.EndTime))
	assert.Len(t, morning.Days, 5)
	assert.NotContains(t, morning.Days, domain.Saturday)
	assert.True(t, morning.IsActive)

	evening := rules[1]
	assert.Equal(t, "Evening Peak", evening.Name)
	assert.Equal(t, 1.5, evening.Multiplier)
	assert.Equal(t, "17:00", string(evening.StartTime))
	assert.Equal(t, "21:00", string(evening.EndTime))
	assert.Len(t, evening.Days, 7)
}

func TestTemplateRules_WeekendFocus(t *testing.T) {
	rules, ok := templateRules(TemplateWeekendFocus, "field-1")

	require.True(t, ok)
	require.Len(t, rules, 2)

	premium := rules[0]
	assert.Equal(t, "Weekend Premium", premium.Name)
	assert.Equal(t, domain.RuleTypeWeekend, premium.Type)
	assert.Equal(t, 1.3, premium.Multiplier)
	assert.Equal(t, "09:00", string(premium.StartTime))
	assert.Equal(t, "20:00", string(premium.EndTime))
	assert.ElementsMatch(t, []domain.Weekday{domain.Saturday, domain.Sunday}, premium.Days)

	offPeak := rules[1]
	assert.Equal(t, "Weekday Off-Peak", offPeak.Name)
	assert.Equal(t, domain.RuleTypeOffPeak, offPeak.Type)
	assert.Equal(t, 0.8, offPeak.Multiplier)
	assert.Equal(t, "13:00", string(offPeak.StartTime))
	assert.Equal(t, "16:00", string(offPeak.EndTime))
	assert.NotContains(t, offPeak.Days, domain.Sunday)
}

func TestTemplateRules_FlatRateHasNoRules(t *testing.T) {
	rules, ok := templateRules(TemplateFlatRate, "field-1")

	require.True(t, ok)
	assert.Empty(t, rules)
}

func TestTemplateRules_UnknownTemplate(t *testing.T) {
	rules, ok := templateRules("happy-hour", "field-1")

	assert.False(t, ok)
	assert.Nil(t, rules)
}

func TestTemplateRules_DaysAreIndependentCopies(t *testing.T) {
	first, _ := templateRules(TemplateStandardPeakHours, "field-1")
	first[0].Days[0] = domain.Sunday

	second, _ := templateRules(TemplateStandardPeakHours, "field-1")
	assert.Equal(t, domain.Monday, second[0].Days[0])
}
