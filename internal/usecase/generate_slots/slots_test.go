package generate_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turfhq/turf-admin-service/internal/domain"
	"github.com/turfhq/turf-admin-service/pkg/types"
)

func date(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestGenerateSlots_SingleDayWindow(t *testing.T) {
	// Окно 09:00-12:00 с часовыми слотами даёт ровно три слота
	slots, err := generateSlots(
		"field-1",
		date("2025-10-13"), date("2025-10-13"), // понедельник
		[]domain.Weekday{domain.Monday},
		types.TimeString("09:00"), types.TimeString("12:00"),
		60,
		1000,
	)
	require.NoError(t, err)
	require.Len(t, slots, 3)

	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), slots[0].EndTime)
	assert.Equal(t, types.TimeString("10:00"), slots[1].StartTime)
	assert.Equal(t, types.TimeString("11:00"), slots[2].StartTime)

	for _, slot := range slots {
		assert.Equal(t, "field-1", slot.FieldID)
		assert.Equal(t, domain.SlotStatusOpen, slot.Status)
		assert.Equal(t, 1000.0, slot.Price)
		assert.Equal(t, 60, slot.DurationMinutes)
	}
}

func TestGenerateSlots_PartialTrailingSlotDropped(t *testing.T) {
	// Окно 09:00-10:30 вмещает только один часовой слот,
	// хвост 10:00-10:30 отбрасывается, а не обрезается
	slots, err := generateSlots(
		"field-1",
		date("2025-10-13"), date("2025-10-13"),
		[]domain.Weekday{domain.Monday},
		types.TimeString("09:00"), types.TimeString("10:30"),
		60,
		1000,
	)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), slots[0].EndTime)
}

func TestGenerateSlots_DayFilterOverTwoWeeks(t *testing.T) {
	// 2025-10-13 (понедельник) .. 2025-10-26 (воскресенье) - ровно две недели.
	// Понедельник и среда встречаются по два раза, окно даёт по два слота в день
	slots, err := generateSlots(
		"field-1",
		date("2025-10-13"), date("2025-10-26"),
		[]domain.Weekday{domain.Monday, domain.Wednesday},
		types.TimeString("10:00"), types.TimeString("12:00"),
		60,
		500,
	)
	require.NoError(t, err)
	assert.Len(t, slots, 8) // 4 дня * 2 слота

	for _, slot := range slots {
		day := domain.WeekdayOfDate(slot.Date)
		assert.Contains(t, []domain.Weekday{domain.Monday, domain.Wednesday}, day)
	}
}

func TestGenerateSlots_AscendingOrder(t *testing.T) {
	slots, err := generateSlots(
		"field-1",
		date("2025-10-13"), date("2025-10-19"),
		domain.AllWeekdays,
		types.TimeString("09:00"), types.TimeString("18:00"),
		90,
		700,
	)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for i := 1; i < len(slots); i++ {
		prev, curr := slots[i-1], slots[i]
		if prev.Date.Equal(curr.Date) {
			assert.True(t, prev.StartTime.IsBefore(curr.StartTime),
				"slots on %s out of order: %s >= %s", curr.Date.Format(domain.DateFormat), prev.StartTime, curr.StartTime)
		} else {
			assert.True(t, prev.Date.Before(curr.Date))
		}
	}
}

func TestGenerateSlots_NoOverlapWithinDay(t *testing.T) {
	slots, err := generateSlots(
		"field-1",
		date("2025-10-13"), date("2025-10-14"),
		domain.AllWeekdays,
		types.TimeString("08:00"), types.TimeString("20:00"),
		45,
		300,
	)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for i := 0; i < len(slots); i++ {
		for j := i + 1; j < len(slots); j++ {
			assert.False(t, slots[i].Overlaps(slots[j]),
				"slot %s overlaps slot %s", slots[i].SlotKey, slots[j].SlotKey)
		}
	}
}

func TestGenerateSlots_DurationLargerThanWindow(t *testing.T) {
	// Слот не помещается в окно целиком - результат пустой, без ошибки
	slots, err := generateSlots(
		"field-1",
		date("2025-10-13"), date("2025-10-13"),
		[]domain.Weekday{domain.Monday},
		types.TimeString("09:00"), types.TimeString("10:00"),
		120,
		1000,
	)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_NoMatchingDays(t *testing.T) {
	// В периоде нет ни одного воскресенья - результат пустой, без ошибки
	slots, err := generateSlots(
		"field-1",
		date("2025-10-13"), date("2025-10-17"), // понедельник..пятница
		[]domain.Weekday{domain.Sunday},
		types.TimeString("09:00"), types.TimeString("18:00"),
		60,
		1000,
	)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	gen := func() []*domain.TimeSlot {
		slots, err := generateSlots(
			"field-7",
			date("2025-11-03"), date("2025-11-09"),
			[]domain.Weekday{domain.Tuesday, domain.Saturday},
			types.TimeString("09:00"), types.TimeString("17:00"),
			60,
			1200,
		)
		require.NoError(t, err)
		return slots
	}

	first := gen()
	second := gen()

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].SlotKey, second[i].SlotKey)
		assert.Equal(t, first[i].StartTime, second[i].StartTime)
		assert.Equal(t, first[i].EndTime, second[i].EndTime)
		assert.Equal(t, first[i].Price, second[i].Price)
	}
}

func TestGenerateSlots_SlotKeyFormat(t *testing.T) {
	slots, err := generateSlots(
		"premium-ground",
		date("2025-10-15"), date("2025-10-15"),
		[]domain.Weekday{domain.Wednesday},
		types.TimeString("09:00"), types.TimeString("10:00"),
		60,
		1000,
	)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "premium-ground_2025-10-15_09:00", slots[0].SlotKey)
}

func TestBuildResponse_PreviewLimitAndRevenue(t *testing.T) {
	req := &Request{FieldID: "field-1", Preview: true}

	slots, err := generateSlots(
		"field-1",
		date("2025-10-13"), date("2025-10-17"),
		domain.AllWeekdays,
		types.TimeString("09:00"), types.TimeString("18:00"),
		60,
		250,
	)
	require.NoError(t, err)
	require.Greater(t, len(slots), domain.DefaultPreviewSlotsCount)

	resp := buildResponse(req, slots, 0)

	assert.Equal(t, len(slots), resp.GeneratedCount)
	assert.Len(t, resp.Slots, domain.DefaultPreviewSlotsCount)
	assert.Equal(t, 250.0*float64(len(slots)), resp.EstimatedRevenue)
	assert.True(t, resp.Preview)
	assert.Zero(t, resp.SavedCount)
}
