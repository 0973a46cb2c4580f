package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

func TestDayTimeSlots(t *testing.T) {
	slots := DayTimeSlots()

	require.Len(t, slots, SlotsPerDay)
	assert.Equal(t, types.TimeString("08:00"), slots[0])
	assert.Equal(t, types.TimeString("08:15"), slots[1])
	assert.Equal(t, types.TimeString("23:45"), slots[len(slots)-1])
}

func TestIsGridSlot(t *testing.T) {
	assert.True(t, IsGridSlot("08:00"))
	assert.True(t, IsGridSlot("13:45"))
	assert.True(t, IsGridSlot("23:45"))
	assert.False(t, IsGridSlot("07:45"))
	assert.False(t, IsGridSlot("10:10"))
	assert.False(t, IsGridSlot("24:00"))
	assert.False(t, IsGridSlot("bad"))
}

func TestSlotsBetween(t *testing.T) {
	slots, err := SlotsBetween("10:00", "11:00")
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "10:15", "10:30", "10:45"}, slots)

	slots, err = SlotsBetween("10:10", "10:40")
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "10:15", "10:30"}, slots)

	slots, err = SlotsBetween("10:00", "10:00")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestWeekDates_StartsOnMonday(t *testing.T) {
	// 2025-06-08 воскресенье
	sunday := time.Date(2025, 6, 8, 15, 0, 0, 0, time.UTC)
	dates := WeekDates(sunday)

	require.Len(t, dates, 7)
	assert.Equal(t, time.Monday, dates[0].Weekday())
	assert.Equal(t, "2025-06-02", dates[0].Format(DateFormat))
	assert.Equal(t, "2025-06-08", dates[6].Format(DateFormat))

	wednesday := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, dates, WeekDates(wednesday))
}

func TestCurrentTimeOffset(t *testing.T) {
	date := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want *int
	}{
		{"morning", time.Date(2025, 6, 4, 9, 30, 0, 0, time.UTC), intPtr(90)},
		{"opening", time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC), intPtr(0)},
		{"before opening", time.Date(2025, 6, 4, 7, 59, 0, 0, time.UTC), nil},
		{"after eight pm", time.Date(2025, 6, 4, 20, 0, 0, 0, time.UTC), nil},
		{"other day", time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentTimeOffset(tt.now, date))
		})
	}
}

func TestDaysInclusive(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysInclusive(from, from))
	assert.Equal(t, 30, DaysInclusive(from, time.Date(2025, 6, 30, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, DaysInclusive(from, from.AddDate(0, 0, -1)))
}

func intPtr(v int) *int { return &v }
